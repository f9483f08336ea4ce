//go:build unit || e2e

package authtest

import (
	"testing"

	"stay-marketplace/tests/common/dbtest"

	"github.com/google/uuid"
)

// CreateAndLogin mirrors a user locally and returns a token the identity provider would have issued.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, h *JWTHelper, username string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, username)
	return userID, h.GenerateToken(t, userID, username)
}
