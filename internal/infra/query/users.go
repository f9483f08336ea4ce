package query

import (
	"context"

	"github.com/google/uuid"
)

const upsertUser = `
INSERT INTO users (id, username)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
WHERE users.username <> EXCLUDED.username
`

type UpsertUserParams struct {
	ID       uuid.UUID
	Username string
}

func (q *Queries) UpsertUser(ctx context.Context, db DBTX, arg UpsertUserParams) error {
	_, err := db.Exec(ctx, upsertUser, arg.ID, arg.Username)
	return err
}
