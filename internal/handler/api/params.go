package api

import (
	"errors"
	"io"

	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses the :id segment. An id that is not a UUID cannot match any row,
// so it is answered like a missing one.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, errs.NotFound(policy.MsgNotFound))
		return uuid.Nil, false
	}
	return id, true
}

// bindBody decodes an optional JSON body; an empty body decodes as {}.
func bindBody(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, err)
		return false
	}
	return true
}
