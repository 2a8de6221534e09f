package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/utils"
)

// bindJSON binds the body and reports binding failures as one validation error.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(apierrors.Validation(utils.ValidationMessage(err)))
		return false
	}
	return true
}

// paramID parses a uuid path parameter. A malformed id cannot name any
// resource, so it is reported as notFound.
func paramID(c *gin.Context, name string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.Error(notFound)
		return uuid.Nil, false
	}
	return id, true
}
