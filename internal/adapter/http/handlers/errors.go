package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"todolist/internal/adapter/http/middleware"
	"todolist/pkg/apierrors"
)

var errMalformedJSON = errors.New("malformed json body")

func respondError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// bindJSONWithRaw decodes the body into req and also returns the raw top-level fields, so that
// callers can tell an absent field from an explicit null.
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, errMalformedJSON
	}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	return raw, nil
}

func validID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
