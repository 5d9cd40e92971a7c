package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"catalog-service/pkg/apperror"
)

// bindError keeps field-level validation failures intact for the response
// classifier and downgrades everything else (malformed JSON, wrong types)
// to a 400 application error.
func bindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return err
	}
	return apperror.New(http.StatusBadRequest, "invalid request body")
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processListReq binds and validates the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processIDParam validates the :id path parameter as a UUID.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperror.New(http.StatusBadRequest, "invalid item id")
	}
	return id, nil
}
