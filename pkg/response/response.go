package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new success envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error classifies err and writes the normalized error envelope. It is the
// single place error responses are produced; callers must not write a body
// before or after it.
func Error(c *gin.Context, err error) {
	status, resp := Classify(err)
	c.JSON(status, resp)
}
