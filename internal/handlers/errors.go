package handlers

import "github.com/gin-gonic/gin"

// ErrorBody is the single error envelope every failure path maps to.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	kindValidation = "validation"
	kindDatabase   = "database"
	kindUpload     = "upload"
)

func fail(c *gin.Context, status int, kind string, err error) {
	c.JSON(status, ErrorBody{Kind: kind, Message: err.Error()})
}
