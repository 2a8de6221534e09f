package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API reply.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// Success writes a successful envelope.
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// SuccessWithMeta writes a successful envelope carrying metadata such as pagination.
func SuccessWithMeta(c *gin.Context, status int, message string, data, meta interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data, Meta: meta})
}

// Fail writes a failure envelope. Failures never carry data.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// AbortWithFail writes a failure envelope and stops the handler chain.
func AbortWithFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}
