package httpresp

import "github.com/gin-gonic/gin"

// Envelope é o formato único de resposta da API.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(200, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(201, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}
