package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondError maps a typed service failure to its HTTP status and writes
// the standard error envelope.
func RespondError(c *gin.Context, err error) {
	JSONError(c, HTTPStatus(err), err.Error())
}
