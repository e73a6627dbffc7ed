package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/utils"
)

const dateLayout = "2006-01-02"

// paramID parses a numeric path parameter, answering 400 itself on garbage.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// queryID parses a numeric query parameter the same way.
func queryID(c *gin.Context, name, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, utils.Validationf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}
