package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire-contract error body. Error is a stable machine-readable
// code; the hint fields are populated only for validation failures.
type Response struct {
	Status        int      `json:"-"`
	Error         string   `json:"error"`
	Message       string   `json:"message,omitempty"`
	Required      []string `json:"required,omitempty"`
	InvalidEvents []string `json:"invalid_events,omitempty"`
	ValidEvents   []string `json:"valid_events,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
