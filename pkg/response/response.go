package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalErrorText is the only body sent for unexpected failures.
const InternalErrorText = "Internal Server Error"

// Page renders a named view. The session identity, when the gate set one,
// is exposed to every page as "user" unless the caller already provided it.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		if u := c.GetString("user"); u != "" {
			data["user"] = u
		}
	}
	c.HTML(status, name, data)
}

// Text writes a plain-text body.
func Text(c *gin.Context, status int, msg string) {
	c.String(status, msg)
}

// InternalError writes a generic 500 without leaking details and stops the chain.
func InternalError(c *gin.Context) {
	c.String(http.StatusInternalServerError, InternalErrorText)
	c.Abort()
}
