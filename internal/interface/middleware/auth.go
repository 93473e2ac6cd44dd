package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	repo "github.com/srikanthravipati27/environment-hub/internal/domain/repository"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
	"github.com/srikanthravipati27/environment-hub/pkg/response"
)

// CtxUserKey holds the authenticated userName in the Gin context.
const CtxUserKey = "user"

// SigninPath is where denied requests are sent.
const SigninPath = "/signin"

// Session is the gate in front of protected pages. It proceeds only when the
// request's session carries a non-empty identity; otherwise it redirects to
// the signin page. It does not check that the user record still exists.
func Session(store repo.SessionStore, cookies *helpers.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := cookies.Session(c)
		if sid == "" {
			deny(c)
			return
		}
		sess, err := store.Get(c.Request.Context(), sid)
		if errors.Is(err, repo.ErrNotFound) {
			deny(c)
			return
		}
		if err != nil {
			helpers.RequestLogger(logger, c).WithError(err).Error("session lookup failed")
			response.InternalError(c)
			return
		}
		if sess.UserName == "" {
			deny(c)
			return
		}
		c.Set(CtxUserKey, sess.UserName)
		c.Next()
	}
}

// deny redirects to signin without a body.
func deny(c *gin.Context) {
	c.Header("Location", SigninPath)
	c.AbortWithStatus(http.StatusFound)
}
