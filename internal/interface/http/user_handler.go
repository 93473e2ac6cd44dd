package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srikanthravipati27/environment-hub/internal/application"
	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/interface/middleware"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
	"github.com/srikanthravipati27/environment-hub/pkg/response"
	"github.com/srikanthravipati27/environment-hub/pkg/views"
)

// UserHandler serves pages about the signed-in user. Both routes sit behind
// the session gate.
type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

func (h *UserHandler) Home(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	response.Page(c, http.StatusOK, views.Home, gin.H{"welcomename": u.Name})
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	response.Page(c, http.StatusOK, views.Profile, gin.H{"profile": u})
}

// currentUser loads the record behind the session. A session whose user
// has vanished is sent back to signin.
func (h *UserHandler) currentUser(c *gin.Context) (*entity.User, bool) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetString(middleware.CtxUserKey))
	if errors.Is(err, application.ErrUserNotFound) {
		c.Redirect(http.StatusFound, middleware.SigninPath)
		return nil, false
	}
	if err != nil {
		helpers.RequestLogger(h.Logger, c).WithError(err).Error("load user failed")
		response.InternalError(c)
		return nil, false
	}
	return u, true
}
