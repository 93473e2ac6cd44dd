package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srikanthravipati27/environment-hub/internal/application"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
	"github.com/srikanthravipati27/environment-hub/pkg/response"
	"github.com/srikanthravipati27/environment-hub/pkg/validation"
	"github.com/srikanthravipati27/environment-hub/pkg/views"
)

// Messages shown to the visitor.
const (
	MsgEmailTaken         = "already registered"
	MsgUsernameTaken      = "username exists"
	MsgInvalidCredentials = "Invalid username or password"
	MsgLogout             = "Logout Successful"
)

// HomePath is where a successful signin lands.
const HomePath = "/home"

type AuthHandler struct {
	Svc     *application.Service
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.Service, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

// signupRequest accepts the signup form or an equivalent JSON body.
type signupRequest struct {
	FirstName string `form:"firstname" json:"firstname" binding:"required,notblank"`
	UserName  string `form:"Username" json:"Username" binding:"required,notblank"`
	Email     string `form:"email" json:"email" binding:"required,notblank"`
	Password  string `form:"password" json:"password" binding:"required,notblank"`
}

type signinRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	response.Page(c, http.StatusOK, views.Signup, nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Page(c, http.StatusBadRequest, views.Signup, gin.H{"errors": validation.ToDetails(err)})
		return
	}

	_, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		FirstName: req.FirstName,
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
	})
	switch {
	case err == nil:
		signupsTotal.Add(1)
		response.Page(c, http.StatusOK, views.Signin, nil)
	case errors.Is(err, application.ErrEmailTaken):
		signupConflicts.Add(1)
		response.Page(c, http.StatusOK, views.Signup, gin.H{"registered": MsgEmailTaken})
	case errors.Is(err, application.ErrUsernameTaken):
		signupConflicts.Add(1)
		response.Page(c, http.StatusOK, views.Signup, gin.H{"useregistered": MsgUsernameTaken})
	case errors.Is(err, application.ErrBlankField):
		response.Page(c, http.StatusBadRequest, views.Signup, gin.H{"errors": map[string]string{"payload": "all fields are required"}})
	default:
		helpers.RequestLogger(h.Logger, c).WithError(err).Error("signup failed")
		response.InternalError(c)
	}
}

func (h *AuthHandler) SigninForm(c *gin.Context) {
	response.Page(c, http.StatusOK, views.Signin, nil)
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBind(&req); err != nil {
		signinFailuresTotal.Add(1)
		response.Text(c, http.StatusOK, MsgInvalidCredentials)
		return
	}

	auth, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		signinFailuresTotal.Add(1)
		response.Text(c, http.StatusOK, MsgInvalidCredentials)
		return
	}
	if err != nil {
		helpers.RequestLogger(h.Logger, c).WithError(err).Error("signin failed")
		response.InternalError(c)
		return
	}

	signinsTotal.Add(1)
	h.Cookies.SetSession(c, auth.SessionID)
	c.Redirect(http.StatusFound, HomePath)
}

// Logout destroys the session, if any, and shows the signin page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := h.Cookies.Session(c); sid != "" {
		if err := h.Svc.Logout(c.Request.Context(), sid); err != nil {
			helpers.RequestLogger(h.Logger, c).WithError(err).Error("logout failed")
			response.InternalError(c)
			return
		}
	}
	logoutsTotal.Add(1)
	h.Cookies.Clear(c)
	response.Page(c, http.StatusOK, views.Signin, gin.H{"logout": MsgLogout})
}
