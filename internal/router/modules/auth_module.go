package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/srikanthravipati27/environment-hub/internal/interface/http"
)

// AuthModule serves the public pages: landing, signup, signin and logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Pages   *handlers.PageHandler
}

func NewAuthModule(h *handlers.AuthHandler, pages *handlers.PageHandler) *AuthModule {
	return &AuthModule{Handler: h, Pages: pages}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Pages.Index)
	rg.GET("/signup", m.Handler.SignupForm)
	rg.POST("/signup", m.Handler.Signup)
	rg.GET("/signin", m.Handler.SigninForm)
	rg.POST("/signin", m.Handler.Signin)
	rg.GET("/logout", m.Handler.Logout)
}
