package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/srikanthravipati27/environment-hub/internal/interface/http"
)

// UserModule wires the gated member pages.
// Protected: GET /home, /profile, /about, /contact
type UserModule struct {
	Handler *handlers.UserHandler
	Pages   *handlers.PageHandler
	Gate    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, pages *handlers.PageHandler, gate gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Pages: pages, Gate: gate}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(m.Gate)
	{
		auth.GET("/home", m.Handler.Home)
		auth.GET("/profile", m.Handler.Profile)
		auth.GET("/about", m.Pages.About)
		auth.GET("/contact", m.Pages.Contact)
	}
}
