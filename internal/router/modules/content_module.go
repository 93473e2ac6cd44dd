package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/srikanthravipati27/environment-hub/internal/interface/http"
)

// ContentModule wires list and detail pages for each content collection,
// all behind the session gate.
type ContentModule struct {
	Handlers []*handlers.ContentHandler
	Gate     gin.HandlerFunc
}

func NewContentModule(gate gin.HandlerFunc, hs ...*handlers.ContentHandler) *ContentModule {
	return &ContentModule{Handlers: hs, Gate: gate}
}

func (m *ContentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(m.Gate)
	for _, h := range m.Handlers {
		auth.GET(h.Path(), h.List)
		auth.GET(h.Path()+"/:id", h.Show)
	}
}
