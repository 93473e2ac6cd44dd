package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikanthravipati27/environment-hub/pkg/response"
	"github.com/srikanthravipati27/environment-hub/pkg/views"
)

// SiteTitle is shown on the landing page.
const SiteTitle = "Environmental Education Hub"

// PageHandler renders pages without data of their own.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

func (h *PageHandler) Index(c *gin.Context) {
	response.Page(c, http.StatusOK, views.Index, gin.H{"title": SiteTitle})
}

func (h *PageHandler) About(c *gin.Context) {
	response.Page(c, http.StatusOK, views.About, nil)
}

func (h *PageHandler) Contact(c *gin.Context) {
	response.Page(c, http.StatusOK, views.Contact, nil)
}
