package router

import (
	"github.com/gin-gonic/gin"

	"github.com/srikanthravipati27/environment-hub/pkg/views"
)

// NewEngine returns a bare gin engine with the page templates installed.
func NewEngine() (*gin.Engine, error) {
	tpl, err := views.Load()
	if err != nil {
		return nil, err
	}
	r := gin.New()
	r.SetHTMLTemplate(tpl)
	return r, nil
}
