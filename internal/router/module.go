package router

import "github.com/gin-gonic/gin"

// Module registers a group of pages on the root RouterGroup.
type Module interface {
	Register(rg *gin.RouterGroup)
}
