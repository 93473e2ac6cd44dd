package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srikanthravipati27/environment-hub/internal/application"
	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
	"github.com/srikanthravipati27/environment-hub/pkg/response"
	"github.com/srikanthravipati27/environment-hub/pkg/views"
)

// contentView describes how one collection is rendered.
type contentView struct {
	listPage string
	showPage string
	listKey  string
	itemKey  string
	notFound string
}

var contentViews = map[entity.Collection]contentView{
	entity.Articles: {
		listPage: views.ArticlesIndex, showPage: views.ArticlesShow,
		listKey: "articles", itemKey: "article", notFound: "Article not found",
	},
	entity.Activities: {
		listPage: views.ActivityIndex, showPage: views.ActivityShow,
		listKey: "activities", itemKey: "activity", notFound: "Activity not found",
	},
	entity.Forum: {
		listPage: views.ForumIndex, showPage: views.ForumShow,
		listKey: "threads", itemKey: "thread", notFound: "Thread not found",
	},
}

// ContentHandler serves the list and detail pages of one collection.
type ContentHandler struct {
	Svc        *application.ContentService
	Logger     *logrus.Logger
	Collection entity.Collection

	view contentView
}

func NewContentHandler(svc *application.ContentService, logger *logrus.Logger, coll entity.Collection) (*ContentHandler, error) {
	v, ok := contentViews[coll]
	if !ok {
		return nil, fmt.Errorf("no views for collection %q", coll)
	}
	return &ContentHandler{Svc: svc, Logger: logger, Collection: coll, view: v}, nil
}

// Path is the route prefix of the collection, e.g. "/articles".
func (h *ContentHandler) Path() string { return "/" + string(h.Collection) }

func (h *ContentHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), h.Collection)
	if err != nil {
		helpers.RequestLogger(h.Logger, c).WithError(err).WithField("collection", h.Collection).Error("list content failed")
		response.InternalError(c)
		return
	}
	response.Page(c, http.StatusOK, h.view.listPage, gin.H{h.view.listKey: items})
}

func (h *ContentHandler) Show(c *gin.Context) {
	item, err := h.Svc.Get(c.Request.Context(), h.Collection, c.Param("id"))
	if errors.Is(err, application.ErrContentNotFound) {
		response.Text(c, http.StatusNotFound, h.view.notFound)
		return
	}
	if err != nil {
		helpers.RequestLogger(h.Logger, c).WithError(err).WithField("collection", h.Collection).Error("get content failed")
		response.InternalError(c)
		return
	}
	response.Page(c, http.StatusOK, h.view.showPage, gin.H{h.view.itemKey: item})
}
