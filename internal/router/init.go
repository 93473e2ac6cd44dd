package router

import (
	"github.com/sirupsen/logrus"

	"github.com/srikanthravipati27/environment-hub/internal/application"
	"github.com/srikanthravipati27/environment-hub/internal/container"
	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	repo "github.com/srikanthravipati27/environment-hub/internal/domain/repository"
	"github.com/srikanthravipati27/environment-hub/internal/infrastructure/memory"
	mongoinfra "github.com/srikanthravipati27/environment-hub/internal/infrastructure/mongo"
	redisinfra "github.com/srikanthravipati27/environment-hub/internal/infrastructure/redis"
	handlers "github.com/srikanthravipati27/environment-hub/internal/interface/http"
	"github.com/srikanthravipati27/environment-hub/internal/interface/middleware"
	"github.com/srikanthravipati27/environment-hub/internal/router/modules"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
)

// Deps are the components the HTTP modules are built from.
type Deps struct {
	Users        repo.UserRepository
	Content      repo.ContentRepository
	Sessions     repo.SessionStore
	Cookies      *helpers.Manager
	Logger       *logrus.Logger
	HashSlots    int
	DebugMetrics bool
}

// DepsFromContainer builds Deps from the process-level singletons. The
// document store is chosen by configuration; a memory store receives the
// given content repository so callers can preload it.
func DepsFromContainer(preloaded *memory.ContentRepository) Deps {
	cfg := container.GetConfig()
	d := Deps{
		Sessions:     redisinfra.NewSessionStore(container.GetRedis(), cfg.SessionTTL),
		Cookies:      helpers.NewCookie(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL),
		Logger:       container.GetLogger(),
		HashSlots:    cfg.HashConcurrency,
		DebugMetrics: cfg.DebugMetricsEnabled,
	}
	if cfg.UseMemoryStore() {
		d.Users = memory.NewUserRepository()
		d.Content = preloaded
		if preloaded == nil {
			d.Content = memory.NewContentRepository()
		}
		return d
	}
	db := container.GetMongo().Database(cfg.MongoDB)
	d.Users = mongoinfra.NewUserRepository(db)
	d.Content = mongoinfra.NewContentRepository(db)
	return d
}

// InitModules builds every module from d and registers it with the registry.
// This function should be called once during application startup.
func InitModules(r *Registry, d Deps) error {
	gate := middleware.Session(d.Sessions, d.Cookies, d.Logger)

	users := application.NewService(d.Users, d.Sessions, d.Logger, d.HashSlots)
	content := application.NewContentService(d.Content)
	pages := handlers.NewPageHandler()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(users, d.Cookies, d.Logger), pages))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(users, d.Logger), pages, gate))

	var contentHandlers []*handlers.ContentHandler
	for _, coll := range []entity.Collection{entity.Articles, entity.Activities, entity.Forum} {
		h, err := handlers.NewContentHandler(content, d.Logger, coll)
		if err != nil {
			return err
		}
		contentHandlers = append(contentHandlers, h)
	}
	r.Add(modules.NewContentModule(gate, contentHandlers...))

	if d.DebugMetrics {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
