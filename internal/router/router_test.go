package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikanthravipati27/environment-hub/config"
	"github.com/srikanthravipati27/environment-hub/internal/container"
	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/infrastructure/memory"
	redisinfra "github.com/srikanthravipati27/environment-hub/internal/infrastructure/redis"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
	"github.com/srikanthravipati27/environment-hub/pkg/validation"
)

type app struct {
	r       *gin.Engine
	users   *memory.UserRepository
	content *memory.ContentRepository
}

func newApp(t *testing.T, debug bool) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := &app{users: memory.NewUserRepository(), content: memory.NewContentRepository()}
	r, err := NewEngine()
	require.NoError(t, err)
	reg := NewRegistry(r)
	require.NoError(t, InitModules(reg, Deps{
		Users:        a.users,
		Content:      a.content,
		Sessions:     redisinfra.NewSessionStore(rdb, time.Hour),
		Cookies:      helpers.NewCookie("sid", "", false, time.Hour),
		Logger:       helpers.NewNopLogger(),
		HashSlots:    2,
		DebugMetrics: debug,
	}))
	reg.RegisterAll()
	a.r = r
	return a
}

// client keeps the session cookie between requests like a browser.
type client struct {
	app *app
	sid *http.Cookie
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	if c.sid != nil {
		req.AddCookie(c.sid)
	}
	w := httptest.NewRecorder()
	c.app.r.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name != "sid" {
			continue
		}
		if ck.MaxAge < 0 {
			c.sid = nil
		} else {
			c.sid = ck
		}
	}
	return w
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) signup(first, user, email, pw string) *httptest.ResponseRecorder {
	return c.post("/signup", url.Values{"firstname": {first}, "Username": {user}, "email": {email}, "password": {pw}})
}

func (c *client) signin(email, pw string) *httptest.ResponseRecorder {
	return c.post("/signin", url.Values{"email": {email}, "password": {pw}})
}

var gatedRoutes = []string{
	"/home", "/profile", "/about", "/contact",
	"/articles", "/articles/abc", "/activities", "/activities/abc", "/forum", "/forum/abc",
}

func TestGatedRoutesRedirectWithoutSession(t *testing.T) {
	a := newApp(t, false)
	c := &client{app: a}
	for _, path := range gatedRoutes {
		w := c.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/signin", w.Header().Get("Location"), path)
	}

	c.sid = &http.Cookie{Name: "sid", Value: "forged"}
	for _, path := range gatedRoutes {
		assert.Equal(t, http.StatusFound, c.get(path).Code, path)
	}
}

func TestPublicRoutes(t *testing.T) {
	a := newApp(t, false)
	c := &client{app: a}
	for _, path := range []string{"/", "/signup", "/signin"} {
		assert.Equal(t, http.StatusOK, c.get(path).Code, path)
	}
	assert.Equal(t, http.StatusNotFound, c.get("/debug/vars").Code)
}

func TestRegisterLoginBrowseLogout(t *testing.T) {
	a := newApp(t, false)
	id := a.content.Put(entity.Activities, map[string]any{"title": "Beach clean-up", "location": "North beach"})
	c := &client{app: a}

	require.Equal(t, http.StatusOK, c.signup("Ann", "annx", "a@x.com", "pw123").Code)
	w := c.signin("a@x.com", "pw123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	require.NotNil(t, c.sid)

	w = c.get("/home")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome, Ann!")

	for _, path := range gatedRoutes {
		if strings.HasSuffix(path, "/abc") {
			continue
		}
		assert.Equal(t, http.StatusOK, c.get(path).Code, path)
	}

	w = c.get("/activities/" + id)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "North beach")

	w = c.get("/forum/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Thread not found", w.Body.String())

	old := c.sid
	w = c.get("/logout")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout Successful")
	assert.Nil(t, c.sid)

	// the old session id no longer opens the gate
	c.sid = old
	assert.Equal(t, http.StatusFound, c.get("/home").Code)
}

func TestAnnAndBob(t *testing.T) {
	a := newApp(t, false)
	c := &client{app: a}

	require.Equal(t, http.StatusOK, c.signup("Ann", "annx", "a@x.com", "pw123").Code)

	w := c.signup("Bob", "annx", "b@x.com", "pw999")
	assert.Contains(t, w.Body.String(), "username exists")
	assert.Equal(t, 1, a.users.Len())

	w = c.signin("a@x.com", "wrong")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Invalid username or password", w.Body.String())
	assert.Nil(t, c.sid)

	w = c.signin("a@x.com", "pw123")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, c.get("/home").Body.String(), "Welcome, Ann!")
}

func TestDebugVars(t *testing.T) {
	a := newApp(t, true)
	c := &client{app: a}
	c.signup("Ann", "annx", "a@x.com", "pw123")

	w := c.get("/debug/vars")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signups_total"`)
}

func TestDepsFromContainerMemoryStore(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("DOC_STORE", "memory")
	container.SetConfig(config.Load())
	container.SetLogger(helpers.NewNopLogger())
	container.SetRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	preloaded := memory.NewContentRepository()
	d := DepsFromContainer(preloaded)
	assert.IsType(t, &memory.UserRepository{}, d.Users)
	assert.Same(t, preloaded, d.Content)
	assert.IsType(t, &redisinfra.SessionStore{}, d.Sessions)
	assert.Equal(t, "sid", d.Cookies.Name)
	assert.Equal(t, 24*time.Hour, d.Cookies.TTL)
}
