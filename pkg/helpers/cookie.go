package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Manager sets and clears the session cookie.
type Manager struct {
	Name   string
	Domain string
	Secure bool
	TTL    time.Duration
}

func NewCookie(name, domain string, secure bool, ttl time.Duration) *Manager {
	return &Manager{Name: name, Domain: domain, Secure: secure, TTL: ttl}
}

// SetSession stores the session identifier in an HttpOnly cookie.
func (m *Manager) SetSession(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, sid, int(m.TTL.Seconds()), "/", m.Domain, m.Secure, true)
}

// Session returns the session identifier carried by the request, if any.
func (m *Manager) Session(c *gin.Context) string {
	sid, err := c.Cookie(m.Name)
	if err != nil {
		return ""
	}
	return sid
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, "", -1, "/", m.Domain, m.Secure, true)
}
