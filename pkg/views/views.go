// Package views holds the server-rendered pages, embedded into the binary.
package views

import (
	"embed"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	"time"
)

//go:embed templates/*.tmpl
var FS embed.FS

// Page names as passed to gin's c.HTML.
const (
	Index         = "index"
	Signup        = "signup"
	Signin        = "signin"
	Home          = "home"
	Profile       = "profile"
	About         = "about"
	Contact       = "contact"
	ArticlesIndex = "articles/index"
	ArticlesShow  = "articles/show"
	ActivityIndex = "activities/index"
	ActivityShow  = "activities/show"
	ForumIndex    = "forum/index"
	ForumShow     = "forum/show"
)

// Pages lists every renderable page.
var Pages = []string{
	Index, Signup, Signin, Home, Profile, About, Contact,
	ArticlesIndex, ArticlesShow, ActivityIndex, ActivityShow, ForumIndex, ForumShow,
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || rv.IsZero() {
			return fallback
		}
		return value
	}
}

func funcs() htmpl.FuncMap {
	return htmpl.FuncMap{
		"now":     func() time.Time { return time.Now().UTC() },
		"default": defaultFn,
	}
}

// Load parses every embedded page into one template set, ready for
// gin.Engine.SetHTMLTemplate.
func Load() (*htmpl.Template, error) {
	tpl, err := htmpl.New("views").Funcs(funcs()).ParseFS(FS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}
	for _, p := range Pages {
		if tpl.Lookup(p) == nil {
			return nil, fmt.Errorf("view %q not defined", p)
		}
	}
	return tpl, nil
}
