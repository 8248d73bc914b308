package pages

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/session"
)

//go:embed templates/*.html
var tmplFS embed.FS

// Renderer plugs the embedded templates into echo (e.Renderer).
type Renderer struct {
	t *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{t: template.Must(template.ParseFS(tmplFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}

// Pages are the server-rendered entry points. Each protected page decodes
// the session before anything else; a missing or role-mismatched session is
// a redirect to /login, never a render.
type Pages struct {
	codec *session.Codec
}

func New(codec *session.Codec) *Pages {
	return &Pages{codec: codec}
}

// GET /login
func (p *Pages) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

func (p *Pages) guarded(role, view string) echo.HandlerFunc {
	return func(c echo.Context) error {
		pl := session.FromRequest(c, p.codec)
		if pl == nil || pl.Role != role {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return c.Render(http.StatusOK, view, pl)
	}
}

// GET /director , /teacher , /student
func (p *Pages) Director() echo.HandlerFunc { return p.guarded("director", "director.html") }
func (p *Pages) Teacher() echo.HandlerFunc  { return p.guarded("teacher", "teacher.html") }
func (p *Pages) Student() echo.HandlerFunc  { return p.guarded("student", "student.html") }
