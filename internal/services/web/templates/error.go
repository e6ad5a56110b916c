package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
)

// ErrorPage renders a generic failure surface.
func ErrorPage(page PageContext) templ.Component {
	var b strings.Builder
	b.WriteString(`<section class="error-page">`)
	b.WriteString(`<h1>` + esc(T(page.Loc, "error.title")) + `</h1>`)
	b.WriteString(`<p>` + esc(T(page.Loc, "error.message")) + `</p>`)
	b.WriteString(`<a class="button button-primary" href="` + routepath.Recipes + `">` + esc(T(page.Loc, "error.back")) + `</a>`)
	b.WriteString("</section>")
	return component(b.String())
}
