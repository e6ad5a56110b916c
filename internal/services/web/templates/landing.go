package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
)

// LandingPage renders the public landing surface.
func LandingPage(page PageContext) templ.Component {
	var b strings.Builder
	b.WriteString(`<section class="landing">`)
	b.WriteString(`<h1>` + esc(page.AppName) + `</h1>`)
	b.WriteString(`<p class="landing-tagline">` + esc(T(page.Loc, "landing.tagline")) + `</p>`)
	b.WriteString(`<div class="landing-actions">`)
	b.WriteString(`<a class="button button-primary" href="` + routepath.Recipes + `">` + esc(T(page.Loc, "landing.browse")) + `</a>`)
	b.WriteString("</div></section>")
	return component(b.String())
}
