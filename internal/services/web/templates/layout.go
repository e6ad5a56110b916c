package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Toast is a transient notice rendered in the page toast region.
type Toast struct {
	Kind    string
	Message string
}

func esc(value string) string {
	return html.EscapeString(value)
}

func component(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// Layout renders the HTML document shell around a page body.
func Layout(title string, metaDesc string, page PageContext, toast *Toast, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>")
		b.WriteString(`<html lang="` + esc(page.Lang) + `">`)
		b.WriteString("<head>")
		b.WriteString(`<meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString("<title>" + esc(title) + "</title>")
		if strings.TrimSpace(metaDesc) != "" {
			b.WriteString(`<meta name="description" content="` + esc(metaDesc) + `">`)
		}
		b.WriteString(`<link rel="stylesheet" href="` + routepath.StaticPrefix + `app.css">`)
		b.WriteString(`<script src="` + htmxScriptURL + `" defer></script>`)
		b.WriteString(`<script src="` + routepath.StaticPrefix + `app.js" defer></script>`)
		b.WriteString("</head>")
		b.WriteString("<body>")
		b.WriteString(navMarkup(page))
		b.WriteString(toastRegionMarkup(toast))
		b.WriteString(`<main class="page">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

func navMarkup(page PageContext) string {
	var b strings.Builder
	b.WriteString(`<nav class="topnav">`)
	b.WriteString(`<a class="brand" href="` + routepath.Landing + `">` + esc(page.AppName) + `</a>`)
	b.WriteString(`<div class="topnav-actions">`)
	if page.SignedIn {
		if strings.TrimSpace(page.UserName) != "" {
			b.WriteString(`<span class="topnav-user">` + esc(page.UserName) + `</span>`)
		}
		b.WriteString(`<a class="button button-primary" href="` + routepath.RecipeCreate + `">` + esc(T(page.Loc, "nav.share_recipe")) + `</a>`)
		b.WriteString(`<form method="post" action="` + routepath.AuthLogout + `" class="inline-form">`)
		b.WriteString(`<button type="submit" class="button button-ghost">` + esc(T(page.Loc, "nav.sign_out")) + `</button>`)
		b.WriteString(`</form>`)
	} else {
		b.WriteString(`<a class="button button-primary" href="` + routepath.Recipes + `">` + esc(T(page.Loc, "landing.sign_in")) + `</a>`)
	}
	b.WriteString("</div></nav>")
	return b.String()
}

func toastRegionMarkup(toast *Toast) string {
	var b strings.Builder
	b.WriteString(`<div id="toast-region" class="toast-region">`)
	if toast != nil && strings.TrimSpace(toast.Message) != "" {
		kind := strings.TrimSpace(toast.Kind)
		if kind == "" {
			kind = "info"
		}
		b.WriteString(`<div class="toast toast-` + esc(kind) + `" role="status" data-toast>` + esc(toast.Message) + `</div>`)
	}
	b.WriteString("</div>")
	return b.String()
}

// ToastFragment renders the toast region for out-of-band HTMX swaps.
func ToastFragment(toast *Toast) templ.Component {
	markup := toastRegionMarkup(toast)
	markup = strings.Replace(markup, `<div id="toast-region" class="toast-region">`, `<div id="toast-region" class="toast-region" hx-swap-oob="true">`, 1)
	return component(markup)
}
