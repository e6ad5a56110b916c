// Package templates renders the HTML surfaces of the web service.
package templates

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	AppName      string
	UserName     string
	SignedIn     bool
}
