// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the canonical product name rendered in page chrome.
const AppName = "Communal Kitchen"
