// Package web owns the browser-facing community recipes UX.
//
// It renders the recipe grid, per-user saved marks, and sign-in/sign-out
// flows on the server, using HTMX fragments for the grid load and the save
// toggles so the page stays responsive without a client-side app.
package web
