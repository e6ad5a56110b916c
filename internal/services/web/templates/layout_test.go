package templates

import (
	"strings"
	"testing"
)

func TestLayoutRendersNavForSignedInUser(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.SignedIn = true
	page.UserName = "Marta"

	markup := render(t, Layout("Communal Kitchen", "", page, nil, LandingPage(page)))

	if !strings.Contains(markup, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype in %q", markup)
	}
	if !strings.Contains(markup, `lang="en-US"`) {
		t.Fatalf("missing lang attribute in %q", markup)
	}
	if !strings.Contains(markup, ">Marta<") {
		t.Fatalf("missing user name in %q", markup)
	}
	if !strings.Contains(markup, `action="/auth/logout"`) {
		t.Fatalf("missing sign out form in %q", markup)
	}
	if !strings.Contains(markup, `href="/app/recipes/new"`) {
		t.Fatalf("missing share recipe link in %q", markup)
	}
}

func TestLayoutRendersToast(t *testing.T) {
	t.Parallel()

	markup := render(t, Layout("Communal Kitchen", "", testPage(), &Toast{Kind: "success", Message: "Recipe saved!"}, nil))

	if !strings.Contains(markup, "toast-success") {
		t.Fatalf("missing toast kind class in %q", markup)
	}
	if !strings.Contains(markup, "Recipe saved!") {
		t.Fatalf("missing toast message in %q", markup)
	}
}

func TestToastFragmentSwapsOutOfBand(t *testing.T) {
	t.Parallel()

	markup := render(t, ToastFragment(&Toast{Kind: "error", Message: "Failed to save recipe"}))

	if !strings.Contains(markup, `hx-swap-oob="true"`) {
		t.Fatalf("missing oob swap marker in %q", markup)
	}
	if !strings.Contains(markup, "toast-error") {
		t.Fatalf("missing toast kind class in %q", markup)
	}
	if !strings.Contains(markup, "Failed to save recipe") {
		t.Fatalf("missing toast message in %q", markup)
	}
}
