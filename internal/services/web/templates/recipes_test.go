package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/communal.kitchen/internal/services/web/i18n"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func testPage() PageContext {
	return PageContext{
		Lang:    "en-US",
		Loc:     i18n.Printer(i18n.Default()),
		AppName: "Communal Kitchen",
	}
}

func TestRecipeCardCapsIngredientBadges(t *testing.T) {
	t.Parallel()

	card := RecipeCard{
		ID:          "r1",
		Title:       "Pancakes",
		Ingredients: []string{"Flour", "Sugar", "Eggs", "Butter", "Milk"},
	}
	markup := render(t, RecipeGrid(testPage(), []RecipeCard{card}))

	for _, badge := range []string{">Flour<", ">Sugar<", ">Eggs<"} {
		if !strings.Contains(markup, badge) {
			t.Fatalf("missing badge %q in %q", badge, markup)
		}
	}
	if !strings.Contains(markup, "+2 more") {
		t.Fatalf("missing overflow badge in %q", markup)
	}
	if strings.Contains(markup, `class="badge">Butter`) {
		t.Fatalf("unexpected badge for hidden ingredient in %q", markup)
	}
}

func TestRecipeCardShowsAllBadgesAtOrBelowLimit(t *testing.T) {
	t.Parallel()

	card := RecipeCard{ID: "r1", Title: "Toast", Ingredients: []string{"Bread", "Butter", "Salt"}}
	markup := render(t, RecipeGrid(testPage(), []RecipeCard{card}))

	if strings.Contains(markup, "badge-overflow") {
		t.Fatalf("unexpected overflow badge in %q", markup)
	}
	for _, badge := range []string{">Bread<", ">Butter<", ">Salt<"} {
		if !strings.Contains(markup, badge) {
			t.Fatalf("missing badge %q in %q", badge, markup)
		}
	}
}

func TestRecipeCardFallsBackToAnonymousChef(t *testing.T) {
	t.Parallel()

	card := RecipeCard{ID: "r1", Title: "Soup"}
	markup := render(t, RecipeGrid(testPage(), []RecipeCard{card}))

	if !strings.Contains(markup, "Anonymous Chef") {
		t.Fatalf("missing anonymous chef fallback in %q", markup)
	}

	named := RecipeCard{ID: "r2", Title: "Soup", AuthorName: "Marta"}
	markup = render(t, RecipeGrid(testPage(), []RecipeCard{named}))
	if !strings.Contains(markup, "by Marta") {
		t.Fatalf("missing author attribution in %q", markup)
	}
	if strings.Contains(markup, "Anonymous Chef") {
		t.Fatalf("unexpected anonymous fallback for named author in %q", markup)
	}
}

func TestRecipeDialogListsFullIngredientsAndNumberedInstructions(t *testing.T) {
	t.Parallel()

	card := RecipeCard{
		ID:           "r1",
		Title:        "Pancakes",
		Ingredients:  []string{"Flour", "Sugar", "Eggs", "Butter", "Milk"},
		Instructions: []string{"Mix the dry ingredients", "Whisk in eggs and milk", "Fry on both sides"},
		CookTime:     "25 min",
		Servings:     "4",
		Difficulty:   "Easy",
		Cuisine:      "French",
	}
	markup := render(t, RecipeGrid(testPage(), []RecipeCard{card}))

	if !strings.Contains(markup, `<dialog id="recipe-dialog-r1"`) {
		t.Fatalf("missing dialog in %q", markup)
	}
	for _, ingredient := range card.Ingredients {
		if !strings.Contains(markup, "<li>"+ingredient+"</li>") {
			t.Fatalf("dialog missing ingredient %q in %q", ingredient, markup)
		}
	}
	if !strings.Contains(markup, `<ol class="dialog-instructions">`) {
		t.Fatalf("missing ordered instruction list in %q", markup)
	}
	for _, step := range card.Instructions {
		if !strings.Contains(markup, "<li>"+step+"</li>") {
			t.Fatalf("dialog missing instruction %q in %q", step, markup)
		}
	}
	for _, meta := range []string{"25 min", "French", "Easy"} {
		if !strings.Contains(markup, meta) {
			t.Fatalf("dialog missing metadata %q in %q", meta, markup)
		}
	}
}

func TestRecipeGridRendersEmptyState(t *testing.T) {
	t.Parallel()

	markup := render(t, RecipeGrid(testPage(), nil))

	if !strings.Contains(markup, "No recipes yet") {
		t.Fatalf("missing empty state heading in %q", markup)
	}
	if !strings.Contains(markup, "Be the first to share a recipe with the community!") {
		t.Fatalf("missing empty state message in %q", markup)
	}
	if !strings.Contains(markup, `href="/app/recipes/new"`) {
		t.Fatalf("missing share call to action in %q", markup)
	}
}

func TestSaveButtonTogglesByState(t *testing.T) {
	t.Parallel()

	unsaved := render(t, SaveButton(testPage(), RecipeCard{ID: "r1"}))
	if !strings.Contains(unsaved, `hx-post="/app/recipes/r1/save"`) {
		t.Fatalf("missing save action in %q", unsaved)
	}
	if !strings.Contains(unsaved, ">Save<") {
		t.Fatalf("missing save label in %q", unsaved)
	}

	saved := render(t, SaveButton(testPage(), RecipeCard{ID: "r1", Saved: true}))
	if !strings.Contains(saved, `hx-post="/app/recipes/r1/unsave"`) {
		t.Fatalf("missing unsave action in %q", saved)
	}
	if !strings.Contains(saved, ">Saved<") {
		t.Fatalf("missing saved label in %q", saved)
	}
}

func TestRecipesPageDefersGridLoad(t *testing.T) {
	t.Parallel()

	markup := render(t, RecipesPage(testPage()))

	if !strings.Contains(markup, `hx-get="/app/recipes/grid"`) {
		t.Fatalf("missing deferred grid load in %q", markup)
	}
	if !strings.Contains(markup, `hx-trigger="load"`) {
		t.Fatalf("missing load trigger in %q", markup)
	}
	if !strings.Contains(markup, "Loading recipes") {
		t.Fatalf("missing loading indicator in %q", markup)
	}
}

func TestRecipeCardEscapesUserContent(t *testing.T) {
	t.Parallel()

	card := RecipeCard{ID: "r1", Title: `<script>alert("x")</script>`}
	markup := render(t, RecipeGrid(testPage(), []RecipeCard{card}))

	if strings.Contains(markup, "<script>alert") {
		t.Fatalf("unescaped markup in %q", markup)
	}
	if !strings.Contains(markup, "&lt;script&gt;") {
		t.Fatalf("missing escaped title in %q", markup)
	}
}

func TestSaveButtonEscapesRecipeID(t *testing.T) {
	t.Parallel()

	card := RecipeCard{ID: `r1" onmouseover="alert(1)`, Title: "Stew"}
	markup := render(t, SaveButton(testPage(), card))

	if strings.Contains(markup, `onmouseover="alert`) {
		t.Fatalf("unescaped recipe id in %q", markup)
	}
	if !strings.Contains(markup, "&#34;") {
		t.Fatalf("missing escaped quote in %q", markup)
	}
}
