package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
)

// RecipesPage renders the community recipes shell. The grid itself is loaded
// as a deferred fragment so the page paints with a loading indicator first.
func RecipesPage(page PageContext) templ.Component {
	var b strings.Builder
	b.WriteString(`<section class="recipes">`)
	b.WriteString(`<header class="recipes-header">`)
	b.WriteString(`<h1>` + esc(T(page.Loc, "recipes.heading")) + `</h1>`)
	b.WriteString(`<p class="recipes-subtitle">` + esc(T(page.Loc, "recipes.subtitle")) + `</p>`)
	b.WriteString("</header>")
	b.WriteString(`<div id="recipe-grid" hx-get="` + routepath.RecipesGrid + `" hx-trigger="load" hx-swap="outerHTML">`)
	b.WriteString(`<div class="spinner" role="status" aria-live="polite">` + esc(T(page.Loc, "recipes.loading")) + `</div>`)
	b.WriteString("</div></section>")
	return component(b.String())
}

// RecipeGrid renders the loaded recipe cards, or the empty state when the
// community has no recipes yet.
func RecipeGrid(page PageContext, cards []RecipeCard) templ.Component {
	if len(cards) == 0 {
		return RecipesEmptyState(page)
	}
	var b strings.Builder
	b.WriteString(`<section id="recipe-grid" class="recipe-grid">`)
	for _, card := range cards {
		b.WriteString(recipeCardMarkup(page, card))
	}
	b.WriteString("</section>")
	return component(b.String())
}

// RecipeGridError renders the grid region when loading recipes failed. It is
// deliberately distinct from the empty state so a backend failure never reads
// as an empty community.
func RecipeGridError(page PageContext) templ.Component {
	var b strings.Builder
	b.WriteString(`<section id="recipe-grid" class="recipe-grid-error">`)
	b.WriteString(`<p>` + esc(T(page.Loc, "web.recipes.notice_load_failed")) + `</p>`)
	b.WriteString(`<button type="button" class="button button-ghost" hx-get="` + routepath.RecipesGrid + `" hx-target="#recipe-grid" hx-swap="outerHTML">` + esc(T(page.Loc, "recipes.grid.retry")) + `</button>`)
	b.WriteString("</section>")
	return component(b.String())
}

// RecipesEmptyState renders the call-to-action shown when no recipes exist.
func RecipesEmptyState(page PageContext) templ.Component {
	var b strings.Builder
	b.WriteString(`<section id="recipe-grid" class="recipe-grid-empty">`)
	b.WriteString(`<h2>` + esc(T(page.Loc, "recipes.empty.title")) + `</h2>`)
	b.WriteString(`<p>` + esc(T(page.Loc, "recipes.empty.message")) + `</p>`)
	b.WriteString(`<a class="button button-primary" href="` + routepath.RecipeCreate + `">` + esc(T(page.Loc, "recipes.empty.cta")) + `</a>`)
	b.WriteString("</section>")
	return component(b.String())
}

func recipeCardMarkup(page PageContext, card RecipeCard) string {
	dialogID := "recipe-dialog-" + card.ID
	var b strings.Builder
	b.WriteString(`<article class="recipe-card">`)
	b.WriteString(`<h2 class="recipe-title">` + esc(card.Title) + `</h2>`)
	b.WriteString(`<p class="recipe-author">` + esc(T(page.Loc, "recipes.card.by", card.DisplayAuthor(page.Loc))) + `</p>`)

	b.WriteString(`<ul class="ingredient-badges">`)
	for _, ingredient := range card.VisibleIngredients() {
		b.WriteString(`<li class="badge">` + esc(ingredient) + `</li>`)
	}
	if overflow := card.OverflowIngredientCount(); overflow > 0 {
		b.WriteString(`<li class="badge badge-overflow">` + esc(T(page.Loc, "recipes.card.more_ingredients", overflow)) + `</li>`)
	}
	b.WriteString("</ul>")

	b.WriteString(`<dl class="recipe-meta">`)
	if strings.TrimSpace(card.CookTime) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.cook_time")) + `</dt><dd>` + esc(card.CookTime) + `</dd></div>`)
	}
	if strings.TrimSpace(card.Servings) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.servings")) + `</dt><dd>` + esc(card.Servings) + `</dd></div>`)
	}
	if strings.TrimSpace(card.Difficulty) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.difficulty")) + `</dt><dd>` + esc(card.Difficulty) + `</dd></div>`)
	}
	b.WriteString("</dl>")

	b.WriteString(`<div class="recipe-actions">`)
	b.WriteString(`<button type="button" class="button button-ghost" data-dialog-target="` + esc(dialogID) + `">` + esc(T(page.Loc, "recipes.card.view")) + `</button>`)
	b.WriteString(saveButtonMarkup(page, card))
	b.WriteString("</div>")

	b.WriteString(recipeDialogMarkup(page, card, dialogID))
	b.WriteString("</article>")
	return b.String()
}

// SaveButton renders the save toggle for one recipe card. Save and unsave
// handlers return it as the HTMX swap target.
func SaveButton(page PageContext, card RecipeCard) templ.Component {
	return component(saveButtonMarkup(page, card))
}

func saveButtonMarkup(page PageContext, card RecipeCard) string {
	var b strings.Builder
	if card.Saved {
		b.WriteString(`<button type="button" class="button button-saved" hx-post="` + esc(routepath.UnsaveAction(card.ID)) + `" hx-target="this" hx-swap="outerHTML">`)
		b.WriteString(esc(T(page.Loc, "recipes.card.saved")))
	} else {
		b.WriteString(`<button type="button" class="button button-save" hx-post="` + esc(routepath.SaveAction(card.ID)) + `" hx-target="this" hx-swap="outerHTML">`)
		b.WriteString(esc(T(page.Loc, "recipes.card.save")))
	}
	b.WriteString("</button>")
	return b.String()
}

func recipeDialogMarkup(page PageContext, card RecipeCard, dialogID string) string {
	var b strings.Builder
	b.WriteString(`<dialog id="` + esc(dialogID) + `" class="recipe-dialog">`)
	b.WriteString(`<h2>` + esc(card.Title) + `</h2>`)
	b.WriteString(`<p class="recipe-author">` + esc(T(page.Loc, "recipes.card.by", card.DisplayAuthor(page.Loc))) + `</p>`)

	b.WriteString(`<dl class="recipe-meta">`)
	if strings.TrimSpace(card.CookTime) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.cook_time")) + `</dt><dd>` + esc(card.CookTime) + `</dd></div>`)
	}
	if strings.TrimSpace(card.Servings) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.servings")) + `</dt><dd>` + esc(card.Servings) + `</dd></div>`)
	}
	if strings.TrimSpace(card.Difficulty) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.difficulty")) + `</dt><dd>` + esc(card.Difficulty) + `</dd></div>`)
	}
	if strings.TrimSpace(card.Cuisine) != "" {
		b.WriteString(`<div><dt>` + esc(T(page.Loc, "recipes.dialog.cuisine")) + `</dt><dd>` + esc(card.Cuisine) + `</dd></div>`)
	}
	b.WriteString("</dl>")

	b.WriteString(`<h3>` + esc(T(page.Loc, "recipes.dialog.ingredients")) + `</h3>`)
	b.WriteString(`<ul class="dialog-ingredients">`)
	for _, ingredient := range card.Ingredients {
		b.WriteString(`<li>` + esc(ingredient) + `</li>`)
	}
	b.WriteString("</ul>")

	b.WriteString(`<h3>` + esc(T(page.Loc, "recipes.dialog.instructions")) + `</h3>`)
	b.WriteString(`<ol class="dialog-instructions">`)
	for _, step := range card.Instructions {
		b.WriteString(`<li>` + esc(step) + `</li>`)
	}
	b.WriteString("</ol>")

	b.WriteString(`<form method="dialog"><button class="button button-ghost">` + esc(T(page.Loc, "recipes.dialog.close")) + `</button></form>`)
	b.WriteString("</dialog>")
	return b.String()
}
