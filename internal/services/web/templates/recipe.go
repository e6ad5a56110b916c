package templates

import "strings"

// ingredientBadgeLimit caps how many ingredient badges a card shows before
// collapsing the remainder into an overflow badge.
const ingredientBadgeLimit = 3

// RecipeCard is the view model for one recipe on the community grid.
type RecipeCard struct {
	ID           string
	Title        string
	AuthorName   string
	Ingredients  []string
	Instructions []string
	CookTime     string
	Servings     string
	Difficulty   string
	Cuisine      string
	Saved        bool
}

// DisplayAuthor returns the author name or the localized anonymous fallback.
func (c RecipeCard) DisplayAuthor(loc Localizer) string {
	if name := strings.TrimSpace(c.AuthorName); name != "" {
		return name
	}
	return T(loc, "recipes.card.anonymous_chef")
}

// VisibleIngredients returns the ingredients shown as badges on the card.
func (c RecipeCard) VisibleIngredients() []string {
	if len(c.Ingredients) <= ingredientBadgeLimit {
		return c.Ingredients
	}
	return c.Ingredients[:ingredientBadgeLimit]
}

// OverflowIngredientCount returns how many ingredients the card hides.
func (c RecipeCard) OverflowIngredientCount() int {
	if len(c.Ingredients) <= ingredientBadgeLimit {
		return 0
	}
	return len(c.Ingredients) - ingredientBadgeLimit
}
