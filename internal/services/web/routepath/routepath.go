// Package routepath centralizes route constants for the web service.
package routepath

const (
	// Landing is the public landing route and the unauthenticated redirect target.
	Landing = "/"
	// Recipes is the authenticated community recipes page.
	Recipes = "/app/recipes"
	// RecipesGrid is the HTMX fragment carrying the recipe grid.
	RecipesGrid = "/app/recipes/grid"
	// RecipesPrefix prefixes per-recipe actions (save/unsave).
	RecipesPrefix = "/app/recipes/"
	// RecipeCreate is the recipe-generation flow, served by a sibling service.
	RecipeCreate = "/app/recipes/new"
	// AuthCallback receives the signed sign-in handoff token.
	AuthCallback = "/auth/callback"
	// AuthLogout clears the current session.
	AuthLogout = "/auth/logout"
	// Healthz is the liveness probe.
	Healthz = "/healthz"
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"
)

// SaveAction returns the save action path for one recipe.
func SaveAction(recipeID string) string {
	return RecipesPrefix + recipeID + "/save"
}

// UnsaveAction returns the unsave action path for one recipe.
func UnsaveAction(recipeID string) string {
	return RecipesPrefix + recipeID + "/unsave"
}
