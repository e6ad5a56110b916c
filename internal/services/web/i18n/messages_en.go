package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Landing page
	message.SetString(lang, "title.landing", "%s | Share what you cook")
	message.SetString(lang, "landing.tagline", "A community cookbook where anyone can share recipes and keep a list of favorites.")
	message.SetString(lang, "landing.browse", "Browse recipes")
	message.SetString(lang, "landing.sign_in", "Sign in")
	message.SetString(lang, "meta.description", "A community cookbook where anyone can share recipes and keep a list of favorites.")

	// Navigation
	message.SetString(lang, "nav.share_recipe", "Share Recipe")
	message.SetString(lang, "nav.sign_out", "Sign Out")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Recipes page
	message.SetString(lang, "title.recipes", "%s | Community Recipes")
	message.SetString(lang, "recipes.heading", "Community Recipes")
	message.SetString(lang, "recipes.subtitle", "Discover and save delicious recipes from our community")
	message.SetString(lang, "recipes.loading", "Loading recipes…")
	message.SetString(lang, "recipes.empty.title", "No recipes yet")
	message.SetString(lang, "recipes.empty.message", "Be the first to share a recipe with the community!")
	message.SetString(lang, "recipes.empty.cta", "Share the first recipe")
	message.SetString(lang, "recipes.grid.retry", "Try again")

	// Recipe cards
	message.SetString(lang, "recipes.card.by", "by %s")
	message.SetString(lang, "recipes.card.anonymous_chef", "Anonymous Chef")
	message.SetString(lang, "recipes.card.more_ingredients", "+%d more")
	message.SetString(lang, "recipes.card.view", "View Recipe")
	message.SetString(lang, "recipes.card.save", "Save")
	message.SetString(lang, "recipes.card.saved", "Saved")

	// Recipe dialog
	message.SetString(lang, "recipes.dialog.ingredients", "Ingredients")
	message.SetString(lang, "recipes.dialog.instructions", "Instructions")
	message.SetString(lang, "recipes.dialog.cook_time", "Cook time")
	message.SetString(lang, "recipes.dialog.servings", "Servings")
	message.SetString(lang, "recipes.dialog.difficulty", "Difficulty")
	message.SetString(lang, "recipes.dialog.cuisine", "Cuisine")
	message.SetString(lang, "recipes.dialog.close", "Close")

	// Notices
	message.SetString(lang, "web.recipes.notice_saved", "Recipe saved!")
	message.SetString(lang, "web.recipes.notice_already_saved", "Already saved")
	message.SetString(lang, "web.recipes.notice_save_failed", "Failed to save recipe")
	message.SetString(lang, "web.recipes.notice_removed", "Recipe removed")
	message.SetString(lang, "web.recipes.notice_remove_failed", "Failed to remove recipe")
	message.SetString(lang, "web.recipes.notice_load_failed", "Failed to load recipes")
	message.SetString(lang, "web.auth.notice_signed_in", "Welcome back!")
	message.SetString(lang, "web.auth.notice_signed_out", "Signed out")
	message.SetString(lang, "web.auth.notice_invalid_token", "Sign-in link is invalid or expired")

	// Error page
	message.SetString(lang, "error.title", "Something went wrong")
	message.SetString(lang, "error.message", "We could not complete your request. Please try again in a moment.")
	message.SetString(lang, "error.back", "Back to recipes")
}
