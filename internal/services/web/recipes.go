package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/httpx"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage"
	webtemplates "github.com/louisbranch/communal.kitchen/internal/services/web/templates"
)

// handleRecipes serves the community recipes shell. The grid itself loads as
// a deferred fragment so this handler never touches storage.
func (h *handler) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if sessionFromRequest(r, h.sessions) == nil {
		httpx.WriteRedirect(w, r, routepath.Landing)
		return
	}

	page, toast := h.pageContext(w, r)
	title := webtemplates.T(page.Loc, "title.recipes", h.appName)
	metaDesc := webtemplates.T(page.Loc, "meta.description")
	h.writePage(w, r, http.StatusOK, title, metaDesc, page, toast, webtemplates.RecipesPage(page))
}

// handleRecipesGrid serves the loaded recipe grid fragment. Recipes and the
// viewer's saved marks are fetched concurrently; a saved-marks failure
// degrades to an unsaved grid while a recipe failure renders the error state.
func (h *handler) handleRecipesGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFromRequest(r, h.sessions)
	if sess == nil {
		httpx.WriteRedirect(w, r, routepath.Landing)
		return
	}

	ctx := httpx.RequestContext(r)
	var (
		wg         sync.WaitGroup
		recipes    []storage.Recipe
		recipesErr error
		savedIDs   []string
		savedErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		recipes, recipesErr = h.store.ListRecipes(ctx)
	}()
	go func() {
		defer wg.Done()
		savedIDs, savedErr = h.store.ListSavedRecipeIDs(ctx, sess.userID)
	}()
	wg.Wait()

	page, _ := h.pageContext(w, r)
	if recipesErr != nil {
		log.Printf("list recipes: %v", recipesErr)
		h.writeFragment(w, r, http.StatusOK,
			webtemplates.RecipeGridError(page),
			webtemplates.ToastFragment(&webtemplates.Toast{
				Kind:    "error",
				Message: webtemplates.T(page.Loc, "web.recipes.notice_load_failed"),
			}),
		)
		return
	}
	if savedErr != nil {
		// A missing saved set only loses the saved highlight, not the page.
		log.Printf("list saved recipes for %s: %v", sess.userID, savedErr)
		savedIDs = nil
	}

	h.writeFragment(w, r, http.StatusOK, webtemplates.RecipeGrid(page, recipeCards(recipes, savedIDs)))
}

// recipeCards maps storage records onto grid view models, marking the ones
// the viewer has saved.
func recipeCards(recipes []storage.Recipe, savedIDs []string) []webtemplates.RecipeCard {
	saved := make(map[string]struct{}, len(savedIDs))
	for _, id := range savedIDs {
		saved[id] = struct{}{}
	}
	cards := make([]webtemplates.RecipeCard, 0, len(recipes))
	for _, recipe := range recipes {
		_, isSaved := saved[recipe.ID]
		cards = append(cards, webtemplates.RecipeCard{
			ID:           recipe.ID,
			Title:        recipe.Title,
			AuthorName:   recipe.AuthorName,
			Ingredients:  recipe.Ingredients,
			Instructions: recipe.Instructions,
			CookTime:     recipe.CookTime,
			Servings:     recipe.Servings,
			Difficulty:   recipe.Difficulty,
			Cuisine:      recipe.Cuisine,
			Saved:        isSaved,
		})
	}
	return cards
}
