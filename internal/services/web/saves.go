package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/flash"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/httpx"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage"
	webtemplates "github.com/louisbranch/communal.kitchen/internal/services/web/templates"
)

// handleRecipeAction routes POST /app/recipes/{id}/save and
// POST /app/recipes/{id}/unsave.
func (h *handler) handleRecipeAction(w http.ResponseWriter, r *http.Request) {
	recipeID, action, ok := splitRecipeAction(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFromRequest(r, h.sessions)
	if sess == nil {
		httpx.WriteRedirect(w, r, routepath.Landing)
		return
	}
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	// Coalesce double clicks: while one action for this (user, recipe) pair
	// is still running, later ones complete without side effects.
	if !h.actions.begin(sess.userID, recipeID) {
		if httpx.IsHTMXRequest(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, routepath.Recipes, http.StatusFound)
		return
	}
	defer h.actions.end(sess.userID, recipeID)

	switch action {
	case "save":
		h.saveRecipe(w, r, sess, recipeID)
	case "unsave":
		h.unsaveRecipe(w, r, sess, recipeID)
	default:
		http.NotFound(w, r)
	}
}

func (h *handler) saveRecipe(w http.ResponseWriter, r *http.Request, sess *session, recipeID string) {
	err := h.store.SaveRecipe(httpx.RequestContext(r), recipeID, sess.userID)
	switch {
	case err == nil:
		h.finishAction(w, r, recipeID, true, flash.NoticeSuccess("web.recipes.notice_saved"))
	case errors.Is(err, storage.ErrAlreadyExists):
		h.finishAction(w, r, recipeID, true, flash.NoticeInfo("web.recipes.notice_already_saved"))
	default:
		log.Printf("save recipe %s for %s: %v", recipeID, sess.userID, err)
		h.finishAction(w, r, recipeID, false, flash.NoticeError("web.recipes.notice_save_failed"))
	}
}

func (h *handler) unsaveRecipe(w http.ResponseWriter, r *http.Request, sess *session, recipeID string) {
	err := h.store.UnsaveRecipe(httpx.RequestContext(r), recipeID, sess.userID)
	switch {
	case err == nil:
		h.finishAction(w, r, recipeID, false, flash.NoticeSuccess("web.recipes.notice_removed"))
	default:
		log.Printf("unsave recipe %s for %s: %v", recipeID, sess.userID, err)
		h.finishAction(w, r, recipeID, true, flash.NoticeError("web.recipes.notice_remove_failed"))
	}
}

// finishAction responds to a save toggle: HTMX callers get the refreshed
// button plus an out-of-band toast, form posts get a flash and a redirect.
func (h *handler) finishAction(w http.ResponseWriter, r *http.Request, recipeID string, saved bool, notice flash.Notice) {
	if !httpx.IsHTMXRequest(r) {
		flash.WriteWithPolicy(w, r, notice, h.policy)
		http.Redirect(w, r, routepath.Recipes, http.StatusFound)
		return
	}

	printer, lang := localizer(w, r)
	page := webtemplates.PageContext{Lang: lang, Loc: printer, AppName: h.appName}
	toast := &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: webtemplates.T(printer, notice.Key),
	}
	h.writeFragment(w, r, http.StatusOK,
		webtemplates.SaveButton(page, webtemplates.RecipeCard{ID: recipeID, Saved: saved}),
		webtemplates.ToastFragment(toast),
	)
}

// splitRecipeAction extracts the recipe id and action verb from an action path.
func splitRecipeAction(path string) (string, string, bool) {
	rest, found := strings.CutPrefix(path, routepath.RecipesPrefix)
	if !found || rest == "" {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	recipeID := strings.TrimSpace(parts[0])
	action := strings.TrimSpace(parts[1])
	if recipeID == "" || action == "" {
		return "", "", false
	}
	return recipeID, action, true
}
