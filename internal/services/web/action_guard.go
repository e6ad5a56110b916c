package web

import "sync"

// actionGuard serializes save/unsave actions per (user, recipe) pair so a
// double-clicked button resolves as one storage write instead of two races.
type actionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// newActionGuard creates an empty guard.
func newActionGuard() *actionGuard {
	return &actionGuard{inFlight: make(map[string]struct{})}
}

// begin marks the pair busy. It reports false when an action for the same
// pair is already running, in which case the caller must not call end.
func (g *actionGuard) begin(userID, recipeID string) bool {
	key := userID + "\x00" + recipeID
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

// end releases the pair.
func (g *actionGuard) end(userID, recipeID string) {
	key := userID + "\x00" + recipeID
	g.mu.Lock()
	delete(g.inFlight, key)
	g.mu.Unlock()
}
