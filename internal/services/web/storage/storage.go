package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
var ErrAlreadyExists = errors.New("record already exists")

// Recipe is one community-submitted recipe joined with its author profile.
type Recipe struct {
	ID           string
	Title        string
	Ingredients  []string
	Instructions []string
	CookTime     string
	Servings     string
	Difficulty   string
	Cuisine      string
	AuthorID     string
	// AuthorName is the joined author display name. Empty when the author
	// profile is missing or has no display name.
	AuthorName string
	CreatedAt  time.Time
}

// Profile is one user identity record, refreshed at sign-in.
type Profile struct {
	UserID      string
	DisplayName string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeStore reads and writes recipe records.
type RecipeStore interface {
	// ListRecipes returns all recipes with their author display names,
	// ordered by creation time descending.
	ListRecipes(ctx context.Context) ([]Recipe, error)
	// CreateRecipe inserts one recipe. Returns ErrAlreadyExists when the
	// recipe id is taken.
	CreateRecipe(ctx context.Context, recipe Recipe) error
}

// SavedRecipeStore persists per-user saved marks.
type SavedRecipeStore interface {
	// ListSavedRecipeIDs returns the recipe ids the user has saved.
	ListSavedRecipeIDs(ctx context.Context, userID string) ([]string, error)
	// SaveRecipe inserts one (recipe, user) saved mark. Returns
	// ErrAlreadyExists when the mark is already present.
	SaveRecipe(ctx context.Context, recipeID, userID string) error
	// UnsaveRecipe deletes one (recipe, user) saved mark. Deleting an
	// absent mark is not an error.
	UnsaveRecipe(ctx context.Context, recipeID, userID string) error
}

// ProfileStore persists user profiles.
type ProfileStore interface {
	// PutProfile upserts one profile record.
	PutProfile(ctx context.Context, profile Profile) error
}

// Store aggregates every persistence contract the web service consumes.
type Store interface {
	RecipeStore
	SavedRecipeStore
	ProfileStore
}
