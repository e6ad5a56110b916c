// Package sqlite provides a SQLite-backed web storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/communal.kitchen/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists web service state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListRecipes returns all recipes with their author display names, newest first.
func (s *Store) ListRecipes(ctx context.Context) ([]storage.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT r.id, r.title, r.ingredients_json, r.instructions_json,
		        r.cook_time, r.servings, r.difficulty, r.cuisine,
		        r.author_id, COALESCE(p.display_name, ''), r.created_at
		 FROM recipes r
		 LEFT JOIN profiles p ON p.user_id = r.author_id
		 ORDER BY r.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	recipes := make([]storage.Recipe, 0)
	for rows.Next() {
		var recipe storage.Recipe
		var ingredientsJSON string
		var instructionsJSON string
		var createdAt int64
		if err := rows.Scan(
			&recipe.ID,
			&recipe.Title,
			&ingredientsJSON,
			&instructionsJSON,
			&recipe.CookTime,
			&recipe.Servings,
			&recipe.Difficulty,
			&recipe.Cuisine,
			&recipe.AuthorID,
			&recipe.AuthorName,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		if err := json.Unmarshal([]byte(ingredientsJSON), &recipe.Ingredients); err != nil {
			return nil, fmt.Errorf("decode recipe %s ingredients: %w", recipe.ID, err)
		}
		if err := json.Unmarshal([]byte(instructionsJSON), &recipe.Instructions); err != nil {
			return nil, fmt.Errorf("decode recipe %s instructions: %w", recipe.ID, err)
		}
		recipe.CreatedAt = fromMillis(createdAt)
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

// CreateRecipe inserts one recipe record.
func (s *Store) CreateRecipe(ctx context.Context, recipe storage.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	recipe.ID = strings.TrimSpace(recipe.ID)
	if recipe.ID == "" {
		return fmt.Errorf("recipe id is required")
	}
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.Title == "" {
		return fmt.Errorf("recipe title is required")
	}
	if len(recipe.Ingredients) == 0 {
		return fmt.Errorf("recipe ingredients are required")
	}
	if len(recipe.Instructions) == 0 {
		return fmt.Errorf("recipe instructions are required")
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	ingredientsJSON, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("encode recipe ingredients: %w", err)
	}
	instructionsJSON, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return fmt.Errorf("encode recipe instructions: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO recipes (
		   id, title, ingredients_json, instructions_json,
		   cook_time, servings, difficulty, cuisine, author_id, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID,
		recipe.Title,
		string(ingredientsJSON),
		string(instructionsJSON),
		strings.TrimSpace(recipe.CookTime),
		strings.TrimSpace(recipe.Servings),
		strings.TrimSpace(recipe.Difficulty),
		strings.TrimSpace(recipe.Cuisine),
		strings.TrimSpace(recipe.AuthorID),
		toMillis(recipe.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// ListSavedRecipeIDs returns the recipe ids one user has saved.
func (s *Store) ListSavedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT recipe_id FROM saved_recipes WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved recipe ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	recipeIDs := make([]string, 0)
	for rows.Next() {
		var recipeID string
		if err := rows.Scan(&recipeID); err != nil {
			return nil, fmt.Errorf("scan saved recipe id: %w", err)
		}
		recipeIDs = append(recipeIDs, recipeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved recipe ids: %w", err)
	}
	return recipeIDs, nil
}

// SaveRecipe inserts one saved mark keyed by (recipe_id, user_id).
func (s *Store) SaveRecipe(ctx context.Context, recipeID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return fmt.Errorf("recipe id is required")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO saved_recipes (recipe_id, user_id, created_at) VALUES (?, ?, ?)`,
		recipeID,
		userID,
		toMillis(time.Now().UTC()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("save recipe: %w", err)
	}
	return nil
}

// UnsaveRecipe deletes one saved mark. Deleting an absent mark is a no-op.
func (s *Store) UnsaveRecipe(ctx context.Context, recipeID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return fmt.Errorf("recipe id is required")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM saved_recipes WHERE recipe_id = ? AND user_id = ?`,
		recipeID,
		userID,
	); err != nil {
		return fmt.Errorf("unsave recipe: %w", err)
	}
	return nil
}

// PutProfile upserts one profile record.
func (s *Store) PutProfile(ctx context.Context, profile storage.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	profile.UserID = strings.TrimSpace(profile.UserID)
	if profile.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO profiles (user_id, display_name, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   display_name = excluded.display_name,
		   email = excluded.email,
		   updated_at = excluded.updated_at`,
		profile.UserID,
		strings.TrimSpace(profile.DisplayName),
		strings.TrimSpace(profile.Email),
		toMillis(profile.CreatedAt),
		toMillis(profile.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

var _ storage.Store = (*Store)(nil)
