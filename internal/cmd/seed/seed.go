// Package seed populates a development database with sample community data.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	platformcmd "github.com/louisbranch/communal.kitchen/internal/platform/cmd"
	"github.com/louisbranch/communal.kitchen/internal/platform/id"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage/sqlite"
)

const defaultDatabasePath = "communal-kitchen.db"

// Config holds the seed command configuration.
type Config struct {
	DatabasePath string `env:"COMMUNAL_KITCHEN_WEB_DB_PATH"`
}

// ParseConfig resolves configuration from env defaults and flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{DatabasePath: defaultDatabasePath}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the database with sample profiles and recipes.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()
	return Apply(ctx, store, out)
}

// Apply writes the sample fixtures through the storage contract. Re-running
// against an already seeded database is a no-op for existing records.
func Apply(ctx context.Context, store storage.Store, out io.Writer) error {
	if store == nil {
		return errors.New("storage is required")
	}
	if out == nil {
		out = io.Discard
	}

	for _, profile := range sampleProfiles() {
		if err := store.PutProfile(ctx, profile); err != nil {
			return fmt.Errorf("seed profile %s: %w", profile.UserID, err)
		}
	}

	ghostAuthorID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("generate author id: %w", err)
	}

	created := 0
	for _, recipe := range sampleRecipes(ghostAuthorID) {
		err := store.CreateRecipe(ctx, recipe)
		if errors.Is(err, storage.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed recipe %q: %w", recipe.Title, err)
		}
		created++
	}
	fmt.Fprintf(out, "seeded %d recipes\n", created)
	return nil
}

func sampleProfiles() []storage.Profile {
	return []storage.Profile{
		{UserID: "seed-user-marta", DisplayName: "Marta Reis", Email: "marta@example.com"},
		{UserID: "seed-user-joao", DisplayName: "João Batista", Email: "joao@example.com"},
	}
}

// sampleRecipes returns the fixture recipes. ghostAuthorID is a fresh id with
// no matching profile so the grid exercises the anonymous author fallback.
func sampleRecipes(ghostAuthorID string) []storage.Recipe {
	now := time.Now()
	return []storage.Recipe{
		{
			ID:    "seed-recipe-feijoada",
			Title: "Feijoada Completa",
			Ingredients: []string{
				"Black beans", "Pork shoulder", "Smoked sausage", "Bay leaves", "Garlic", "Orange",
			},
			Instructions: []string{
				"Soak the beans overnight.",
				"Brown the pork and sausage.",
				"Simmer everything with bay leaves and garlic until the beans are creamy.",
				"Serve with rice and orange slices.",
			},
			CookTime:   "3 h",
			Servings:   "8",
			Difficulty: "Medium",
			Cuisine:    "Brazilian",
			AuthorID:   "seed-user-marta",
			CreatedAt:  now.Add(-48 * time.Hour),
		},
		{
			ID:    "seed-recipe-pao-de-queijo",
			Title: "Pão de Queijo",
			Ingredients: []string{
				"Tapioca flour", "Milk", "Eggs", "Minas cheese", "Oil", "Salt",
			},
			Instructions: []string{
				"Scald the tapioca flour with hot milk and oil.",
				"Mix in eggs and cheese until smooth.",
				"Roll into balls and bake until puffed.",
			},
			CookTime:   "45 min",
			Servings:   "20",
			Difficulty: "Easy",
			Cuisine:    "Brazilian",
			AuthorID:   "seed-user-joao",
			CreatedAt:  now.Add(-24 * time.Hour),
		},
		{
			ID:    "seed-recipe-mystery-stew",
			Title: "Midnight Pantry Stew",
			Ingredients: []string{
				"Chickpeas", "Canned tomatoes", "Onion", "Cumin",
			},
			Instructions: []string{
				"Sweat the onion.",
				"Add everything else and simmer for twenty minutes.",
			},
			CookTime:   "30 min",
			Servings:   "4",
			Difficulty: "Easy",
			AuthorID:   ghostAuthorID,
			CreatedAt:  now.Add(-2 * time.Hour),
		},
	}
}
