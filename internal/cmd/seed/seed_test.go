package seed

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/louisbranch/communal.kitchen/internal/services/web/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DatabasePath != "communal-kitchen.db" {
		t.Fatalf("DatabasePath = %q, want %q", cfg.DatabasePath, "communal-kitchen.db")
	}
}

func TestApplySeedsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(t.TempDir() + "/seed.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	ctx := context.Background()

	var out bytes.Buffer
	if err := Apply(ctx, store, &out); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !strings.Contains(out.String(), "seeded 3 recipes") {
		t.Fatalf("out = %q", out.String())
	}

	recipes, err := store.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	if len(recipes) != 3 {
		t.Fatalf("len(recipes) = %d, want 3", len(recipes))
	}

	var sawAuthor, sawAnonymous bool
	for _, recipe := range recipes {
		if recipe.AuthorName == "Marta Reis" {
			sawAuthor = true
		}
		if recipe.AuthorName == "" {
			sawAnonymous = true
			if recipe.AuthorID == "" {
				t.Fatalf("unnamed author recipe %q has empty AuthorID", recipe.Title)
			}
		}
	}
	if !sawAuthor || !sawAnonymous {
		t.Fatalf("expected both named and unnamed authors, got %+v", recipes)
	}

	out.Reset()
	if err := Apply(ctx, store, &out); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if !strings.Contains(out.String(), "seeded 0 recipes") {
		t.Fatalf("second run out = %q", out.String())
	}
}
