package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/data/repos/testutil"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
)

func TestRecipeExchangeRepoCreateOne(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewRecipeExchangeRepo(gdb, testutil.Logger(t))

	rec := &types.RecipeExchange{
		ID:   uuid.New(),
		Name: "grain for flour",
		Note: "mill settlement",
	}
	if err := repo.Create(ctx, tx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.One(ctx, tx, rec.ID)
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if got.Name != "grain for flour" || got.Note != "mill settlement" {
		t.Errorf("got %q/%q", got.Name, got.Note)
	}

	if _, err := repo.One(ctx, tx, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("One(absent): expected ErrNotFound, got %v", err)
	}
}

func TestRecipeExchangeRepoAllPagination(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewRecipeExchangeRepo(gdb, testutil.Logger(t))

	seeded := map[uuid.UUID]bool{}
	for i := 0; i < 5; i++ {
		rec := testutil.SeedRecipeExchange(t, ctx, tx, "exchange")
		seeded[rec.ID] = true
	}

	// Full scan sees every seeded row.
	full, next, err := repo.All(ctx, tx, page.Params{Limit: page.MaxLimit})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if next != "" {
		t.Fatalf("expected no next cursor, got %q", next)
	}
	fullSet := map[uuid.UUID]bool{}
	for _, r := range full {
		fullSet[r.ID] = true
	}
	for id := range seeded {
		if !fullSet[id] {
			t.Fatalf("seeded row %s missing from full scan", id)
		}
	}

	// Concatenated pages reproduce the full scan exactly, in order.
	var walked []uuid.UUID
	cursor := ""
	for {
		rows, nextCursor, err := repo.All(ctx, tx, page.Params{Cursor: cursor, Limit: 2})
		if err != nil {
			t.Fatalf("All(page): %v", err)
		}
		for _, r := range rows {
			walked = append(walked, r.ID)
		}
		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}
	if len(walked) != len(full) {
		t.Fatalf("walked %d rows, full scan has %d", len(walked), len(full))
	}
	for i, r := range full {
		if walked[i] != r.ID {
			t.Fatalf("page walk order diverges at %d", i)
		}
	}
}

func TestRecipeExchangeRepoSave(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewRecipeExchangeRepo(gdb, testutil.Logger(t))

	rec := testutil.SeedRecipeExchange(t, ctx, tx, "before")
	rec.Name = "after"
	if err := repo.Save(ctx, tx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.One(ctx, tx, rec.ID)
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if got.Name != "after" {
		t.Errorf("name: got %q, want %q", got.Name, "after")
	}
}

func TestRecipeExchangeRepoDelete(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewRecipeExchangeRepo(gdb, testutil.Logger(t))

	rec := testutil.SeedRecipeExchange(t, ctx, tx, "doomed")
	if err := repo.Delete(ctx, tx, rec); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.One(ctx, tx, rec.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("One after delete: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, tx, rec); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}
