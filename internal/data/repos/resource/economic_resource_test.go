package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/data/repos/testutil"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
)

func TestEconomicResourceRepoOne(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewEconomicResourceRepo(gdb, testutil.Logger(t))

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	seeded := testutil.SeedResource(t, ctx, tx, spec.ID, "crate of apples")

	got, err := repo.One(ctx, tx, seeded.ID)
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if got.ID != seeded.ID || got.Name != "crate of apples" {
		t.Fatalf("One returned wrong row: %+v", got)
	}

	if _, err := repo.One(ctx, tx, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("One absent id: want ErrNotFound, got %v", err)
	}
}

func TestEconomicResourceRepoOneBy(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewEconomicResourceRepo(gdb, testutil.Logger(t))

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	testutil.SeedResource(t, ctx, tx, spec.ID, "first")
	testutil.SeedResource(t, ctx, tx, spec.ID, "second")

	got, err := repo.OneBy(ctx, tx, map[string]any{"name": "first"})
	if err != nil {
		t.Fatalf("OneBy: %v", err)
	}
	if got.Name != "first" {
		t.Fatalf("OneBy returned wrong row: %+v", got)
	}

	if _, err := repo.OneBy(ctx, tx, map[string]any{"name": "missing"}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("OneBy absent: want ErrNotFound, got %v", err)
	}

	// Two rows share the spec, so an equality clause on it violates the
	// at-most-one contract.
	if _, err := repo.OneBy(ctx, tx, map[string]any{"conforms_to_id": spec.ID}); err == nil {
		t.Fatalf("OneBy with two matches: want error, got nil")
	} else if errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("OneBy with two matches: got ErrNotFound, want storage error")
	}
}

func TestEconomicResourceRepoAllFilters(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewEconomicResourceRepo(gdb, testutil.Logger(t))

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	otherSpec := testutil.SeedResourceSpecification(t, ctx, tx, "pear")
	custodian := testutil.SeedAgent(t, ctx, tx, "custodian@example.com")

	tagged := testutil.SeedResource(t, ctx, tx, spec.ID, "a", "vf:fruit", "vf:fresh")
	tagged.CustodianID = &custodian.ID
	if err := tx.WithContext(ctx).Save(tagged).Error; err != nil {
		t.Fatalf("assign custodian: %v", err)
	}
	testutil.SeedResource(t, ctx, tx, spec.ID, "b", "vf:fruit")
	testutil.SeedResource(t, ctx, tx, otherSpec.ID, "c", "vf:other")

	// Tag containment: superset semantics.
	rows, _, err := repo.All(ctx, tx, ResourceQuery{Filter: &ResourceFilter{ClassifiedAs: []string{"vf:fruit"}}})
	if err != nil {
		t.Fatalf("All classified_as: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("All classified_as [vf:fruit]: want 2, got %d", len(rows))
	}
	rows, _, err = repo.All(ctx, tx, ResourceQuery{Filter: &ResourceFilter{ClassifiedAs: []string{"vf:fruit", "vf:fresh"}}})
	if err != nil {
		t.Fatalf("All classified_as pair: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "a" {
		t.Fatalf("All classified_as [fruit,fresh]: want only 'a', got %d rows", len(rows))
	}

	// Conforms-to membership.
	rows, _, err = repo.All(ctx, tx, ResourceQuery{Filter: &ResourceFilter{ConformsTo: []uuid.UUID{otherSpec.ID}}})
	if err != nil {
		t.Fatalf("All conforms_to: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "c" {
		t.Fatalf("All conforms_to: want only 'c', got %d rows", len(rows))
	}

	// Two filters compose by AND: intersection of their result sets.
	rows, _, err = repo.All(ctx, tx, ResourceQuery{Filter: &ResourceFilter{
		ClassifiedAs: []string{"vf:fruit"},
		Custodian:    []uuid.UUID{custodian.ID},
	}})
	if err != nil {
		t.Fatalf("All combined: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != tagged.ID {
		t.Fatalf("All combined filters: want only tagged row, got %d rows", len(rows))
	}
}

func TestEconomicResourceRepoAllPagination(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewEconomicResourceRepo(gdb, testutil.Logger(t))

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	tag := "vf:page-test"
	want := map[uuid.UUID]bool{}
	for i := 0; i < 5; i++ {
		r := testutil.SeedResource(t, ctx, tx, spec.ID, "r", tag)
		want[r.ID] = true
	}

	filter := &ResourceFilter{ClassifiedAs: []string{tag}}

	// Full scan.
	full, next, err := repo.All(ctx, tx, ResourceQuery{Filter: filter})
	if err != nil {
		t.Fatalf("All full scan: %v", err)
	}
	if len(full) != 5 || next != "" {
		t.Fatalf("full scan: want 5 rows and no cursor, got %d rows cursor=%q", len(full), next)
	}

	// Concatenated pages must equal the full scan set.
	got := map[uuid.UUID]bool{}
	cursor := ""
	pages := 0
	for {
		rows, nc, err := repo.All(ctx, tx, ResourceQuery{
			Filter: filter,
			Page:   page.Params{Cursor: cursor, Limit: 2},
		})
		if err != nil {
			t.Fatalf("All page %d: %v", pages, err)
		}
		for _, r := range rows {
			if got[r.ID] {
				t.Fatalf("row %s appeared on two pages", r.ID)
			}
			got[r.ID] = true
		}
		pages++
		if nc == "" {
			break
		}
		cursor = nc
	}
	if pages != 3 {
		t.Fatalf("want 3 pages of limit 2, got %d", pages)
	}
	if len(got) != len(want) {
		t.Fatalf("pages yielded %d rows, full scan %d", len(got), len(want))
	}
	for id := range want {
		if !got[id] {
			t.Fatalf("row %s missing from paged scan", id)
		}
	}
}

func TestEconomicResourceRepoDelete(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewEconomicResourceRepo(gdb, testutil.Logger(t))

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	seeded := testutil.SeedResource(t, ctx, tx, spec.ID, "doomed")

	if err := repo.Delete(ctx, tx, seeded); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.One(ctx, tx, seeded.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("One after Delete: want ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, tx, seeded); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("double Delete: want ErrNotFound, got %v", err)
	}
}

func TestEconomicResourceRepoPreload(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewEconomicResourceRepo(gdb, testutil.Logger(t))

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	custodian := testutil.SeedAgent(t, ctx, tx, "preload@example.com")
	unit := testutil.SeedUnit(t, ctx, tx, "kilogram", "kg")

	res := testutil.SeedResource(t, ctx, tx, spec.ID, "crate")
	res.CustodianID = &custodian.ID
	res.AccountingQuantityUnitID = &unit.ID
	res.State = "pass"
	if err := tx.WithContext(ctx).Save(res).Error; err != nil {
		t.Fatalf("update seeded resource: %v", err)
	}

	loaded, err := repo.One(ctx, tx, res.ID)
	if err != nil {
		t.Fatalf("One: %v", err)
	}

	if err := repo.Preload(ctx, tx, loaded, RelCustodian); err != nil {
		t.Fatalf("Preload custodian: %v", err)
	}
	if loaded.Custodian == nil || loaded.Custodian.ID != custodian.ID {
		t.Fatalf("custodian not attached: %+v", loaded.Custodian)
	}
	first := loaded.Custodian
	if err := repo.Preload(ctx, tx, loaded, RelCustodian); err != nil {
		t.Fatalf("Preload custodian again: %v", err)
	}
	if loaded.Custodian != first {
		t.Fatalf("second preload refetched custodian")
	}

	if err := repo.Preload(ctx, tx, loaded, RelConformsTo); err != nil {
		t.Fatalf("Preload conforms_to: %v", err)
	}
	if loaded.ConformsTo == nil || loaded.ConformsTo.ID != spec.ID {
		t.Fatalf("conforms_to not attached")
	}

	if err := repo.Preload(ctx, tx, loaded, RelAccountingQuantityUnit); err != nil {
		t.Fatalf("Preload accounting unit: %v", err)
	}
	if loaded.AccountingQuantityUnit == nil || loaded.AccountingQuantityUnit.Symbol != "kg" {
		t.Fatalf("accounting unit not attached")
	}

	// State resolves from the static action table.
	if err := repo.Preload(ctx, tx, loaded, RelState); err != nil {
		t.Fatalf("Preload state: %v", err)
	}
	if loaded.StateAction == nil || loaded.StateAction.ID != "pass" {
		t.Fatalf("state action not attached: %+v", loaded.StateAction)
	}

	// Nil FKs attach nothing and do not error.
	if err := repo.Preload(ctx, tx, loaded, RelLot); err != nil {
		t.Fatalf("Preload nil lot: %v", err)
	}
	if loaded.Lot != nil {
		t.Fatalf("lot attached despite nil FK")
	}

	// Images preload is idempotent even when empty.
	if err := repo.Preload(ctx, tx, loaded, RelImages); err != nil {
		t.Fatalf("Preload images: %v", err)
	}
	if loaded.Images == nil || len(loaded.Images) != 0 {
		t.Fatalf("images: want attached empty slice, got %v", loaded.Images)
	}
}
