package instance

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/SocioProphet/zenflows/internal/data/repos/testutil"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
)

func seedInstanceSpecs(t *testing.T, ctx context.Context, tx *gorm.DB) *types.InstanceSpecs {
	t.Helper()
	unitOne := testutil.SeedUnit(t, ctx, tx, "one", "u")
	unitCur := testutil.SeedUnit(t, ctx, tx, "euro", "EUR")
	specCur := testutil.SeedResourceSpecification(t, ctx, tx, "currency")
	specDesign := testutil.SeedResourceSpecification(t, ctx, tx, "project design")
	specService := testutil.SeedResourceSpecification(t, ctx, tx, "project service")
	return &types.InstanceSpecs{
		UnitOneID:            unitOne.ID,
		UnitCurrencyID:       unitCur.ID,
		SpecCurrencyID:       specCur.ID,
		SpecProjectDesignID:  specDesign.ID,
		SpecProjectServiceID: specService.ID,
	}
}

func TestInstanceSpecsRepoGetMissing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewInstanceSpecsRepo(gdb, testutil.Logger(t))

	if _, err := repo.Get(ctx, tx); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Get on empty table: expected ErrNotFound, got %v", err)
	}
}

func TestInstanceSpecsRepoCreateGet(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewInstanceSpecsRepo(gdb, testutil.Logger(t))

	specs := seedInstanceSpecs(t, ctx, tx)
	if err := repo.Create(ctx, tx, specs); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if specs.ID != types.InstanceSpecsID {
		t.Fatalf("Create must pin the singleton id, got %d", specs.ID)
	}

	got, err := repo.Get(ctx, tx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UnitOneID != specs.UnitOneID || got.SpecCurrencyID != specs.SpecCurrencyID {
		t.Errorf("got %+v", got)
	}
}

func TestInstanceSpecsRepoCreateTwiceConflicts(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewInstanceSpecsRepo(gdb, testutil.Logger(t))

	first := seedInstanceSpecs(t, ctx, tx)
	if err := repo.Create(ctx, tx, first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := seedInstanceSpecs(t, ctx, tx)
	err := repo.Create(ctx, tx, second)
	if err == nil {
		t.Fatal("second Create: expected conflict error")
	}
	var se *errs.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected *errs.StorageError, got %T: %v", err, err)
	}
	if se.Kind != errs.StorageConflict {
		t.Errorf("kind: got %v, want conflict", se.Kind)
	}
}
