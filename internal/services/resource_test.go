package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	"github.com/SocioProphet/zenflows/internal/data/repos/testutil"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
)

func TestResourceServiceUpdate(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	repo := repos.NewEconomicResourceRepo(tx, log)
	svc := NewResourceService(tx, log, repo)

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	res := testutil.SeedResource(t, ctx, tx, spec.ID, "original")

	name := "renamed"
	note := "updated note"
	got, err := svc.Update(ctx, res.ID, ResourceChanges{Name: &name, Note: &note})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "renamed" || got.Note != "updated note" {
		t.Errorf("returned entity not updated: %q/%q", got.Name, got.Note)
	}

	stored, err := repo.One(ctx, tx, res.ID)
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if stored.Name != "renamed" {
		t.Errorf("stored name: got %q", stored.Name)
	}
}

func TestResourceServiceUpdateValidationLeavesRowUntouched(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	repo := repos.NewEconomicResourceRepo(tx, log)
	svc := NewResourceService(tx, log, repo)

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	res := testutil.SeedResource(t, ctx, tx, spec.ID, "original")

	blank := "   "
	negative := -1.0
	_, err := svc.Update(ctx, res.ID, ResourceChanges{
		Name:                    &blank,
		AccountingQuantityValue: &negative,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *errs.ValidationError, got %T: %v", err, err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %v", ve.Fields)
	}

	stored, err := repo.One(ctx, tx, res.ID)
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if stored.Name != "original" || stored.AccountingQuantityValue != 0 {
		t.Errorf("row changed after failed validation: %q/%v", stored.Name, stored.AccountingQuantityValue)
	}
}

func TestResourceServiceUpdateMissing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	repo := repos.NewEconomicResourceRepo(tx, log)
	svc := NewResourceService(tx, log, repo)

	name := "whatever"
	_, err := svc.Update(context.Background(), uuid.New(), ResourceChanges{Name: &name})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResourceServiceDeleteReturnsEntity(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	repo := repos.NewEconomicResourceRepo(tx, log)
	svc := NewResourceService(tx, log, repo)

	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	res := testutil.SeedResource(t, ctx, tx, spec.ID, "doomed")

	got, err := svc.Delete(ctx, res.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got.ID != res.ID || got.Name != "doomed" {
		t.Errorf("returned entity mismatch: %+v", got)
	}

	if _, err := repo.One(ctx, tx, res.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("One after delete: expected ErrNotFound, got %v", err)
	}

	if _, err := svc.Delete(ctx, res.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}

func TestResourceServiceGetDetailedRepeatedRelations(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	repo := repos.NewEconomicResourceRepo(tx, log)
	svc := NewResourceService(tx, log, repo)

	custodian := testutil.SeedAgent(t, ctx, tx, "keeper@example.com")
	spec := testutil.SeedResourceSpecification(t, ctx, tx, "apple")
	res := testutil.SeedResource(t, ctx, tx, spec.ID, "crate")
	res.CustodianID = &custodian.ID
	res.State = "produce"
	if err := tx.WithContext(ctx).Save(res).Error; err != nil {
		t.Fatalf("save resource: %v", err)
	}

	rels := []repos.Relation{
		repos.RelState, repos.RelState,
		repos.RelCustodian, repos.RelCustodian,
	}
	got, err := svc.GetDetailed(ctx, res.ID, rels)
	if err != nil {
		t.Fatalf("GetDetailed: %v", err)
	}
	if got.StateAction == nil || got.StateAction.ID != "produce" {
		t.Errorf("state not attached: %+v", got.StateAction)
	}
	if got.Custodian == nil || got.Custodian.ID != custodian.ID {
		t.Errorf("custodian not attached: %+v", got.Custodian)
	}
}

func TestInstanceServiceInitOnce(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	repo := repos.NewInstanceSpecsRepo(tx, log)
	units := repos.NewUnitRepo(tx, log)
	svc := NewInstanceService(tx, log, repo, units)

	unitOne := testutil.SeedUnit(t, ctx, tx, "one", "u")
	unitCur := testutil.SeedUnit(t, ctx, tx, "euro", "EUR")
	specCur := testutil.SeedResourceSpecification(t, ctx, tx, "currency")
	specDesign := testutil.SeedResourceSpecification(t, ctx, tx, "project design")
	specService := testutil.SeedResourceSpecification(t, ctx, tx, "project service")

	in := InstanceInit{
		UnitOneID:            unitOne.ID,
		UnitCurrencyID:       unitCur.ID,
		SpecCurrencyID:       specCur.ID,
		SpecProjectDesignID:  specDesign.ID,
		SpecProjectServiceID: specService.ID,
	}

	if _, err := svc.Init(ctx, InstanceInit{}); err == nil {
		t.Fatal("Init with blank references: expected validation error")
	}

	dangling := in
	dangling.UnitCurrencyID = uuid.New()
	_, err := svc.Init(ctx, dangling)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Init with unknown unit: expected *errs.ValidationError, got %T: %v", err, err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "unit_currency_id" {
		t.Errorf("expected unit_currency_id error, got %v", ve.Fields)
	}

	specs, err := svc.Init(ctx, in)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if specs.UnitOneID != unitOne.ID {
		t.Errorf("unit_one_id: got %s", specs.UnitOneID)
	}

	if _, err := svc.Init(ctx, in); err == nil {
		t.Fatal("second Init: expected validation error")
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.SpecCurrencyID != specCur.ID {
		t.Errorf("spec_currency_id: got %s", got.SpecCurrencyID)
	}
}
