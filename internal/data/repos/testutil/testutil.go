package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/SocioProphet/zenflows/internal/data/db"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	gdb    *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		var err error
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			dbErr = err
			return
		}

		if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			dbErr = err
			return
		}

		if err := db.AutoMigrateAll(gdb); err != nil {
			dbErr = err
			return
		}
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repo integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return gdb
}

func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func SeedAgent(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Agent {
	tb.Helper()
	a := &types.Agent{
		ID:        uuid.New(),
		Name:      "Test Agent",
		AgentType: types.AgentTypePerson,
		Email:     email,
		Password:  "pw",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed agent: %v", err)
	}
	return a
}

func SeedUnit(tb testing.TB, ctx context.Context, tx *gorm.DB, label, symbol string) *types.Unit {
	tb.Helper()
	u := &types.Unit{
		ID:     uuid.New(),
		Label:  label,
		Symbol: symbol,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed unit: %v", err)
	}
	return u
}

func SeedResourceSpecification(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.ResourceSpecification {
	tb.Helper()
	s := &types.ResourceSpecification{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed resource specification: %v", err)
	}
	return s
}

// SeedResource creates an economic resource conforming to the given spec,
// tagged with the given classification URIs.
func SeedResource(tb testing.TB, ctx context.Context, tx *gorm.DB, specID uuid.UUID, name string, tags ...string) *types.EconomicResource {
	tb.Helper()
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		tb.Fatalf("marshal tags: %v", err)
	}
	r := &types.EconomicResource{
		ID:           uuid.New(),
		Name:         name,
		ConformsToID: specID,
		ClassifiedAs: datatypes.JSON(raw),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed resource: %v", err)
	}
	return r
}

func SeedRecipeExchange(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.RecipeExchange {
	tb.Helper()
	rec := &types.RecipeExchange{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(rec).Error; err != nil {
		tb.Fatalf("seed recipe exchange: %v", err)
	}
	return rec
}
