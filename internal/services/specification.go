package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/changeset"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

// SpecificationInput carries the fields of a new resource specification.
// Name is required; the default-unit references are optional.
type SpecificationInput struct {
	Name                    string
	Note                    string
	ClassifiedAs            []string
	DefaultUnitOfResourceID *uuid.UUID
	DefaultUnitOfEffortID   *uuid.UUID
}

type SpecificationService interface {
	Create(ctx context.Context, in SpecificationInput) (*types.ResourceSpecification, error)
	Get(ctx context.Context, id uuid.UUID) (*types.ResourceSpecification, error)
	List(ctx context.Context, p page.Params) ([]*types.ResourceSpecification, string, error)
}

type specificationService struct {
	db    *gorm.DB
	log   *logger.Logger
	specs repos.ResourceSpecificationRepo
}

func NewSpecificationService(db *gorm.DB, baseLog *logger.Logger, specs repos.ResourceSpecificationRepo) SpecificationService {
	serviceLog := baseLog.With("service", "SpecificationService")
	return &specificationService{db: db, log: serviceLog, specs: specs}
}

func (s *specificationService) Create(ctx context.Context, in SpecificationInput) (*types.ResourceSpecification, error) {
	if err := changeset.New().NonEmpty("name", in.Name).Err(); err != nil {
		return nil, err
	}
	tags := in.ClassifiedAs
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	spec := &types.ResourceSpecification{
		ID:                      uuid.New(),
		Name:                    in.Name,
		Note:                    in.Note,
		ClassifiedAs:            datatypes.JSON(raw),
		DefaultUnitOfResourceID: in.DefaultUnitOfResourceID,
		DefaultUnitOfEffortID:   in.DefaultUnitOfEffortID,
	}
	if err := s.specs.Create(ctx, nil, spec); err != nil {
		s.log.Error("Create failed", "error", err)
		return nil, err
	}
	return spec, nil
}

func (s *specificationService) Get(ctx context.Context, id uuid.UUID) (*types.ResourceSpecification, error) {
	return s.specs.One(ctx, nil, id)
}

func (s *specificationService) List(ctx context.Context, p page.Params) ([]*types.ResourceSpecification, string, error) {
	return s.specs.All(ctx, nil, p)
}
