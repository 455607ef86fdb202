package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	"github.com/SocioProphet/zenflows/internal/http/response"
	"github.com/SocioProphet/zenflows/internal/pkg/ctxutil"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
	"github.com/SocioProphet/zenflows/internal/services"
)

type ResourceHandler struct {
	log             *logger.Logger
	resourceService services.ResourceService
}

func NewResourceHandler(baseLog *logger.Logger, resourceService services.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		log:             baseLog.With("handler", "ResourceHandler"),
		resourceService: resourceService,
	}
}

type resourceRequest struct {
	Name                    string     `json:"name"`
	Note                    string     `json:"note"`
	TrackingIdentifier      string     `json:"tracking_identifier"`
	ClassifiedAs            []string   `json:"classified_as"`
	ConformsToID            uuid.UUID  `json:"conforms_to_id"`
	PrimaryAccountableID    *uuid.UUID `json:"primary_accountable_id"`
	CustodianID             *uuid.UUID `json:"custodian_id"`
	StageID                 *uuid.UUID `json:"stage_id"`
	State                   string     `json:"state"`
	CurrentLocationID       *uuid.UUID `json:"current_location_id"`
	LotID                   *uuid.UUID `json:"lot_id"`
	ContainedInID           *uuid.UUID `json:"contained_in_id"`
	UnitOfEffortID          *uuid.UUID `json:"unit_of_effort_id"`
	AccountingQuantityValue float64    `json:"accounting_quantity_value"`
	AccountingQuantityUnit  *uuid.UUID `json:"accounting_quantity_unit_id"`
	OnhandQuantityValue     float64    `json:"onhand_quantity_value"`
	OnhandQuantityUnit      *uuid.UUID `json:"onhand_quantity_unit_id"`
}

func (rh *ResourceHandler) Create(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.PrimaryAccountableID == nil {
		req.PrimaryAccountableID = actingAgentID(c.Request.Context())
	}
	res, err := rh.resourceService.Create(c.Request.Context(), services.ResourceInput{
		Name:                    req.Name,
		Note:                    req.Note,
		TrackingIdentifier:      req.TrackingIdentifier,
		ClassifiedAs:            req.ClassifiedAs,
		ConformsToID:            req.ConformsToID,
		PrimaryAccountableID:    req.PrimaryAccountableID,
		CustodianID:             req.CustodianID,
		StageID:                 req.StageID,
		State:                   req.State,
		CurrentLocationID:       req.CurrentLocationID,
		LotID:                   req.LotID,
		ContainedInID:           req.ContainedInID,
		UnitOfEffortID:          req.UnitOfEffortID,
		AccountingQuantityValue: req.AccountingQuantityValue,
		AccountingQuantityUnit:  req.AccountingQuantityUnit,
		OnhandQuantityValue:     req.OnhandQuantityValue,
		OnhandQuantityUnit:      req.OnhandQuantityUnit,
	})
	if err != nil {
		rh.log.Error("Create failed", "error", err)
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"resource": res})
}

func (rh *ResourceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rels := parseInclude(c.Query("include"))
	var res any
	if len(rels) > 0 {
		res, err = rh.resourceService.GetDetailed(c.Request.Context(), id, rels)
	} else {
		res, err = rh.resourceService.Get(c.Request.Context(), id)
	}
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"resource": res})
}

func (rh *ResourceHandler) List(c *gin.Context) {
	q, err := parseResourceQuery(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	resources, next, err := rh.resourceService.List(c.Request.Context(), q)
	if err != nil {
		rh.log.Error("List failed", "error", err)
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"resources":   resources,
		"next_cursor": next,
	})
}

func (rh *ResourceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Name                    *string    `json:"name"`
		Note                    *string    `json:"note"`
		TrackingIdentifier      *string    `json:"tracking_identifier"`
		ClassifiedAs            []string   `json:"classified_as"`
		PrimaryAccountableID    *uuid.UUID `json:"primary_accountable_id"`
		CustodianID             *uuid.UUID `json:"custodian_id"`
		StageID                 *uuid.UUID `json:"stage_id"`
		State                   *string    `json:"state"`
		CurrentLocationID       *uuid.UUID `json:"current_location_id"`
		LotID                   *uuid.UUID `json:"lot_id"`
		ContainedInID           *uuid.UUID `json:"contained_in_id"`
		UnitOfEffortID          *uuid.UUID `json:"unit_of_effort_id"`
		AccountingQuantityValue *float64   `json:"accounting_quantity_value"`
		OnhandQuantityValue     *float64   `json:"onhand_quantity_value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := rh.resourceService.Update(c.Request.Context(), id, services.ResourceChanges{
		Name:                    req.Name,
		Note:                    req.Note,
		TrackingIdentifier:      req.TrackingIdentifier,
		ClassifiedAs:            req.ClassifiedAs,
		PrimaryAccountableID:    req.PrimaryAccountableID,
		CustodianID:             req.CustodianID,
		StageID:                 req.StageID,
		State:                   req.State,
		CurrentLocationID:       req.CurrentLocationID,
		LotID:                   req.LotID,
		ContainedInID:           req.ContainedInID,
		UnitOfEffortID:          req.UnitOfEffortID,
		AccountingQuantityValue: req.AccountingQuantityValue,
		OnhandQuantityValue:     req.OnhandQuantityValue,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"resource": res})
}

func (rh *ResourceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	res, err := rh.resourceService.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"resource": res})
}

// parseResourceQuery reads the recognized filter and paging params. Query
// params outside the recognized set are ignored.
func parseResourceQuery(c *gin.Context) (repos.ResourceQuery, error) {
	var q repos.ResourceQuery

	filter := &repos.ResourceFilter{}
	filter.ClassifiedAs = c.QueryArray("classified_as")
	var err error
	if filter.PrimaryAccountable, err = parseUUIDs(c.QueryArray("primary_accountable")); err != nil {
		return q, err
	}
	if filter.Custodian, err = parseUUIDs(c.QueryArray("custodian")); err != nil {
		return q, err
	}
	if filter.ConformsTo, err = parseUUIDs(c.QueryArray("conforms_to")); err != nil {
		return q, err
	}
	if len(filter.ClassifiedAs) > 0 || len(filter.PrimaryAccountable) > 0 ||
		len(filter.Custodian) > 0 || len(filter.ConformsTo) > 0 {
		q.Filter = filter
	}

	if q.Page, err = parsePageParams(c); err != nil {
		return q, err
	}
	return q, nil
}

// actingAgentID resolves the authenticated agent from the request context,
// nil when the request carries no identity.
func actingAgentID(ctx context.Context) *uuid.UUID {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.AgentID == uuid.Nil {
		return nil
	}
	id := rd.AgentID
	return &id
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// parseInclude maps a comma-separated relation list onto the relation enum,
// skipping names it does not recognize and collapsing repeats.
func parseInclude(raw string) []repos.Relation {
	if raw == "" {
		return nil
	}
	var rels []repos.Relation
	seen := map[repos.Relation]bool{}
	for _, name := range strings.Split(raw, ",") {
		rel, ok := repos.RelationByName(strings.TrimSpace(name))
		if !ok || seen[rel] {
			continue
		}
		seen[rel] = true
		rels = append(rels, rel)
	}
	return rels
}
