package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/http/response"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
	"github.com/SocioProphet/zenflows/internal/services"
)

type SpecificationHandler struct {
	log         *logger.Logger
	specService services.SpecificationService
}

func NewSpecificationHandler(baseLog *logger.Logger, specService services.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{
		log:         baseLog.With("handler", "SpecificationHandler"),
		specService: specService,
	}
}

func (sh *SpecificationHandler) Create(c *gin.Context) {
	var req struct {
		Name                    string     `json:"name"`
		Note                    string     `json:"note"`
		ClassifiedAs            []string   `json:"classified_as"`
		DefaultUnitOfResourceID *uuid.UUID `json:"default_unit_of_resource_id"`
		DefaultUnitOfEffortID   *uuid.UUID `json:"default_unit_of_effort_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	spec, err := sh.specService.Create(c.Request.Context(), services.SpecificationInput{
		Name:                    req.Name,
		Note:                    req.Note,
		ClassifiedAs:            req.ClassifiedAs,
		DefaultUnitOfResourceID: req.DefaultUnitOfResourceID,
		DefaultUnitOfEffortID:   req.DefaultUnitOfEffortID,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"resource_specification": spec})
}

func (sh *SpecificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	spec, err := sh.specService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"resource_specification": spec})
}

func (sh *SpecificationHandler) List(c *gin.Context) {
	p, err := parsePageParams(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	specs, next, err := sh.specService.List(c.Request.Context(), p)
	if err != nil {
		sh.log.Error("List failed", "error", err)
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"resource_specifications": specs,
		"next_cursor":             next,
	})
}
