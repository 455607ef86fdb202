package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/http/response"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
	"github.com/SocioProphet/zenflows/internal/services"
)

type InstanceHandler struct {
	log             *logger.Logger
	instanceService services.InstanceService
}

func NewInstanceHandler(baseLog *logger.Logger, instanceService services.InstanceService) *InstanceHandler {
	return &InstanceHandler{
		log:             baseLog.With("handler", "InstanceHandler"),
		instanceService: instanceService,
	}
}

func (ih *InstanceHandler) Get(c *gin.Context) {
	specs, err := ih.instanceService.Get(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"instance_specs": specs})
}

func (ih *InstanceHandler) Init(c *gin.Context) {
	var req struct {
		UnitOneID            uuid.UUID `json:"unit_one_id"`
		UnitCurrencyID       uuid.UUID `json:"unit_currency_id"`
		SpecCurrencyID       uuid.UUID `json:"spec_currency_id"`
		SpecProjectDesignID  uuid.UUID `json:"spec_project_design_id"`
		SpecProjectServiceID uuid.UUID `json:"spec_project_service_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	specs, err := ih.instanceService.Init(c.Request.Context(), services.InstanceInit{
		UnitOneID:            req.UnitOneID,
		UnitCurrencyID:       req.UnitCurrencyID,
		SpecCurrencyID:       req.SpecCurrencyID,
		SpecProjectDesignID:  req.SpecProjectDesignID,
		SpecProjectServiceID: req.SpecProjectServiceID,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"instance_specs": specs})
}
