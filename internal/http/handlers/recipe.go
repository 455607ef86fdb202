package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/http/response"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
	"github.com/SocioProphet/zenflows/internal/services"
)

type RecipeHandler struct {
	log           *logger.Logger
	recipeService services.RecipeService
}

func NewRecipeHandler(baseLog *logger.Logger, recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		log:           baseLog.With("handler", "RecipeHandler"),
		recipeService: recipeService,
	}
}

func (rh *RecipeHandler) CreateExchange(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rec, err := rh.recipeService.CreateExchange(c.Request.Context(), req.Name, req.Note)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"recipe_exchange": rec})
}

func (rh *RecipeHandler) GetExchange(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rec, err := rh.recipeService.GetExchange(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe_exchange": rec})
}

func (rh *RecipeHandler) ListExchanges(c *gin.Context) {
	p, err := parsePageParams(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	recs, next, err := rh.recipeService.ListExchanges(c.Request.Context(), p)
	if err != nil {
		rh.log.Error("ListExchanges failed", "error", err)
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"recipe_exchanges": recs,
		"next_cursor":      next,
	})
}

func (rh *RecipeHandler) UpdateExchange(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Name *string `json:"name"`
		Note *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rec, err := rh.recipeService.UpdateExchange(c.Request.Context(), id, services.RecipeExchangeChanges{
		Name: req.Name,
		Note: req.Note,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe_exchange": rec})
}

func (rh *RecipeHandler) DeleteExchange(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rec, err := rh.recipeService.DeleteExchange(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe_exchange": rec})
}
