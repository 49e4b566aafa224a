package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

// schemeHandler handles HTTP requests related to loan schemes.
type schemeHandler struct {
	schemeService portssvc.SchemeSvcFacade
}

func newSchemeHandler(schemeService portssvc.SchemeSvcFacade) *schemeHandler {
	return &schemeHandler{schemeService: schemeService}
}

// registerSchemeRoutes registers routes related to schemes.
func registerSchemeRoutes(rg *gin.RouterGroup, schemeService portssvc.SchemeSvcFacade) {
	h := newSchemeHandler(schemeService)

	schemes := rg.Group("/schemes")
	{
		schemes.POST("", h.createScheme)
		schemes.GET("/:schemeID", h.getScheme)
		schemes.GET("", h.listSchemes)
		schemes.DELETE("/:schemeID", h.deactivateScheme)
	}
}

func (h *schemeHandler) createScheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateScheme", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("prefix", req.Prefix))
	logger.Info("Received request to create scheme", slog.String("scheme_name", req.SchemeName))

	scheme, err := h.schemeService.CreateScheme(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating scheme", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Scheme prefix already exists", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create scheme in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create scheme"})
		}
		return
	}

	logger.Info("Scheme created successfully", slog.String("scheme_id", scheme.SchemeID))
	c.JSON(http.StatusCreated, dto.ToSchemeResponse(scheme))
}

func (h *schemeHandler) getScheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	schemeID := c.Param("schemeID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("scheme_id", schemeID))
	logger.Info("Received request to get scheme")

	scheme, err := h.schemeService.GetSchemeByID(c.Request.Context(), companyID, schemeID)
	if err != nil {
		if errors.Is(err, services.ErrSchemeNotFound) {
			logger.Warn("Scheme not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Scheme not found"})
		} else {
			logger.Error("Failed to get scheme from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scheme"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSchemeResponse(scheme))
}

func (h *schemeHandler) listSchemes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	onlyActive := c.DefaultQuery("onlyActive", "false") == "true"

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to list schemes", slog.Bool("only_active", onlyActive))

	resp, err := h.schemeService.ListSchemes(c.Request.Context(), companyID, onlyActive)
	if err != nil {
		logger.Error("Failed to list schemes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schemes"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *schemeHandler) deactivateScheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	schemeID := c.Param("schemeID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("scheme_id", schemeID))
	logger.Info("Received request to deactivate scheme")

	if err := h.schemeService.DeactivateScheme(c.Request.Context(), companyID, schemeID, userID); err != nil {
		if errors.Is(err, services.ErrSchemeNotFound) {
			logger.Warn("Scheme not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Scheme not found"})
		} else {
			logger.Error("Failed to deactivate scheme in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate scheme"})
		}
		return
	}

	logger.Info("Scheme deactivated successfully")
	c.Status(http.StatusNoContent)
}
