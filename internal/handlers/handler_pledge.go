package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

// pledgeHandler handles HTTP requests related to pledges.
type pledgeHandler struct {
	pledgeService portssvc.PledgeSvcFacade
}

func newPledgeHandler(pledgeService portssvc.PledgeSvcFacade) *pledgeHandler {
	return &pledgeHandler{pledgeService: pledgeService}
}

// registerPledgeRoutes registers routes related to pledges.
func registerPledgeRoutes(rg *gin.RouterGroup, pledgeService portssvc.PledgeSvcFacade) {
	h := newPledgeHandler(pledgeService)

	pledges := rg.Group("/pledges")
	{
		pledges.POST("", h.createPledge)
		pledges.GET("/:pledgeID", h.getPledge)
		pledges.GET("", h.listPledges)
		pledges.GET("/:pledgeID/outstanding", h.getOutstanding)
		pledges.POST("/:pledgeID/close", h.closePledge)
		pledges.DELETE("/:pledgeID", h.deletePledge)
	}
}

func (h *pledgeHandler) createPledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreatePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePledge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("customer_id", req.CustomerID))
	logger.Info("Received request to create pledge", slog.String("scheme_id", req.SchemeID))

	pledge, err := h.pledgeService.CreatePledge(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSchemeNotFound) || errors.Is(err, services.ErrCustomerNotFound):
			logger.Warn("Dependency not found creating pledge", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSchemeInactive):
			logger.Warn("Scheme inactive", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating pledge", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate pledge number", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create pledge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pledge"})
		}
		return
	}

	logger.Info("Pledge created successfully", slog.String("pledge_id", pledge.PledgeID), slog.String("pledge_no", pledge.PledgeNo))
	c.JSON(http.StatusCreated, dto.ToPledgeResponse(pledge, nil))
}

func (h *pledgeHandler) getPledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	pledgeID := c.Param("pledgeID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("pledge_id", pledgeID))
	logger.Info("Received request to get pledge")

	pledge, items, err := h.pledgeService.GetPledgeByID(c.Request.Context(), companyID, pledgeID)
	if err != nil {
		if errors.Is(err, services.ErrPledgeNotFound) {
			logger.Warn("Pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
		} else {
			logger.Error("Failed to get pledge from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pledge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPledgeResponse(pledge, items))
}

func (h *pledgeHandler) listPledges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var params dto.ListPledgesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPledges", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to list pledges", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	resp, err := h.pledgeService.ListPledges(c.Request.Context(), companyID, params)
	if err != nil {
		logger.Error("Failed to list pledges from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pledges"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *pledgeHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	pledgeID := c.Param("pledgeID")

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("pledge_id", pledgeID))
	logger.Info("Received request to get pledge outstanding", slog.Time("as_of", asOf))

	summary, err := h.pledgeService.GetOutstanding(c.Request.Context(), companyID, pledgeID, asOf)
	if err != nil {
		if errors.Is(err, services.ErrPledgeNotFound) {
			logger.Warn("Pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
		} else {
			logger.Error("Failed to compute outstanding", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute outstanding"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *pledgeHandler) closePledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	pledgeID := c.Param("pledgeID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("pledge_id", pledgeID))
	logger.Info("Received request to close pledge")

	pledge, err := h.pledgeService.ClosePledge(c.Request.Context(), companyID, pledgeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPledgeNotFound):
			logger.Warn("Pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
		case errors.Is(err, services.ErrPledgeNotSettled):
			logger.Warn("Pledge has an outstanding balance", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidStatusTransition):
			logger.Warn("Invalid status transition closing pledge", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close pledge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close pledge"})
		}
		return
	}

	logger.Info("Pledge closed successfully")
	c.JSON(http.StatusOK, dto.ToPledgeResponse(pledge, nil))
}

func (h *pledgeHandler) deletePledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	pledgeID := c.Param("pledgeID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("pledge_id", pledgeID))
	logger.Info("Received request to delete pledge")

	if err := h.pledgeService.DeletePledge(c.Request.Context(), companyID, pledgeID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrPledgeNotFound):
			logger.Warn("Pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Pledge cannot be deleted", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete pledge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pledge"})
		}
		return
	}

	logger.Info("Pledge deleted successfully")
	c.Status(http.StatusNoContent)
}
