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

// bankDetailsHandler handles HTTP requests related to bank master data.
type bankDetailsHandler struct {
	bankDetailsService portssvc.BankDetailsSvcFacade
}

func newBankDetailsHandler(bankDetailsService portssvc.BankDetailsSvcFacade) *bankDetailsHandler {
	return &bankDetailsHandler{bankDetailsService: bankDetailsService}
}

// registerBankDetailsRoutes registers routes related to bank master data.
func registerBankDetailsRoutes(rg *gin.RouterGroup, bankDetailsService portssvc.BankDetailsSvcFacade) {
	h := newBankDetailsHandler(bankDetailsService)

	banks := rg.Group("/bank-details")
	{
		banks.POST("", h.createBankDetails)
		banks.GET("/:bankDetailsID", h.getBankDetails)
		banks.GET("", h.listBankDetails)
		banks.DELETE("/:bankDetailsID", h.deactivateBankDetails)
	}
}

func (h *bankDetailsHandler) createBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankDetails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("bank_name", req.BankName))
	logger.Info("Received request to create bank details")

	details, err := h.bankDetailsService.CreateBankDetails(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Bank details already exist", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create bank details in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bank details"})
		}
		return
	}

	logger.Info("Bank details created successfully", slog.String("bank_details_id", details.BankDetailsID))
	c.JSON(http.StatusCreated, dto.ToBankDetailsResponse(details))
}

func (h *bankDetailsHandler) getBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	bankDetailsID := c.Param("bankDetailsID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("bank_details_id", bankDetailsID))
	logger.Info("Received request to get bank details")

	details, err := h.bankDetailsService.GetBankDetailsByID(c.Request.Context(), companyID, bankDetailsID)
	if err != nil {
		if errors.Is(err, services.ErrBankDetailsNotFound) {
			logger.Warn("Bank details not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank details not found"})
		} else {
			logger.Error("Failed to get bank details from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bank details"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBankDetailsResponse(details))
}

func (h *bankDetailsHandler) listBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	onlyActive := c.DefaultQuery("onlyActive", "false") == "true"

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to list bank details", slog.Bool("only_active", onlyActive))

	resp, err := h.bankDetailsService.ListBankDetails(c.Request.Context(), companyID, onlyActive)
	if err != nil {
		logger.Error("Failed to list bank details from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bank details"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *bankDetailsHandler) deactivateBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	bankDetailsID := c.Param("bankDetailsID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("bank_details_id", bankDetailsID))
	logger.Info("Received request to deactivate bank details")

	if err := h.bankDetailsService.DeactivateBankDetails(c.Request.Context(), companyID, bankDetailsID, userID); err != nil {
		if errors.Is(err, services.ErrBankDetailsNotFound) {
			logger.Warn("Bank details not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank details not found"})
		} else {
			logger.Error("Failed to deactivate bank details in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate bank details"})
		}
		return
	}

	logger.Info("Bank details deactivated successfully")
	c.Status(http.StatusNoContent)
}
