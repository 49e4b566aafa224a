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

// receiptHandler handles HTTP requests related to pledge receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(receiptService portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: receiptService}
}

// registerReceiptRoutes registers routes related to receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("/:receiptID", h.getReceipt)
		receipts.GET("", h.listReceipts)
		receipts.POST("/:receiptID/post", h.postReceipt)
		receipts.POST("/:receiptID/void", h.voidReceipt)
	}
}

func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
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
	logger.Info("Received request to create receipt", slog.Int("item_count", len(req.Items)))

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPledgeNotFound):
			logger.Warn("Pledge not found for receipt item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrReceiptAmountMismatch):
			logger.Warn("Receipt amount mismatch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate receipt number", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create receipt"})
		}
		return
	}

	logger.Info("Receipt created successfully", slog.String("receipt_id", receipt.ReceiptID), slog.String("receipt_no", receipt.ReceiptNo))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt, nil))
}

func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	receiptID := c.Param("receiptID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("receipt_id", receiptID))
	logger.Info("Received request to get receipt")

	receipt, items, err := h.receiptService.GetReceiptByID(c.Request.Context(), companyID, receiptID)
	if err != nil {
		if errors.Is(err, services.ErrReceiptNotFound) {
			logger.Warn("Receipt not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to get receipt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt, items))
}

func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListReceipts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to list receipts", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	resp, err := h.receiptService.ListReceipts(c.Request.Context(), companyID, params)
	if err != nil {
		logger.Error("Failed to list receipts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *receiptHandler) postReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	receiptID := c.Param("receiptID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("receipt_id", receiptID))
	logger.Info("Received request to post receipt")

	receipt, err := h.receiptService.PostReceipt(c.Request.Context(), companyID, receiptID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReceiptNotFound):
			logger.Warn("Receipt not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		case errors.Is(err, services.ErrReceiptNotDraft):
			logger.Warn("Receipt not in draft status", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post receipt"})
		}
		return
	}

	logger.Info("Receipt posted successfully", slog.String("receipt_no", receipt.ReceiptNo))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt, nil))
}

func (h *receiptHandler) voidReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	receiptID := c.Param("receiptID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("receipt_id", receiptID))
	logger.Info("Received request to void receipt")

	receipt, err := h.receiptService.VoidReceipt(c.Request.Context(), companyID, receiptID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReceiptNotFound):
			logger.Warn("Receipt not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		case errors.Is(err, services.ErrReceiptNotPosted):
			logger.Warn("Receipt not in posted status", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to void receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to void receipt"})
		}
		return
	}

	logger.Info("Receipt voided successfully", slog.String("receipt_no", receipt.ReceiptNo))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt, nil))
}
