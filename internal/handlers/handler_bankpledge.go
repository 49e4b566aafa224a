package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

// bankPledgeHandler handles HTTP requests related to bank pledge transfers.
type bankPledgeHandler struct {
	bankPledgeService portssvc.BankPledgeSvcFacade
}

func newBankPledgeHandler(bankPledgeService portssvc.BankPledgeSvcFacade) *bankPledgeHandler {
	return &bankPledgeHandler{bankPledgeService: bankPledgeService}
}

// registerBankPledgeRoutes registers routes related to bank pledges.
func registerBankPledgeRoutes(rg *gin.RouterGroup, bankPledgeService portssvc.BankPledgeSvcFacade) {
	h := newBankPledgeHandler(bankPledgeService)

	bankPledges := rg.Group("/bank-pledges")
	{
		bankPledges.POST("", h.transferToBank)
		bankPledges.GET("/:bankPledgeID", h.getBankPledge)
		bankPledges.GET("", h.listBankPledges)
		bankPledges.POST("/:bankPledgeID/redeem", h.redeemFromBank)
		bankPledges.POST("/:bankPledgeID/redeem-with-receipt", h.redeemWithReceipt)
		bankPledges.POST("/:bankPledgeID/cancel", h.cancelBankPledge)
	}
}

func (h *bankPledgeHandler) transferToBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateBankTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferToBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("pledge_id", req.PledgeID))
	logger.Info("Received request to transfer pledge to bank", slog.String("bank_name", req.BankName))

	bankPledge, err := h.bankPledgeService.TransferToBank(c.Request.Context(), companyID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPledgeNotFound):
			logger.Warn("Pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
		case errors.Is(err, services.ErrPledgeNotActive):
			logger.Warn("Pledge is not active", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidLTV):
			logger.Warn("LTV percent out of range", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to transfer pledge to bank", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transfer pledge to bank"})
		}
		return
	}

	logger.Info("Pledge transferred to bank", slog.String("bank_pledge_id", bankPledge.BankPledgeID))
	c.JSON(http.StatusCreated, dto.ToBankPledgeResponse(bankPledge))
}

func (h *bankPledgeHandler) getBankPledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	bankPledgeID := c.Param("bankPledgeID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("bank_pledge_id", bankPledgeID))
	logger.Info("Received request to get bank pledge")

	bankPledge, items, redemptions, err := h.bankPledgeService.GetBankPledgeByID(c.Request.Context(), companyID, bankPledgeID)
	if err != nil {
		if errors.Is(err, services.ErrBankPledgeNotFound) {
			logger.Warn("Bank pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank pledge not found"})
		} else {
			logger.Error("Failed to get bank pledge from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bank pledge"})
		}
		return
	}

	resp := gin.H{"bankPledge": dto.ToBankPledgeResponse(bankPledge)}
	itemResponses := make([]gin.H, 0, len(items))
	for i := range items {
		itemResponses = append(itemResponses, gin.H{
			"itemName":  items[i].ItemName,
			"quantity":  items[i].Quantity,
			"netWeight": items[i].NetWeight,
			"purity":    items[i].Purity,
		})
	}
	resp["items"] = itemResponses
	redemptionResponses := make([]dto.BankRedemptionResponse, 0, len(redemptions))
	for i := range redemptions {
		redemptionResponses = append(redemptionResponses, dto.ToBankRedemptionResponse(&redemptions[i]))
	}
	resp["redemptions"] = redemptionResponses

	c.JSON(http.StatusOK, resp)
}

func (h *bankPledgeHandler) listBankPledges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var params dto.ListBankPledgesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBankPledges", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to list bank pledges", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	resp, err := h.bankPledgeService.ListBankPledges(c.Request.Context(), companyID, params)
	if err != nil {
		logger.Error("Failed to list bank pledges from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bank pledges"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *bankPledgeHandler) redeemFromBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	bankPledgeID := c.Param("bankPledgeID")

	var req dto.RedeemBankPledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RedeemFromBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("bank_pledge_id", bankPledgeID))
	logger.Info("Received request to redeem bank pledge")

	redemption, err := h.bankPledgeService.RedeemFromBank(c.Request.Context(), companyID, bankPledgeID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBankPledgeNotFound):
			logger.Warn("Bank pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank pledge not found"})
		case errors.Is(err, services.ErrBankPledgeNotWithBank):
			logger.Warn("Bank pledge not with bank", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to redeem bank pledge", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem bank pledge"})
		}
		return
	}

	logger.Info("Bank pledge redeemed", slog.String("redemption_id", redemption.RedemptionID))
	c.JSON(http.StatusCreated, dto.ToBankRedemptionResponse(redemption))
}

func (h *bankPledgeHandler) redeemWithReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	bankPledgeID := c.Param("bankPledgeID")

	var req dto.RedeemWithReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RedeemWithReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("bank_pledge_id", bankPledgeID),
		slog.String("receipt_id", req.ReceiptID),
	)
	logger.Info("Received request to redeem bank pledge with receipt")

	redemption, err := h.bankPledgeService.RedeemWithReceipt(c.Request.Context(), companyID, bankPledgeID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBankPledgeNotFound):
			logger.Warn("Bank pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank pledge not found"})
		case errors.Is(err, services.ErrReceiptNotFound):
			logger.Warn("Funding receipt not found", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrReceiptNotPosted):
			logger.Warn("Funding receipt not posted", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrBankPledgeNotWithBank):
			logger.Warn("Bank pledge not with bank", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInsufficientRedemption):
			logger.Warn("Redemption funds below bank loan", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to redeem bank pledge with receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem bank pledge"})
		}
		return
	}

	logger.Info("Bank pledge redeemed with receipt", slog.String("redemption_id", redemption.RedemptionID))
	c.JSON(http.StatusCreated, dto.ToBankRedemptionResponse(redemption))
}

func (h *bankPledgeHandler) cancelBankPledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	bankPledgeID := c.Param("bankPledgeID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("bank_pledge_id", bankPledgeID))
	logger.Info("Received request to cancel bank pledge")

	if err := h.bankPledgeService.CancelBankPledge(c.Request.Context(), companyID, bankPledgeID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrBankPledgeNotFound):
			logger.Warn("Bank pledge not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank pledge not found"})
		case errors.Is(err, services.ErrBankPledgeNotWithBank):
			logger.Warn("Bank pledge not with bank", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to cancel bank pledge", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel bank pledge"})
		}
		return
	}

	logger.Info("Bank pledge cancelled")
	c.Status(http.StatusNoContent)
}
