package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

// ledgerHandler exposes read access to posted ledger entries.
type ledgerHandler struct {
	postingService portssvc.PostingSvc
}

func newLedgerHandler(postingService portssvc.PostingSvc) *ledgerHandler {
	return &ledgerHandler{postingService: postingService}
}

// registerLedgerRoutes registers routes related to ledger entries.
func registerLedgerRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvc) {
	h := newLedgerHandler(postingService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/entries", h.getEntriesByReference)
	}
}

func (h *ledgerHandler) getEntriesByReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	refType := c.Query("referenceType")
	refID := c.Query("referenceID")

	if refType == "" || refID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenceType and referenceID query parameters are required"})
		return
	}

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("reference_type", refType),
		slog.String("reference_id", refID),
	)
	logger.Info("Received request to get ledger entries by reference")

	entries, err := h.postingService.GetEntriesByReference(c.Request.Context(), companyID, domain.ReferenceType(refType), refID)
	if err != nil {
		logger.Error("Failed to get ledger entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerEntriesResponse{Entries: dto.ToLedgerEntryResponses(entries)})
}
