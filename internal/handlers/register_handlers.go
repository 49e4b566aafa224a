package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/middleware"
	"github.com/pawnsoft/pawnledger/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// All business data is scoped to one pawn shop company
	company := v1.Group("/companies/:companyID")

	registerAccountRoutes(company, services.COA)
	registerLedgerRoutes(company, services.Posting)
	registerCustomerRoutes(company, services.Customer)
	registerSchemeRoutes(company, services.Scheme)
	registerBankDetailsRoutes(company, services.BankDetails)
	registerPledgeRoutes(company, services.Pledge)
	registerReceiptRoutes(company, services.Receipt)
	registerBankPledgeRoutes(company, services.BankPledge)
	registerExpenseRoutes(company, services.Expense)
	registerReportingRoutes(company, services.Reporting)
}
