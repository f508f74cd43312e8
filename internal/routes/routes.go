package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "biztime-backend/internal/handlers"
	"biztime-backend/internal/httperr"
	"biztime-backend/internal/repository"
	audit "biztime-backend/internal/services/audit"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	companyRepo := repository.NewCompanyRepository(db)
	industryRepo := repository.NewIndustryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	auditService := audit.NewService(db, logger)

	companyHandler := handler.NewCompanyHandler(companyRepo, auditService)
	industryHandler := handler.NewIndustryHandler(industryRepo, auditService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo, auditService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	companies := r.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.GET("/:code", companyHandler.Get)
	companies.POST("", companyHandler.Create)
	companies.PUT("/:code", companyHandler.Update)
	companies.DELETE("/:code", companyHandler.Delete)

	industries := r.Group("/industries")
	industries.GET("", industryHandler.List)
	industries.POST("", industryHandler.Create)
	industries.POST("/:comp_code/:ind_code", industryHandler.Associate)

	invoices := r.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	r.GET("/audit-logs", auditHandler.List)

	r.NoRoute(httperr.NoRoute())
}
