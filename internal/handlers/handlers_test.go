package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"
	audit "biztime-backend/internal/services/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Foreign keys on: several endpoints rely on the store rejecting
	// dangling references rather than checking them in the handler.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Company{},
		&models.Industry{},
		&models.CompanyIndustry{},
		&models.Invoice{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestRouter wires the handlers the same way internal/routes does.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	logger := zap.NewNop()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httperr.Responder(logger))

	auditService := audit.NewService(db, logger)
	companyHandler := NewCompanyHandler(repository.NewCompanyRepository(db), auditService)
	industryHandler := NewIndustryHandler(repository.NewIndustryRepository(db), auditService)
	invoiceHandler := NewInvoiceHandler(repository.NewInvoiceRepository(db), auditService)
	auditHandler := NewAuditHandler(auditService)

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

	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func seedCompany(t *testing.T, db *gorm.DB) models.Company {
	t.Helper()
	company := models.Company{Code: "test", Name: "Test Company", Description: "A test company"}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return company
}

func seedInvoice(t *testing.T, db *gorm.DB, compCode string, amt float64) models.Invoice {
	t.Helper()
	invoice := models.Invoice{CompCode: compCode, Amt: amt, Paid: false}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return invoice
}

func seedIndustry(t *testing.T, db *gorm.DB, code, name string) models.Industry {
	t.Helper()
	industry := models.Industry{Code: code, Industry: name}
	if err := db.Create(&industry).Error; err != nil {
		t.Fatalf("seed industry: %v", err)
	}
	return industry
}
