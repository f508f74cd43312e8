package handler

import (
	"errors"
	"net/http"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"
	audit "biztime-backend/internal/services/audit"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	repo  *repository.CompanyRepository
	audit *audit.Service
}

func NewCompanyHandler(repo *repository.CompanyRepository, audit *audit.Service) *CompanyHandler {
	return &CompanyHandler{repo: repo, audit: audit}
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.repo.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	code := c.Param("code")
	company, err := h.repo.GetByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(httperr.NotFound("Company with code %s not found", code))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Create derives the company code from the name. The code is immutable
// afterwards, and collisions are left to the store to reject.
func (h *CompanyHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(httperr.BadRequest("invalid payload"))
		return
	}

	company := &models.Company{
		Code:        slug.Make(payload.Name),
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := h.repo.Create(company); err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("company", company.Code, "create", company)
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	code := c.Param("code")

	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(httperr.BadRequest("invalid payload"))
		return
	}

	company, err := h.repo.Update(code, payload.Name, payload.Description)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(httperr.NotFound("Company with code %s not found", code))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("company", code, "update", company)
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	code := c.Param("code")

	err := h.repo.Delete(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(httperr.NotFound("Company with code %s not found", code))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("company", code, "delete", nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
