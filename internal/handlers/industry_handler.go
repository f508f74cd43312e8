package handler

import (
	"net/http"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"
	audit "biztime-backend/internal/services/audit"

	"github.com/gin-gonic/gin"
)

type IndustryHandler struct {
	repo  *repository.IndustryRepository
	audit *audit.Service
}

func NewIndustryHandler(repo *repository.IndustryRepository, audit *audit.Service) *IndustryHandler {
	return &IndustryHandler{repo: repo, audit: audit}
}

func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.repo.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"industries": industries})
}

// Create inserts the code and display name as given, no derivation.
func (h *IndustryHandler) Create(c *gin.Context) {
	var payload struct {
		Code     string `json:"code"`
		Industry string `json:"industry"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(httperr.BadRequest("invalid payload"))
		return
	}

	industry := &models.Industry{Code: payload.Code, Industry: payload.Industry}
	if err := h.repo.Create(industry); err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("industry", industry.Code, "create", industry)
	c.JSON(http.StatusCreated, gin.H{"industry": industry})
}

func (h *IndustryHandler) Associate(c *gin.Context) {
	compCode := c.Param("comp_code")
	indCode := c.Param("ind_code")

	assoc, err := h.repo.Associate(compCode, indCode)
	if err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("association", compCode+"/"+indCode, "create", assoc)
	c.JSON(http.StatusCreated, gin.H{"association": assoc})
}
