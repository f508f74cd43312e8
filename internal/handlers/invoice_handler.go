package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/repository"
	audit "biztime-backend/internal/services/audit"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	repo  *repository.InvoiceRepository
	audit *audit.Service
}

func NewInvoiceHandler(repo *repository.InvoiceRepository, audit *audit.Service) *InvoiceHandler {
	return &InvoiceHandler{repo: repo, audit: audit}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.repo.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(httperr.BadRequest("invalid invoice ID"))
		return
	}

	invoice, err := h.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(httperr.NotFound("Invoice with id %d not found", id))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CompCode string  `json:"comp_code"`
		Amt      float64 `json:"amt"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(httperr.BadRequest("invalid payload"))
		return
	}

	invoice, err := h.repo.Create(payload.CompCode, payload.Amt)
	if err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("invoice", strconv.FormatInt(invoice.ID, 10), "create", invoice)
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// Update replaces amt and paid. paid=true stamps paid_date with the current
// time on every update; paid=false always clears it, even when the invoice
// carried a historical paid_date.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(httperr.BadRequest("invalid invoice ID"))
		return
	}

	var payload struct {
		Amt  float64 `json:"amt"`
		Paid bool    `json:"paid"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(httperr.BadRequest("invalid payload"))
		return
	}

	var paidDate *time.Time
	if payload.Paid {
		now := time.Now()
		paidDate = &now
	}

	invoice, err := h.repo.Update(id, payload.Amt, payload.Paid, paidDate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(httperr.NotFound("Invoice with id %d not found", id))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("invoice", strconv.FormatInt(id, 10), "update", invoice)
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(httperr.BadRequest("invalid invoice ID"))
		return
	}

	err = h.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(httperr.NotFound("Invoice with id %d not found", id))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	h.audit.Record("invoice", strconv.FormatInt(id, 10), "delete", nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
