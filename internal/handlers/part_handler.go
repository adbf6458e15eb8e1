package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PartHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPartHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *PartHandler {
	return &PartHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePartRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"min=0"`
}

type UpdatePartRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unitPrice"`
	Active      *bool    `json:"active"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *PartHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")

	if v := c.Query("active"); v == "true" {
		q = q.Where("active = ?", true)
	}
	if v := c.Query("search"); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like)
	}

	var parts []models.Part
	q.Find(&parts)

	httpresp.OK(c, "Peças listadas.", parts)
}

// ======================================================
// GET
// ======================================================

func (h *PartHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var part models.Part
	if err := h.db.First(&part, id).Error; err != nil {
		httperr.NotFound(c, "part_not_found", "Peça não encontrada.")
		return
	}

	httpresp.OK(c, "Peça encontrada.", part)
}

// ======================================================
// CREATE
// ======================================================

func (h *PartHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sku := strings.ToUpper(strings.TrimSpace(req.SKU))

	var count int64
	h.db.Model(&models.Part{}).Where("sku = ?", sku).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "sku_in_use", "Já existe uma peça com este SKU.")
		return
	}

	part := models.Part{
		SKU:         sku,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Stock:       req.Stock,
		Active:      true,
	}

	if err := h.db.Create(&part).Error; err != nil {
		httperr.Internal(c, "failed_to_create_part", "Erro ao cadastrar a peça.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "part_created",
		Entity:   "part",
		EntityID: &part.ID,
	})

	httpresp.Created(c, "Peça cadastrada.", part)
}

// ======================================================
// UPDATE
// ======================================================

func (h *PartHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var part models.Part
	if err := h.db.First(&part, id).Error; err != nil {
		httperr.NotFound(c, "part_not_found", "Peça não encontrada.")
		return
	}

	var req UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.Description != nil {
		part.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice <= 0 {
			httperr.BadRequest(c, "invalid_price", "O preço deve ser maior que zero.")
			return
		}
		part.UnitPrice = *req.UnitPrice
	}
	if req.Active != nil {
		part.Active = *req.Active
	}

	if err := h.db.Save(&part).Error; err != nil {
		httperr.Internal(c, "failed_to_update_part", "Erro ao atualizar a peça.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "part_updated",
		Entity:   "part",
		EntityID: &part.ID,
	})

	httpresp.OK(c, "Peça atualizada.", part)
}

// ======================================================
// ADJUST STOCK (entrada/saída manual)
// ======================================================

func (h *PartHandler) AdjustStock(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var part models.Part

	// Lock para o saldo nunca ficar negativo sob concorrência.
	txErr := h.db.Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&part, id).Error; err != nil {
			return httperr.ErrBusiness("part_not_found")
		}

		if part.Stock+req.Delta < 0 {
			return httperr.ErrBusiness("insufficient_stock")
		}

		part.Stock += req.Delta
		return tx.Model(&part).Update("stock", part.Stock).Error
	})
	if txErr != nil {
		writeBusinessError(c, txErr)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "part_stock_adjusted",
		Entity:   "part",
		EntityID: &part.ID,
		Metadata: map[string]int{"delta": req.Delta, "stock": part.Stock},
	})

	httpresp.OK(c, "Estoque ajustado.", part)
}
