package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

type VehicleHandler struct {
	db *gorm.DB
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{db: db}
}

type VehicleRequest struct {
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	VIN   string `json:"vin"`
}

func (h *VehicleHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var vehicles []models.Vehicle
	h.db.Where("owner_id = ?", userID).Order("id ASC").Find(&vehicles)

	httpresp.OK(c, "Veículos listados.", vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	plate := strings.ToUpper(strings.TrimSpace(req.Plate))

	var count int64
	h.db.Model(&models.Vehicle{}).Where("plate = ?", plate).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "plate_already_exists", "Placa já cadastrada.")
		return
	}

	vehicle := models.Vehicle{
		OwnerID: userID,
		Plate:   plate,
		Brand:   req.Brand,
		Model:   req.Model,
		Year:    req.Year,
		VIN:     req.VIN,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_create_vehicle", "Erro ao cadastrar veículo.")
		return
	}

	httpresp.Created(c, "Veículo cadastrado.", vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.Where("id = ? AND owner_id = ?", id, userID).First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.VIN = req.VIN

	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_update_vehicle", "Erro ao atualizar veículo.")
		return
	}

	httpresp.OK(c, "Veículo atualizado.", vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.Where("id = ? AND owner_id = ?", id, userID).First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
		return
	}

	// Não apaga veículo com histórico aberto.
	var count int64
	h.db.Model(&models.Appointment{}).Where("vehicle_id = ?", vehicle.ID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "vehicle_in_use", "O veículo possui agendamentos.")
		return
	}

	h.db.Model(&models.WorkOrder{}).
		Where("vehicle_id = ? AND status IN ?", vehicle.ID, []string{"open", "in_progress"}).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "vehicle_in_use", "O veículo possui ordens de serviço abertas.")
		return
	}

	if err := h.db.Delete(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_vehicle", "Erro ao remover veículo.")
		return
	}

	httpresp.OK(c, "Veículo removido.", nil)
}

// Get permite mecânico/admin consultarem qualquer veículo.
func (h *VehicleHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.Preload("Owner").First(&vehicle, id).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
		return
	}

	if role == models.RoleClient && vehicle.OwnerID != userID {
		httperr.Forbidden(c, "vehicle_not_owned", "O veículo não pertence a você.")
		return
	}

	httpresp.OK(c, "Veículo encontrado.", vehicle)
}
