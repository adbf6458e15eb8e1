package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/validators"
)

type ScheduleHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewScheduleHandler(db *gorm.DB, repo domain.Repository) *ScheduleHandler {
	return &ScheduleHandler{db: db, repo: repo}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertScheduleRequest struct {
	Date  string   `json:"date" binding:"required"`
	Hours []string `json:"hours" binding:"required"`
}

type ScheduleHourRequest struct {
	Action string `json:"action" binding:"required"` // add | remove
	Hour   string `json:"hour" binding:"required"`
}

// ======================================================
// LIST (qualquer autenticado: clientes consultam disponibilidade)
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	q := h.db.Preload("Mechanic")

	if v := c.Query("mechanicId"); v != "" {
		q = q.Where("mechanic_id = ?", v)
	}
	if v := c.Query("date"); v != "" {
		q = q.Where("date = ?", v)
	}

	var schedules []models.Schedule
	q.Order("date ASC").Find(&schedules)

	httpresp.OK(c, "Agendas listadas.", schedules)
}

// ======================================================
// UPSERT (mecânico gerencia o próprio dia)
// ======================================================

func (h *ScheduleHandler) Upsert(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	for _, hour := range req.Hours {
		if !validators.IsValidHour(hour) {
			httperr.BadRequest(c, "invalid_hour", "Hora inválida: "+hour)
			return
		}
	}

	var schedule models.Schedule
	err := h.db.
		Where("mechanic_id = ? AND date = ?", mechanicID, req.Date).
		First(&schedule).Error

	if err != nil {
		schedule = models.Schedule{
			MechanicID: mechanicID,
			Date:       req.Date,
		}
	}

	schedule.SetHourList(req.Hours)

	if err := h.db.Save(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar agenda.")
		return
	}

	httpresp.OK(c, "Agenda salva.", schedule)
}

// ======================================================
// PATCH HOURS (adiciona/remove uma hora)
// ======================================================

func (h *ScheduleHandler) PatchHours(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ScheduleHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidHour(req.Hour) {
		httperr.BadRequest(c, "invalid_hour", "Hora inválida.")
		return
	}

	schedule, err := h.repo.GetScheduleByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "schedule_not_found", "Agenda não encontrada.")
		return
	}
	if schedule.MechanicID != mechanicID {
		httperr.Forbidden(c, "not_schedule_owner", "A agenda não é sua.")
		return
	}

	switch req.Action {
	case "add":
		err = h.repo.AddHourToSchedule(c.Request.Context(), id, req.Hour)
	case "remove":
		err = h.repo.RemoveHourFromSchedule(c.Request.Context(), id, req.Hour)
	default:
		httperr.BadRequest(c, "invalid_action", "Ação deve ser add ou remove.")
		return
	}

	if err != nil {
		writeBusinessError(c, err)
		return
	}

	schedule, _ = h.repo.GetScheduleByID(c.Request.Context(), id)
	httpresp.OK(c, "Agenda atualizada.", schedule)
}

// ======================================================
// DELETE
// ======================================================

func (h *ScheduleHandler) Delete(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var schedule models.Schedule
	if err := h.db.
		Where("id = ? AND mechanic_id = ?", id, mechanicID).
		First(&schedule).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Agenda não encontrada.")
		return
	}

	var count int64
	h.db.Model(&models.Appointment{}).Where("schedule_id = ?", schedule.ID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "schedule_in_use", "A agenda possui agendamentos.")
		return
	}

	if err := h.db.Delete(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Erro ao remover agenda.")
		return
	}

	httpresp.OK(c, "Agenda removida.", nil)
}
