package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OficinaTechBR/workshop-api/internal/dto"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	ucAppointment "github.com/OficinaTechBR/workshop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointmentStatus
	cancelUC *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointmentStatus,
	cancelUC *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	MechanicID  uint   `json:"mechanicId" binding:"required"`
	VehicleID   uint   `json:"vehicleId" binding:"required"`
	ScheduleID  uint   `json:"scheduleId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Hour        string `json:"hour" binding:"required"`
	Description string `json:"description"`
}

type UpdateAppointmentRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason"`
	Description     string `json:"description"`
}

// ======================================================
// CREATE (somente cliente)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:    clientID,
		MechanicID:  req.MechanicID,
		VehicleID:   req.VehicleID,
		ScheduleID:  req.ScheduleID,
		Date:        req.Date,
		Hour:        req.Hour,
		Description: req.Description,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, "Agendamento criado.", dto.ToClientAppointmentView(*ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	var clientID, mechanicID uint
	if v := c.Query("clientId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			clientID = uint(id)
		}
	}
	if v := c.Query("mechanicId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			mechanicID = uint(id)
		}
	}

	aps, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		RequesterID:   userID,
		RequesterRole: role,
		Status:        c.Query("status"),
		ClientID:      clientID,
		MechanicID:    mechanicID,
		Date:          c.Query("date"),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// Projeção por papel: mecânico vê o cliente completo, o resto vê o
	// resumo do mecânico.
	if role == models.RoleMechanic {
		out := make([]dto.MechanicAppointmentView, 0, len(aps))
		for _, ap := range aps {
			out = append(out, dto.ToMechanicAppointmentView(ap))
		}
		httpresp.OK(c, "Agendamentos listados.", out)
		return
	}

	out := make([]dto.ClientAppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.ToClientAppointmentView(ap))
	}
	httpresp.OK(c, "Agendamentos listados.", out)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), userID, role, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if role == models.RoleMechanic {
		httpresp.OK(c, "Agendamento encontrado.", dto.ToMechanicAppointmentView(*ap))
		return
	}
	httpresp.OK(c, "Agendamento encontrado.", dto.ToClientAppointmentView(*ap))
}

// ======================================================
// UPDATE (aceite / recusa / descrição)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ActorID:         userID,
		ActorRole:       role,
		AppointmentID:   id,
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
		Description:     req.Description,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if role == models.RoleMechanic {
		httpresp.OK(c, "Agendamento atualizado.", dto.ToMechanicAppointmentView(*ap))
		return
	}
	httpresp.OK(c, "Agendamento atualizado.", dto.ToClientAppointmentView(*ap))
}

// ======================================================
// CANCEL (somente o cliente dono)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Agendamento cancelado.", nil)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
