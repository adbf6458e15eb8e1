package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/billing"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/httpresp"
	"github.com/OficinaTechBR/workshop-api/internal/images"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/notification"
	"github.com/OficinaTechBR/workshop-api/internal/storage"
	"github.com/OficinaTechBR/workshop-api/internal/timezone"
)

const (
	WorkOrderOpen       = "open"
	WorkOrderInProgress = "in_progress"
	WorkOrderCompleted  = "completed"
	WorkOrderCancelled  = "cancelled"
)

// ======================================================
// HANDLER
// ======================================================

type WorkOrderHandler struct {
	db       *gorm.DB
	notifier *notification.Service
	audit    *audit.Dispatcher
	uploader *storage.Uploader
	gateway  billing.Gateway
}

func NewWorkOrderHandler(
	db *gorm.DB,
	notifier *notification.Service,
	auditDispatcher *audit.Dispatcher,
	uploader *storage.Uploader,
	gateway billing.Gateway,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		db:       db,
		notifier: notifier,
		audit:    auditDispatcher,
		uploader: uploader,
		gateway:  gateway,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWorkOrderRequest struct {
	AppointmentID *uint  `json:"appointmentId"`
	VehicleID     uint   `json:"vehicleId"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
}

type UpdateWorkOrderRequest struct {
	Status    string   `json:"status"`
	LaborCost *float64 `json:"laborCost"`
}

type AddItemRequest struct {
	PartID   uint `json:"partId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// ======================================================
// CREATE (mecânico)
// ======================================================

func (h *WorkOrderHandler) Create(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	wo := models.WorkOrder{
		MechanicID:  mechanicID,
		Title:       req.Title,
		Description: req.Description,
		Status:      WorkOrderOpen,
	}

	// A partir de um agendamento aceito, herda cliente e veículo.
	if req.AppointmentID != nil {
		var ap models.Appointment
		if err := h.db.First(&ap, *req.AppointmentID).Error; err != nil {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if ap.MechanicID != mechanicID {
			httperr.Forbidden(c, "not_appointment_owner", "O agendamento não é seu.")
			return
		}
		if ap.Status != "accepted" {
			httperr.Conflict(c, "invalid_work_order_state",
				"Só agendamentos aceitos geram ordem de serviço.")
			return
		}

		wo.AppointmentID = &ap.ID
		wo.ClientID = ap.ClientID
		wo.VehicleID = ap.VehicleID
	} else {
		var vehicle models.Vehicle
		if err := h.db.First(&vehicle, req.VehicleID).Error; err != nil {
			httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
			return
		}
		wo.VehicleID = vehicle.ID
		wo.ClientID = vehicle.OwnerID
	}

	if err := h.db.Create(&wo).Error; err != nil {
		httperr.Internal(c, "failed_to_create_work_order", "Erro ao abrir ordem de serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &mechanicID,
		Action:   "work_order_created",
		Entity:   "work_order",
		EntityID: &wo.ID,
	})

	httpresp.Created(c, "Ordem de serviço aberta.", wo)
}

// ======================================================
// LIST (escopo por papel)
// ======================================================

func (h *WorkOrderHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	q := h.db.
		Preload("Vehicle").
		Preload("Items").
		Preload("Items.Part")

	switch role {
	case models.RoleClient:
		q = q.Where("client_id = ?", userID)
	case models.RoleMechanic:
		q = q.Where("mechanic_id = ?", userID)
	}

	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var orders []models.WorkOrder
	q.Order("id DESC").Find(&orders)

	httpresp.OK(c, "Ordens de serviço listadas.", orders)
}

// ======================================================
// GET
// ======================================================

func (h *WorkOrderHandler) Get(c *gin.Context) {
	wo, ok := h.loadVisible(c)
	if !ok {
		return
	}

	httpresp.OK(c, "Ordem de serviço encontrada.", wo)
}

// ======================================================
// UPDATE (status + mão de obra; mecânico responsável)
// ======================================================

func (h *WorkOrderHandler) Update(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	wo, ok := h.loadForMechanic(c, mechanicID)
	if !ok {
		return
	}

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if wo.Status == WorkOrderCompleted || wo.Status == WorkOrderCancelled {
		httperr.Conflict(c, "invalid_work_order_state",
			"A ordem de serviço não permite esta operação.")
		return
	}

	if req.LaborCost != nil {
		wo.LaborCost = *req.LaborCost
	}

	completedNow := false

	if req.Status != "" && req.Status != wo.Status {
		if !canTransitionWorkOrder(wo.Status, req.Status) {
			httperr.Conflict(c, "invalid_work_order_state",
				"A ordem de serviço não permite esta operação.")
			return
		}

		if req.Status == WorkOrderCompleted && wo.LaborCost <= 0 {
			httperr.BadRequest(c, "labor_cost_required",
				"Informe a mão de obra antes de concluir a ordem de serviço.")
			return
		}

		wo.Status = req.Status
		if req.Status == WorkOrderCompleted {
			now := timezone.Now()
			wo.CompletedAt = &now
			completedNow = true
		}
	}

	if err := h.db.Omit(clause.Associations).Save(wo).Error; err != nil {
		httperr.Internal(c, "failed_to_update_work_order", "Erro ao atualizar ordem de serviço.")
		return
	}

	if completedNow {
		h.notifier.NotifyWorkOrderCompleted(wo)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &mechanicID,
		Action:   "work_order_" + wo.Status,
		Entity:   "work_order",
		EntityID: &wo.ID,
	})

	httpresp.OK(c, "Ordem de serviço atualizada.", wo)
}

// canTransitionWorkOrder: open → in_progress → completed;
// cancelamento só antes de concluir.
func canTransitionWorkOrder(current, requested string) bool {
	switch current {
	case WorkOrderOpen:
		return requested == WorkOrderInProgress || requested == WorkOrderCancelled
	case WorkOrderInProgress:
		return requested == WorkOrderCompleted || requested == WorkOrderCancelled
	}
	return false
}

// ======================================================
// ITEMS (peças do estoque)
// ======================================================

func (h *WorkOrderHandler) AddItem(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	wo, ok := h.loadForMechanic(c, mechanicID)
	if !ok {
		return
	}

	if wo.Status != WorkOrderOpen && wo.Status != WorkOrderInProgress {
		httperr.Conflict(c, "invalid_work_order_state",
			"A ordem de serviço não permite esta operação.")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var item models.WorkOrderItem

	// Baixa de estoque e item na mesma transação, com lock na peça.
	err := h.db.Transaction(func(tx *gorm.DB) error {

		var part models.Part
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&part, req.PartID).Error; err != nil {
			return httperr.ErrBusiness("part_not_found")
		}

		if part.Stock < req.Quantity {
			return httperr.ErrBusiness("insufficient_stock")
		}

		part.Stock -= req.Quantity
		if err := tx.Model(&part).Update("stock", part.Stock).Error; err != nil {
			return err
		}

		item = models.WorkOrderItem{
			WorkOrderID: wo.ID,
			PartID:      part.ID,
			Quantity:    req.Quantity,
			UnitPrice:   part.UnitPrice,
		}

		return tx.Create(&item).Error
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, "Peça adicionada.", item)
}

func (h *WorkOrderHandler) RemoveItem(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	wo, ok := h.loadForMechanic(c, mechanicID)
	if !ok {
		return
	}

	itemID := c.Param("itemId")

	err := h.db.Transaction(func(tx *gorm.DB) error {

		var item models.WorkOrderItem
		if err := tx.
			Where("id = ? AND work_order_id = ?", itemID, wo.ID).
			First(&item).Error; err != nil {
			return httperr.ErrBusiness("part_not_found")
		}

		// Devolve a quantidade ao estoque.
		if err := tx.Model(&models.Part{}).
			Where("id = ?", item.PartID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Peça removida.", nil)
}

// ======================================================
// PHOTO (S3 + webp)
// ======================================================

func (h *WorkOrderHandler) UploadPhoto(c *gin.Context) {
	mechanicID := c.MustGet(middleware.ContextUserID).(uint)

	wo, ok := h.loadForMechanic(c, mechanicID)
	if !ok {
		return
	}

	if h.uploader == nil || !h.uploader.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de fotos não configurado.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie o arquivo no campo photo.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}

	converted, err := images.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "A foto deve ser JPEG ou PNG.")
		return
	}

	key := fmt.Sprintf("work-orders/%d/%s.webp", wo.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", converted)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	wo.PhotoURL = url
	if err := h.db.Model(wo).Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_work_order", "Erro ao salvar a foto.")
		return
	}

	httpresp.OK(c, "Foto enviada.", gin.H{"photo_url": url})
}

// ======================================================
// PAYMENT (cliente dono, OS concluída)
// ======================================================

func (h *WorkOrderHandler) CreatePayment(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var wo models.WorkOrder
	if err := h.db.Preload("Items").First(&wo, id).Error; err != nil {
		httperr.NotFound(c, "work_order_not_found", "Ordem de serviço não encontrada.")
		return
	}

	if wo.ClientID != clientID {
		httperr.Forbidden(c, "not_work_order_owner", "Você não tem acesso a esta ordem de serviço.")
		return
	}

	if wo.Status != WorkOrderCompleted {
		httperr.Conflict(c, "invalid_work_order_state",
			"Só ordens de serviço concluídas podem ser pagas.")
		return
	}

	var count int64
	h.db.Model(&models.Payment{}).
		Where("work_order_id = ? AND status = ?", wo.ID, models.PaymentStatusApproved).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "already_paid", "Ordem de serviço já paga.")
		return
	}

	var client models.User
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	amount := wo.Total()
	description := fmt.Sprintf("OS #%d - %s", wo.ID, wo.Title)

	providerID, status, payload, err := h.gateway.Charge(
		c.Request.Context(), amount, description, client.Email,
	)
	if err != nil {
		httperr.Internal(c, "payment_failed", "Erro ao processar o pagamento.")
		return
	}

	payment := models.Payment{
		WorkOrderID:       wo.ID,
		Amount:            amount,
		Status:            mapProviderStatus(status),
		ProviderPaymentID: providerID,
		ProviderPayload:   payload,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_payment", "Erro ao registrar o pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "payment_" + payment.Status,
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	httpresp.Created(c, "Pagamento registrado.", payment)
}

func mapProviderStatus(providerStatus string) string {
	switch providerStatus {
	case "approved":
		return models.PaymentStatusApproved
	case "rejected", "cancelled":
		return models.PaymentStatusRejected
	}
	return models.PaymentStatusPending
}

// ======================================================
// HELPERS
// ======================================================

func (h *WorkOrderHandler) loadForMechanic(c *gin.Context, mechanicID uint) (*models.WorkOrder, bool) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var wo models.WorkOrder
	if err := h.db.Preload("Items").First(&wo, id).Error; err != nil {
		httperr.NotFound(c, "work_order_not_found", "Ordem de serviço não encontrada.")
		return nil, false
	}

	if wo.MechanicID != mechanicID {
		httperr.Forbidden(c, "not_work_order_owner", "A ordem de serviço não é sua.")
		return nil, false
	}

	return &wo, true
}

func (h *WorkOrderHandler) loadVisible(c *gin.Context) (*models.WorkOrder, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var wo models.WorkOrder
	if err := h.db.
		Preload("Vehicle").
		Preload("Items").
		Preload("Items.Part").
		First(&wo, id).Error; err != nil {
		httperr.NotFound(c, "work_order_not_found", "Ordem de serviço não encontrada.")
		return nil, false
	}

	switch role {
	case models.RoleClient:
		if wo.ClientID != userID {
			httperr.Forbidden(c, "not_work_order_owner", "Você não tem acesso a esta ordem de serviço.")
			return nil, false
		}
	case models.RoleMechanic:
		if wo.MechanicID != userID {
			httperr.Forbidden(c, "not_work_order_owner", "Você não tem acesso a esta ordem de serviço.")
			return nil, false
		}
	}

	return &wo, true
}
