package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/domain/appointment/mocks"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	ucAppointment "github.com/OficinaTechBR/workshop-api/internal/usecase/appointment"
)

// asUser injeta a identidade que o AuthMiddleware colocaria no contexto.
func asUser(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func newAppointmentRouter(t *testing.T, repo *mocks.MockRepository, notifier *mocks.MockNotifier, userID uint, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(audit.New(nil))

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, notifier, dispatcher),
		ucAppointment.NewListAppointments(repo),
		ucAppointment.NewGetAppointment(repo),
		ucAppointment.NewUpdateAppointmentStatus(repo, notifier, dispatcher),
		ucAppointment.NewCancelAppointment(repo, dispatcher),
	)

	r := gin.New()
	r.Use(asUser(userID, role))

	r.POST("/appointments", h.Create)
	r.GET("/appointments", h.List)
	r.GET("/appointments/:id", h.Get)
	r.PATCH("/appointments/:id", h.Update)
	r.DELETE("/appointments/:id", h.Cancel)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("resposta fora do envelope: %s", w.Body.String())
	}
	return e
}

func TestAppointmentHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 1, models.RoleClient)

	schedule := &models.Schedule{ID: 4, MechanicID: 2, Date: "2026-09-10"}
	schedule.SetHourList([]string{"09:00"})

	repo.EXPECT().GetUserByID(gomock.Any(), uint(2)).
		Return(&models.User{ID: 2, Role: models.RoleMechanic, Name: "Carlos"}, nil)
	repo.EXPECT().GetVehicleByID(gomock.Any(), uint(3)).
		Return(&models.Vehicle{ID: 3, OwnerID: 1, Plate: "ABC1D23"}, nil)
	repo.EXPECT().GetScheduleByID(gomock.Any(), uint(4)).Return(schedule, nil)
	repo.EXPECT().BookSlot(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().NotifyAppointmentCreated(gomock.Any())

	w := doJSON(t, r, http.MethodPost, "/appointments", gin.H{
		"mechanicId": 2,
		"vehicleId":  3,
		"scheduleId": 4,
		"date":       "2026-09-10",
		"hour":       "09:00",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("esperava 201, veio %d: %s", w.Code, w.Body.String())
	}

	e := decodeEnvelope(t, w)
	if !e.Success {
		t.Fatalf("envelope deveria ter success=true: %s", w.Body.String())
	}
}

func TestAppointmentHandler_CreateHourTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 1, models.RoleClient)

	schedule := &models.Schedule{ID: 4, MechanicID: 2, Date: "2026-09-10"}
	schedule.SetHourList([]string{"10:00"})

	repo.EXPECT().GetUserByID(gomock.Any(), uint(2)).
		Return(&models.User{ID: 2, Role: models.RoleMechanic}, nil)
	repo.EXPECT().GetVehicleByID(gomock.Any(), uint(3)).
		Return(&models.Vehicle{ID: 3, OwnerID: 1}, nil)
	repo.EXPECT().GetScheduleByID(gomock.Any(), uint(4)).Return(schedule, nil)

	w := doJSON(t, r, http.MethodPost, "/appointments", gin.H{
		"mechanicId": 2,
		"vehicleId":  3,
		"scheduleId": 4,
		"date":       "2026-09-10",
		"hour":       "09:00",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperava 400, veio %d", w.Code)
	}

	e := decodeEnvelope(t, w)
	if e.Success || e.ErrorCode != "hour_not_available" {
		t.Fatalf("esperava hour_not_available: %s", w.Body.String())
	}
}

func TestAppointmentHandler_UpdateRejectWithoutReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 2, models.RoleMechanic)

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).
		Return(&models.Appointment{ID: 10, ClientID: 1, MechanicID: 2, Status: "pending"}, nil)

	w := doJSON(t, r, http.MethodPatch, "/appointments/10", gin.H{
		"status": "rejected",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperava 400, veio %d: %s", w.Code, w.Body.String())
	}

	e := decodeEnvelope(t, w)
	if e.ErrorCode != "rejection_reason_required" {
		t.Fatalf("esperava rejection_reason_required: %s", w.Body.String())
	}
}

func TestAppointmentHandler_UpdateConflictOnDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 2, models.RoleMechanic)

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).
		Return(&models.Appointment{ID: 10, ClientID: 1, MechanicID: 2, Status: "accepted"}, nil)

	w := doJSON(t, r, http.MethodPatch, "/appointments/10", gin.H{
		"status": "rejected",
		"rejectionReason": "qualquer",
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("decidido nao muda mais; esperava 409, veio %d", w.Code)
	}
}

func TestAppointmentHandler_GetForbiddenForStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 55, models.RoleClient)

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).
		Return(&models.Appointment{ID: 10, ClientID: 1, MechanicID: 2, Status: "pending"}, nil)

	w := doJSON(t, r, http.MethodGet, "/appointments/10", nil)

	if w.Code != http.StatusForbidden {
		t.Fatalf("esperava 403, veio %d", w.Code)
	}
}

func TestAppointmentHandler_CancelRejectedIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 1, models.RoleClient)

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).
		Return(&models.Appointment{ID: 10, ClientID: 1, MechanicID: 2, Status: "rejected"}, nil)

	w := doJSON(t, r, http.MethodDelete, "/appointments/10", nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("esperava 409, veio %d", w.Code)
	}
}

func TestAppointmentHandler_ListProjectsByRole(t *testing.T) {
	ap := models.Appointment{
		ID:         10,
		ClientID:   1,
		MechanicID: 2,
		Status:     "pending",
		Client:     models.User{ID: 1, Name: "Ana", Email: "ana@exemplo.com", Phone: "11999990000"},
		Mechanic:   models.User{ID: 2, Name: "Carlos", Email: "carlos@exemplo.com"},
	}

	t.Run("cliente ve so o resumo do mecanico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		notifier := mocks.NewMockNotifier(ctrl)

		r := newAppointmentRouter(t, repo, notifier, 1, models.RoleClient)

		repo.EXPECT().ListAppointments(gomock.Any(), gomock.Any()).
			Return([]models.Appointment{ap}, nil)

		w := doJSON(t, r, http.MethodGet, "/appointments", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, veio %d", w.Code)
		}

		body := w.Body.String()
		if bytes.Contains([]byte(body), []byte("carlos@exemplo.com")) {
			t.Fatalf("cliente nao deveria ver o e-mail do mecanico: %s", body)
		}
	})

	t.Run("mecanico ve o cliente completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		notifier := mocks.NewMockNotifier(ctrl)

		r := newAppointmentRouter(t, repo, notifier, 2, models.RoleMechanic)

		repo.EXPECT().ListAppointments(gomock.Any(), gomock.Any()).
			Return([]models.Appointment{ap}, nil)

		w := doJSON(t, r, http.MethodGet, "/appointments", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, veio %d", w.Code)
		}

		body := w.Body.String()
		if !bytes.Contains([]byte(body), []byte("ana@exemplo.com")) {
			t.Fatalf("mecanico deveria ver o e-mail do cliente: %s", body)
		}
	})
}

func TestAppointmentHandler_NotFoundMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	r := newAppointmentRouter(t, repo, notifier, 1, models.RoleClient)

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(999)).
		Return(nil, httperr.ErrBusiness("not_found"))

	w := doJSON(t, r, http.MethodGet, "/appointments/999", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("esperava 404, veio %d", w.Code)
	}
}
