package appointments

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/session"
	"medibook-service/internal/app/services/shared/eventbus"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	mu    sync.Mutex
	items map[string]*models.Appointment
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{items: make(map[string]*models.Appointment)}
}

func (r *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	stored := *appointment
	stored.ID = id
	r.items[id] = &stored
	return id, nil
}

func (r *fakeAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.items[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepository) FindAppointmentsByParticipant(ctx context.Context, role, userID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Appointment, 0)
	for _, appointment := range r.items {
		if role == constvars.RoleDoctor && appointment.DoctorID.Equals(userID) {
			result = append(result, *appointment)
		}
		if role == constvars.RolePatient && appointment.PatientID.Equals(userID) {
			result = append(result, *appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeAppointmentRepository) UpdateAppointmentStatusIfPending(ctx context.Context, appointmentID, newStatus string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.items[appointmentID]
	if !ok || appointment.Status != constvars.AppointmentStatusPending {
		return nil, nil
	}
	appointment.Status = newStatus
	copied := *appointment
	return &copied, nil
}

type fakeNotificationRepository struct {
	mu    sync.Mutex
	items []*models.Notification
}

func (r *fakeNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *notification
	stored.ID = primitive.NewObjectID().Hex()
	r.items = append(r.items, &stored)
	return stored.ID, nil
}

func (r *fakeNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.items {
		if notification.ID == notificationID {
			copied := *notification
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepository) FindNotificationsByRecipient(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Notification, 0)
	for _, notification := range r.items {
		if notification.UserID.Equals(userID) {
			result = append(result, *notification)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.items {
		if notification.ID == notificationID {
			notification.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepository) forRecipient(userID string) []models.Notification {
	result, _ := r.FindNotificationsByRecipient(context.Background(), userID, 100)
	return result
}

type fakeUserRepository struct{}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", errors.New("not implemented")
}
func (r *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepository) FindDoctors(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func sessionDataFor(t *testing.T, userID, name, role string) string {
	t.Helper()
	data, err := json.Marshal(&models.Session{
		SessionID: "test-session",
		UserID:    userID,
		Name:      name,
		Role:      role,
	})
	require.NoError(t, err)
	return string(data)
}

type testHarness struct {
	usecase          contracts.AppointmentUsecase
	appointmentRepo  *fakeAppointmentRepository
	notificationRepo *fakeNotificationRepository
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	appointmentRepo := newFakeAppointmentRepository()
	notificationRepo := &fakeNotificationRepository{}
	sessionService := session.NewSessionService(nil, 1)
	bus := eventbus.NewBus(zap.NewNop())

	dispatcher := notifications.NewNotificationDispatcher(notificationRepo, &fakeUserRepository{}, nil, zap.NewNop())
	dispatcher.Register(bus)

	usecase := &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		SessionService:        sessionService,
		EventBus:              bus,
		Log:                   zap.NewNop(),
	}
	return &testHarness{
		usecase:          usecase,
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
	}
}

func assertStatusCode(t *testing.T, err error, want int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, want, customErr.StatusCode)
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("patient books and both parties are notified", func(t *testing.T) {
		h := newTestHarness(t)

		result, err := h.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			DoctorID:    "doc-1",
			DoctorName:  "Strange",
			Date:        "2026-10-01",
			Time:        "09:30",
			Reason:      "Annual check-up",
			SessionData: sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
		assert.Equal(t, "pat-1", result.PatientID)
		assert.Equal(t, "Alice", result.PatientName)
		assert.NotEmpty(t, result.AppointmentID)

		doctorNotifications := h.notificationRepo.forRecipient("doc-1")
		require.Len(t, doctorNotifications, 1)
		assert.Equal(t, "New appointment request from Alice on 2026-10-01 at 09:30", doctorNotifications[0].Message)
		assert.Equal(t, constvars.NotificationTypeAppointmentCreated, doctorNotifications[0].Type)
		assert.False(t, doctorNotifications[0].Read)

		patientNotifications := h.notificationRepo.forRecipient("pat-1")
		require.Len(t, patientNotifications, 1)
		assert.Equal(t, "Your appointment request with Dr. Strange has been submitted and is pending approval", patientNotifications[0].Message)
	})

	t.Run("doctor cannot book", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			DoctorID:    "doc-1",
			DoctorName:  "Strange",
			Date:        "2026-10-01",
			Time:        "09:30",
			Reason:      "Annual check-up",
			SessionData: sessionDataFor(t, "doc-2", "House", constvars.RoleDoctor),
		})
		assertStatusCode(t, err, constvars.StatusForbidden)
		assert.Empty(t, h.notificationRepo.forRecipient("doc-1"))
	})
}

func TestDecideAppointment(t *testing.T) {
	ctx := context.Background()

	bookPending := func(t *testing.T, h *testHarness) string {
		t.Helper()
		result, err := h.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			DoctorID:    "doc-1",
			DoctorName:  "Strange",
			Date:        "2026-10-01",
			Time:        "09:30",
			Reason:      "Annual check-up",
			SessionData: sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		require.NoError(t, err)
		return result.AppointmentID
	}

	t.Run("doctor approves own pending appointment", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := bookPending(t, h)

		result, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusApproved,
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor),
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusApproved, result.Status)

		patientNotifications := h.notificationRepo.forRecipient("pat-1")
		require.Len(t, patientNotifications, 2)
		assert.Equal(t, "Your appointment with Dr. Strange has been approved", patientNotifications[0].Message)
		assert.Equal(t, constvars.NotificationTypeAppointmentApproved, patientNotifications[0].Type)
	})

	t.Run("doctor rejects own pending appointment", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := bookPending(t, h)

		result, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusRejected,
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor),
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusRejected, result.Status)

		patientNotifications := h.notificationRepo.forRecipient("pat-1")
		require.Len(t, patientNotifications, 2)
		assert.Equal(t, "Your appointment with Dr. Strange has been rejected", patientNotifications[0].Message)
	})

	t.Run("patient cannot decide", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := bookPending(t, h)

		_, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusApproved,
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("another doctor cannot decide", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := bookPending(t, h)

		_, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusApproved,
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "doc-2", "House", constvars.RoleDoctor),
		})
		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("unknown appointment returns not found", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusApproved,
			AppointmentID: primitive.NewObjectID().Hex(),
			SessionData:   sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor),
		})
		assertStatusCode(t, err, constvars.StatusNotFound)
	})

	t.Run("deciding twice returns conflict", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := bookPending(t, h)

		doctorSession := sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor)
		_, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusApproved,
			AppointmentID: appointmentID,
			SessionData:   doctorSession,
		})
		require.NoError(t, err)

		_, err = h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusRejected,
			AppointmentID: appointmentID,
			SessionData:   doctorSession,
		})
		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("concurrent decisions have exactly one winner", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := bookPending(t, h)
		doctorSession := sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		statuses := []string{constvars.AppointmentStatusApproved, constvars.AppointmentStatusRejected}
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
					Status:        statuses[i],
					AppointmentID: appointmentID,
					SessionData:   doctorSession,
				})
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assertStatusCode(t, err, constvars.StatusConflict)
			}
		}
		assert.Equal(t, 1, winners)

		stored, err := h.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
		require.NoError(t, err)
		assert.NotEqual(t, constvars.AppointmentStatusPending, stored.Status)
	})
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	book := func(t *testing.T, h *testHarness) string {
		t.Helper()
		result, err := h.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			DoctorID:    "doc-1",
			DoctorName:  "Strange",
			Date:        "2026-10-01",
			Time:        "09:30",
			Reason:      "Annual check-up",
			SessionData: sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		require.NoError(t, err)
		return result.AppointmentID
	}

	t.Run("patient cancels own pending appointment and doctor is notified", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := book(t, h)

		err := h.usecase.CancelAppointment(ctx, &requests.CancelAppointment{
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		require.NoError(t, err)

		stored, err := h.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, stored.Status)

		doctorNotifications := h.notificationRepo.forRecipient("doc-1")
		require.Len(t, doctorNotifications, 2)
		assert.Equal(t, "Appointment with Alice has been cancelled", doctorNotifications[0].Message)
		assert.Equal(t, constvars.NotificationTypeAppointmentCancelled, doctorNotifications[0].Type)
	})

	t.Run("doctor cannot cancel", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := book(t, h)

		err := h.usecase.CancelAppointment(ctx, &requests.CancelAppointment{
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor),
		})
		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("another patient cannot cancel", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := book(t, h)

		err := h.usecase.CancelAppointment(ctx, &requests.CancelAppointment{
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "pat-2", "Bob", constvars.RolePatient),
		})
		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("approved appointment cannot be cancelled", func(t *testing.T) {
		h := newTestHarness(t)
		appointmentID := book(t, h)

		_, err := h.usecase.DecideAppointment(ctx, &requests.DecideAppointment{
			Status:        constvars.AppointmentStatusApproved,
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor),
		})
		require.NoError(t, err)

		err = h.usecase.CancelAppointment(ctx, &requests.CancelAppointment{
			AppointmentID: appointmentID,
			SessionData:   sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		assertStatusCode(t, err, constvars.StatusConflict)
	})
}

func TestFindAllAppointments(t *testing.T) {
	ctx := context.Background()
	h := newTestHarness(t)

	for i, doctorID := range []string{"doc-1", "doc-1", "doc-2"} {
		_, err := h.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			DoctorID:    doctorID,
			DoctorName:  "Strange",
			Date:        "2026-10-01",
			Time:        "09:30",
			Reason:      "Visit",
			SessionData: sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		require.NoError(t, err)
		// Distinct creation times keep the expected ordering stable.
		time.Sleep(time.Millisecond * time.Duration(i+1))
	}

	t.Run("patient sees every appointment they booked", func(t *testing.T) {
		result, err := h.usecase.FindAllAppointments(ctx, &requests.FindAllAppointments{
			SessionData: sessionDataFor(t, "pat-1", "Alice", constvars.RolePatient),
		})
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("doctor only sees appointments addressed to them", func(t *testing.T) {
		result, err := h.usecase.FindAllAppointments(ctx, &requests.FindAllAppointments{
			SessionData: sessionDataFor(t, "doc-1", "Strange", constvars.RoleDoctor),
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("stranger sees nothing", func(t *testing.T) {
		result, err := h.usecase.FindAllAppointments(ctx, &requests.FindAllAppointments{
			SessionData: sessionDataFor(t, "pat-9", "Mallory", constvars.RolePatient),
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
