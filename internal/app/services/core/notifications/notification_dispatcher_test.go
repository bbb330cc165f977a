package notifications

import (
	"context"
	"testing"
	"time"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepository struct {
	users map[string]*models.User
}

func (r *stubUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}
func (r *stubUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (r *stubUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.users[userID], nil
}
func (r *stubUserRepository) FindDoctors(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

type recordingMailer struct {
	sent []requests.EmailPayload
}

func (m *recordingMailer) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	m.sent = append(m.sent, *request)
	return nil
}

func TestNotificationDispatcherFanOut(t *testing.T) {
	ctx := context.Background()

	event := &models.AppointmentEvent{
		Kind:          models.EventAppointmentCreated,
		AppointmentID: "apt-1",
		PatientID:     "pat-1",
		PatientName:   "Alice",
		DoctorID:      "doc-1",
		DoctorName:    "Strange",
		Date:          "2026-10-01",
		Time:          "09:30",
		NewStatus:     constvars.AppointmentStatusPending,
		OccurredAt:    time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	}

	t.Run("created event notifies doctor and patient and sends emails", func(t *testing.T) {
		repo := &memoryNotificationRepository{}
		mailer := &recordingMailer{}
		users := &stubUserRepository{users: map[string]*models.User{
			"doc-1": {ID: "doc-1", Email: "strange@clinic.test"},
			"pat-1": {ID: "pat-1", Email: "alice@example.test"},
		}}
		dispatcher := NewNotificationDispatcher(repo, users, mailer, zap.NewNop())

		require.NoError(t, dispatcher.OnAppointmentCreated(ctx, event))

		doctorNotifications, err := repo.FindNotificationsByRecipient(ctx, "doc-1", 10)
		require.NoError(t, err)
		require.Len(t, doctorNotifications, 1)
		assert.Equal(t, "New appointment request from Alice on 2026-10-01 at 09:30", doctorNotifications[0].Message)

		patientNotifications, err := repo.FindNotificationsByRecipient(ctx, "pat-1", 10)
		require.NoError(t, err)
		require.Len(t, patientNotifications, 1)

		require.Len(t, mailer.sent, 2)
		assert.Equal(t, "strange@clinic.test", mailer.sent[0].To)
		assert.Equal(t, constvars.NotificationEmailSubjectCreated, mailer.sent[0].Subject)
		assert.Equal(t, "alice@example.test", mailer.sent[1].To)
	})

	t.Run("no mailer wired still persists notifications", func(t *testing.T) {
		repo := &memoryNotificationRepository{}
		dispatcher := NewNotificationDispatcher(repo, &stubUserRepository{}, nil, zap.NewNop())

		require.NoError(t, dispatcher.OnAppointmentCreated(ctx, event))

		doctorNotifications, err := repo.FindNotificationsByRecipient(ctx, "doc-1", 10)
		require.NoError(t, err)
		assert.Len(t, doctorNotifications, 1)
	})

	t.Run("unknown recipient email is skipped without failing", func(t *testing.T) {
		repo := &memoryNotificationRepository{}
		mailer := &recordingMailer{}
		dispatcher := NewNotificationDispatcher(repo, &stubUserRepository{users: map[string]*models.User{}}, mailer, zap.NewNop())

		require.NoError(t, dispatcher.OnAppointmentCreated(ctx, event))
		assert.Empty(t, mailer.sent)
	})
}
