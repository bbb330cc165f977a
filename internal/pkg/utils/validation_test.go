package utils

import (
	"testing"

	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateAppointment(t *testing.T) {
	valid := requests.CreateAppointment{
		DoctorID:   "doc-1",
		DoctorName: "Strange",
		Date:       "2026-10-01",
		Time:       "09:30",
		Reason:     "Annual check-up",
	}

	t.Run("accepts a well-formed request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid))
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		request := valid
		request.Date = "01-10-2026"
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Contains(t, exceptions.FormatFirstValidationError(err), "date")
	})

	t.Run("rejects a malformed time", func(t *testing.T) {
		request := valid
		request.Time = "9:30am"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects an empty reason", func(t *testing.T) {
		request := valid
		request.Reason = ""
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateDecideAppointment(t *testing.T) {
	t.Run("accepts approved and rejected", func(t *testing.T) {
		for _, status := range []string{"approved", "rejected"} {
			assert.NoError(t, ValidateStruct(requests.DecideAppointment{Status: status}))
		}
	})

	t.Run("rejects any other status", func(t *testing.T) {
		for _, status := range []string{"", "pending", "cancelled", "APPROVED"} {
			assert.Error(t, ValidateStruct(requests.DecideAppointment{Status: status}), status)
		}
	})
}

func TestValidateRegisterUser(t *testing.T) {
	valid := requests.RegisterUser{
		Email:    "alice@example.test",
		Password: "longenough",
		Name:     "Alice",
		Role:     "patient",
	}

	t.Run("accepts both roles", func(t *testing.T) {
		request := valid
		assert.NoError(t, ValidateStruct(request))
		request.Role = "doctor"
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		request := valid
		request.Role = "admin"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		request := valid
		request.Password = "short"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		request := valid
		request.Email = "not-an-email"
		assert.Error(t, ValidateStruct(request))
	})
}
