package createreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/reminder"
	service "reemind/internal/core/services/create_reminder"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Reminder = reminder.Reminder{
		ID:        reminder.ID(1),
		Email:     input.Email,
		Name:      input.Name,
		Month:     input.Month,
		Day:       input.Day,
		LeadDays:  input.LeadDays,
		CreatedAt: time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	return result, nil
}

func TestCreateReminderHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "valid input",
			body:           `{"email": "Test@Test.com", "name": "Alice", "month": 12, "day": 25, "lead_days": 7}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Email:    c.NewEmail("test@test.com"),
				Name:     "Alice",
				Month:    12,
				Day:      25,
				LeadDays: 7,
			},
		},
		{
			id:             "not a JSON",
			body:           `not a JSON`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"email": "invalid", "name": "Alice", "month": 12, "day": 25, "lead_days": 7}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing name",
			body:           `{"email": "test@test.com", "month": 12, "day": 25, "lead_days": 7}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "month out of range",
			body:           `{"email": "test@test.com", "name": "Alice", "month": 13, "day": 25, "lead_days": 7}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "day out of range",
			body:           `{"email": "test@test.com", "name": "Alice", "month": 12, "day": 32, "lead_days": 7}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "lead days missing",
			body:           `{"email": "test@test.com", "name": "Alice", "month": 12, "day": 25}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		stub := &stubService{}
		handler := New(stub)
		rw := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(testcase.body))

		handler.ServeHTTP(rw, request)

		assert := assert.New(t)
		assert.Equal(testcase.expectedStatus, rw.Code, testcase.id)
		assert.Equal(testcase.expectedInput, stub.input, testcase.id)
	}
}

func TestCreateReminderInvalidOccurrence(t *testing.T) {
	stub := &stubService{err: reminder.ErrInvalidOccurrence}
	handler := New(stub)
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPost,
		"/reminders",
		strings.NewReader(`{"email": "test@test.com", "name": "Alice", "month": 2, "day": 30, "lead_days": 7}`),
	)

	handler.ServeHTTP(rw, request)

	assert.Equal(t, http.StatusUnprocessableEntity, rw.Code)
}
