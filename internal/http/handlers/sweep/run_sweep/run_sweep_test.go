package runsweep

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reemind/internal/core/domain/reminder"
	service "reemind/internal/core/services/run_sweep"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const SECRET = "test-cron-secret"

var Now time.Time = time.Date(2023, 12, 18, 7, 0, 0, 0, time.UTC)

type stubService struct {
	summary reminder.SweepSummary
	err     error
	input   *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Summary = s.summary
	return result, nil
}

func newHandler(stub *stubService) *Handler {
	return New(stub, SECRET, func() time.Time { return Now })
}

func TestSweepRequiresSecret(t *testing.T) {
	cases := []struct {
		id             string
		authorization  string
		expectedStatus int
	}{
		{id: "no header", authorization: "", expectedStatus: http.StatusUnauthorized},
		{id: "wrong secret", authorization: "Bearer wrong", expectedStatus: http.StatusUnauthorized},
		{id: "no bearer prefix", authorization: SECRET, expectedStatus: http.StatusUnauthorized},
		{id: "valid secret", authorization: "Bearer " + SECRET, expectedStatus: http.StatusOK},
	}

	for _, testcase := range cases {
		stub := &stubService{summary: reminder.SweepSummary{Errors: []string{}, Timestamp: Now}}
		handler := newHandler(stub)
		rw := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/sweep", nil)
		if testcase.authorization != "" {
			request.Header.Set("Authorization", testcase.authorization)
		}

		handler.ServeHTTP(rw, request)

		assert.Equal(t, testcase.expectedStatus, rw.Code, testcase.id)
	}
}

func TestSweepSummaryRendered(t *testing.T) {
	stub := &stubService{
		summary: reminder.SweepSummary{
			RemindersSent: 2,
			Errors:        []string{"failed to send reminder to bad@x.com: mailbox unavailable"},
			Timestamp:     Now,
		},
	}
	handler := newHandler(stub)
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	request.Header.Set("Authorization", "Bearer "+SECRET)

	handler.ServeHTTP(rw, request)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal(&service.Input{At: Now}, stub.input)

	body := Result{}
	assert.Nil(json.Unmarshal(rw.Body.Bytes(), &body))
	assert.True(body.Success)
	assert.Equal(2, body.RemindersSent)
	assert.Equal([]string{"failed to send reminder to bad@x.com: mailbox unavailable"}, body.Errors)
}

func TestSweepServiceError(t *testing.T) {
	stub := &stubService{err: errors.New("test error")}
	handler := newHandler(stub)
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	request.Header.Set("Authorization", "Bearer "+SECRET)

	handler.ServeHTTP(rw, request)

	assert.Equal(t, http.StatusInternalServerError, rw.Code)
}
