// Black-box tests: only the exported API of the package is used.
package api_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"study-buddy/backend/internal/api"
	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/interfaces/mocks"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/service"
)

// setupStudyHandler creates a handler with a mocked action service.
func setupStudyHandler(t *testing.T) (*api.StudyHandler, *mocks.MockActionService) {
	mockActionSvc := mocks.NewMockActionService(t)
	return api.NewStudyHandler(mockActionSvc), mockActionSvc
}

// failingReader returns its data, then err.
type failingReader struct {
	data string
	err  error
	done bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.done {
		return 0, f.err
	}
	f.done = true
	return copy(p, f.data), nil
}

func (f *failingReader) Close() error { return nil }

const chatBody = `{"action":"chat","messages":[{"role":"user","content":"Explain neural networks"}]}`

func TestStudyHandler_HandleAction_Stream(t *testing.T) {
	// ARRANGE: the upstream stream contains comments, CRLF and a split UTF-8 rune.
	upstream := ": OPENROUTER PROCESSING\r\n\r\n" +
		"data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n" +
		"data: {\"choices\":[{\"delta\":{\"content\":\"lo ✓\"}}]}\n\n" +
		"data: [DONE]\n\n"

	handler, mockActionSvc := setupStudyHandler(t)
	mockActionSvc.On("Execute", mock.Anything, mock.MatchedBy(func(req *model.ActionRequest) bool {
		return req.Action == model.ActionChat && len(req.Messages) == 1
	})).Return(&service.ActionResult{Stream: io.NopCloser(strings.NewReader(upstream))}, nil).Once()

	// ACT
	req := httptest.NewRequest(http.MethodPost, "/api/v1/study-buddy-chat", strings.NewReader(chatBody))
	rr := httptest.NewRecorder()
	handler.HandleAction(rr, req)

	// ASSERT: the bytes are passed through unchanged.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, upstream, rr.Body.String())
	assert.True(t, rr.Flushed)
}

func TestStudyHandler_HandleAction_StreamBreaks(t *testing.T) {
	handler, mockActionSvc := setupStudyHandler(t)
	first := "data: {\"choices\":[{\"delta\":{\"content\":\"Hi\"}}]}\n\n"
	mockActionSvc.On("Execute", mock.Anything, mock.Anything).
		Return(&service.ActionResult{Stream: &failingReader{data: first, err: errors.New("connection reset")}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/study-buddy-chat", strings.NewReader(chatBody))
	rr := httptest.NewRecorder()
	handler.HandleAction(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), first))
	assert.Contains(t, rr.Body.String(), "event: error\ndata: {\"error\":\"AI gateway error\"}\n\n")
}

func TestStudyHandler_HandleAction_Buffered(t *testing.T) {
	upstream := `{"id":"gen-1","choices":[{"message":{"role":"assistant","content":"{\"title\":\"Quiz\",\"questions\":[]}"}}]}`

	handler, mockActionSvc := setupStudyHandler(t)
	mockActionSvc.On("Execute", mock.Anything, mock.MatchedBy(func(req *model.ActionRequest) bool {
		return req.Action == model.ActionGenerateQuiz && req.Topic == "Cells"
	})).Return(&service.ActionResult{Body: []byte(upstream)}, nil).Once()

	body := `{"action":"generate_quiz","topic":"Cells","messages":[{"role":"user","content":"Generate a quiz about: Cells"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/study-buddy-chat", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.HandleAction(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, upstream, rr.Body.String())
}

func TestStudyHandler_HandleAction_UpstreamErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"Rate limited", app_errors.ErrRateLimited, http.StatusTooManyRequests, `{"error":"Rate limits exceeded, please try again later."}`},
		{"Quota exceeded", app_errors.ErrQuotaExceeded, http.StatusPaymentRequired, `{"error":"Payment required, please add funds."}`},
		{"Gateway error", app_errors.ErrUpstream, http.StatusInternalServerError, `{"error":"AI gateway error"}`},
		{"Timeout", app_errors.ErrTimeout, http.StatusGatewayTimeout, `{"error":"AI gateway timeout"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockActionSvc := setupStudyHandler(t)
			mockActionSvc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/study-buddy-chat", strings.NewReader(chatBody))
			rr := httptest.NewRecorder()
			handler.HandleAction(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.JSONEq(t, tc.wantBody, rr.Body.String())
		})
	}
}

func TestStudyHandler_HandleAction_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		contains string
	}{
		{"Invalid JSON", `{invalid`, "invalid request body"},
		{"Unknown action", `{"action":"translate","messages":[{"role":"user","content":"x"}]}`, "Field 'Action' failed on the 'action' tag"},
		{"No messages", `{"action":"chat","messages":[]}`, "Field 'Messages' failed on the 'min' tag"},
		{"System role from client", `{"action":"chat","messages":[{"role":"system","content":"x"}]}`, "Field 'Role' failed on the 'oneof' tag"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// The mock has no expectations: the service must not be called.
			handler, _ := setupStudyHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/study-buddy-chat", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			handler.HandleAction(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
