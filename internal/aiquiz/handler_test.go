package aiquiz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubProvider struct {
	questions []Question
	err       error
}

func (s stubProvider) SendPrompt(context.Context, string, string) ([]Question, error) {
	return s.questions, s.err
}

func TestServiceWithoutProvider(t *testing.T) {
	_, err := NewService(nil).GenerateQuestions(context.Background(), QuestionRequest{Count: 1})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestGenerateQuestionsHandler(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		body     string
		want     int
	}{
		{name: "invalid json", provider: stubProvider{}, body: `{`, want: http.StatusBadRequest},
		{name: "missing subject", provider: stubProvider{}, body: `{"examType":"NEET","count":2}`, want: http.StatusBadRequest},
		{name: "upstream failure", provider: stubProvider{err: errors.New("429")}, body: `{"examType":"NEET","subject":"Biology","count":2}`, want: http.StatusServiceUnavailable},
		{name: "ok", provider: stubProvider{questions: []Question{{Question: "Q?"}}}, body: `{"examType":"NEET","subject":"Biology","count":1}`, want: http.StatusCreated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(NewService(tc.provider))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			h.GenerateQuestions(rec, req)

			if rec.Code != tc.want {
				t.Errorf("code = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}
