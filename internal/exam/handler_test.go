package exam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
)

func testRouter(svc ExamService, userID uuid.UUID) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := auth.WithClaims(req.Context(), &auth.Claims{UserID: userID.String(), Email: "student@example.com"})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/generate", h.GenerateExam)
	r.Get("/", h.ListExams)
	r.Get("/{id}", h.GetExam)
	r.Post("/{id}/submit", h.SubmitExam)
	return r
}

func TestSubmitHandler(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	userID := uuid.New()
	exam, qs := seedExam(store, userID, DefaultMarkingScheme, "A")
	router := testRouter(svc, userID)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"answers missing", `{}`, http.StatusBadRequest},
		{"answers is an object", `{"answers":{"questionId":"x"}}`, http.StatusBadRequest},
		{"answers is null", `{"answers":null}`, http.StatusBadRequest},
		{"ok", `{"answers":[{"questionId":"` + qs[0].ID.String() + `","selectedAnswer":"A","timeTaken":5.5}]}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/"+exam.ID.String()+"/submit", strings.NewReader(tt.body))

			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("code = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	if len(store.state.sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(store.state.sessions))
	}
}

func TestGenerateHandler(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	router := testRouter(svc, uuid.New())

	rec := httptest.NewRecorder()
	body := `{"examType":"QUIZ","subject":"Biology","numQuestions":3,"useQuestionBank":false}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d (body %s)", rec.Code, rec.Body.String())
	}

	var res struct {
		ExamID    string            `json:"exam_id"`
		Source    string            `json:"source"`
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != "fallback" || len(res.Questions) != 3 || res.ExamID == "" {
		t.Errorf("unexpected response %+v", res)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"subject":"Biology"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing fields: code = %d", rec.Code)
	}
}

func TestGetExamHandlerNotFound(t *testing.T) {
	svc, _ := newTestService(newMemStore())
	router := testRouter(svc, uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+uuid.NewString(), nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Exam not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
