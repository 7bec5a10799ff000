package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"

	"todo-api/internal/metrics"
	"todo-api/internal/models"
	"todo-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubTodoService records calls and returns canned results
type stubTodoService struct {
	todos     []*models.Todo
	createErr error
	listErr   error
	healthErr error
	created   []*services.CreateTodoRequest
}

func (s *stubTodoService) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.todos, nil
}

func (s *stubTodoService) CreateTodo(ctx context.Context, req *services.CreateTodoRequest) (*models.Todo, error) {
	s.created = append(s.created, req)
	if s.createErr != nil {
		return nil, s.createErr
	}
	todo := models.NewTodo(req.Title)
	todo.ID = int64(len(s.created))
	return todo, nil
}

func (s *stubTodoService) Health(ctx context.Context) error {
	return s.healthErr
}

func setupRouter(t *testing.T, svc services.TodoService) (*gin.Engine, *metrics.Collector) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	collector := metrics.NewCollector()
	reg, err := metrics.NewRegistry(collector)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		TodoService: svc,
		Metrics:     collector,
		Registry:    reg,
		Logger:      logger,
	})
	return router, collector
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTodo(t *testing.T) {
	svc := &stubTodoService{}
	router, _ := setupRouter(t, svc)

	w := doRequest(router, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}

	var resp services.CreateTodoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Message != "Todo added!" || resp.ID != 1 {
		t.Errorf("response = %+v", resp)
	}
	if len(svc.created) != 1 || svc.created[0].Title != "Buy milk" {
		t.Errorf("service saw %+v", svc.created)
	}
}

func TestCreateTodo_BadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		createErr error
		reachSvc  bool
	}{
		{"malformed JSON", `{"title":`, nil, false},
		{"wrong type", `{"title":42}`, nil, false},
		{"validation error", `{}`, fmt.Errorf("%w: title missing", services.ErrValidation), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTodoService{createErr: tt.createErr}
			router, _ := setupRouter(t, svc)

			w := doRequest(router, http.MethodPost, "/todos", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if got := len(svc.created) > 0; got != tt.reachSvc {
				t.Errorf("service reached = %v, want %v", got, tt.reachSvc)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if resp.Error == "" {
				t.Error("error response should name the error")
			}
		})
	}
}

func TestCreateTodo_ValidationDetails(t *testing.T) {
	// The real service produces validator errors for a missing title
	svc := services.NewTodoService(nil, nil)
	router, _ := setupRouter(t, svc)

	w := doRequest(router, http.MethodPost, "/todos", `{"title":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "title" || resp.Details[0].Tag != "notblank" {
		t.Errorf("details = %+v", resp.Details)
	}
}

func TestCreateTodo_StorageFailure(t *testing.T) {
	svc := &stubTodoService{createErr: fmt.Errorf("%w: disk gone", services.ErrStorageUnavailable)}
	router, _ := setupRouter(t, svc)

	w := doRequest(router, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "disk gone") {
		t.Error("internal error details should not leak to clients")
	}
}

func TestCreateTodo_RequiresJSONContentType(t *testing.T) {
	svc := &stubTodoService{}
	router, _ := setupRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader("title=Buy+milk"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", w.Code)
	}
	if len(svc.created) != 0 {
		t.Error("service should not be reached")
	}
}

func TestListTodos(t *testing.T) {
	svc := &stubTodoService{todos: []*models.Todo{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Walk dog", Completed: true},
	}}
	router, _ := setupRouter(t, svc)

	w := doRequest(router, http.MethodGet, "/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	want := `[{"id":1,"title":"Buy milk","completed":false},{"id":2,"title":"Walk dog","completed":true}]`
	if got := w.Body.String(); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestListTodos_Empty(t *testing.T) {
	router, _ := setupRouter(t, &stubTodoService{todos: []*models.Todo{}})

	w := doRequest(router, http.MethodGet, "/todos", "")
	if got := w.Body.String(); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestListTodos_StorageFailure(t *testing.T) {
	router, _ := setupRouter(t, &stubTodoService{listErr: services.ErrStorageUnavailable})

	w := doRequest(router, http.MethodGet, "/todos", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestHello(t *testing.T) {
	router, collector := setupRouter(t, &stubTodoService{})

	for i := 0; i < 3; i++ {
		w := doRequest(router, http.MethodGet, "/", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.HasPrefix(w.Body.String(), "Hello from the Todo backend! Hostname: ") {
			t.Errorf("body = %q", w.Body.String())
		}
	}

	if got := testutil.ToFloat64(collector.RequestsTotal()); got != 3 {
		t.Errorf("request counter = %v, want 3", got)
	}
}

func TestHello_HostnameFailure(t *testing.T) {
	h := NewHelloHandler(nil)
	h.hostname = func() (string, error) { return "", errors.New("no hostname") }

	router := gin.New()
	router.GET("/", h.Hello)

	w := doRequest(router, http.MethodGet, "/", "")
	if got := w.Body.String(); got != "Hello from the Todo backend! Hostname: unknown\n" {
		t.Errorf("body = %q", got)
	}
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t, &stubTodoService{})

	w := doRequest(router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	router, _ = setupRouter(t, &stubTodoService{healthErr: services.ErrStorageUnavailable})
	w = doRequest(router, http.MethodGet, "/health", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status field = %q, want unhealthy", resp.Status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubTodoService{})

	doRequest(router, http.MethodGet, "/", "")
	w := doRequest(router, http.MethodGet, "/metrics", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "my_app_requests_total 1") {
		t.Errorf("metrics output missing counter:\n%s", w.Body.String())
	}
}
