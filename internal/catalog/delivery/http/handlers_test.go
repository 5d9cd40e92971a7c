package http

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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"catalog-service/config"
	"catalog-service/internal/catalog"
	"catalog-service/internal/middleware"
	"catalog-service/pkg/response"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock usecase with programmable behavior per method.
type mockUseCase struct {
	createOut catalog.CreateItemOutput
	createErr error
	listOut   catalog.ListItemsOutput
	listErr   error
	detailOut catalog.DetailItemOutput
	detailErr error
	updateOut catalog.UpdateItemOutput
	updateErr error
	deleteErr error
}

func (m *mockUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

const testItemID = "7b0d1c2e-3f4a-4b5c-8d6e-9f0a1b2c3d4e"

func newTestRouter(t *testing.T, uc catalog.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := middleware.New(&mockLogger{}, &config.Config{})
	r := gin.New()
	r.Use(mw.Recovery(), mw.ErrorHandler())

	h := New(&mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1/catalog"), h, mw)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestCreateSuccess(t *testing.T) {
	uc := &mockUseCase{createOut: catalog.CreateItemOutput{
		Item: catalog.Item{ID: testItemID, SKU: "ABC-1", Name: "Widget", Status: catalog.StatusActive},
	}}
	r := newTestRouter(t, uc)

	w := doJSON(r, http.MethodPost, "/api/v1/catalog/items",
		`{"sku":"ABC-1","name":"Widget","price_cents":999,"quantity":3}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResp(t, w)
	if !resp.Success {
		t.Error("expected success=true")
	}
}

func TestCreateValidationError(t *testing.T) {
	r := newTestRouter(t, &mockUseCase{})

	// Missing required sku and name.
	w := doJSON(r, http.MethodPost, "/api/v1/catalog/items", `{"price_cents":10}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResp(t, w)
	if resp.Error != response.MessageValidation {
		t.Errorf("expected %q, got %q", response.MessageValidation, resp.Error)
	}
	details, ok := resp.Details.([]any)
	if !ok || len(details) == 0 {
		t.Errorf("expected field details, got %v", resp.Details)
	}
}

func TestCreateMalformedBody(t *testing.T) {
	r := newTestRouter(t, &mockUseCase{})

	w := doJSON(r, http.MethodPost, "/api/v1/catalog/items", `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeResp(t, w)
	if resp.Error != "invalid request body" {
		t.Errorf("unexpected message: %q", resp.Error)
	}
	if resp.Details != nil {
		t.Error("malformed body must not produce details")
	}
}

func TestCreateDuplicateSKU(t *testing.T) {
	uc := &mockUseCase{createErr: fmt.Errorf("insert item: %w",
		&pgconn.PgError{Code: "23505", ConstraintName: "catalog_items_sku_key"})}
	r := newTestRouter(t, uc)

	w := doJSON(r, http.MethodPost, "/api/v1/catalog/items",
		`{"sku":"DUP-1","name":"Widget"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResp(t, w)
	if resp.Error != response.MessageConflict {
		t.Errorf("expected %q, got %q", response.MessageConflict, resp.Error)
	}
}

func TestDetailInvalidID(t *testing.T) {
	r := newTestRouter(t, &mockUseCase{})

	w := doJSON(r, http.MethodGet, "/api/v1/catalog/items/not-a-uuid", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeResp(t, w)
	if resp.Error != "invalid item id" {
		t.Errorf("unexpected message: %q", resp.Error)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: fmt.Errorf("get item: %w", pgx.ErrNoRows)}
	r := newTestRouter(t, uc)

	w := doJSON(r, http.MethodGet, "/api/v1/catalog/items/"+testItemID, "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResp(t, w)
	if resp.Error != response.MessageNotFound {
		t.Errorf("expected %q, got %q", response.MessageNotFound, resp.Error)
	}
}

func TestUpdatePriceLocked(t *testing.T) {
	uc := &mockUseCase{updateErr: catalog.ErrPriceLocked}
	r := newTestRouter(t, uc)

	w := doJSON(r, http.MethodPut, "/api/v1/catalog/items/"+testItemID,
		`{"name":"Widget","price_cents":500,"quantity":1}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResp(t, w)
	if resp.Error != "price cannot be changed on a discontinued item" {
		t.Errorf("unexpected message: %q", resp.Error)
	}
}

func TestListInvalidStatusFilter(t *testing.T) {
	r := newTestRouter(t, &mockUseCase{})

	w := doJSON(r, http.MethodGet, "/api/v1/catalog/items?status=retired", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUnknownErrorHidesDetail(t *testing.T) {
	uc := &mockUseCase{listErr: errors.New("connection reset by postgres at 10.1.2.3")}
	r := newTestRouter(t, uc)

	w := doJSON(r, http.MethodGet, "/api/v1/catalog/items", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decodeResp(t, w)
	if resp.Error != response.MessageInternal {
		t.Errorf("internal detail leaked: %q", resp.Error)
	}
	if strings.Contains(w.Body.String(), "10.1.2.3") {
		t.Error("raw error text leaked into response body")
	}
}

func TestDeleteSuccess(t *testing.T) {
	r := newTestRouter(t, &mockUseCase{})

	w := doJSON(r, http.MethodDelete, "/api/v1/catalog/items/"+testItemID, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResp(t, w)
	if !resp.Success {
		t.Error("expected success=true")
	}
}
