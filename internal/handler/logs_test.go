package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/model"
	"github.com/ops-console/backend/internal/service"
)

type fakeLogStore struct {
	logs     []model.LogEntry
	inserted []model.LogEntry
}

func (f *fakeLogStore) GetLogs(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error) {
	return f.logs, nil
}

func (f *fakeLogStore) InsertLog(ctx context.Context, entry model.LogEntry) error {
	f.inserted = append(f.inserted, entry)
	return nil
}

func newLogsRouter(store *fakeLogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLogsHandler(service.NewLogsService(store, []string{"192.168.1.3"}))
	r.GET("/api/logs", h.GetLogs)
	r.POST("/api/action", h.RecordAction)
	return r
}

func TestGetLogsInvalidLimit(t *testing.T) {
	r := newLogsRouter(&fakeLogStore{})

	for _, raw := range []string{"abc", "0", "-5"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/logs?limit="+raw, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("limit=%q: expected 400, got %d", raw, w.Code)
		}
	}
}

func TestGetLogsAnonymizesForVisitor(t *testing.T) {
	store := &fakeLogStore{logs: []model.LogEntry{
		{ID: 1, Level: "info", Category: "action", Message: "Resume Download by visitor : 10.0.0.9"},
	}}
	r := newLogsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.RemoteAddr = "10.0.0.9:4567"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res []model.LogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if len(res) != 1 || res[0].Message != "Resume Download by Visitor" {
		t.Fatalf("response = %+v", res)
	}
	if res[0].Severity != "info" {
		t.Fatalf("severity = %q, want info", res[0].Severity)
	}
}

func TestRecordActionValidation(t *testing.T) {
	r := newLogsRouter(&fakeLogStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/action", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRecordActionSuccess(t *testing.T) {
	store := &fakeLogStore{}
	r := newLogsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/action", bytes.NewBufferString(`{"action":"Resume Download"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.9:4567"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d rows, want 1", len(store.inserted))
	}
	if store.inserted[0].Message != "Resume Download by visitor : 10.0.0.9" {
		t.Fatalf("message = %q", store.inserted[0].Message)
	}
}
