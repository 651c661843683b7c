package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/service"
)

func newTransactionTestHandler() *TransactionHandler {
	svc := service.NewTransactionService(nil, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTransactionHandler(svc, logger)
}

// recordRequest builds a POST /nova-transacao/{tipo} request with the
// route parameter wired the way chi delivers it.
func recordRequest(transactionType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/nova-transacao/"+transactionType, strings.NewReader(body))

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("tipo", transactionType)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestTransactionHandler_Record_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing value", `{"description":"salary"}`},
		{"negative value", `{"value":-5,"description":"salary"}`},
		{"zero value", `{"value":0,"description":"salary"}`},
		{"value as string", `{"value":"100","description":"salary"}`},
		{"missing description", `{"value":100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTransactionTestHandler()

			rec := httptest.NewRecorder()
			h.Record(rec, recordRequest("entrada", tt.body))

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected status 422, got %d", rec.Code)
			}

			var response struct {
				Errors []string `json:"errors"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(response.Errors) == 0 {
				t.Error("expected at least one violation message")
			}
		})
	}
}

func TestTransactionHandler_Record_InvalidType(t *testing.T) {
	for _, transactionType := range []string{"transfer", "income", "entradas"} {
		t.Run(transactionType, func(t *testing.T) {
			h := newTransactionTestHandler()

			rec := httptest.NewRecorder()
			h.Record(rec, recordRequest(transactionType, `{"value":100,"description":"salary"}`))

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected status 422, got %d", rec.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["code"] != "INVALID_TYPE" {
				t.Errorf("unexpected error code: %s", response["code"])
			}
		})
	}
}

func TestTransactionHandler_Record_MalformedJSON(t *testing.T) {
	h := newTransactionTestHandler()

	rec := httptest.NewRecorder()
	h.Record(rec, recordRequest("entrada", "{not json"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}
