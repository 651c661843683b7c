package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/metrics"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

func TestMetricsHandler_Exposition(t *testing.T) {
	recorder := metrics.NewInMemory()
	recorder.IncUserRegistered()
	recorder.IncLoginSuccess()
	recorder.IncLoginFailure()
	recorder.IncLoginFailure()
	recorder.IncTransactionRecorded(model.TypeIncome)
	recorder.IncTransactionRecorded(model.TypeExpense)
	recorder.IncTransactionRecorded(model.TypeExpense)

	h := NewMetricsHandler(recorder)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	h.Metrics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()

	expected := []string{
		"mywallet_users_registered_total 1",
		`mywallet_logins_total{status="success"} 1`,
		`mywallet_logins_total{status="failure"} 2`,
		`mywallet_transactions_recorded_total{type="entrada"} 1`,
		`mywallet_transactions_recorded_total{type="saida"} 2`,
	}

	for _, line := range expected {
		if !strings.Contains(body, line) {
			t.Errorf("metrics output missing %q", line)
		}
	}
}

func TestMetricsHandler_NilSnapshotter(t *testing.T) {
	h := NewMetricsHandler(nil)

	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}
}
