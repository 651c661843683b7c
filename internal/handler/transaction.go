package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/handler/dto"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/service"
)

// TransactionHandler handles HTTP requests for the ledger.
type TransactionHandler struct {
	svc    *service.TransactionService
	logger *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc *service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		svc:    svc,
		logger: logger,
	}
}

// Record handles POST /nova-transacao/{tipo}.
func (h *TransactionHandler) Record(w http.ResponseWriter, r *http.Request) {
	transactionType := chi.URLParam(r, "tipo")

	payload, err := decodePayload(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.svc.Record(r.Context(), transactionType, payload); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("transaction_recorded", "type", transactionType)

	w.WriteHeader(http.StatusOK)
}

// List handles GET /home.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.svc.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// handleServiceError maps service errors to HTTP responses.
func (h *TransactionHandler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Errors: validationErr.Messages,
		})
	case errors.Is(err, service.ErrInvalidTransactionType):
		h.writeError(w, http.StatusUnprocessableEntity, "INVALID_TYPE", "Transaction type must be entrada or saida")
	case errors.Is(err, service.ErrUnauthenticated):
		h.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing session token")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *TransactionHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
