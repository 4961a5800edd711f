package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bankmanager/internal/core"
)

type Handler struct {
	service DirectoryService
	logger  core.Logger
}

func NewHandler(service DirectoryService, logger core.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// decode reads a JSON body into req and runs its validation tags. It writes
// the 400 response itself and reports whether the caller may continue.
func decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		badRequest(w, "Invalid request body")
		return false
	}

	if err := validate.Struct(req); err != nil {
		badRequest(w, "Validation failed: "+err.Error())
		return false
	}

	return true
}

func (h Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, core.ErrDuplicateName):
		writeError(w, http.StatusConflict, "DUPLICATE_NAME", err.Error())
	case errors.Is(err, core.ErrAccountLimit):
		writeError(w, http.StatusConflict, "ACCOUNT_LIMIT", err.Error())
	case errors.Is(err, core.ErrNonZeroBalance):
		writeError(w, http.StatusConflict, "NON_ZERO_BALANCE", err.Error())
	case errors.Is(err, core.ErrInsufficientFunds):
		writeError(w, http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", err.Error())
	case errors.Is(err, core.ErrInvalidAmount):
		writeError(w, http.StatusUnprocessableEntity, "INVALID_AMOUNT", err.Error())
	case errors.Is(err, core.ErrSameAccount):
		writeError(w, http.StatusUnprocessableEntity, "SAME_ACCOUNT", err.Error())
	default:
		h.logger.ErrorContext(ctx, "Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, chi.URLParam(r, name))
	}

	return v, nil
}

func bankID(r *http.Request) (int, error) {
	return intParam(r, "bankID")
}

func branchRef(r *http.Request) (core.BranchRef, error) {
	id, err := bankID(r)
	if err != nil {
		return core.BranchRef{}, err
	}
	code, err := intParam(r, "code")
	if err != nil {
		return core.BranchRef{}, err
	}

	return core.BranchRef{BankID: id, BranchCode: code}, nil
}

func customerRef(r *http.Request) (core.CustomerRef, error) {
	br, err := branchRef(r)
	if err != nil {
		return core.CustomerRef{}, err
	}
	id, err := intParam(r, "customerID")
	if err != nil {
		return core.CustomerRef{}, err
	}

	return core.CustomerRef{BranchRef: br, CustomerID: id}, nil
}

func accountRef(r *http.Request) (core.AccountRef, error) {
	cr, err := customerRef(r)
	if err != nil {
		return core.AccountRef{}, err
	}
	number, err := intParam(r, "number")
	if err != nil {
		return core.AccountRef{}, err
	}

	return core.AccountRef{CustomerRef: cr, AccountNumber: number}, nil
}

// PostSnapshot persists the whole directory.
func (h Handler) PostSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Save(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to save directory", "error", err)
		writeError(w, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save directory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
