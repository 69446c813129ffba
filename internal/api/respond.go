package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/errs"
	"qaboard/internal/ports"
	"qaboard/internal/usecase/catalog"
	"qaboard/internal/usecase/exchange"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string                    `json:"error"`
	Details []catalog.ValidationError `json:"details,omitempty"`
}

// writeError maps usecase errors to the API contract: 400 with field
// details for validation, 404 for missing records, 500 with a generic
// pt-BR message for everything else.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs catalog.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Details: verrs,
		})
		return
	}

	var unknown exchange.ErrUnknownEntity
	if errors.As(err, &unknown) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Recurso não encontrado"})
		return
	}

	if isNotFound(err) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Registro não encontrado"})
		return
	}

	logging.Error(r.Context(), "request failed", slog.Any("error", errs.Loggable(err)))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Erro interno do servidor"})
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		ports.ErrServiceNotFound,
		ports.ErrTestCaseNotFound,
		ports.ErrTestNotFound,
		ports.ErrBugNotFound,
		ports.ErrImprovementNotFound,
		ports.ErrPlanNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}
