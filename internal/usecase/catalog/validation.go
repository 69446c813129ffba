package catalog

import (
	"fmt"
	"strings"
)

// ValidationError reports one rejected field. Messages are the
// user-facing pt-BR strings rendered verbatim by the API.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every rejected field of one request so
// the client can surface all of them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

const (
	msgNameRequired        = "O nome é obrigatório"
	msgServiceRequired     = "O serviço é obrigatório"
	msgStatusRequired      = "O status é obrigatório"
	msgCriticalityRequired = "A criticidade é obrigatória"
	msgRiskRequired        = "O risco é obrigatório"
	msgResultRequired      = "O resultado é obrigatório"
	msgTypeRequired        = "O tipo é obrigatório"
)

type fieldCheck struct {
	field   string
	message string
	ok      bool
}

func validate(checks ...fieldCheck) error {
	var errs ValidationErrors
	for _, c := range checks {
		if !c.ok {
			errs = append(errs, ValidationError{Field: c.field, Message: c.message})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
