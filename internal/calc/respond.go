package calc

import (
	"encoding/json"
	"errors"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}

// StatusOf maps a calculation error onto an HTTP status code.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrMissingSelection), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDegenerateProjection):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error body. A degenerate projection is
// reported with the generic message only, never with figures.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	body := errorBody{Error: err.Error(), Field: FieldOf(err)}
	switch {
	case errors.Is(err, ErrDegenerateProjection):
		body.Error = ErrDegenerateProjection.Error()
	case status == http.StatusInternalServerError:
		body = errorBody{Error: "Calculation error"}
	}
	WriteJSON(w, status, body)
}

// Recorder counts calculator outcomes.
type Recorder interface {
	RecordCalculation(calculator string, err error)
}

func Record(r Recorder, calculator string, err error) {
	if r != nil {
		r.RecordCalculation(calculator, err)
	}
}
