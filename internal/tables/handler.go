package tables

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type SolarRow struct {
	SystemSizeKW int `json:"system_size_kw"`
	SolarCostEntry
}

// Handler serves the reference tables read-only.
type Handler struct{}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Solar(w http.ResponseWriter, r *http.Request) {
	rows := make([]SolarRow, 0, len(solarSizes))
	for _, kw := range SolarSizes() {
		e, _ := SolarCost(kw)
		rows = append(rows, SolarRow{SystemSizeKW: kw, SolarCostEntry: e})
	}
	writeJSON(w, rows)
}

func (h *Handler) Chakki(w http.ResponseWriter, r *http.Request) {
	rows := make([]MotorConfig, 0, len(motorOrder))
	for _, hp := range MotorHPs() {
		m, _ := Motor(hp)
		rows = append(rows, m)
	}
	writeJSON(w, rows)
}

func (h *Handler) MotorBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, MotorBrands())
}

func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	rows := make([]StateProfile, 0, len(stateOrder))
	for _, key := range StateKeys() {
		p, _ := State(key)
		rows = append(rows, p)
	}
	writeJSON(w, rows)
}

// State serves one profile; unknown keys get the fallback profile.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ResolveState(mux.Vars(r)["key"]))
}
