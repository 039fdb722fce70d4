package batch

import (
	"encoding/json"
	"net/http"

	calc "Surya/internal/calc"
)

type Handler struct {
	Assumptions calc.Assumptions
	Metrics     calc.Recorder
}

func (h *Handler) Solar(w http.ResponseWriter, r *http.Request) {
	var input SolarBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		calc.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := CalculateSolar(h.Assumptions, input)
	calc.Record(h.Metrics, "solar_batch", err)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
