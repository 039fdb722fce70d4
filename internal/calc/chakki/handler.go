package chakki

import (
	"encoding/json"
	"net/http"

	calc "Surya/internal/calc"
)

type Handler struct {
	Assumptions calc.Assumptions
	Metrics     calc.Recorder
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		calc.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := CalculateWith(h.Assumptions, input.MotorHP, input.SolarOption)
	calc.Record(h.Metrics, "chakki", err)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
