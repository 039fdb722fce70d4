package subsidy

import (
	"encoding/json"
	"net/http"

	calc "Surya/internal/calc"
)

type Handler struct {
	Metrics calc.Recorder
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		calc.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res := Quote(input)
	calc.Record(h.Metrics, "subsidy", nil)
	calc.WriteJSON(w, http.StatusOK, res)
}
