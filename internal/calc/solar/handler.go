package solar

import (
	"encoding/json"
	"net/http"

	calc "Surya/internal/calc"
)

// Response adds the display-time lifetime figure to a Result.
type Response struct {
	Result
	HorizonYears    float64 `json:"horizon_years"`
	LifetimeSavings float64 `json:"lifetime_savings"`
}

func NewResponse(res Result, a calc.Assumptions) Response {
	return Response{
		Result:          res,
		HorizonYears:    a.HorizonYears,
		LifetimeSavings: res.LifetimeSavings(a.HorizonYears),
	}
}

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
	res, err := CalculateWith(h.Assumptions, input.SystemSizeKW)
	calc.Record(h.Metrics, "solar", err)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, NewResponse(res, h.Assumptions))
}
