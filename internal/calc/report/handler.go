package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	calc "Surya/internal/calc"
	chakki "Surya/internal/calc/chakki"
	solar "Surya/internal/calc/solar"
)

type SolarInput struct {
	Customer     string `json:"customer"`
	Phone        string `json:"phone"`
	SystemSizeKW int    `json:"system_size_kw"`
}

type ChakkiInput struct {
	Customer    string `json:"customer"`
	Phone       string `json:"phone"`
	MotorHP     string `json:"motor_hp"`
	SolarOption string `json:"solar_option,omitempty"`
}

type Handler struct {
	Business    string
	Phone       string
	FontFile    string
	Assumptions calc.Assumptions
	Metrics     calc.Recorder
}

func (h *Handler) header(customer, phone string) Header {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		customer = "Valued customer"
	}
	return Header{
		Business: h.Business,
		Phone:    h.Phone,
		Customer: customer,
		Contact:  strings.TrimSpace(phone),
		FontFile: h.FontFile,
	}
}

func (h *Handler) Solar(w http.ResponseWriter, r *http.Request) {
	var input SolarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		calc.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := solar.CalculateWith(h.Assumptions, input.SystemSizeKW)
	calc.Record(h.Metrics, "solar_report", err)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := SolarQuote(&buf, h.header(input.Customer, input.Phone), res, h.Assumptions); err != nil {
		calc.WriteMessage(w, http.StatusInternalServerError, "Report generation error")
		return
	}
	writePDF(w, "solar-quote.pdf", buf.Bytes())
}

func (h *Handler) Chakki(w http.ResponseWriter, r *http.Request) {
	var input ChakkiInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		calc.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := chakki.CalculateWith(h.Assumptions, input.MotorHP, input.SolarOption)
	calc.Record(h.Metrics, "chakki_report", err)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := ChakkiQuote(&buf, h.header(input.Customer, input.Phone), res, h.Assumptions); err != nil {
		calc.WriteMessage(w, http.StatusInternalServerError, "Report generation error")
		return
	}
	writePDF(w, "chakki-quote.pdf", buf.Bytes())
}

func writePDF(w http.ResponseWriter, name string, b []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	w.Write(b)
}
