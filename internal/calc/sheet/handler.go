package sheet

import (
	"bytes"
	"errors"
	"net/http"

	calc "Surya/internal/calc"
)

const MaxUploadSize = 5 << 20 // 5MB

type Handler struct {
	Metrics calc.Recorder
}

func (h *Handler) ImportSubsidy(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > MaxUploadSize {
		h.importFailed(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.importFailed(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		h.importFailed(w, http.StatusBadRequest, "File required")
		return
	}
	defer file.Close()

	res, err := ImportSubsidy(file)
	if err != nil {
		h.importFailed(w, http.StatusBadRequest, "Invalid file")
		return
	}
	calc.Record(h.Metrics, "subsidy_import", nil)
	calc.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) importFailed(w http.ResponseWriter, status int, msg string) {
	calc.Record(h.Metrics, "subsidy_import", calc.Invalid("file"))
	calc.WriteMessage(w, status, msg)
}

func (h *Handler) PriceList(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := WritePriceList(&buf); err != nil {
		calc.WriteMessage(w, http.StatusInternalServerError, "Price list generation error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pricelist.xlsx\"")
	w.Write(buf.Bytes())
}
