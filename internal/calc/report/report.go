package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	calc "Surya/internal/calc"
	chakki "Surya/internal/calc/chakki"
	solar "Surya/internal/calc/solar"
	tables "Surya/internal/tables"

	"github.com/phpdave11/gofpdf"
)

// Header identifies who the quote is for and who issues it.
type Header struct {
	Business string
	Phone    string
	Customer string
	Contact  string
	Date     time.Time

	// FontFile is an optional UTF-8 TrueType font. Without it the core
	// Helvetica font is used and text outside cp1252 prints as dots.
	FontFile string
}

type line struct {
	label string
	value string
}

func SolarQuote(w io.Writer, h Header, res solar.Result, a calc.Assumptions) error {
	lines := []line{
		{"System size", fmt.Sprintf("%d kW", res.SystemSize)},
		{"System cost", rupees(float64(res.BaseCost))},
		{"Government subsidy", rupees(float64(res.Subsidy))},
		{"Cost after subsidy", rupees(float64(res.AfterSubsidy))},
		{"Monthly generation", fmt.Sprintf("%.0f units", res.MonthlyGeneration)},
		{"Monthly savings", rupees(res.MonthlySavings)},
		{"Yearly savings", rupees(res.YearlySavings)},
		{"Payback period", fmt.Sprintf("%.1f years", res.ROI)},
		{fmt.Sprintf("%.0f-year savings", a.HorizonYears), rupees(res.LifetimeSavings(a.HorizonYears))},
	}
	notes := fmt.Sprintf("Estimate assumes %.0f units per kW per month at Rs. %.2f per unit.",
		a.SolarUnitsPerKWMonth, a.SolarTariff)
	return render(w, h, "Solar Rooftop Quote", lines, notes)
}

func ChakkiQuote(w io.Writer, h Header, res chakki.Result, a calc.Assumptions) error {
	lines := []line{
		{"Motor", res.MotorHP + " HP"},
		{"Motor cost", rupees(float64(res.MotorCost))},
		{"Solar system", fmt.Sprintf("%g kW", res.SolarKW)},
		{"Solar cost", rupees(float64(res.SolarCost))},
		{"Total cost", rupees(float64(res.TotalCost))},
		{"Output", fmt.Sprintf("%g kg/hour", res.OutputPerHour)},
		{"Monthly output", fmt.Sprintf("%.0f kg", res.MonthlyOutput)},
		{"Monthly revenue", rupees(res.MonthlyRevenue)},
		{"Solar units per month", fmt.Sprintf("%.0f units", res.SolarUnitsPerMonth)},
		{"Monthly solar savings", rupees(res.MonthlySolarSavings)},
		{"Monthly profit", rupees(res.MonthlyProfit)},
		{"Payback period", fmt.Sprintf("%d months", res.ROIMonths)},
		{"Warranty", fmt.Sprintf("motor %s, solar %s", res.Warranty.Motor, res.Warranty.Solar)},
	}
	var brands []string
	for _, b := range tables.MotorBrands() {
		brands = append(brands, fmt.Sprintf("%s (%s, %s)", b.Name, b.Category, b.Warranty))
	}
	notes := fmt.Sprintf("Estimate assumes %.0f hours x %.0f days per month at Rs. %.0f per kg, "+
		"Rs. %.0f per solar unit and Rs. %.0f monthly expenses.\nMotor brands: %s.",
		a.OperatingHoursDay, a.OperatingDaysMonth, a.ProcessingFeePerKg,
		a.ChakkiTariff, a.MiscMonthlyExpense, strings.Join(brands, ", "))
	return render(w, h, "Atta Chakki Quote", lines, notes)
}

// newDocument returns the page, the font family to use and a translator
// that every text string goes through before it is written.
func newDocument(fontFile string) (*gofpdf.Fpdf, string, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if fontFile == "" {
		return pdf, "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	}
	for _, style := range []string{"", "B", "I"} {
		pdf.AddUTF8Font(unicodeFamily, style, fontFile)
	}
	return pdf, unicodeFamily, func(s string) string { return s }
}

const unicodeFamily = "quote"

func render(w io.Writer, h Header, title string, lines []line, notes string) error {
	if h.Date.IsZero() {
		h.Date = time.Now()
	}

	pdf, family, tr := newDocument(h.FontFile)
	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont(family, "", 11)
	if h.Business != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s  %s", h.Business, h.Phone)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Customer: %s", h.Customer)))
	pdf.Ln(6)
	if h.Contact != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Contact: %s", h.Contact)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", h.Date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, l := range lines {
		pdf.SetFont(family, "", 11)
		pdf.CellFormat(70, 7, tr(l.label), "B", 0, "L", false, 0, "")
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(0, 7, tr(l.value), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
	pdf.SetFont(family, "I", 9)
	pdf.MultiCell(0, 5, tr(notes), "", "L", false)

	return pdf.Output(w)
}

// rupees formats an amount with Indian digit grouping, e.g. Rs. 3,50,000.
func rupees(v float64) string {
	whole := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")
	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		whole = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		whole = "-" + whole
	}
	return "Rs. " + whole
}
