package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	subsidy "Surya/internal/calc/subsidy"
	tables "Surya/internal/tables"

	"github.com/xuri/excelize/v2"
)

const (
	SolarSheet  = "Solar"
	ChakkiSheet = "Chakki"
	StatesSheet = "States"
)

type SubsidyImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []subsidy.Result `json:"results"`
}

// ImportSubsidy reads (state, system size kW) rows from the first sheet of an
// xlsx workbook, header row first. Rows that do not parse are skipped.
func ImportSubsidy(r io.Reader) (SubsidyImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return SubsidyImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return SubsidyImportResult{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return SubsidyImportResult{}, fmt.Errorf("empty sheet")
	}

	out := SubsidyImportResult{Results: []subsidy.Result{}}
	for _, row := range rows[1:] {
		in, err := parseSubsidyRow(row)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, subsidy.Quote(in))
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseSubsidyRow(row []string) (subsidy.Input, error) {
	// expected: state, system_size_kw
	if len(row) < 2 {
		return subsidy.Input{}, fmt.Errorf("bad row")
	}
	kw, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return subsidy.Input{}, err
	}
	if kw <= 0 {
		return subsidy.Input{}, fmt.Errorf("bad size %v", kw)
	}
	return subsidy.Input{State: strings.TrimSpace(row[0]), SystemSizeKW: kw}, nil
}

// WritePriceList writes the solar, chakki and state subsidy tables as a
// three-sheet workbook.
func WritePriceList(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SolarSheet); err != nil {
		return err
	}
	if err := writeSolar(f); err != nil {
		return err
	}
	if _, err := f.NewSheet(ChakkiSheet); err != nil {
		return err
	}
	if err := writeChakki(f); err != nil {
		return err
	}
	if _, err := f.NewSheet(StatesSheet); err != nil {
		return err
	}
	if err := writeStates(f); err != nil {
		return err
	}
	return f.Write(w)
}

func writeSolar(f *excelize.File) error {
	rows := [][]any{{"System (kW)", "Base cost", "Subsidy", "After subsidy"}}
	for _, kw := range tables.SolarSizes() {
		e, _ := tables.SolarCost(kw)
		rows = append(rows, []any{kw, e.BaseCost, e.Subsidy, e.AfterSubsidy})
	}
	return writeRows(f, SolarSheet, rows)
}

func writeChakki(f *excelize.File) error {
	rows := [][]any{{"Motor (HP)", "Solar option", "Motor cost", "Solar (kW)", "Solar cost", "Total cost", "Output (kg/h)", "Motor warranty", "Solar warranty"}}
	for _, hp := range tables.MotorHPs() {
		m, _ := tables.Motor(hp)
		if !m.RequiresOption() {
			rows = append(rows, []any{m.HP, "", m.MotorCost, m.SolarKW, m.SolarCost, m.TotalCost, m.OutputPerHour, m.Warranty.Motor, m.Warranty.Solar})
			continue
		}
		for _, key := range m.OptionKeys() {
			o, _ := m.Option(key)
			rows = append(rows, []any{m.HP, key, m.MotorCost, o.SolarKW, o.SolarCost, o.TotalCost, m.OutputPerHour, m.Warranty.Motor, m.Warranty.Solar})
		}
	}
	return writeRows(f, ChakkiSheet, rows)
}

func writeStates(f *excelize.File) error {
	rows := [][]any{{"Key", "State", "Up to 2 kW", "2-3 kW", "Above 3 kW", "Max subsidy", "Scheme"}}
	for _, key := range tables.StateKeys() {
		p, _ := tables.State(key)
		rows = append(rows, []any{p.Key, p.Name, p.Rates.UpTo2KW, p.Rates.From2To3KW, p.Rates.Above3KW, p.MaxSubsidy, p.Scheme})
	}
	return writeRows(f, StatesSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
