package risk

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Row is one patient's worth of raw tabular cells, keyed by column name.
// Columns that are not part of the clinical vocabulary pass through untouched.
type Row map[string]string

// Table is an in-memory tabular input: a header plus rows in file order.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Derived column names appended by ScoreTable.
const (
	ColBleedingRisk     = "Bleeding Risk"
	ColHypoglycemiaRisk = "Hypoglycemia Risk"
	ColAKIRisk          = "AKI Risk"
	ColComorbidityLoad  = "Comorbidity Load"
)

// RowFlag reports a cell that could not be parsed. The row is still scored
// with the documented default substituted for the bad cell.
type RowFlag struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// BulkResult is a scored table plus whatever cells had to be defaulted.
type BulkResult struct {
	Table Table     `json:"table"`
	Flags []RowFlag `json:"flags,omitempty"`
}

// The bulk path seeds weight at 70 kg rather than the calculator's 75.
var bulkDefaults = Defaults{
	Age:           70,
	Gender:        GenderMale,
	Weight:        70,
	Race:          "Other",
	INR:           1,
	BaselineCreat: 1,
}

// ScoreTable appends the four derived risk columns to every row. Rows are
// independent, so scoring fans out over a bounded worker pool; results are
// written back by index, preserving input order. Missing or unparseable cells
// degrade to defaults and are reported as flags, never as an error.
func ScoreTable(t Table) BulkResult {
	scored := Table{
		Columns: append(append([]string{}, t.Columns...),
			ColBleedingRisk, ColHypoglycemiaRisk, ColAKIRisk, ColComorbidityLoad),
		Rows: make([]Row, len(t.Rows)),
	}
	rowFlags := make([][]RowFlag, len(t.Rows))

	workers := runtime.NumCPU()
	if workers > len(t.Rows) {
		workers = len(t.Rows)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec, flags := recordFromRow(t.Rows[i], i)
				out := make(Row, len(t.Rows[i])+4)
				for k, v := range t.Rows[i] {
					out[k] = v
				}
				out[ColBleedingRisk] = strconv.Itoa(BleedingScore(rec))
				out[ColHypoglycemiaRisk] = strconv.Itoa(HypoglycemiaScore(rec))
				out[ColAKIRisk] = strconv.Itoa(AKIScore(rec))
				out[ColComorbidityLoad] = strconv.Itoa(ComorbidityLoad(rec))
				scored.Rows[i] = out
				rowFlags[i] = flags
			}
		}()
	}
	for i := range t.Rows {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	res := BulkResult{Table: scored}
	for _, flags := range rowFlags {
		res.Flags = append(res.Flags, flags...)
	}
	return res
}

// recordFromRow builds a fully populated record from one row, substituting
// bulk defaults for absent or unparseable cells.
func recordFromRow(row Row, idx int) (PatientRecord, []RowFlag) {
	rec := bulkDefaults.Record()
	var flags []RowFlag

	num := func(col string, dst *float64) {
		raw, ok := row[col]
		if !ok || strings.TrimSpace(raw) == "" {
			return
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			flags = append(flags, RowFlag{Row: idx, Column: col, Reason: "not a number"})
			return
		}
		*dst = v
	}
	boolean := func(col string, dst *bool) {
		raw, ok := row[col]
		if !ok {
			return
		}
		v, ok := parseFlag(raw)
		if !ok {
			flags = append(flags, RowFlag{Row: idx, Column: col, Reason: "not a boolean"})
			return
		}
		*dst = v
	}
	text := func(col string, dst *string) {
		if raw, ok := row[col]; ok && strings.TrimSpace(raw) != "" {
			*dst = strings.TrimSpace(raw)
		}
	}

	num("age", &rec.Age)
	num("weight", &rec.Weight)
	num("inr", &rec.INR)
	num("baseline_creat", &rec.BaselineCreat)
	text("gender", &rec.Gender)
	text("race", &rec.Race)

	boolean("on_anticoagulant", &rec.OnAnticoagulant)
	boolean("on_antiplatelet", &rec.OnAntiplatelet)
	boolean("antibiotic_order", &rec.AntibioticOrder)
	boolean("alcohol_use", &rec.AlcoholUse)
	boolean("smoking", &rec.Smoking)
	boolean("uncontrolled_bp", &rec.UncontrolledBP)
	boolean("hist_gi_bleed", &rec.HistGIBleed)
	boolean("liver_disease", &rec.LiverDisease)
	boolean("prior_stroke", &rec.PriorStroke)
	boolean("dietary_change", &rec.DietaryChange)
	boolean("on_insulin", &rec.OnInsulin)
	boolean("impaired_renal", &rec.ImpairedRenal)
	boolean("high_hba1c", &rec.HighHbA1c)
	boolean("neuropathy_history", &rec.NeuropathyHistory)
	boolean("recent_dka", &rec.RecentDKA)
	boolean("on_diuretic", &rec.OnDiuretic)
	boolean("on_acei_arb", &rec.OnACEiARB)
	boolean("active_chemo", &rec.ActiveChemo)
	boolean("contrast_exposure", &rec.ContrastExposure)

	return rec, flags
}

// parseFlag accepts 0/1 cells plus the usual textual spellings. Empty means
// absent, which is false.
func parseFlag(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "n":
		return false, true
	case "1", "true", "yes", "y":
		return true, true
	}
	return false, false
}
