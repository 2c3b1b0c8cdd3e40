// Package interaction answers drug-drug interaction queries against a small
// static table keyed by unordered pairs of normalized drug names.
package interaction

import "strings"

// Severity is the interaction tier. It is stored explicitly beside each table
// entry so display styling never has to sniff the description text.
type Severity string

const (
	SeverityNone     Severity = "None"
	SeverityModerate Severity = "Moderate"
	SeverityMajor    Severity = "Major"
)

// Result describes one lookup. DrugA and DrugB carry the normalized names so
// callers can see what was actually matched.
type Result struct {
	DrugA       string   `json:"drugA"`
	DrugB       string   `json:"drugB"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

type pair struct{ a, b string }

type entry struct {
	severity    Severity
	description string
}

// Keys are stored with the lexically smaller name first; Check canonicalizes
// the query the same way, so either argument order matches.
var table = map[pair]entry{
	{"amiodarone", "warfarin"}:       {SeverityMajor, "Amiodarone increases INR; high bleeding risk."},
	{"aspirin", "warfarin"}:          {SeverityMajor, "Additive anticoagulation; high GI bleeding risk."},
	{"lisinopril", "spironolactone"}: {SeverityModerate, "Risk of hyperkalemia; monitor potassium."},
	{"ibuprofen", "lisinopril"}:      {SeverityModerate, "NSAID blunts ACE inhibitor effect and stresses renal function."},
	{"insulin", "metoprolol"}:        {SeverityModerate, "Beta-blockade can mask hypoglycemia symptoms."},
	{"ciprofloxacin", "warfarin"}:    {SeverityMajor, "Ciprofloxacin potentiates warfarin; recheck INR within days."},
	{"furosemide", "gentamicin"}:     {SeverityModerate, "Additive nephrotoxicity and ototoxicity risk."},
}

const noInteraction = "No major interaction found."

// Check looks up the interaction between two drug names. Names are case-folded
// and trimmed before lookup; argument order never matters. An unknown pair
// returns SeverityNone with a fixed not-found description.
func Check(drugA, drugB string) Result {
	a := normalize(drugA)
	b := normalize(drugB)
	key := pair{a, b}
	if b < a {
		key = pair{b, a}
	}
	if e, ok := table[key]; ok {
		return Result{DrugA: a, DrugB: b, Severity: e.severity, Description: e.description}
	}
	return Result{DrugA: a, DrugB: b, Severity: SeverityNone, Description: noInteraction}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
