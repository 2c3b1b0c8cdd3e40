package risk

import (
	"fmt"
	"strings"
)

// Domain identifies one of the independently scored risk categories.
type Domain string

const (
	DomainBleeding     Domain = "bleeding"
	DomainHypoglycemia Domain = "hypoglycemia"
	DomainAKI          Domain = "aki"
	DomainComorbidity  Domain = "comorbidity"
)

// ParseDomain maps caller-supplied labels onto the known domains. Unrecognized
// labels pass through unchanged so ComposeAlert can take its generic branch.
func ParseDomain(s string) Domain {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bleeding":
		return DomainBleeding
	case "hypoglycemia", "hypoglycemic":
		return DomainHypoglycemia
	case "aki":
		return DomainAKI
	case "comorbidity", "fragility":
		return DomainComorbidity
	}
	return Domain(s)
}

// Alert is the human-readable explanation of an escalated risk score: a
// severity headline, the drivers actually present in the record in a fixed
// priority order, and a fixed suggested action for the domain.
type Alert struct {
	Domain   Domain   `json:"domain"`
	Headline string   `json:"headline"`
	Drivers  []string `json:"drivers"`
	Action   string   `json:"action,omitempty"`
}

// ComposeAlert builds the alert for one domain. The caller decides when
// escalation is warranted; the composer always reports whichever qualifying
// drivers are present, even if none are. Domains without a dedicated alert
// fall back to a generic headline with no driver list.
func ComposeAlert(d Domain, r PatientRecord) Alert {
	switch d {
	case DomainBleeding:
		var drivers []string
		if r.INR > 3.5 {
			drivers = append(drivers, fmt.Sprintf("INR (%.1f) high", r.INR))
		}
		if r.OnAntiplatelet {
			drivers = append(drivers, "Antiplatelet therapy")
		}
		if r.HistGIBleed {
			drivers = append(drivers, "Prior GI bleed")
		}
		if r.AntibioticOrder {
			drivers = append(drivers, "Recent antibiotic")
		}
		if r.AlcoholUse {
			drivers = append(drivers, "Alcohol use")
		}
		if r.PriorStroke {
			drivers = append(drivers, "History of stroke/TIA")
		}
		if r.LiverDisease {
			drivers = append(drivers, "Liver disease")
		}
		return Alert{
			Domain:   d,
			Headline: "CRITICAL BLEEDING RISK detected",
			Drivers:  drivers,
			Action:   "Recheck INR, monitor bleeding, reassess meds.",
		}
	case DomainHypoglycemia:
		var drivers []string
		if r.ImpairedRenal {
			drivers = append(drivers, "Impaired renal function")
		}
		if r.HighHbA1c {
			drivers = append(drivers, "Poor diabetes control")
		}
		if r.RecentDKA {
			drivers = append(drivers, "Recent DKA/HHS")
		}
		if r.Weight < 60 {
			drivers = append(drivers, "Low body weight")
		}
		return Alert{
			Domain:   d,
			Headline: "CRITICAL HYPOGLYCEMIA RISK detected",
			Drivers:  drivers,
			Action:   "Review insulin dose, monitor glucose, check renal panel.",
		}
	case DomainAKI:
		var drivers []string
		if r.BaselineCreat > 1.5 {
			drivers = append(drivers, fmt.Sprintf("Creatinine (%.1f) elevated", r.BaselineCreat))
		}
		if r.ActiveChemo {
			drivers = append(drivers, "Active chemotherapy")
		}
		if r.OnACEiARB {
			drivers = append(drivers, "ACEi/ARB therapy")
		}
		if r.OnDiuretic {
			drivers = append(drivers, "Diuretics")
		}
		if r.ContrastExposure {
			drivers = append(drivers, "Contrast dye")
		}
		return Alert{
			Domain:   d,
			Headline: "HIGH RISK OF AKI detected",
			Drivers:  drivers,
			Action:   "Check BMP, hydrate, hold nephrotoxic meds.",
		}
	default:
		return Alert{Domain: d, Headline: "High clinical risk detected"}
	}
}
