// Package risk implements the ADE Shield scoring engine: four deterministic,
// additive-with-cap risk scorers (bleeding, hypoglycemia, AKI, comorbidity
// load), the alert composer that explains a score's drivers, and the bulk
// adapter that scores tabular patient data row by row.
package risk

// Gender categories recognized by the scorers. Anything else is treated as
// contributing no gender-linked risk.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// RaceNonHispanicBlack is the only race category that carries an AKI bonus.
const RaceNonHispanicBlack = "Non-Hispanic Black"

// PatientRecord is the flat clinical input shared by all four scorers. Field
// names mirror the snake_case column names accepted by the bulk CSV path so a
// single vocabulary covers both surfaces.
type PatientRecord struct {
	Age    float64 `json:"age"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
	Race   string  `json:"race"`

	// Bleeding domain.
	INR             float64 `json:"inr"`
	OnAnticoagulant bool    `json:"on_anticoagulant"`
	OnAntiplatelet  bool    `json:"on_antiplatelet"`
	AntibioticOrder bool    `json:"antibiotic_order"`
	AlcoholUse      bool    `json:"alcohol_use"`
	Smoking         bool    `json:"smoking"`
	UncontrolledBP  bool    `json:"uncontrolled_bp"`
	HistGIBleed     bool    `json:"hist_gi_bleed"`
	LiverDisease    bool    `json:"liver_disease"`
	PriorStroke     bool    `json:"prior_stroke"`
	DietaryChange   bool    `json:"dietary_change"`

	// Hypoglycemia domain.
	OnInsulin         bool `json:"on_insulin"`
	ImpairedRenal     bool `json:"impaired_renal"`
	HighHbA1c         bool `json:"high_hba1c"`
	NeuropathyHistory bool `json:"neuropathy_history"`
	RecentDKA         bool `json:"recent_dka"`

	// AKI domain.
	OnDiuretic       bool    `json:"on_diuretic"`
	OnACEiARB        bool    `json:"on_acei_arb"`
	ActiveChemo      bool    `json:"active_chemo"`
	ContrastExposure bool    `json:"contrast_exposure"`
	BaselineCreat    float64 `json:"baseline_creat"`
}

// Defaults holds the neutral values substituted for absent numeric and
// categorical fields. It is plain data handed to the presentation layer at
// startup; the scorers themselves hold no state.
type Defaults struct {
	Age           float64 `json:"age"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	Race          string  `json:"race"`
	INR           float64 `json:"inr"`
	BaselineCreat float64 `json:"baseline_creat"`
}

// StandardDefaults returns the widget-seeding defaults for the manual
// calculator path. The bulk path uses a 70 kg weight instead; see bulk.go.
func StandardDefaults() Defaults {
	return Defaults{
		Age:           70,
		Gender:        GenderMale,
		Weight:        75,
		Race:          "Other",
		INR:           1,
		BaselineCreat: 1,
	}
}

// Record expands the defaults into a full record with every flag false.
func (d Defaults) Record() PatientRecord {
	return PatientRecord{
		Age:           d.Age,
		Gender:        d.Gender,
		Weight:        d.Weight,
		Race:          d.Race,
		INR:           d.INR,
		BaselineCreat: d.BaselineCreat,
	}
}
