package risk

// The scorers below are transparent rule tables: each factor carries a fixed,
// independently tunable point value, contributions are summed, and the total
// is clamped to [0,100]. None of the weights come from a fitted model; the
// engine is meant to be auditable line by line.

// BleedingScore estimates bleeding risk on a 0-100 scale.
func BleedingScore(r PatientRecord) int {
	score := 0
	if r.OnAnticoagulant {
		score += 35
	}
	if r.INR > 3.5 {
		score += 40
	}
	if r.HistGIBleed {
		score += 30
	}
	if r.OnAntiplatelet {
		score += 15
	}
	if r.AntibioticOrder {
		score += 25
	}
	if r.AlcoholUse {
		score += 15
	}
	if r.LiverDisease {
		score += 20
	}
	if r.DietaryChange {
		score += 10
	}
	if r.Age > 70 {
		score += 10
	}
	if r.UncontrolledBP {
		score += 10
	}
	if r.Smoking {
		score += 10
	}
	if r.Gender == GenderFemale {
		score += 5
	}
	if r.Weight > 120 || r.Weight < 50 {
		score += 15
	}
	if r.PriorStroke {
		score += 15
	}
	return capScore(score)
}

// HypoglycemiaScore estimates hypoglycemia risk on a 0-100 scale.
func HypoglycemiaScore(r PatientRecord) int {
	score := 0
	if r.OnInsulin {
		score += 30
	}
	if r.ImpairedRenal {
		score += 45
	}
	if r.HighHbA1c {
		score += 20
	}
	if r.NeuropathyHistory {
		score += 10
	}
	if r.Weight < 60 {
		score += 10
	}
	if r.RecentDKA {
		score += 20
	}
	return capScore(score)
}

// AKIScore estimates acute kidney injury risk on a 0-100 scale. Gender and
// weight are accepted with the rest of the record but contribute nothing.
func AKIScore(r PatientRecord) int {
	score := 0
	if r.OnDiuretic {
		score += 30
	}
	if r.OnACEiARB {
		score += 40
	}
	if r.ContrastExposure {
		score += 25
	}
	if r.Age > 75 {
		score += 20
	}
	if r.UncontrolledBP {
		score += 10
	}
	if r.ActiveChemo {
		score += 20
	}
	if r.Race == RaceNonHispanicBlack {
		score += 15
	}
	if r.BaselineCreat > 1.5 {
		score += 30
	}
	return capScore(score)
}

// ComorbidityLoad estimates overall comorbidity burden (clinical fragility
// index) on a 0-100 scale.
func ComorbidityLoad(r PatientRecord) int {
	load := 0
	if r.PriorStroke {
		load += 25
	}
	if r.ActiveChemo {
		load += 30
	}
	if r.RecentDKA {
		load += 20
	}
	if r.LiverDisease {
		load += 15
	}
	if r.Smoking {
		load += 10
	}
	if r.UncontrolledBP {
		load += 10
	}
	return capScore(load)
}

// capScore clamps to the 100 ceiling. No factor subtracts, so the floor of 0
// holds without a check.
func capScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
