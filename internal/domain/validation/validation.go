// Package validation decides whether a submitted inquiry is complete enough to
// proceed and infers soft trip attributes from free-text fields. Everything in
// here is a pure function over strings.
package validation

import (
	"strconv"
	"strings"

	"sales_associate/internal/domain/entities"
)

// RequiredFields must be present and non-blank before an itinerary can be
// generated. Optional fields never affect completeness.
var RequiredFields = []string{
	entities.ColEmail,
	entities.ColFirstName,
	"Days",
	"Number_Travelers",
	"Journey_Interest",
}

type Result struct {
	IsComplete           bool
	MissingFields        []string
	CanGenerateItinerary bool
}

// ValidateQuote checks the required-field set; Days is additionally flagged
// when present but non-numeric.
func ValidateQuote(quote entities.Record) Result {
	var missing []string
	for _, field := range RequiredFields {
		if strings.TrimSpace(quote[field]) == "" {
			missing = append(missing, field)
		}
	}

	if days := strings.TrimSpace(quote["Days"]); days != "" {
		if _, err := strconv.Atoi(days); err != nil {
			missing = append(missing, "Days")
		}
	}

	return Result{
		IsComplete:           len(missing) == 0,
		MissingFields:        missing,
		CanGenerateItinerary: len(missing) == 0,
	}
}

var fieldLabels = map[string]string{
	"Email":            "Email address",
	"First_Name":       "First name",
	"Last_Name":        "Last name",
	"Days":             "Number of days",
	"Number_Travelers": "Number of travelers",
	"Journey_Interest": "Journey interest",
	"Start_City":       "Starting city",
	"End_City":         "Ending city",
	"Journey_Type":     "Type of journey (Desert, Coast, Mountains, etc.)",
	"Budget":           "Budget",
	"Language":         "Preferred guide language",
	"Start_Date":       "Travel dates",
}

// FieldLabel maps an internal column name to its user-facing label.
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

func MissingFieldLabels(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = FieldLabel(f)
	}
	return out
}

// InferJourneyType buckets a free-text journey interest into a category.
func InferJourneyType(journeyInterest string) string {
	interest := strings.ToLower(journeyInterest)
	contains := func(terms ...string) bool {
		for _, t := range terms {
			if strings.Contains(interest, t) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("sahara", "desert", "dunes"):
		return "Desert"
	case contains("coast", "essaouira", "beach"):
		return "Coast"
	case contains("atlas", "mountain", "trek"):
		return "Mountains"
	case contains("imperial", "cities", "fes", "marrakech"):
		return "Imperial Cities"
	case contains("rif", "chefchaouen", "north"):
		return "Northern"
	default:
		return "Mixed"
	}
}

// InferCities guesses start/end cities from the journey interest text. Most
// journeys start and end in Marrakech.
func InferCities(journeyInterest string) (start, end string) {
	interest := strings.ToLower(journeyInterest)
	start, end = "Marrakech", "Marrakech"

	if strings.Contains(interest, "fes to") || strings.Contains(interest, "from fes") {
		start = "Fes"
	}
	if strings.Contains(interest, "to fes") || strings.Contains(interest, "ending in fes") {
		end = "Fes"
	}
	if strings.Contains(interest, "casablanca") {
		if strings.Contains(interest, "from casablanca") {
			start = "Casablanca"
		} else {
			end = "Casablanca"
		}
	}
	if strings.Contains(interest, "tangier") {
		if strings.Contains(interest, "from tangier") {
			start = "Tangier"
		} else {
			end = "Tangier"
		}
	}
	return start, end
}

// Hospitality tiers by total budget.
const (
	HospitalityEssentials = "ESSENTIALS"
	HospitalityBoutique   = "BOUTIQUE"
	HospitalitySignature  = "SIGNATURE"
)

// InferHospitalityLevel buckets a budget into a hospitality tier. A budget
// that does not parse defaults to the middle tier.
func InferHospitalityLevel(budget string) string {
	n, err := strconv.Atoi(strings.TrimSpace(budget))
	if err != nil {
		return HospitalityBoutique
	}
	switch {
	case n < 2000:
		return HospitalityEssentials
	case n < 5000:
		return HospitalityBoutique
	default:
		return HospitalitySignature
	}
}
