package validation

import (
	"testing"

	"sales_associate/internal/domain/entities"
)

func completeQuote() entities.Record {
	return entities.Record{
		"Email":            "guest@example.com",
		"First_Name":       "Aline",
		"Days":             "7",
		"Number_Travelers": "2",
		"Journey_Interest": "Sahara and the coast",
	}
}

func TestValidateQuote(t *testing.T) {
	t.Run("complete quote", func(t *testing.T) {
		res := ValidateQuote(completeQuote())
		if !res.IsComplete || !res.CanGenerateItinerary {
			t.Fatalf("expected complete, got %+v", res)
		}
		if len(res.MissingFields) != 0 {
			t.Fatalf("expected no missing fields, got %v", res.MissingFields)
		}
	})

	t.Run("each required field reported when missing", func(t *testing.T) {
		for _, field := range []string{"Email", "First_Name", "Days", "Number_Travelers", "Journey_Interest"} {
			q := completeQuote()
			q[field] = "   "
			res := ValidateQuote(q)
			if res.IsComplete {
				t.Fatalf("field %s: expected incomplete", field)
			}
			found := false
			for _, m := range res.MissingFields {
				if m == field {
					found = true
				}
			}
			if !found {
				t.Fatalf("field %s not reported in %v", field, res.MissingFields)
			}
		}
	})

	t.Run("non-numeric days flagged", func(t *testing.T) {
		q := completeQuote()
		q["Days"] = "about a week"
		res := ValidateQuote(q)
		if res.IsComplete {
			t.Fatal("expected incomplete")
		}
		if got := res.MissingFields; len(got) != 1 || got[0] != "Days" {
			t.Fatalf("expected [Days], got %v", got)
		}
	})
}

func TestInferJourneyType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3 nights in the Sahara dunes", "Desert"},
		{"Atlas mountain trek", "Mountains"},
		{"beach time near Essaouira", "Coast"},
		{"Imperial cities tour", "Imperial Cities"},
		{"Chefchaouen and the Rif", "Northern"},
		{"", "Mixed"},
		{"something unusual", "Mixed"},
	}
	for _, c := range cases {
		if got := InferJourneyType(c.in); got != c.want {
			t.Fatalf("InferJourneyType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInferCities(t *testing.T) {
	t.Run("default hub", func(t *testing.T) {
		start, end := InferCities("desert circuit")
		if start != "Marrakech" || end != "Marrakech" {
			t.Fatalf("got %s/%s", start, end)
		}
	})

	t.Run("from fes to casablanca", func(t *testing.T) {
		start, end := InferCities("from Fes to Casablanca")
		if start != "Fes" || end != "Casablanca" {
			t.Fatalf("got %s/%s", start, end)
		}
	})

	t.Run("from tangier", func(t *testing.T) {
		start, _ := InferCities("starting from Tangier")
		if start != "Tangier" {
			t.Fatalf("got start %s", start)
		}
	})
}

func TestInferHospitalityLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1500", HospitalityEssentials},
		{"3000", HospitalityBoutique},
		{"9000", HospitalitySignature},
		{"5000", HospitalitySignature},
		{"abc", HospitalityBoutique},
		{"", HospitalityBoutique},
	}
	for _, c := range cases {
		if got := InferHospitalityLevel(c.in); got != c.want {
			t.Fatalf("InferHospitalityLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
