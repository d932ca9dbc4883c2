package services

import (
	"testing"

	"github.com/revtext/backend/internal/dto"
)

func validReview() dto.ReviewSubmission {
	return dto.ReviewSubmission{
		Nombre:     "Cafe X",
		Direccion:  "123 Main St",
		Valoracion: "4.5",
	}
}

func TestValidateReviewMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.ReviewSubmission)
		want   string
	}{
		{"no nombre", func(s *dto.ReviewSubmission) { s.Nombre = "" }, "nombre"},
		{"no direccion", func(s *dto.ReviewSubmission) { s.Direccion = "  " }, "direccion"},
		{"no valoracion", func(s *dto.ReviewSubmission) { s.Valoracion = "" }, "valoracion"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sub := validReview()
			c.mutate(&sub)

			_, verr := ValidateReview(sub)
			if verr == nil {
				t.Fatal("want validation error")
			}
			if len(verr.Missing) != 1 || verr.Missing[0] != c.want {
				t.Errorf("missing = %v, want [%s]", verr.Missing, c.want)
			}
		})
	}

	_, verr := ValidateReview(dto.ReviewSubmission{})
	if verr == nil || len(verr.Missing) != 3 {
		t.Errorf("empty submission: verr = %+v, want 3 missing fields", verr)
	}
}

// Boundary values 0 and 5 are valid; anything outside, and anything that does
// not parse, is the same out-of-range outcome.
func TestValidateReviewRating(t *testing.T) {
	accept := map[string]float64{
		"0":    0,
		"5":    5,
		"4.5":  4.5,
		"2":    2,
		" 3.3": 3.3,
	}
	for in, want := range accept {
		sub := validReview()
		sub.Valoracion = in
		val, verr := ValidateReview(sub)
		if verr != nil {
			t.Errorf("valoracion %q rejected: %v", in, verr)
			continue
		}
		if val != want {
			t.Errorf("valoracion %q parsed to %v, want %v", in, val, want)
		}
	}

	reject := []string{"-0.01", "5.01", "-1", "6", "abc", "4,5", "NaN"}
	for _, in := range reject {
		sub := validReview()
		sub.Valoracion = in
		_, verr := ValidateReview(sub)
		if verr == nil {
			t.Errorf("valoracion %q accepted, want rejection", in)
			continue
		}
		if verr.RangeField != "valoracion" {
			t.Errorf("valoracion %q: RangeField = %q, want %q", in, verr.RangeField, "valoracion")
		}
	}
}

func TestValidateMessage(t *testing.T) {
	ok := dto.MessageSubmission{De: "a@x.com", Para: "b@x.com", Asunto: "hi", Contenido: "hello"}
	if verr := ValidateMessage(ok); verr != nil {
		t.Fatalf("valid message rejected: %v", verr)
	}

	cases := []struct {
		name   string
		mutate func(*dto.MessageSubmission)
		want   string
	}{
		{"no de", func(s *dto.MessageSubmission) { s.De = "" }, "de"},
		{"no para", func(s *dto.MessageSubmission) { s.Para = "" }, "para"},
		{"no asunto", func(s *dto.MessageSubmission) { s.Asunto = "" }, "asunto"},
		{"no contenido", func(s *dto.MessageSubmission) { s.Contenido = " " }, "contenido"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sub := ok
			c.mutate(&sub)
			verr := ValidateMessage(sub)
			if verr == nil {
				t.Fatal("want validation error")
			}
			if len(verr.Missing) != 1 || verr.Missing[0] != c.want {
				t.Errorf("missing = %v, want [%s]", verr.Missing, c.want)
			}
		})
	}
}
