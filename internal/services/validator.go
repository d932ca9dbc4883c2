package services

import (
	"strconv"
	"strings"

	"github.com/revtext/backend/internal/dto"
)

// ValidateReview checks the review submission and returns the parsed rating.
// Pure: no I/O happens here or in ValidateMessage.
func ValidateReview(sub dto.ReviewSubmission) (float64, *ValidationError) {
	missing := []string{}
	if strings.TrimSpace(sub.Nombre) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(sub.Direccion) == "" {
		missing = append(missing, "direccion")
	}
	if strings.TrimSpace(sub.Valoracion) == "" {
		missing = append(missing, "valoracion")
	}
	if len(missing) > 0 {
		return 0, &ValidationError{Missing: missing}
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(sub.Valoracion), 64)
	if err != nil || val < 0 || val > 5 {
		return 0, &ValidationError{RangeField: "valoracion"}
	}

	return val, nil
}

func ValidateMessage(sub dto.MessageSubmission) *ValidationError {
	missing := []string{}
	if strings.TrimSpace(sub.De) == "" {
		missing = append(missing, "de")
	}
	if strings.TrimSpace(sub.Para) == "" {
		missing = append(missing, "para")
	}
	if strings.TrimSpace(sub.Asunto) == "" {
		missing = append(missing, "asunto")
	}
	if strings.TrimSpace(sub.Contenido) == "" {
		missing = append(missing, "contenido")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	return nil
}
