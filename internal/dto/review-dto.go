package dto

import (
	"time"

	"github.com/revtext/backend/internal/interfaces"
)

// FilePart is one binary multipart attachment, already read into memory.
type FilePart struct {
	Filename string
	Data     []byte
}

// ReviewSubmission is the raw form input for a new review. Valoracion stays a
// string until validation parses it.
type ReviewSubmission struct {
	Nombre     string
	Direccion  string
	Valoracion string
	Imagenes   []FilePart
}

type ReviewSummary struct {
	ID          string                 `json:"id"`
	Nombre      string                 `json:"nombre"`
	Direccion   string                 `json:"direccion"`
	Coordenadas interfaces.Coordinates `json:"coordenadas"`
	Valoracion  float64                `json:"valoracion"`
}

type ReviewDetail struct {
	ReviewSummary
	AutorEmail     string    `json:"autorEmail"`
	AutorNombre    string    `json:"autorNombre,omitempty"`
	Token          string    `json:"token"`
	TokenEmision   time.Time `json:"tokenEmision"`
	TokenCaducidad time.Time `json:"tokenCaducidad"`
	TokenInfo      any       `json:"tokenInfo,omitempty"`
	Imagenes       []string  `json:"imagenes"`
	CreadoEn       time.Time `json:"creadoEn"`
}
