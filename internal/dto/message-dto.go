package dto

import "time"

// MessageSubmission is the raw form input for a new message. AdjuntoURL is an
// optional caller-supplied URL used when no binary attachment is sent.
type MessageSubmission struct {
	De         string
	Para       string
	Asunto     string
	Contenido  string
	Adjunto    *FilePart
	AdjuntoURL string
}

type MessageHeader struct {
	ID     string    `json:"id"`
	De     string    `json:"de"`
	Para   string    `json:"para"`
	Asunto string    `json:"asunto"`
	Stamp  time.Time `json:"stamp"`
}

type MessageCreated struct {
	ID     string    `json:"id"`
	De     string    `json:"de"`
	Para   string    `json:"para"`
	Asunto string    `json:"asunto"`
	Stamp  time.Time `json:"stamp"`
}
