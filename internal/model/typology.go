package model

// Typology is an appointment category (e.g. "general consultation")
type Typology struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// TypologyRequest carries the payload for creating or updating a typology
type TypologyRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
