package model

const (
	AppointmentPending      = "pendiente"
	AppointmentCompleted    = "realizada"
	AppointmentNotCompleted = "no_realizada"
)

// Appointment represents a scheduled visit. Only one date is persisted:
// FechaInicio is stored as the appointment date and FechaFin echoes it on
// reads, so appointments spanning midnight cannot be represented.
type Appointment struct {
	ID               int     `json:"id"`
	DoctoraID        int     `json:"doctoraId"`
	PacienteID       *int    `json:"pacienteId"`
	PacienteNombre   string  `json:"pacienteNombre"`
	PacienteTelefono string  `json:"pacienteTelefono"`
	PacienteEmail    string  `json:"pacienteEmail"`
	TipologiaID      int     `json:"tipologiaId"`
	FormaPagoID      int     `json:"formaPagoId"`
	Estado           string  `json:"estado"`
	NotasClinicas    string  `json:"notasClinicas"`
	Costo            float64 `json:"costo"`
	Importe          float64 `json:"importe"`
	Moneda           string  `json:"moneda"`
	FechaInicio      string  `json:"fechaInicio"` // YYYY-MM-DD
	FechaFin         string  `json:"fechaFin"`    // YYYY-MM-DD
	HoraInicio       string  `json:"horaInicio"`  // HH:MM
	HoraFin          string  `json:"horaFin"`     // HH:MM

	// Populated on list reads via a join against the assigned doctor
	DoctoraNombre   *string `json:"doctoraNombre,omitempty"`
	DoctoraApellido *string `json:"doctoraApellido,omitempty"`
	DoctoraColor    *string `json:"doctoraColor,omitempty"`
}

// AppointmentRequest carries the payload for creating or updating an
// appointment. Numeric references are pointers so a missing field can be
// told apart from a zero id.
type AppointmentRequest struct {
	DoctoraID        *int    `json:"doctoraId"`
	PacienteID       *int    `json:"pacienteId"`
	PacienteNombre   string  `json:"pacienteNombre"`
	PacienteTelefono string  `json:"pacienteTelefono"`
	PacienteEmail    string  `json:"pacienteEmail"`
	TipologiaID      *int    `json:"tipologiaId"`
	FormaPagoID      *int    `json:"formaPagoId"`
	Estado           string  `json:"estado"`
	NotasClinicas    string  `json:"notasClinicas"`
	Costo            float64 `json:"costo"`
	Importe          float64 `json:"importe"`
	Moneda           string  `json:"moneda"`
	FechaInicio      string  `json:"fechaInicio"`
	FechaFin         string  `json:"fechaFin"`
	HoraInicio       string  `json:"horaInicio"`
	HoraFin          string  `json:"horaFin"`
}

// AppointmentFilters are the optional list filters; they combine conjunctively.
// Cobro approximates "charged" as costo > 0.
type AppointmentFilters struct {
	Fecha     *string
	DoctoraID *int
	Estado    *string
	Cobro     bool
}
