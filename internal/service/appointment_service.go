package service

import (
	"context"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
)

// AppointmentService manages appointments. Referential integrity of the
// doctor, typology and payment-method ids is not checked here; the ids are
// accepted as supplied.
type AppointmentService interface {
	Create(ctx context.Context, req model.AppointmentRequest) (*model.Appointment, error)
	Update(ctx context.Context, id int, req model.AppointmentRequest) (*model.Appointment, error)
	GetAll(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error)
	GetByID(ctx context.Context, id int) (*model.Appointment, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

func validateAppointmentRequest(req model.AppointmentRequest) *Error {
	if req.DoctoraID == nil || req.PacienteNombre == "" || req.TipologiaID == nil || req.FormaPagoID == nil ||
		req.FechaInicio == "" || req.HoraInicio == "" || req.FechaFin == "" || req.HoraFin == "" {
		return Validation("the fields doctoraId, pacienteNombre, tipologiaId, formaPagoId, fechaInicio, horaInicio, fechaFin and horaFin are required")
	}
	// Empty estado defaults to pending later; anything else must be a known state
	switch req.Estado {
	case "", model.AppointmentPending, model.AppointmentCompleted, model.AppointmentNotCompleted:
	default:
		return Validation("estado must be one of pendiente, realizada or no_realizada")
	}
	return nil
}

func appointmentFromRequest(req model.AppointmentRequest) model.Appointment {
	estado := req.Estado
	if estado == "" {
		estado = model.AppointmentPending
	}
	return model.Appointment{
		DoctoraID:        *req.DoctoraID,
		PacienteID:       req.PacienteID,
		PacienteNombre:   req.PacienteNombre,
		PacienteTelefono: req.PacienteTelefono,
		PacienteEmail:    req.PacienteEmail,
		TipologiaID:      *req.TipologiaID,
		FormaPagoID:      *req.FormaPagoID,
		Estado:           estado,
		NotasClinicas:    req.NotasClinicas,
		Costo:            req.Costo,
		Importe:          req.Importe,
		Moneda:           req.Moneda,
		FechaInicio:      req.FechaInicio,
		FechaFin:         req.FechaFin,
		HoraInicio:       req.HoraInicio,
		HoraFin:          req.HoraFin,
	}
}

func (s *appointmentService) Create(ctx context.Context, req model.AppointmentRequest) (*model.Appointment, error) {
	if err := validateAppointmentRequest(req); err != nil {
		return nil, err
	}

	appointment := appointmentFromRequest(req)
	if err := s.repo.Create(ctx, &appointment); err != nil {
		return nil, Internal("failed to create appointment", err)
	}
	return &appointment, nil
}

// Update replaces every field; partial patches are not supported.
func (s *appointmentService) Update(ctx context.Context, id int, req model.AppointmentRequest) (*model.Appointment, error) {
	if err := validateAppointmentRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to update appointment", err)
	}
	if existing == nil {
		return nil, NotFound("appointment not found")
	}

	appointment := appointmentFromRequest(req)
	appointment.ID = id
	if err := s.repo.Update(ctx, &appointment); err != nil {
		return nil, Internal("failed to update appointment", err)
	}
	return &appointment, nil
}

func (s *appointmentService) GetAll(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error) {
	appointments, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, Internal("failed to list appointments", err)
	}
	return appointments, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id int) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to get appointment", err)
	}
	if appointment == nil {
		return nil, NotFound("appointment not found")
	}
	return appointment, nil
}

func (s *appointmentService) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to delete appointment", err)
	}
	if existing == nil {
		return nil, NotFound("appointment not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, Internal("failed to delete appointment", err)
	}
	return &DeleteResult{ID: id, Message: "appointment deleted successfully"}, nil
}
