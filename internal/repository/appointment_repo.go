package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
)

// AppointmentRepository defines data access for appointments
type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) error
	Update(ctx context.Context, a *model.Appointment) error
	FindByID(ctx context.Context, id int) (*model.Appointment, error)
	FindAll(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error)
	Delete(ctx context.Context, id int) error
}

type appointmentRepository struct {
	db DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Only fecha is persisted; fecha_fin from the request is dropped and reads
// echo fecha back as both fechaInicio and fechaFin.
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	sql := `INSERT INTO appointments
            (doctora_id, paciente_id, paciente_nombre, paciente_telefono, paciente_email,
             tipologia_id, forma_pago_id, estado, notas_clinicas, costo, importe, moneda,
             fecha, hora_inicio, hora_fin)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::date, $14::time, $15::time)
            RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		a.DoctoraID, a.PacienteID, a.PacienteNombre, a.PacienteTelefono, a.PacienteEmail,
		a.TipologiaID, a.FormaPagoID, a.Estado, a.NotasClinicas, a.Costo, a.Importe, a.Moneda,
		a.FechaInicio, a.HoraInicio, a.HoraFin,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	a.FechaFin = a.FechaInicio
	return nil
}

func (r *appointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	sql := `UPDATE appointments
            SET doctora_id = $1, paciente_id = $2, paciente_nombre = $3, paciente_telefono = $4,
                paciente_email = $5, tipologia_id = $6, forma_pago_id = $7, estado = $8,
                notas_clinicas = $9, costo = $10, importe = $11, moneda = $12,
                fecha = $13::date, hora_inicio = $14::time, hora_fin = $15::time
            WHERE id = $16`
	cmdTag, err := r.db.Exec(ctx, sql,
		a.DoctoraID, a.PacienteID, a.PacienteNombre, a.PacienteTelefono, a.PacienteEmail,
		a.TipologiaID, a.FormaPagoID, a.Estado, a.NotasClinicas, a.Costo, a.Importe, a.Moneda,
		a.FechaInicio, a.HoraInicio, a.HoraFin, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	a.FechaFin = a.FechaInicio
	return nil
}

const appointmentColumns = `a.id, a.doctora_id, a.paciente_id, a.paciente_nombre, a.paciente_telefono,
            a.paciente_email, a.tipologia_id, a.forma_pago_id, a.estado, a.notas_clinicas,
            a.costo, a.importe, a.moneda,
            to_char(a.fecha, 'YYYY-MM-DD'), to_char(a.hora_inicio, 'HH24:MI'), to_char(a.hora_fin, 'HH24:MI')`

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*model.Appointment, error) {
	a := &model.Appointment{}
	sql := `SELECT ` + appointmentColumns + ` FROM appointments a WHERE a.id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&a.ID, &a.DoctoraID, &a.PacienteID, &a.PacienteNombre, &a.PacienteTelefono,
		&a.PacienteEmail, &a.TipologiaID, &a.FormaPagoID, &a.Estado, &a.NotasClinicas,
		&a.Costo, &a.Importe, &a.Moneda, &a.FechaInicio, &a.HoraInicio, &a.HoraFin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}
	a.FechaFin = a.FechaInicio
	return a, nil
}

// FindAll applies the optional filters conjunctively and enriches every row
// with the assigned doctor's display name and color.
func (r *appointmentRepository) FindAll(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + appointmentColumns + `,
            u.name, u.surname, u.color
            FROM appointments a
            LEFT JOIN users u ON a.doctora_id = u.id`)

	args := []any{}
	argCount := 1
	var conditions []string

	if filters.Fecha != nil && *filters.Fecha != "" {
		conditions = append(conditions, fmt.Sprintf("a.fecha = $%d::date", argCount))
		args = append(args, *filters.Fecha)
		argCount++
	}
	if filters.DoctoraID != nil {
		conditions = append(conditions, fmt.Sprintf("a.doctora_id = $%d", argCount))
		args = append(args, *filters.DoctoraID)
		argCount++
	}
	if filters.Estado != nil && *filters.Estado != "" {
		conditions = append(conditions, fmt.Sprintf("a.estado = $%d", argCount))
		args = append(args, *filters.Estado)
		argCount++
	}
	if filters.Cobro {
		conditions = append(conditions, "a.costo > 0")
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY a.fecha DESC, a.hora_inicio DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.DoctoraID, &a.PacienteID, &a.PacienteNombre, &a.PacienteTelefono,
			&a.PacienteEmail, &a.TipologiaID, &a.FormaPagoID, &a.Estado, &a.NotasClinicas,
			&a.Costo, &a.Importe, &a.Moneda, &a.FechaInicio, &a.HoraInicio, &a.HoraFin,
			&a.DoctoraNombre, &a.DoctoraApellido, &a.DoctoraColor,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		a.FechaFin = a.FechaInicio
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
