package repository

import (
	"context"
	"testing"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func newAppointmentRepoMock(t *testing.T) (AppointmentRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewAppointmentRepository(mock), mock
}

func appointmentListRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "doctora_id", "paciente_id", "paciente_nombre", "paciente_telefono",
		"paciente_email", "tipologia_id", "forma_pago_id", "estado", "notas_clinicas",
		"costo", "importe", "moneda", "fecha", "hora_inicio", "hora_fin",
		"name", "surname", "color",
	})
}

func TestAppointmentRepository_Create(t *testing.T) {
	repo, mock := newAppointmentRepoMock(t)

	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(1, pgxmock.AnyArg(), "Maria Lopez", "", "", 2, 3, "pendiente", "", 30.0, 0.0, "EUR",
			"2026-09-01", "10:00", "10:30").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))

	a := &model.Appointment{
		DoctoraID: 1, PacienteNombre: "Maria Lopez", TipologiaID: 2, FormaPagoID: 3,
		Estado: "pendiente", Costo: 30.0, Moneda: "EUR",
		FechaInicio: "2026-09-01", HoraInicio: "10:00", HoraFin: "10:30",
	}
	err := repo.Create(context.Background(), a)

	assert.NoError(t, err)
	assert.Equal(t, 11, a.ID)
	// fechaFin is not stored; it echoes the persisted date
	assert.Equal(t, "2026-09-01", a.FechaFin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newAppointmentRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM appointments a WHERE a.id = \$1`).
		WithArgs(404).
		WillReturnError(pgx.ErrNoRows)

	a, err := repo.FindByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_FindAll_NoFilters(t *testing.T) {
	repo, mock := newAppointmentRepoMock(t)

	// pgxmock scans these columns into *string fields, so the row values
	// must be pointers
	name, surname, color := "laura", "Gomez", "#3788d8"
	mock.ExpectQuery(`SELECT (.+) FROM appointments a\s+LEFT JOIN users u ON a.doctora_id = u.id ORDER BY a.fecha DESC, a.hora_inicio DESC`).
		WillReturnRows(appointmentListRows().AddRow(
			1, 1, nil, "Maria Lopez", "", "", 2, 3, "pendiente", "",
			30.0, 0.0, "EUR", "2026-09-01", "10:00", "10:30",
			&name, &surname, &color,
		))

	appointments, err := repo.FindAll(context.Background(), model.AppointmentFilters{})

	assert.NoError(t, err)
	assert.Len(t, appointments, 1)
	assert.Equal(t, "2026-09-01", appointments[0].FechaFin)
	assert.Equal(t, "laura", *appointments[0].DoctoraNombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_FindAll_AllFilters(t *testing.T) {
	repo, mock := newAppointmentRepoMock(t)

	// All filters combine conjunctively in declaration order
	mock.ExpectQuery(`WHERE a.fecha = \$1::date AND a.doctora_id = \$2 AND a.estado = \$3 AND a.costo > 0`).
		WithArgs("2026-09-01", 7, "pendiente").
		WillReturnRows(appointmentListRows())

	fecha := "2026-09-01"
	doctoraID := 7
	estado := "pendiente"
	_, err := repo.FindAll(context.Background(), model.AppointmentFilters{
		Fecha:     &fecha,
		DoctoraID: &doctoraID,
		Estado:    &estado,
		Cobro:     true,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_Delete_NoRows(t *testing.T) {
	repo, mock := newAppointmentRepoMock(t)

	mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
