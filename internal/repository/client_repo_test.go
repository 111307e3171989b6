package repository

import (
	"context"
	"testing"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func newClientRepoMock(t *testing.T) (ClientRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewClientRepository(mock), mock
}

func clientRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "surname", "second_surname", "phone", "email", "dni", "obs"})
}

func TestClientRepository_Create(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Maria", "Lopez", "", "600111222", "maria@example.com", "12345678Z", "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

	c := &model.Client{Name: "Maria", Surname: "Lopez", Phone: "600111222", Email: "maria@example.com", DNI: "12345678Z"}
	err := repo.Create(context.Background(), c)

	assert.NoError(t, err)
	assert.Equal(t, 5, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByID(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE id = \$1`).
		WithArgs(3).
		WillReturnRows(clientRows().AddRow(3, "Maria", "Lopez", "", "600111222", "maria@example.com", "12345678Z", ""))

	c, err := repo.FindByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "maria@example.com", c.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE id = \$1`).
		WithArgs(404).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.FindByID(context.Background(), 404)

	// Absence is reported as nil, nil; the service decides the status code
	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE btrim\(email\) = btrim\(\$1\)`).
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.FindByEmail(context.Background(), "missing@example.com")

	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Update_NoRows(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectExec(`UPDATE customers`).
		WithArgs("Maria", "Lopez", "", "600111222", "maria@example.com", "12345678Z", "", 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	c := &model.Client{ID: 99, Name: "Maria", Surname: "Lopez", Phone: "600111222", Email: "maria@example.com", DNI: "12345678Z"}
	err := repo.Update(context.Background(), c)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindAll_WithSearchText(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM customers\s+WHERE name ILIKE`).
		WithArgs("lopez").
		WillReturnRows(clientRows().
			AddRow(2, "Maria", "Lopez", "", "600111222", "maria@example.com", "12345678Z", "").
			AddRow(1, "Ana", "Lopez", "", "600333444", "ana@example.com", "87654321X", ""))

	clients, err := repo.FindAll(context.Background(), "lopez")

	assert.NoError(t, err)
	assert.Len(t, clients, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByField(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	// secondSurname maps to the second_surname column
	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE second_surname ILIKE`).
		WithArgs("garcia").
		WillReturnRows(clientRows().AddRow(1, "Ana", "Lopez", "Garcia", "600333444", "ana@example.com", "87654321X", ""))

	clients, err := repo.FindByField(context.Background(), "secondSurname", "garcia")

	assert.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByField_InvalidField(t *testing.T) {
	repo, _ := newClientRepoMock(t)

	_, err := repo.FindByField(context.Background(), "password", "x")

	assert.Error(t, err)
}

func TestClientRepository_Delete(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Delete_NoRows(t *testing.T) {
	repo, mock := newClientRepoMock(t)

	mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
