package repository

import (
	"context"
	"testing"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func newUserRepoMock(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "surname", "second_surname", "phone", "movil", "email", "color", "admin", "password"})
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("laura", "Gomez", "", "", "", "laura@example.com", "#000000", false, "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	u := &model.User{Name: "laura", Surname: "Gomez", Email: "laura@example.com", Color: "#000000", PasswordHash: "hash"}
	err := repo.Create(context.Background(), u)

	assert.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByName(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE btrim\(name\) = btrim\(\$1\)`).
		WithArgs("admin").
		WillReturnRows(userRows().AddRow(1, "admin", "", "", "", "", "admin@clinic.local", "#3788d8", true, "hash"))

	u, err := repo.FindByName(context.Background(), "admin")

	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.True(t, u.Admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE btrim\(email\) = btrim\(\$1\)`).
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FindByEmail(context.Background(), "missing@example.com")

	assert.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NoRows(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("laura", "Gomez", "", "", "", "laura@example.com", "#000000", false, "hash", 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	u := &model.User{ID: 42, Name: "laura", Surname: "Gomez", Email: "laura@example.com", Color: "#000000", PasswordHash: "hash"}
	err := repo.Update(context.Background(), u)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll_WithSearchText(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users\s+WHERE name ILIKE`).
		WithArgs("gom").
		WillReturnRows(userRows().AddRow(2, "laura", "Gomez", "", "", "", "laura@example.com", "#000000", false, "hash"))

	users, err := repo.FindAll(context.Background(), "gom")

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Count(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
