package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines data access for staff accounts
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindAll(ctx context.Context, searchText string) ([]model.User, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, surname, second_surname, phone, movil, email, color, admin, password`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.SecondSurname, &u.Phone, &u.Movil, &u.Email, &u.Color, &u.Admin, &u.PasswordHash)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	sql := `INSERT INTO users (name, surname, second_surname, phone, movil, email, color, admin, password)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		u.Name, u.Surname, u.SecondSurname, u.Phone, u.Movil, u.Email, u.Color, u.Admin, u.PasswordHash,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update writes every field; the service decides beforehand whether
// PasswordHash is the old hash or a fresh one.
func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	sql := `UPDATE users
            SET name = $1, surname = $2, second_surname = $3, phone = $4, movil = $5,
                email = $6, color = $7, admin = $8, password = $9
            WHERE id = $10`
	cmdTag, err := r.db.Exec(ctx, sql,
		u.Name, u.Surname, u.SecondSurname, u.Phone, u.Movil, u.Email, u.Color, u.Admin, u.PasswordHash, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE btrim(email) = btrim($1)`
	u, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE btrim(name) = btrim($1)`
	u, err := scanUser(r.db.QueryRow(ctx, sql, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by name: %w", err)
	}
	return u, nil
}

func (r *userRepository) FindAll(ctx context.Context, searchText string) ([]model.User, error) {
	var (
		sql  string
		args []any
	)
	if searchText != "" {
		sql = `SELECT ` + userColumns + ` FROM users
               WHERE name ILIKE '%' || $1 || '%'
                  OR surname ILIKE '%' || $1 || '%'
                  OR second_surname ILIKE '%' || $1 || '%'
                  OR phone ILIKE '%' || $1 || '%'
                  OR movil ILIKE '%' || $1 || '%'
                  OR email ILIKE '%' || $1 || '%'
               ORDER BY id DESC`
		args = append(args, searchText)
	} else {
		sql = `SELECT ` + userColumns + ` FROM users ORDER BY id DESC`
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.SecondSurname, &u.Phone, &u.Movil, &u.Email, &u.Color, &u.Admin, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
