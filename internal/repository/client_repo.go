package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
)

// ClientSearchFields maps the search field names accepted on the wire to
// their columns. Anything outside this map never reaches the data layer.
var ClientSearchFields = map[string]string{
	"name":          "name",
	"surname":       "surname",
	"secondSurname": "second_surname",
	"phone":         "phone",
	"email":         "email",
	"dni":           "dni",
	"obs":           "obs",
}

// ClientRepository defines data access for clients (patients)
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id int) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	FindByDNI(ctx context.Context, dni string) (*model.Client, error)
	FindAll(ctx context.Context, searchText string) ([]model.Client, error)
	FindByField(ctx context.Context, field, value string) ([]model.Client, error)
	Delete(ctx context.Context, id int) error
}

type clientRepository struct {
	db DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, name, surname, second_surname, phone, email, dni, obs`

func scanClient(row pgx.Row) (*model.Client, error) {
	c := &model.Client{}
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.SecondSurname, &c.Phone, &c.Email, &c.DNI, &c.Obs)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, c *model.Client) error {
	sql := `INSERT INTO customers (name, surname, second_surname, phone, email, dni, obs)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, sql, c.Name, c.Surname, c.SecondSurname, c.Phone, c.Email, c.DNI, c.Obs).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, c *model.Client) error {
	sql := `UPDATE customers
            SET name = $1, surname = $2, second_surname = $3, phone = $4, email = $5, dni = $6, obs = $7
            WHERE id = $8`
	cmdTag, err := r.db.Exec(ctx, sql, c.Name, c.Surname, c.SecondSurname, c.Phone, c.Email, c.DNI, c.Obs, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id int) (*model.Client, error) {
	sql := `SELECT ` + clientColumns + ` FROM customers WHERE id = $1`
	c, err := scanClient(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found is not an error here, services decide
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	return c, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	sql := `SELECT ` + clientColumns + ` FROM customers WHERE btrim(email) = btrim($1)`
	c, err := scanClient(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}
	return c, nil
}

func (r *clientRepository) FindByDNI(ctx context.Context, dni string) (*model.Client, error) {
	sql := `SELECT ` + clientColumns + ` FROM customers WHERE btrim(dni) = btrim($1)`
	c, err := scanClient(r.db.QueryRow(ctx, sql, dni))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client by dni: %w", err)
	}
	return c, nil
}

func (r *clientRepository) FindAll(ctx context.Context, searchText string) ([]model.Client, error) {
	var (
		sql  string
		args []any
	)
	if searchText != "" {
		sql = `SELECT ` + clientColumns + ` FROM customers
               WHERE name ILIKE '%' || $1 || '%'
                  OR surname ILIKE '%' || $1 || '%'
                  OR second_surname ILIKE '%' || $1 || '%'
                  OR phone ILIKE '%' || $1 || '%'
                  OR email ILIKE '%' || $1 || '%'
                  OR dni ILIKE '%' || $1 || '%'
                  OR obs ILIKE '%' || $1 || '%'
               ORDER BY id DESC`
		args = append(args, searchText)
	} else {
		sql = `SELECT ` + clientColumns + ` FROM customers ORDER BY id DESC`
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *clientRepository) FindByField(ctx context.Context, field, value string) ([]model.Client, error) {
	column, ok := ClientSearchFields[field]
	if !ok {
		return nil, fmt.Errorf("invalid search field: %s", field)
	}

	// column comes from the allow-list, the value is always bound
	sql := fmt.Sprintf(`SELECT %s FROM customers WHERE %s ILIKE '%%' || $1 || '%%' ORDER BY id DESC`, clientColumns, column)
	rows, err := r.db.Query(ctx, sql, value)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients by %s: %w", field, err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *clientRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectClients(rows pgx.Rows) ([]model.Client, error) {
	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.SecondSurname, &c.Phone, &c.Email, &c.DNI, &c.Obs); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}
