package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
)

// CatalogSearchFields is the allow-list shared by payment methods and
// typologies (both expose nombre/descripcion).
var CatalogSearchFields = map[string]string{
	"nombre":      "nombre",
	"descripcion": "descripcion",
}

// PaymentMethodRepository defines data access for payment methods
type PaymentMethodRepository interface {
	Create(ctx context.Context, pm *model.PaymentMethod) error
	Update(ctx context.Context, pm *model.PaymentMethod) error
	FindByID(ctx context.Context, id int) (*model.PaymentMethod, error)
	FindAll(ctx context.Context, searchText string) ([]model.PaymentMethod, error)
	FindByField(ctx context.Context, field, value string) ([]model.PaymentMethod, error)
	Delete(ctx context.Context, id int) error
}

type paymentMethodRepository struct {
	db DB
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository
func NewPaymentMethodRepository(db DB) PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Create(ctx context.Context, pm *model.PaymentMethod) error {
	sql := `INSERT INTO formas_pago (nombre, descripcion) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, pm.Nombre, pm.Descripcion).Scan(&pm.ID); err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}
	return nil
}

func (r *paymentMethodRepository) Update(ctx context.Context, pm *model.PaymentMethod) error {
	sql := `UPDATE formas_pago SET nombre = $1, descripcion = $2 WHERE id = $3`
	cmdTag, err := r.db.Exec(ctx, sql, pm.Nombre, pm.Descripcion, pm.ID)
	if err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentMethodRepository) FindByID(ctx context.Context, id int) (*model.PaymentMethod, error) {
	pm := &model.PaymentMethod{}
	sql := `SELECT id, nombre, descripcion FROM formas_pago WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&pm.ID, &pm.Nombre, &pm.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment method by ID: %w", err)
	}
	return pm, nil
}

func (r *paymentMethodRepository) FindAll(ctx context.Context, searchText string) ([]model.PaymentMethod, error) {
	var (
		sql  string
		args []any
	)
	if searchText != "" {
		sql = `SELECT id, nombre, descripcion FROM formas_pago
               WHERE nombre ILIKE '%' || $1 || '%' OR descripcion ILIKE '%' || $1 || '%'
               ORDER BY id DESC`
		args = append(args, searchText)
	} else {
		sql = `SELECT id, nombre, descripcion FROM formas_pago ORDER BY id DESC`
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	return collectPaymentMethods(rows)
}

func (r *paymentMethodRepository) FindByField(ctx context.Context, field, value string) ([]model.PaymentMethod, error) {
	column, ok := CatalogSearchFields[field]
	if !ok {
		return nil, fmt.Errorf("invalid search field: %s", field)
	}

	sql := fmt.Sprintf(`SELECT id, nombre, descripcion FROM formas_pago WHERE %s ILIKE '%%' || $1 || '%%' ORDER BY id DESC`, column)
	rows, err := r.db.Query(ctx, sql, value)
	if err != nil {
		return nil, fmt.Errorf("failed to search payment methods by %s: %w", field, err)
	}
	defer rows.Close()

	return collectPaymentMethods(rows)
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM formas_pago WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectPaymentMethods(rows pgx.Rows) ([]model.PaymentMethod, error) {
	var list []model.PaymentMethod
	for rows.Next() {
		var pm model.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Nombre, &pm.Descripcion); err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		list = append(list, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment method rows: %w", err)
	}
	return list, nil
}
