package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic_agenda/internal/model"

	"github.com/jackc/pgx/v5"
)

// TypologyRepository defines data access for appointment typologies
type TypologyRepository interface {
	Create(ctx context.Context, t *model.Typology) error
	Update(ctx context.Context, t *model.Typology) error
	FindByID(ctx context.Context, id int) (*model.Typology, error)
	FindAll(ctx context.Context, searchText string) ([]model.Typology, error)
	FindByField(ctx context.Context, field, value string) ([]model.Typology, error)
	Delete(ctx context.Context, id int) error
}

type typologyRepository struct {
	db DB
}

// NewTypologyRepository creates a new TypologyRepository
func NewTypologyRepository(db DB) TypologyRepository {
	return &typologyRepository{db: db}
}

func (r *typologyRepository) Create(ctx context.Context, t *model.Typology) error {
	sql := `INSERT INTO tipologias (nombre, descripcion) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, t.Nombre, t.Descripcion).Scan(&t.ID); err != nil {
		return fmt.Errorf("failed to create typology: %w", err)
	}
	return nil
}

func (r *typologyRepository) Update(ctx context.Context, t *model.Typology) error {
	sql := `UPDATE tipologias SET nombre = $1, descripcion = $2 WHERE id = $3`
	cmdTag, err := r.db.Exec(ctx, sql, t.Nombre, t.Descripcion, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update typology: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *typologyRepository) FindByID(ctx context.Context, id int) (*model.Typology, error) {
	t := &model.Typology{}
	sql := `SELECT id, nombre, descripcion FROM tipologias WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&t.ID, &t.Nombre, &t.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find typology by ID: %w", err)
	}
	return t, nil
}

func (r *typologyRepository) FindAll(ctx context.Context, searchText string) ([]model.Typology, error) {
	var (
		sql  string
		args []any
	)
	if searchText != "" {
		sql = `SELECT id, nombre, descripcion FROM tipologias
               WHERE nombre ILIKE '%' || $1 || '%' OR descripcion ILIKE '%' || $1 || '%'
               ORDER BY id DESC`
		args = append(args, searchText)
	} else {
		sql = `SELECT id, nombre, descripcion FROM tipologias ORDER BY id DESC`
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query typologies: %w", err)
	}
	defer rows.Close()

	return collectTypologies(rows)
}

func (r *typologyRepository) FindByField(ctx context.Context, field, value string) ([]model.Typology, error) {
	column, ok := CatalogSearchFields[field]
	if !ok {
		return nil, fmt.Errorf("invalid search field: %s", field)
	}

	sql := fmt.Sprintf(`SELECT id, nombre, descripcion FROM tipologias WHERE %s ILIKE '%%' || $1 || '%%' ORDER BY id DESC`, column)
	rows, err := r.db.Query(ctx, sql, value)
	if err != nil {
		return nil, fmt.Errorf("failed to search typologies by %s: %w", field, err)
	}
	defer rows.Close()

	return collectTypologies(rows)
}

func (r *typologyRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM tipologias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete typology: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectTypologies(rows pgx.Rows) ([]model.Typology, error) {
	var list []model.Typology
	for rows.Next() {
		var t model.Typology
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion); err != nil {
			return nil, fmt.Errorf("failed to scan typology row: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating typology rows: %w", err)
	}
	return list, nil
}
