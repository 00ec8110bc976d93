package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"estatehub/internal/domain"
	"estatehub/internal/port"
)

type propertyRepo struct {
	db *sqlx.DB
}

// NewPropertyRepo creates a new PostgreSQL-backed PropertyRepository.
func NewPropertyRepo(db *sqlx.DB) port.PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *domain.Property) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO properties (id, title, property_type, price, closed_date, added_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.PropertyType, p.Price, p.ClosedDate, p.AddedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("propertyRepo.Create: %w", err)
	}
	return nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	var p domain.Property
	err := r.db.GetContext(ctx, &p, "SELECT * FROM properties WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("propertyRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *propertyRepo) List(ctx context.Context, offset, limit int) ([]domain.Property, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM properties"); err != nil {
		return nil, 0, fmt.Errorf("propertyRepo.List count: %w", err)
	}

	var props []domain.Property
	err := r.db.SelectContext(ctx, &props,
		"SELECT * FROM properties ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("propertyRepo.List: %w", err)
	}
	return props, total, nil
}

func (r *propertyRepo) Update(ctx context.Context, p *domain.Property) error {
	p.UpdatedAt = time.Now().UTC()
	query := `UPDATE properties SET title = $1, property_type = $2, price = $3, closed_date = $4, updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.PropertyType, p.Price, p.ClosedDate, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("propertyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepo) ListClosedBetween(ctx context.Context, startDate, endDate string) ([]domain.CommissionProperty, error) {
	query := `SELECT id, title, property_type, price, closed_date
		FROM properties
		WHERE closed_date IS NOT NULL
		  AND closed_date BETWEEN $1::date AND $2::date
		ORDER BY closed_date ASC, id ASC`

	var rows []domain.CommissionProperty
	if err := r.db.SelectContext(ctx, &rows, query, startDate, endDate); err != nil {
		return nil, fmt.Errorf("propertyRepo.ListClosedBetween: %w", err)
	}
	return rows, nil
}

func (r *propertyRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM properties WHERE created_at >= $1 AND created_at <= $2", from, to)
	if err != nil {
		return 0, fmt.Errorf("propertyRepo.CountCreatedBetween: %w", err)
	}
	return n, nil
}

func (r *propertyRepo) CountAmendedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM properties
		WHERE updated_at >= $1 AND updated_at <= $2 AND updated_at > created_at`, from, to)
	if err != nil {
		return 0, fmt.Errorf("propertyRepo.CountAmendedBetween: %w", err)
	}
	return n, nil
}
