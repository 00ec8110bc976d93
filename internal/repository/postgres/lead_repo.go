package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"estatehub/internal/port"
)

type leadRepo struct {
	db *sqlx.DB
}

// NewLeadRepo creates a new PostgreSQL-backed LeadRepository.
func NewLeadRepo(db *sqlx.DB) port.LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) CountAddedByBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM leads WHERE added_by = $1 AND created_at >= $2 AND created_at <= $3",
		userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("leadRepo.CountAddedByBetween: %w", err)
	}
	return n, nil
}
