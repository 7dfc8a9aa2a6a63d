package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Upsert keeps exactly one snapshot per participant; started_at survives
// re-upserts.
func (r *SessionRepository) Upsert(ctx context.Context, snap domain.SessionSnapshot) error {
	const q = `
		INSERT INTO sessions (session_id, participant_id, current_page)
		VALUES ($1, $2, $3)
		ON CONFLICT (participant_id) DO UPDATE
		SET session_id = EXCLUDED.session_id,
		    current_page = EXCLUDED.current_page,
		    updated_at = now()
	`

	_, err := r.pool.Exec(ctx, q, snap.SessionID, snap.ParticipantID, snap.CurrentPage)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, participantID string) (domain.SessionSnapshot, error) {
	const q = `
		SELECT session_id, participant_id, current_page, started_at, updated_at
		FROM sessions
		WHERE participant_id = $1
	`

	var snap domain.SessionSnapshot
	err := r.pool.QueryRow(ctx, q, participantID).Scan(
		&snap.SessionID, &snap.ParticipantID, &snap.CurrentPage, &snap.StartedAt, &snap.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SessionSnapshot{}, domain.NewDomainError(domain.ErrorCodeNotFound, "no saved session")
		}
		return domain.SessionSnapshot{}, err
	}

	return snap, nil
}
