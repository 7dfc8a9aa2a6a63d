package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type ResponseRepository struct {
	pool *pgxpool.Pool
}

func NewResponseRepository(pool *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{pool: pool}
}

// Response rows keep the whole answer map in a JSONB column; pgx encodes
// map[string]any without help.

func (r *ResponseRepository) UpsertReview(ctx context.Context, rec domain.StageRecord) error {
	return r.upsertByPR(ctx, "review_responses", rec)
}

func (r *ResponseRepository) UpsertClosed(ctx context.Context, rec domain.StageRecord) error {
	return r.upsertByPR(ctx, "closed_responses", rec)
}

func (r *ResponseRepository) upsertByPR(ctx context.Context, table string, rec domain.StageRecord) error {
	query := `
		INSERT INTO ` + table + ` (participant_id, pr_url, answers)
		VALUES ($1, $2, $3)
		ON CONFLICT (participant_id, pr_url) DO UPDATE
		SET answers = ` + table + `.answers || EXCLUDED.answers,
		    updated_at = now()
	`

	_, err := r.pool.Exec(ctx, query, rec.ParticipantID, rec.PRURL, rec.Answers)
	return err
}

func (r *ResponseRepository) UpsertEndStudy(ctx context.Context, rec domain.StageRecord) error {
	const q = `
		INSERT INTO end_study_responses (participant_id, answers)
		VALUES ($1, $2)
		ON CONFLICT (participant_id) DO UPDATE
		SET answers = end_study_responses.answers || EXCLUDED.answers,
		    updated_at = now()
	`

	_, err := r.pool.Exec(ctx, q, rec.ParticipantID, rec.Answers)
	return err
}

func (r *ResponseRepository) ListReview(ctx context.Context, participantID string) ([]domain.StageRecord, error) {
	return r.listByParticipant(ctx, "review_responses", participantID)
}

func (r *ResponseRepository) ListClosed(ctx context.Context, participantID string) ([]domain.StageRecord, error) {
	return r.listByParticipant(ctx, "closed_responses", participantID)
}

func (r *ResponseRepository) listByParticipant(ctx context.Context, table, participantID string) ([]domain.StageRecord, error) {
	query := `
		SELECT participant_id, pr_url, answers, created_at, updated_at
		FROM ` + table + `
		WHERE participant_id = $1
		ORDER BY updated_at
	`

	rows, err := r.pool.Query(ctx, query, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.StageRecord
	for rows.Next() {
		var rec domain.StageRecord
		if err := rows.Scan(&rec.ParticipantID, &rec.PRURL, &rec.Answers, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

func (r *ResponseRepository) GetEndStudy(ctx context.Context, participantID string) (domain.StageRecord, error) {
	const q = `
		SELECT participant_id, answers, created_at, updated_at
		FROM end_study_responses
		WHERE participant_id = $1
	`

	var rec domain.StageRecord
	err := r.pool.QueryRow(ctx, q, participantID).Scan(&rec.ParticipantID, &rec.Answers, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StageRecord{}, domain.NewDomainError(domain.ErrorCodeNotFound, "end-study record not found")
		}
		return domain.StageRecord{}, err
	}

	return rec, nil
}
