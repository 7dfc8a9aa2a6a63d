package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type ArtifactRepository struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) *ArtifactRepository {
	return &ArtifactRepository{pool: pool}
}

func (r *ArtifactRepository) Record(ctx context.Context, art domain.Artifact) error {
	const q = `
		INSERT INTO artifacts (id, participant_id, issue_key, stage, object_ref, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, q,
		art.ID,
		art.ParticipantID,
		art.IssueKey,
		art.Stage.String(),
		art.ObjectRef,
		art.SizeBytes,
	)
	return err
}

func (r *ArtifactRepository) Exists(ctx context.Context, participantID, issueKey string, stage domain.Stage) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM artifacts
			WHERE participant_id = $1 AND issue_key = $2 AND stage = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, q, participantID, issueKey, stage.String()).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
