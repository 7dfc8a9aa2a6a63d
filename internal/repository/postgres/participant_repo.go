package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type ParticipantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) GetRepoAssignment(ctx context.Context, participantID string) (domain.RepoAssignment, error) {
	const q = `
		SELECT participant_id, repository_name, repository_url
		FROM participant_repos
		WHERE participant_id = $1
	`

	var (
		id   string
		name string
		url  string
	)

	err := r.pool.QueryRow(ctx, q, participantID).Scan(&id, &name, &url)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RepoAssignment{}, domain.NewDomainError(domain.ErrorCodeNotFound,
				"participant id not found in the system, please check your id and try again")
		}
		return domain.RepoAssignment{}, err
	}

	return domain.RepoAssignment{
		ParticipantID:  id,
		RepositoryName: name,
		RepositoryURL:  url,
	}, nil
}
