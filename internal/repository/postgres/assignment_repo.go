package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dbpkg "github.com/revlab/reviewer-survey-service/db"
	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentColumns = `
	issue_id, repository, issue_url, pr_url, is_completed,
	reviewer_assigned, reviewer_id, reviewer_assigned_on,
	reviewer_estimate, new_contributor_estimate,
	is_closed, is_merged, is_reviewed, using_ai, issue_sequence
`

func scanAssignment(row pgx.Row) (domain.Assignment, error) {
	var (
		a          domain.Assignment
		assignedOn *time.Time
		usingAI    *bool
		sequence   *int
	)

	err := row.Scan(
		&a.IssueID, &a.Repository, &a.IssueURL, &a.PRURL, &a.IsCompleted,
		&a.ReviewerAssigned, &a.ReviewerID, &assignedOn,
		&a.ReviewerEstimate, &a.NewContributorEstimate,
		&a.IsClosed, &a.IsMerged, &a.IsReviewed, &usingAI, &sequence,
	)
	if err != nil {
		return domain.Assignment{}, err
	}

	a.ReviewerAssignedOn = assignedOn
	a.UsingAI = usingAI
	a.IssueSequence = sequence

	return a, nil
}

// ListAvailable returns completed issues with a PR that no reviewer has
// claimed yet.
func (r *AssignmentRepository) ListAvailable(ctx context.Context, repository string) ([]domain.Assignment, error) {
	const q = `
		SELECT ` + assignmentColumns + `
		FROM repo_issues
		WHERE repository = $1
		  AND is_completed = TRUE
		  AND pr_url <> ''
		  AND reviewer_assigned = FALSE
		ORDER BY issue_id
	`

	rows, err := r.pool.Query(ctx, q, repository)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *AssignmentRepository) GetByIssueID(ctx context.Context, issueID int64) (domain.Assignment, error) {
	const q = `
		SELECT ` + assignmentColumns + `
		FROM repo_issues
		WHERE issue_id = $1
	`

	a, err := scanAssignment(dbpkg.Engine(ctx, r.pool).QueryRow(ctx, q, issueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assignment{}, domain.NewDomainError(domain.ErrorCodeNotFound, "issue not found")
		}
		return domain.Assignment{}, err
	}

	return a, nil
}

// GetCurrentForReviewer returns the reviewer's most recently claimed
// assignment in the repository.
func (r *AssignmentRepository) GetCurrentForReviewer(ctx context.Context, reviewerID, repository string) (domain.Assignment, error) {
	const q = `
		SELECT ` + assignmentColumns + `
		FROM repo_issues
		WHERE repository = $1
		  AND reviewer_id = $2
		  AND reviewer_assigned = TRUE
		ORDER BY reviewer_assigned_on DESC NULLS LAST
		LIMIT 1
	`

	a, err := scanAssignment(r.pool.QueryRow(ctx, q, repository, reviewerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assignment{}, domain.NewDomainError(domain.ErrorCodeNotFound, "no PR assigned to reviewer")
		}
		return domain.Assignment{}, err
	}

	return a, nil
}

func (r *AssignmentRepository) ListForReviewer(ctx context.Context, reviewerID, repository string) ([]domain.Assignment, error) {
	const q = `
		SELECT ` + assignmentColumns + `
		FROM repo_issues
		WHERE repository = $1
		  AND reviewer_id = $2
		  AND reviewer_assigned = TRUE
		ORDER BY reviewer_assigned_on
	`

	rows, err := r.pool.Query(ctx, q, repository, reviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *AssignmentRepository) CountOpenForReviewer(ctx context.Context, reviewerID string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM repo_issues
		WHERE reviewer_id = $1
		  AND reviewer_assigned = TRUE
		  AND is_closed = FALSE
		  AND is_merged = FALSE
	`

	var count int
	if err := r.pool.QueryRow(ctx, q, reviewerID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// Claim is the only concurrency-sensitive write: a single conditional
// update whose affected-row count decides whether this reviewer won the
// issue. Losing the race and the issue vanishing are indistinguishable.
func (r *AssignmentRepository) Claim(ctx context.Context, issueID int64, reviewerID string) error {
	const q = `
		UPDATE repo_issues
		SET reviewer_assigned = TRUE,
		    reviewer_id = $2,
		    reviewer_assigned_on = now(),
		    is_closed = FALSE,
		    is_merged = FALSE,
		    is_reviewed = FALSE
		WHERE issue_id = $1
		  AND reviewer_assigned = FALSE
	`

	tag, err := dbpkg.Engine(ctx, r.pool).Exec(ctx, q, issueID, reviewerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewDomainError(domain.ErrorCodeNoPRAvailable, "no PRs available, please try again later")
	}

	return nil
}

func (r *AssignmentRepository) SetEstimates(ctx context.Context, issueID int64, reviewerEstimate, newContributorEstimate string) error {
	const q = `
		UPDATE repo_issues
		SET reviewer_estimate = $2,
		    new_contributor_estimate = $3
		WHERE issue_id = $1
	`

	tag, err := r.pool.Exec(ctx, q, issueID, reviewerEstimate, newContributorEstimate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewDomainError(domain.ErrorCodeNotFound, "issue not found")
	}

	return nil
}

func (r *AssignmentRepository) SetStatus(ctx context.Context, issueID int64, isClosed, isMerged, isReviewed bool) error {
	const q = `
		UPDATE repo_issues
		SET is_closed = $2,
		    is_merged = $3,
		    is_reviewed = $4
		WHERE issue_id = $1
	`

	tag, err := r.pool.Exec(ctx, q, issueID, isClosed, isMerged, isReviewed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewDomainError(domain.ErrorCodeNotFound, "issue not found")
	}

	return nil
}
