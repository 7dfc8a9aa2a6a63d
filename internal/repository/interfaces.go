package repository

import (
	"context"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type (
	ParticipantRepository interface {
		GetRepoAssignment(ctx context.Context, participantID string) (domain.RepoAssignment, error)
	}

	AssignmentRepository interface {
		ListAvailable(ctx context.Context, repository string) ([]domain.Assignment, error)
		GetByIssueID(ctx context.Context, issueID int64) (domain.Assignment, error)
		GetCurrentForReviewer(ctx context.Context, reviewerID, repository string) (domain.Assignment, error)
		ListForReviewer(ctx context.Context, reviewerID, repository string) ([]domain.Assignment, error)
		CountOpenForReviewer(ctx context.Context, reviewerID string) (int, error)

		// Claim conditionally marks an unassigned issue as claimed by the
		// reviewer and resets its status flags. Zero rows affected means the
		// issue was claimed concurrently or vanished.
		Claim(ctx context.Context, issueID int64, reviewerID string) error
		SetEstimates(ctx context.Context, issueID int64, reviewerEstimate, newContributorEstimate string) error
		SetStatus(ctx context.Context, issueID int64, isClosed, isMerged, isReviewed bool) error
	}

	ResponseRepository interface {
		UpsertReview(ctx context.Context, rec domain.StageRecord) error
		UpsertClosed(ctx context.Context, rec domain.StageRecord) error
		UpsertEndStudy(ctx context.Context, rec domain.StageRecord) error

		ListReview(ctx context.Context, participantID string) ([]domain.StageRecord, error)
		ListClosed(ctx context.Context, participantID string) ([]domain.StageRecord, error)
		GetEndStudy(ctx context.Context, participantID string) (domain.StageRecord, error)
	}

	SessionRepository interface {
		Upsert(ctx context.Context, snap domain.SessionSnapshot) error
		Get(ctx context.Context, participantID string) (domain.SessionSnapshot, error)
	}

	ArtifactRepository interface {
		Record(ctx context.Context, art domain.Artifact) error
		Exists(ctx context.Context, participantID, issueKey string, stage domain.Stage) (bool, error)
	}
)
