package usecase

import (
	"context"
	"errors"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/metrics"
)

// ClaimPullRequest hands one unassigned PR in the reviewer's repository to
// them: pick uniformly at random among available issues, then claim it with
// a single conditional update. Losing the race reports NO_PR_AVAILABLE, the
// same as genuine exhaustion.
func (s *serviceImpl) ClaimPullRequest(ctx context.Context, reviewerID string) (domain.Assignment, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.ClaimPullRequest",
		trace.WithAttributes(attribute.String("reviewer.id", reviewerID)),
	)
	defer span.End()

	var res domain.Assignment

	repoAssignment, err := s.participantRepo.GetRepoAssignment(ctx, reviewerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to look up repository for claim",
			zap.String("reviewer_id", reviewerID),
		)
		return res, err
	}

	openCount, err := s.assignmentRepo.CountOpenForReviewer(ctx, reviewerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to count open assignments",
			zap.String("reviewer_id", reviewerID),
		)
		return res, err
	}
	if openCount >= s.cfg.MaxOpenAssignments {
		derr := domain.NewDomainError(domain.ErrorCodeOpenLimit, "close your current PR before requesting another")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return res, derr
	}

	available, err := s.assignmentRepo.ListAvailable(ctx, repoAssignment.RepositoryName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list available PRs",
			zap.String("repository", repoAssignment.RepositoryName),
		)
		return res, err
	}
	if len(available) == 0 {
		derr := domain.NewDomainError(domain.ErrorCodeNoPRAvailable, "no more unassigned PRs right now, please check back later")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return res, derr
	}

	picked := available[rand.Intn(len(available))]

	err = s.transactor.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.assignmentRepo.Claim(txCtx, picked.IssueID, reviewerID); err != nil {
			logger.LogDomainAware(txCtx, err, "failed to claim PR",
				zap.Int64("issue_id", picked.IssueID),
				zap.String("reviewer_id", reviewerID),
			)
			return err
		}

		claimed, err := s.assignmentRepo.GetByIssueID(txCtx, picked.IssueID)
		if err != nil {
			logger.LogDomainAware(txCtx, err, "failed to fetch claimed PR",
				zap.Int64("issue_id", picked.IssueID),
			)
			return err
		}

		res = claimed
		return nil
	})
	if err != nil {
		var derr *domain.DomainError
		if errors.As(err, &derr) && derr.Code == domain.ErrorCodeNoPRAvailable {
			metrics.ClaimConflictTotal.Inc()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Assignment{}, err
	}

	span.SetAttributes(attribute.Int64("issue.id", res.IssueID))

	metrics.PRClaimedTotal.Inc()

	return res, nil
}

func (s *serviceImpl) CurrentAssignment(ctx context.Context, reviewerID string) (domain.Assignment, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.CurrentAssignment",
		trace.WithAttributes(attribute.String("reviewer.id", reviewerID)),
	)
	defer span.End()

	repoAssignment, err := s.participantRepo.GetRepoAssignment(ctx, reviewerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to look up repository for current assignment",
			zap.String("reviewer_id", reviewerID),
		)
		return domain.Assignment{}, err
	}

	assignment, err := s.assignmentRepo.GetCurrentForReviewer(ctx, reviewerID, repoAssignment.RepositoryName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to load current assignment",
			zap.String("reviewer_id", reviewerID),
		)
		return domain.Assignment{}, err
	}

	return assignment, nil
}

func (s *serviceImpl) ListAssignments(ctx context.Context, reviewerID string) ([]domain.Assignment, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.ListAssignments",
		trace.WithAttributes(attribute.String("reviewer.id", reviewerID)),
	)
	defer span.End()

	repoAssignment, err := s.participantRepo.GetRepoAssignment(ctx, reviewerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to look up repository for assignment list",
			zap.String("reviewer_id", reviewerID),
		)
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListForReviewer(ctx, reviewerID, repoAssignment.RepositoryName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list assignments",
			zap.String("reviewer_id", reviewerID),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("assignments.count", len(assignments)))

	return assignments, nil
}

func (s *serviceImpl) SaveEstimates(ctx context.Context, issueID int64, reviewerEstimate, newContributorEstimate string) error {
	ctx, span := tracer.Start(
		ctx,
		"Service.SaveEstimates",
		trace.WithAttributes(attribute.Int64("issue.id", issueID)),
	)
	defer span.End()

	if err := s.assignmentRepo.SetEstimates(ctx, issueID, reviewerEstimate, newContributorEstimate); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to save estimates",
			zap.Int64("issue_id", issueID),
		)
		return err
	}

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, issueID int64, isClosed, isMerged, isReviewed bool) error {
	ctx, span := tracer.Start(
		ctx,
		"Service.UpdateStatus",
		trace.WithAttributes(
			attribute.Int64("issue.id", issueID),
			attribute.Bool("is_closed", isClosed),
			attribute.Bool("is_merged", isMerged),
			attribute.Bool("is_reviewed", isReviewed),
		),
	)
	defer span.End()

	if err := s.assignmentRepo.SetStatus(ctx, issueID, isClosed, isMerged, isReviewed); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to update PR status",
			zap.Int64("issue_id", issueID),
		)
		return err
	}

	return nil
}
