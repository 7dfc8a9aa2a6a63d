package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/metrics"
)

// Resolve computes the stage a returning participant should see, strictly
// from observable state. The stored session page is never trusted; every
// call walks the checklist below and short-circuits at the first unmet
// condition. Nothing escapes: failures and panics resolve to StageEntry so
// a broken lookup restarts the survey instead of crashing it.
func (s *serviceImpl) Resolve(ctx context.Context, participantID string, snapshot Snapshot) (stage domain.Stage) {
	ctx, span := tracer.Start(ctx, "Service.Resolve")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error("resolver panicked, restarting participant",
				zap.String("participant_id", participantID),
				zap.Any("panic", r),
			)
			stage = domain.StageEntry
		}
		span.SetAttributes(attribute.String("resolve.stage", stage.String()))
		metrics.ResolveTotal.WithLabelValues(stage.String()).Inc()
	}()

	if participantID == "" {
		return domain.StageEntry
	}

	repoAssignment, err := s.participantRepo.GetRepoAssignment(ctx, participantID)
	if err != nil {
		logger.LogDomainAware(ctx, err, "no repository assignment, restarting participant",
			zap.String("participant_id", participantID),
		)
		return domain.StageEntry
	}

	// The setup checklist gates the first review only; anyone with a
	// recorded review already passed it.
	progress, progressErr := s.GetProgress(ctx, participantID)
	hasStartedReviews := progressErr == nil && progress.ReviewCount() > 0

	if !snapshot.SetupChecklistDone && !hasStartedReviews {
		return domain.StageChecklist
	}

	pr, err := s.assignmentRepo.GetCurrentForReviewer(ctx, participantID, repoAssignment.RepositoryName)
	if err != nil {
		return domain.StageAssignment
	}

	if !pr.HasEstimates() {
		return domain.StageAssignment
	}

	// A merged or closed PR is evidence the review happened even when the
	// flag never got set.
	reviewed := pr.IsReviewed || pr.IsMerged || pr.IsClosed || snapshot.ReviewConfirmed
	if !reviewed {
		return domain.StageReviewSubmission
	}

	if progressErr != nil {
		return domain.StageNASATLX
	}

	currentURL := pr.PRURL
	if normalizeURL(currentURL) == "" {
		// Ambiguous PR identity: fall back to the record touched last.
		if rec := mostRecentRecord(progress.ReviewRecords); rec != nil {
			currentURL = rec.PRURL
		}
	}

	if !s.nasaTLXCompleted(ctx, participantID, currentURL) {
		return domain.StageNASATLX
	}
	if !s.codeQualityCompleted(ctx, participantID, currentURL) {
		return domain.StageCodeQuality
	}
	if !s.aiDetectionCompleted(ctx, participantID, currentURL) {
		return domain.StageAIDetection
	}

	artifactDone := s.artifactComplete(ctx, participantID, pr, snapshot)

	if progress.ReviewCount() >= s.cfg.ReviewQuota {
		// End-of-study checks: everything assigned must be closed out
		// before the reflection.
		if !progress.AllReviewedClosed() {
			return domain.StagePRStatus
		}
		if !artifactDone {
			return domain.StageArtifact
		}
		if !progress.EndStudyComplete {
			return domain.StageEndStudy
		}
		return domain.StageComplete
	}

	if !pr.IsClosed && !pr.IsMerged {
		return domain.StagePRStatus
	}

	if progress.ClosedCount() == 0 {
		return domain.StageCollaboration
	}

	if !artifactDone {
		return domain.StageArtifact
	}

	// Below quota: back to the status page to pick up another PR.
	if progress.ReviewCount() < s.cfg.ReviewQuota {
		return domain.StagePRStatus
	}

	if !progress.EndStudyComplete {
		return domain.StageEndStudy
	}

	if progress.ClosedCount() < progress.ReviewCount() {
		return domain.StagePRStatus
	}

	return domain.StageComplete
}

// artifactComplete consults the request snapshot first, then the durable
// upload record. Lookup failure reads as missing.
func (s *serviceImpl) artifactComplete(ctx context.Context, participantID string, pr domain.Assignment, snapshot Snapshot) bool {
	key := pr.IssueKey()

	if snapshot.ArtifactUploaded[key] {
		return true
	}

	exists, err := s.artifactRepo.Exists(ctx, participantID, key, domain.StageArtifact)
	if err != nil {
		logger.LogDomainAware(ctx, err, "artifact check failed, treating upload as missing",
			zap.String("participant_id", participantID),
			zap.String("issue_key", key),
		)
		return false
	}

	return exists
}
