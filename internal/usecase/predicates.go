package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/survey"
)

// normalizeURL strips the whitespace and trailing slashes that leak into
// persisted PR URLs.
func normalizeURL(url string) string {
	return strings.TrimRight(strings.TrimSpace(url), "/")
}

// answered reports whether a stored answer counts as given: nil, empty
// strings and the "Not selected" sentinel (any case) do not.
func answered(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, survey.NotSelected) {
			return false
		}
	}
	return true
}

// findRecord returns the record matching the normalized PR URL, or nil.
func findRecord(records []domain.StageRecord, prURL string) *domain.StageRecord {
	if prURL == "" {
		return nil
	}
	target := normalizeURL(prURL)
	for i := range records {
		if normalizeURL(records[i].PRURL) == target {
			return &records[i]
		}
	}
	return nil
}

// mostRecentRecord is the fallback when the current PR identity is
// ambiguous: the last-touched record stands in for it.
func mostRecentRecord(records []domain.StageRecord) *domain.StageRecord {
	var latest *domain.StageRecord
	for i := range records {
		if latest == nil || records[i].UpdatedAt.After(latest.UpdatedAt) {
			latest = &records[i]
		}
	}
	return latest
}

// recordAnswered checks the representative field only. A record with just
// that field populated counts as complete for the stage; switching to an
// all-fields check happens here and nowhere else.
func recordAnswered(rec *domain.StageRecord, field string) bool {
	if rec == nil || rec.Answers == nil {
		return false
	}
	return answered(rec.Answers[field])
}

// stageCompleted is the shared completion predicate: fetch the
// participant's rows for the stage's table, match by normalized URL, check
// the representative field. Any query failure reads as incomplete so the
// survey re-asks rather than skips.
func (s *serviceImpl) stageCompleted(ctx context.Context, participantID, prURL string, stage domain.Stage) bool {
	if participantID == "" || prURL == "" {
		return false
	}

	var (
		records []domain.StageRecord
		err     error
	)
	switch stage {
	case domain.StageCollaboration:
		records, err = s.responseRepo.ListClosed(ctx, participantID)
	default:
		records, err = s.responseRepo.ListReview(ctx, participantID)
	}
	if err != nil {
		logger.LogDomainAware(ctx, err, "completion check failed, treating stage as incomplete",
			zap.String("participant_id", participantID),
			zap.String("stage", stage.String()),
		)
		return false
	}

	return recordAnswered(findRecord(records, prURL), survey.RepresentativeField(stage))
}

func (s *serviceImpl) nasaTLXCompleted(ctx context.Context, participantID, prURL string) bool {
	return s.stageCompleted(ctx, participantID, prURL, domain.StageNASATLX)
}

func (s *serviceImpl) codeQualityCompleted(ctx context.Context, participantID, prURL string) bool {
	return s.stageCompleted(ctx, participantID, prURL, domain.StageCodeQuality)
}

func (s *serviceImpl) aiDetectionCompleted(ctx context.Context, participantID, prURL string) bool {
	return s.stageCompleted(ctx, participantID, prURL, domain.StageAIDetection)
}
