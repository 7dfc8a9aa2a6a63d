package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/metrics"
)

func (s *serviceImpl) SaveReviewResponses(ctx context.Context, participantID, prURL string, answers map[string]any) error {
	ctx, span := tracer.Start(
		ctx,
		"Service.SaveReviewResponses",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	rec := domain.StageRecord{
		ParticipantID: participantID,
		PRURL:         normalizeURL(prURL),
		Answers:       answers,
	}

	if err := s.responseRepo.UpsertReview(ctx, rec); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to save post-PR review responses",
			zap.String("participant_id", participantID),
			zap.String("pr_url", prURL),
		)
		return err
	}

	metrics.ResponsesSavedTotal.WithLabelValues("review").Inc()

	return nil
}

func (s *serviceImpl) SaveClosedResponses(ctx context.Context, participantID, prURL string, answers map[string]any) error {
	ctx, span := tracer.Start(
		ctx,
		"Service.SaveClosedResponses",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	rec := domain.StageRecord{
		ParticipantID: participantID,
		PRURL:         normalizeURL(prURL),
		Answers:       answers,
	}

	if err := s.responseRepo.UpsertClosed(ctx, rec); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to save post-PR closed responses",
			zap.String("participant_id", participantID),
			zap.String("pr_url", prURL),
		)
		return err
	}

	metrics.ResponsesSavedTotal.WithLabelValues("closed").Inc()

	return nil
}

func (s *serviceImpl) SaveEndStudyResponses(ctx context.Context, participantID string, answers map[string]any) error {
	ctx, span := tracer.Start(
		ctx,
		"Service.SaveEndStudyResponses",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	rec := domain.StageRecord{
		ParticipantID: participantID,
		Answers:       answers,
	}

	if err := s.responseRepo.UpsertEndStudy(ctx, rec); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to save end-study responses",
			zap.String("participant_id", participantID),
		)
		return err
	}

	metrics.ResponsesSavedTotal.WithLabelValues("end_study").Inc()

	return nil
}

// GetProgress aggregates the three response stores for one participant.
func (s *serviceImpl) GetProgress(ctx context.Context, participantID string) (domain.Progress, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.GetProgress",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	reviews, err := s.responseRepo.ListReview(ctx, participantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list review responses",
			zap.String("participant_id", participantID),
		)
		return domain.Progress{}, err
	}

	closed, err := s.responseRepo.ListClosed(ctx, participantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list closed responses",
			zap.String("participant_id", participantID),
		)
		return domain.Progress{}, err
	}

	endStudyDone := false
	if _, err := s.responseRepo.GetEndStudy(ctx, participantID); err == nil {
		endStudyDone = true
	} else {
		var derr *domain.DomainError
		if !errors.As(err, &derr) || derr.Code != domain.ErrorCodeNotFound {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.LogDomainAware(ctx, err, "failed to load end-study record",
				zap.String("participant_id", participantID),
			)
			return domain.Progress{}, err
		}
	}

	span.SetAttributes(
		attribute.Int("progress.review_count", len(reviews)),
		attribute.Int("progress.closed_count", len(closed)),
		attribute.Bool("progress.end_study", endStudyDone),
	)

	return domain.Progress{
		ReviewRecords:    reviews,
		ClosedRecords:    closed,
		EndStudyComplete: endStudyDone,
	}, nil
}

// SaveSession upserts the participant's navigation snapshot. The stored
// page is a convenience for reloads; the resolver never trusts it.
func (s *serviceImpl) SaveSession(ctx context.Context, participantID string, currentPage int) error {
	ctx, span := tracer.Start(
		ctx,
		"Service.SaveSession",
		trace.WithAttributes(
			attribute.String("participant.id", participantID),
			attribute.Int("session.page", currentPage),
		),
	)
	defer span.End()

	snap := domain.SessionSnapshot{
		SessionID:     fmt.Sprintf("%s_%s_%s", participantID, time.Now().UTC().Format("20060102_150405"), uuid.NewString()[:8]),
		ParticipantID: participantID,
		CurrentPage:   currentPage,
	}

	if err := s.sessionRepo.Upsert(ctx, snap); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to save session snapshot",
			zap.String("participant_id", participantID),
		)
		return err
	}

	return nil
}

func (s *serviceImpl) LoadSession(ctx context.Context, participantID string) (domain.SessionSnapshot, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.LoadSession",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	snap, err := s.sessionRepo.Get(ctx, participantID)
	if err != nil {
		var derr *domain.DomainError
		if errors.As(err, &derr) && derr.Code == domain.ErrorCodeNotFound {
			return domain.SessionSnapshot{ParticipantID: participantID}, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to load session snapshot",
			zap.String("participant_id", participantID),
		)
		return domain.SessionSnapshot{}, err
	}

	return snap, nil
}
