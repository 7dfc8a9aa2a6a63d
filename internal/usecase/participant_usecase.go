package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/logger"
)

func (s *serviceImpl) ValidateParticipant(ctx context.Context, participantID string) (domain.RepoAssignment, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.ValidateParticipant",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeNotFound, "participant id cannot be empty")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.RepoAssignment{}, derr
	}

	assignment, err := s.participantRepo.GetRepoAssignment(ctx, participantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to validate participant",
			zap.String("participant_id", participantID),
		)
		return domain.RepoAssignment{}, err
	}

	span.SetAttributes(attribute.String("participant.repository", assignment.RepositoryName))

	return assignment, nil
}
