package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/metrics"
	"github.com/revlab/reviewer-survey-service/internal/survey"
	"github.com/revlab/reviewer-survey-service/internal/transcribe"
)

// UploadArtifact stores a screen recording under
// participant/issue/stage folders and records the upload. Oversized
// payloads are rejected before the blob store is touched.
func (s *serviceImpl) UploadArtifact(ctx context.Context, req ArtifactUpload) (domain.Artifact, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.UploadArtifact",
		trace.WithAttributes(
			attribute.String("participant.id", req.ParticipantID),
			attribute.String("artifact.issue_key", req.IssueKey),
			attribute.Int64("artifact.size", req.Size),
		),
	)
	defer span.End()

	if req.Size > s.cfg.ArtifactMaxBytes {
		derr := domain.NewDomainError(domain.ErrorCodeArtifactTooBig,
			fmt.Sprintf("recording exceeds the %d MiB upload limit", s.cfg.ArtifactMaxBytes>>20))
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.Artifact{}, derr
	}

	folders := []string{req.ParticipantID, req.IssueKey, req.Stage.String()}

	ref, err := s.uploader.Upload(ctx, folders, req.Filename, req.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to store artifact",
			zap.String("participant_id", req.ParticipantID),
			zap.String("issue_key", req.IssueKey),
		)
		return domain.Artifact{}, err
	}

	art := domain.Artifact{
		ID:            uuid.NewString(),
		ParticipantID: req.ParticipantID,
		IssueKey:      req.IssueKey,
		Stage:         req.Stage,
		ObjectRef:     ref,
		SizeBytes:     req.Size,
	}

	if err := s.artifactRepo.Record(ctx, art); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to record artifact upload",
			zap.String("participant_id", req.ParticipantID),
			zap.String("object_ref", ref),
		)
		return domain.Artifact{}, err
	}

	metrics.ArtifactUploadedTotal.Inc()

	return art, nil
}

// TranscribeAudio validates the recording's duration window for the stage
// and hands it to the transcription service.
func (s *serviceImpl) TranscribeAudio(ctx context.Context, stage domain.Stage, filename string, audio []byte) (string, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.TranscribeAudio",
		trace.WithAttributes(
			attribute.String("audio.stage", stage.String()),
			attribute.Int("audio.bytes", len(audio)),
		),
	)
	defer span.End()

	duration, err := transcribe.WAVDuration(audio)
	if err != nil {
		derr := domain.NewDomainError(domain.ErrorCodeAudioFormat, "audio format not supported, please record in WAV format")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return "", derr
	}

	min, max := survey.AudioWindow(stage)
	if duration < min {
		derr := domain.NewDomainError(domain.ErrorCodeAudioTooShort,
			fmt.Sprintf("please record at least %d seconds of audio", int(min.Seconds())))
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return "", derr
	}
	if duration > max {
		derr := domain.NewDomainError(domain.ErrorCodeAudioTooLong,
			fmt.Sprintf("please record less than %d minutes of audio", int(max.Minutes())))
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return "", derr
	}

	text, err := s.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "transcription failed",
			zap.String("stage", stage.String()),
		)
		return "", err
	}

	metrics.TranscriptionTotal.Inc()

	return text, nil
}
