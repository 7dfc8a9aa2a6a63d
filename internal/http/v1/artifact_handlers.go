package v1

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	applog "github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/usecase"
)

// POST /artifacts
func (s *ServerHandler) PostArtifacts(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostArtifacts called")

	participantID := ctx.FormValue("participant_id")
	issueKey := ctx.FormValue("issue_key")
	stage := ctx.FormValue("stage")

	if participantID == "" || issueKey == "" {
		log.Warn("invalid data in PostArtifacts", zap.String("participant_id", participantID))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id and issue_key are required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		log.Warn("missing file in PostArtifacts", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "file is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("cannot open uploaded file", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("INTERNAL"), "internal server error")
		return ctx.JSON(http.StatusInternalServerError, resp)
	}
	defer file.Close()

	artifact, err := s.artifactUC.UploadArtifact(ctx.Request().Context(), usecase.ArtifactUpload{
		ParticipantID: participantID,
		IssueKey:      issueKey,
		Stage:         domain.ParseStage(stage),
		Filename:      fileHeader.Filename,
		Size:          fileHeader.Size,
		Body:          file,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"artifact": toAPIArtifact(artifact),
	})
}

// POST /transcripts
func (s *ServerHandler) PostTranscripts(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostTranscripts called")

	stage := ctx.FormValue("stage")

	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		log.Warn("missing audio in PostTranscripts", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "audio is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("cannot open uploaded audio", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("INTERNAL"), "internal server error")
		return ctx.JSON(http.StatusInternalServerError, resp)
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		log.Error("cannot read uploaded audio", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("INTERNAL"), "internal server error")
		return ctx.JSON(http.StatusInternalServerError, resp)
	}

	text, err := s.artifactUC.TranscribeAudio(
		ctx.Request().Context(),
		domain.ParseStage(stage),
		fileHeader.Filename,
		audio,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Transcript{Text: text})
}
