package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/revlab/reviewer-survey-service/internal/logger"
	"github.com/revlab/reviewer-survey-service/internal/usecase"
)

// POST /session/resolve
func (s *ServerHandler) PostSessionResolve(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostSessionResolve called")

	var body ResolveRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostSessionResolve", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	snapshot := usecase.Snapshot{
		SetupChecklistDone: body.SetupChecklistDone,
		ReviewConfirmed:    body.ReviewConfirmed,
		ArtifactUploaded:   body.ArtifactUploaded,
	}

	stage := s.sessionUC.Resolve(ctx.Request().Context(), body.ParticipantID, snapshot)

	return ctx.JSON(http.StatusOK, ResolveResponse{
		Stage: stage.String(),
		Page:  stage.PageIndex(),
	})
}

// GET /session
func (s *ServerHandler) GetSession(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetSession called")

	participantID := ctx.QueryParam("participant_id")
	if participantID == "" {
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	snapshot, err := s.sessionUC.LoadSession(ctx.Request().Context(), participantID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"session": toAPISession(snapshot),
	})
}

// POST /session
func (s *ServerHandler) PostSession(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostSession called")

	var body SessionRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostSession", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.ParticipantID == "" {
		log.Warn("invalid data in PostSession")
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if err := s.sessionUC.SaveSession(ctx.Request().Context(), body.ParticipantID, body.CurrentPage); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
