package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/revlab/reviewer-survey-service/internal/logger"
)

// POST /responses/review
func (s *ServerHandler) PostResponsesReview(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostResponsesReview called")

	var body ReviewResponsesRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostResponsesReview", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.ParticipantID == "" || body.PRURL == "" || len(body.Answers) == 0 {
		log.Warn("invalid data in PostResponsesReview",
			zap.String("participant_id", body.ParticipantID),
			zap.String("pr_url", body.PRURL),
		)
		resp := newAPIError(
			ErrorResponseErrorCode("BAD_REQUEST"),
			"participant_id, pr_url and answers are required",
		)
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	err := s.responseUC.SaveReviewResponses(ctx.Request().Context(), body.ParticipantID, body.PRURL, body.Answers)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// POST /responses/closed
func (s *ServerHandler) PostResponsesClosed(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostResponsesClosed called")

	var body ReviewResponsesRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostResponsesClosed", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.ParticipantID == "" || body.PRURL == "" || len(body.Answers) == 0 {
		log.Warn("invalid data in PostResponsesClosed",
			zap.String("participant_id", body.ParticipantID),
			zap.String("pr_url", body.PRURL),
		)
		resp := newAPIError(
			ErrorResponseErrorCode("BAD_REQUEST"),
			"participant_id, pr_url and answers are required",
		)
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	err := s.responseUC.SaveClosedResponses(ctx.Request().Context(), body.ParticipantID, body.PRURL, body.Answers)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// POST /responses/endStudy
func (s *ServerHandler) PostResponsesEndStudy(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostResponsesEndStudy called")

	var body EndStudyRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostResponsesEndStudy", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.ParticipantID == "" || len(body.Answers) == 0 {
		log.Warn("invalid data in PostResponsesEndStudy", zap.String("participant_id", body.ParticipantID))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id and answers are required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	err := s.responseUC.SaveEndStudyResponses(ctx.Request().Context(), body.ParticipantID, body.Answers)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GET /progress
func (s *ServerHandler) GetProgress(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetProgress called")

	participantID := ctx.QueryParam("participant_id")
	if participantID == "" {
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	progress, err := s.responseUC.GetProgress(ctx.Request().Context(), participantID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"progress": toAPIProgress(progress),
	})
}
