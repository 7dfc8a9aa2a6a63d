package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/revlab/reviewer-survey-service/internal/logger"
)

// POST /participant/validate
func (s *ServerHandler) PostParticipantValidate(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostParticipantValidate called")

	var body ValidateParticipantRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostParticipantValidate", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	assignment, err := s.participantUC.ValidateParticipant(ctx.Request().Context(), body.ParticipantID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"assignment": toAPIRepoAssignment(assignment),
	})
}
