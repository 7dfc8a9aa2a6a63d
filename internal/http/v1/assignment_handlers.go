package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/revlab/reviewer-survey-service/internal/logger"
)

// POST /pullRequest/claim
func (s *ServerHandler) PostPullRequestClaim(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostPullRequestClaim called")

	var body ClaimRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostPullRequestClaim", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.ParticipantID == "" {
		log.Warn("invalid data in PostPullRequestClaim")
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	assignment, err := s.assignmentUC.ClaimPullRequest(ctx.Request().Context(), body.ParticipantID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"assignment": toAPIAssignment(assignment),
	})
}

// GET /pullRequest/assigned
func (s *ServerHandler) GetPullRequestAssigned(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetPullRequestAssigned called")

	participantID := ctx.QueryParam("participant_id")
	if participantID == "" {
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	assignment, err := s.assignmentUC.CurrentAssignment(ctx.Request().Context(), participantID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"assignment": toAPIAssignment(assignment),
	})
}

// GET /pullRequest/list
func (s *ServerHandler) GetPullRequestList(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetPullRequestList called")

	participantID := ctx.QueryParam("participant_id")
	if participantID == "" {
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "participant_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	assignments, err := s.assignmentUC.ListAssignments(ctx.Request().Context(), participantID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"assignments": toAPIAssignments(assignments),
	})
}

// POST /pullRequest/estimates
func (s *ServerHandler) PostPullRequestEstimates(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostPullRequestEstimates called")

	var body EstimatesRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostPullRequestEstimates", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.IssueID == 0 || body.ReviewerEstimate == "" || body.NewContributorEstimate == "" {
		log.Warn("invalid data in PostPullRequestEstimates", zap.Int64("issue_id", body.IssueID))
		resp := newAPIError(
			ErrorResponseErrorCode("BAD_REQUEST"),
			"issue_id, reviewer_estimate and new_contributor_estimate are required",
		)
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	err := s.assignmentUC.SaveEstimates(
		ctx.Request().Context(),
		body.IssueID,
		body.ReviewerEstimate,
		body.NewContributorEstimate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// POST /pullRequest/status
func (s *ServerHandler) PostPullRequestStatus(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostPullRequestStatus called")

	var body StatusRequest

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostPullRequestStatus", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	if body.IssueID == 0 {
		log.Warn("invalid data in PostPullRequestStatus")
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "issue_id is required")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	err := s.assignmentUC.UpdateStatus(
		ctx.Request().Context(),
		body.IssueID,
		body.IsClosed,
		body.IsMerged,
		body.IsReviewed,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
