package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewRouter assembles Echo and registers the survey endpoints.
func NewRouter(handler *ServerHandler) *echo.Echo {
	e := echo.New()

	e.POST("/participant/validate", handler.PostParticipantValidate)

	e.POST("/session/resolve", handler.PostSessionResolve)
	e.GET("/session", handler.GetSession)
	e.POST("/session", handler.PostSession)

	e.POST("/pullRequest/claim", handler.PostPullRequestClaim)
	e.GET("/pullRequest/assigned", handler.GetPullRequestAssigned)
	e.GET("/pullRequest/list", handler.GetPullRequestList)
	e.POST("/pullRequest/estimates", handler.PostPullRequestEstimates)
	e.POST("/pullRequest/status", handler.PostPullRequestStatus)

	e.POST("/responses/review", handler.PostResponsesReview)
	e.POST("/responses/closed", handler.PostResponsesClosed)
	e.POST("/responses/endStudy", handler.PostResponsesEndStudy)
	e.GET("/progress", handler.GetProgress)

	e.POST("/artifacts", handler.PostArtifacts)
	e.POST("/transcripts", handler.PostTranscripts)

	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}
