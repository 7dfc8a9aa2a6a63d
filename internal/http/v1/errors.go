package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

func newAPIError(code ErrorResponseErrorCode, message string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func mapDomainErrorToStatus(code domain.ErrorCode) int {
	switch code {
	case domain.ErrorCodeNotFound:
		return http.StatusNotFound
	case domain.ErrorCodeNoPRAvailable, domain.ErrorCodeOpenLimit:
		return http.StatusConflict
	case domain.ErrorCodeArtifactTooBig:
		return http.StatusRequestEntityTooLarge
	case domain.ErrorCodeAudioTooShort, domain.ErrorCodeAudioTooLong, domain.ErrorCodeAudioFormat:
		return http.StatusBadRequest
	case domain.ErrorCodeTranscription:
		return http.StatusBadGateway
	case domain.ErrorCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates usecase errors into the API error envelope.
func respondError(c echo.Context, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		resp := newAPIError(ErrorResponseErrorCode(domainErr.Code), domainErr.Error())
		return c.JSON(mapDomainErrorToStatus(domainErr.Code), resp)
	}
	return c.JSON(http.StatusInternalServerError, newAPIError("INTERNAL", "internal server error"))
}
