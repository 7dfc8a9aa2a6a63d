package v1

import (
	"github.com/revlab/reviewer-survey-service/internal/usecase"
)

// ServerHandler implements the survey API on top of the usecases.
type ServerHandler struct {
	participantUC usecase.ParticipantUseCase
	assignmentUC  usecase.AssignmentUseCase
	responseUC    usecase.ResponseUseCase
	sessionUC     usecase.SessionUseCase
	artifactUC    usecase.ArtifactUseCase
}

func NewServerHandler(
	participantUC usecase.ParticipantUseCase,
	assignmentUC usecase.AssignmentUseCase,
	responseUC usecase.ResponseUseCase,
	sessionUC usecase.SessionUseCase,
	artifactUC usecase.ArtifactUseCase,
) *ServerHandler {
	return &ServerHandler{
		participantUC: participantUC,
		assignmentUC:  assignmentUC,
		responseUC:    responseUC,
		sessionUC:     sessionUC,
		artifactUC:    artifactUC,
	}
}
