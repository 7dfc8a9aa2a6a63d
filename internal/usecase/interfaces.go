package usecase

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/repository"
)

type (
	ParticipantUseCase interface {
		ValidateParticipant(ctx context.Context, participantID string) (domain.RepoAssignment, error)
	}

	AssignmentUseCase interface {
		ClaimPullRequest(ctx context.Context, reviewerID string) (domain.Assignment, error)
		CurrentAssignment(ctx context.Context, reviewerID string) (domain.Assignment, error)
		ListAssignments(ctx context.Context, reviewerID string) ([]domain.Assignment, error)
		SaveEstimates(ctx context.Context, issueID int64, reviewerEstimate, newContributorEstimate string) error
		UpdateStatus(ctx context.Context, issueID int64, isClosed, isMerged, isReviewed bool) error
	}

	ResponseUseCase interface {
		SaveReviewResponses(ctx context.Context, participantID, prURL string, answers map[string]any) error
		SaveClosedResponses(ctx context.Context, participantID, prURL string, answers map[string]any) error
		SaveEndStudyResponses(ctx context.Context, participantID string, answers map[string]any) error
		GetProgress(ctx context.Context, participantID string) (domain.Progress, error)
	}

	SessionUseCase interface {
		SaveSession(ctx context.Context, participantID string, currentPage int) error
		LoadSession(ctx context.Context, participantID string) (domain.SessionSnapshot, error)
		Resolve(ctx context.Context, participantID string, snapshot Snapshot) domain.Stage
	}

	ArtifactUseCase interface {
		UploadArtifact(ctx context.Context, req ArtifactUpload) (domain.Artifact, error)
		TranscribeAudio(ctx context.Context, stage domain.Stage, filename string, audio []byte) (string, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Uploader stores artifact blobs; see internal/storage.
	Uploader interface {
		Upload(ctx context.Context, folders []string, filename string, r io.Reader) (string, error)
	}

	// Transcriber converts recorded audio to text; see internal/transcribe.
	Transcriber interface {
		Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
	}
)

// Snapshot is the request-scoped view of the participant's in-memory
// responses. It replaces the ambient session object: everything the
// resolver needs from the page layer travels through it explicitly.
type Snapshot struct {
	SetupChecklistDone bool
	ReviewConfirmed    bool
	ArtifactUploaded   map[string]bool
}

// ArtifactUpload describes one incoming screen-recording upload.
type ArtifactUpload struct {
	ParticipantID string
	IssueKey      string
	Stage         domain.Stage
	Filename      string
	Size          int64
	Body          io.Reader
}

// Config carries the study protocol knobs the service honors.
type Config struct {
	ReviewQuota        int
	MaxOpenAssignments int
	ArtifactMaxBytes   int64
}

var _ ParticipantUseCase = (*serviceImpl)(nil)
var _ AssignmentUseCase = (*serviceImpl)(nil)
var _ ResponseUseCase = (*serviceImpl)(nil)
var _ SessionUseCase = (*serviceImpl)(nil)
var _ ArtifactUseCase = (*serviceImpl)(nil)

var tracer = otel.Tracer("reviewer-survey-service")

type serviceImpl struct {
	cfg Config

	participantRepo repository.ParticipantRepository
	assignmentRepo  repository.AssignmentRepository
	responseRepo    repository.ResponseRepository
	sessionRepo     repository.SessionRepository
	artifactRepo    repository.ArtifactRepository

	uploader    Uploader
	transcriber Transcriber
	transactor  Transactor
}

func NewService(
	cfg Config,
	participantRepo repository.ParticipantRepository,
	assignmentRepo repository.AssignmentRepository,
	responseRepo repository.ResponseRepository,
	sessionRepo repository.SessionRepository,
	artifactRepo repository.ArtifactRepository,
	uploader Uploader,
	transcriber Transcriber,
	transactor Transactor,
) *serviceImpl {
	return &serviceImpl{
		cfg:             cfg,
		participantRepo: participantRepo,
		assignmentRepo:  assignmentRepo,
		responseRepo:    responseRepo,
		sessionRepo:     sessionRepo,
		artifactRepo:    artifactRepo,
		uploader:        uploader,
		transcriber:     transcriber,
		transactor:      transactor,
	}
}
