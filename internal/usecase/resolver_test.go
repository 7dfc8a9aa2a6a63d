package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/mocks"
	"github.com/revlab/reviewer-survey-service/internal/survey"
)

// ----------HELPERS FOR TESTS----------

func newSurveyService(ctrl *gomock.Controller) (
	*serviceImpl,
	*mocks.MockParticipantRepository,
	*mocks.MockAssignmentRepository,
	*mocks.MockResponseRepository,
	*mocks.MockArtifactRepository,
) {
	participantRepo := mocks.NewMockParticipantRepository(ctrl)
	assignmentRepo := mocks.NewMockAssignmentRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	artifactRepo := mocks.NewMockArtifactRepository(ctrl)

	svc := &serviceImpl{
		cfg: Config{
			ReviewQuota:        4,
			MaxOpenAssignments: 1,
			ArtifactMaxBytes:   1 << 30,
		},
		participantRepo: participantRepo,
		assignmentRepo:  assignmentRepo,
		responseRepo:    responseRepo,
		sessionRepo:     sessionRepo,
		artifactRepo:    artifactRepo,
	}

	return svc, participantRepo, assignmentRepo, responseRepo, artifactRepo
}

func notFoundErr() error {
	return domain.NewDomainError(domain.ErrorCodeNotFound, "not found")
}

const testPRURL = "https://github.com/org/widget/pull/5"

func reviewedPR() domain.Assignment {
	return domain.Assignment{
		IssueID:                7,
		Repository:             "org/widget",
		PRURL:                  testPRURL,
		ReviewerAssigned:       true,
		ReviewerID:             "p1",
		ReviewerEstimate:       "1-2 hours",
		NewContributorEstimate: "3-4 hours",
		IsReviewed:             true,
	}
}

func fullyAnsweredRecord(prURL string) domain.StageRecord {
	return domain.StageRecord{
		ParticipantID: "p1",
		PRURL:         prURL,
		Answers: map[string]any{
			survey.FieldNASATLXPrimary:     "High",
			survey.FieldCodeQualityPrimary: "Agree",
			survey.FieldAIDetectionPrimary: "Likely AI",
		},
	}
}

// ----------RESOLVE TESTS----------

func TestResolve_EmptyParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newSurveyService(ctrl)

	stage := svc.Resolve(context.Background(), "", Snapshot{})
	require.Equal(t, domain.StageEntry, stage)
}

func TestResolve_UnknownParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, _, _, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "ghost").
		Return(domain.RepoAssignment{}, notFoundErr())

	stage := svc.Resolve(context.Background(), "ghost", Snapshot{})
	require.Equal(t, domain.StageEntry, stage)
}

func TestResolve_ChecklistBeforeFirstReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, _, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	stage := svc.Resolve(context.Background(), "p1", Snapshot{})
	require.Equal(t, domain.StageChecklist, stage)
}

func TestResolve_AssignmentWhenNoCurrentPR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(domain.Assignment{}, notFoundErr())

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageAssignment, stage)
}

func TestResolve_AssignmentWhenEstimatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	pr := reviewedPR()
	pr.ReviewerEstimate = ""

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(pr, nil)

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageAssignment, stage)
}

func TestResolve_ReviewSubmissionWhenNotReviewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	pr := reviewedPR()
	pr.IsReviewed = false

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(pr, nil)

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageReviewSubmission, stage)
}

func TestResolve_NASATLXAfterReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(reviewedPR(), nil)

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageNASATLX, stage)
}

func TestResolve_CodeQualityAfterNASATLX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	rec := domain.StageRecord{
		ParticipantID: "p1",
		PRURL:         testPRURL,
		Answers:       map[string]any{survey.FieldNASATLXPrimary: "High"},
	}

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return([]domain.StageRecord{rec}, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(reviewedPR(), nil)

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageCodeQuality, stage)
}

func TestResolve_PRStatusBelowQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	review := fullyAnsweredRecord(testPRURL)
	closed := domain.StageRecord{
		ParticipantID: "p1",
		PRURL:         testPRURL,
		Answers:       map[string]any{survey.FieldCollaborationPrimary: "Agree"},
	}

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return([]domain.StageRecord{review}, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return([]domain.StageRecord{closed}, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	pr := reviewedPR()
	pr.IsMerged = true

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(pr, nil)

	snapshot := Snapshot{
		SetupChecklistDone: true,
		ArtifactUploaded:   map[string]bool{pr.IssueKey(): true},
	}

	stage := svc.Resolve(context.Background(), "p1", snapshot)
	require.Equal(t, domain.StagePRStatus, stage)
}

func TestResolve_CollaborationAfterClosure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, artifactRepo := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	review := fullyAnsweredRecord(testPRURL)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return([]domain.StageRecord{review}, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()
	artifactRepo.EXPECT().Exists(gomock.Any(), "p1", gomock.Any(), domain.StageArtifact).Return(false, nil).AnyTimes()

	pr := reviewedPR()
	pr.IsClosed = true

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(pr, nil)

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageCollaboration, stage)
}

func TestResolve_CompleteWhenEverythingDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil).
		AnyTimes()

	urls := []string{
		"https://github.com/org/widget/pull/2",
		"https://github.com/org/widget/pull/3",
		"https://github.com/org/widget/pull/4",
		testPRURL,
	}

	var reviews, closed []domain.StageRecord
	for _, u := range urls {
		reviews = append(reviews, fullyAnsweredRecord(u))
		closed = append(closed, domain.StageRecord{
			ParticipantID: "p1",
			PRURL:         u,
			Answers:       map[string]any{survey.FieldCollaborationPrimary: "Agree"},
		})
	}

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(reviews, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(closed, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").
		Return(domain.StageRecord{ParticipantID: "p1", Answers: map[string]any{survey.FieldEndStudyPrimary: "Much better"}}, nil).
		AnyTimes()

	pr := reviewedPR()
	pr.IsMerged = true

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(pr, nil).
		AnyTimes()

	snapshot := Snapshot{
		SetupChecklistDone: true,
		ArtifactUploaded:   map[string]bool{pr.IssueKey(): true},
	}

	stage := svc.Resolve(context.Background(), "p1", snapshot)
	require.Equal(t, domain.StageComplete, stage)
}

func TestResolve_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, _ := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil).
		AnyTimes()

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(reviewedPR(), nil).
		AnyTimes()

	snapshot := Snapshot{SetupChecklistDone: true}

	first := svc.Resolve(context.Background(), "p1", snapshot)
	second := svc.Resolve(context.Background(), "p1", snapshot)

	require.Equal(t, first, second)
	require.Equal(t, domain.StageNASATLX, first)
}

func TestResolve_EndStudyArtifactGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, participantRepo, assignmentRepo, responseRepo, artifactRepo := newSurveyService(ctrl)

	participantRepo.
		EXPECT().
		GetRepoAssignment(gomock.Any(), "p1").
		Return(domain.RepoAssignment{ParticipantID: "p1", RepositoryName: "org/widget"}, nil)

	urls := []string{
		"https://github.com/org/widget/pull/2",
		"https://github.com/org/widget/pull/3",
		"https://github.com/org/widget/pull/4",
		testPRURL,
	}

	var reviews, closed []domain.StageRecord
	for _, u := range urls {
		reviews = append(reviews, fullyAnsweredRecord(u))
		closed = append(closed, domain.StageRecord{ParticipantID: "p1", PRURL: u})
	}

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(reviews, nil).AnyTimes()
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(closed, nil).AnyTimes()
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr()).AnyTimes()

	pr := reviewedPR()
	pr.IsMerged = true

	assignmentRepo.
		EXPECT().
		GetCurrentForReviewer(gomock.Any(), "p1", "org/widget").
		Return(pr, nil)

	artifactRepo.
		EXPECT().
		Exists(gomock.Any(), "p1", pr.IssueKey(), domain.StageArtifact).
		Return(false, nil)

	stage := svc.Resolve(context.Background(), "p1", Snapshot{SetupChecklistDone: true})
	require.Equal(t, domain.StageArtifact, stage)
}
