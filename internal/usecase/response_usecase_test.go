package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/mocks"
)

// ----------HELPERS FOR TESTS----------

func newResponseService(ctrl *gomock.Controller) (*serviceImpl, *mocks.MockResponseRepository, *mocks.MockSessionRepository) {
	responseRepo := mocks.NewMockResponseRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)

	svc := &serviceImpl{
		responseRepo: responseRepo,
		sessionRepo:  sessionRepo,
	}

	return svc, responseRepo, sessionRepo
}

// ----------SAVE RESPONSES TESTS----------

func TestSaveReviewResponses_NormalizesURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, responseRepo, _ := newResponseService(ctrl)

	answers := map[string]any{"nasa_tlx_mental_demand": "High"}

	responseRepo.
		EXPECT().
		UpsertReview(gomock.Any(), domain.StageRecord{
			ParticipantID: "p1",
			PRURL:         "https://github.com/org/widget/pull/5",
			Answers:       answers,
		}).
		Return(nil)

	err := svc.SaveReviewResponses(context.Background(), "p1", " https://github.com/org/widget/pull/5/ ", answers)
	require.NoError(t, err)
}

func TestSaveClosedResponses_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, responseRepo, _ := newResponseService(ctrl)

	wantErr := errors.New("db error")
	responseRepo.EXPECT().UpsertClosed(gomock.Any(), gomock.Any()).Return(wantErr)

	err := svc.SaveClosedResponses(context.Background(), "p1", testPRURL, map[string]any{"k": "v"})
	require.ErrorIs(t, err, wantErr)
}

// ----------PROGRESS TESTS----------

func TestGetProgress_EndStudyNotFoundIsFine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, responseRepo, _ := newResponseService(ctrl)

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return([]domain.StageRecord{{PRURL: testPRURL}}, nil)
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil)
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, notFoundErr())

	progress, err := svc.GetProgress(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, 1, progress.ReviewCount())
	require.Equal(t, 0, progress.ClosedCount())
	require.False(t, progress.EndStudyComplete)
}

func TestGetProgress_EndStudyErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, responseRepo, _ := newResponseService(ctrl)

	wantErr := errors.New("db error")

	responseRepo.EXPECT().ListReview(gomock.Any(), "p1").Return(nil, nil)
	responseRepo.EXPECT().ListClosed(gomock.Any(), "p1").Return(nil, nil)
	responseRepo.EXPECT().GetEndStudy(gomock.Any(), "p1").Return(domain.StageRecord{}, wantErr)

	_, err := svc.GetProgress(context.Background(), "p1")
	require.ErrorIs(t, err, wantErr)
}

// ----------SESSION TESTS----------

func TestSaveSession_GeneratesSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessionRepo := newResponseService(ctrl)

	sessionRepo.
		EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap domain.SessionSnapshot) error {
			require.Equal(t, "p1", snap.ParticipantID)
			require.Equal(t, 5, snap.CurrentPage)
			require.Contains(t, snap.SessionID, "p1_")
			return nil
		})

	err := svc.SaveSession(context.Background(), "p1", 5)
	require.NoError(t, err)
}

func TestLoadSession_NotFoundGivesZeroSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessionRepo := newResponseService(ctrl)

	sessionRepo.EXPECT().Get(gomock.Any(), "p1").Return(domain.SessionSnapshot{}, notFoundErr())

	snap, err := svc.LoadSession(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", snap.ParticipantID)
	require.Equal(t, 0, snap.CurrentPage)
}

func TestLoadSession_ReturnsStoredSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessionRepo := newResponseService(ctrl)

	started := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	stored := domain.SessionSnapshot{
		SessionID:     "p1_20260402_090000_abcd1234",
		ParticipantID: "p1",
		CurrentPage:   8,
		StartedAt:     started,
	}

	sessionRepo.EXPECT().Get(gomock.Any(), "p1").Return(stored, nil)

	snap, err := svc.LoadSession(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, stored, snap)
}
