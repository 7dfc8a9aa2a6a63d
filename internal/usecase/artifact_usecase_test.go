package usecase

import (
	"bytes"
	"context"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/revlab/reviewer-survey-service/internal/domain"
	"github.com/revlab/reviewer-survey-service/internal/mocks"
)

// ----------HELPERS FOR TESTS----------

func newArtifactService(ctrl *gomock.Controller) (
	*serviceImpl,
	*mocks.MockUploader,
	*mocks.MockTranscriber,
	*mocks.MockArtifactRepository,
) {
	uploader := mocks.NewMockUploader(ctrl)
	transcriber := mocks.NewMockTranscriber(ctrl)
	artifactRepo := mocks.NewMockArtifactRepository(ctrl)

	svc := &serviceImpl{
		cfg: Config{
			ArtifactMaxBytes: 1 << 30,
		},
		artifactRepo: artifactRepo,
		uploader:     uploader,
		transcriber:  transcriber,
	}

	return svc, uploader, transcriber, artifactRepo
}

// wavBytes synthesizes a minimal PCM WAV payload with the given byte rate
// and data chunk size.
func wavBytes(byteRate, dataSize uint32) []byte {
	var buf bytes.Buffer

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(16000))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

// ----------UPLOAD TESTS----------

func TestUploadArtifact_TooLargeNeverTouchesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newArtifactService(ctrl)

	req := ArtifactUpload{
		ParticipantID: "p1",
		IssueKey:      "42",
		Stage:         domain.StageArtifact,
		Filename:      "recording.webm",
		Size:          (1 << 30) + 1,
		Body:          strings.NewReader("x"),
	}

	_, err := svc.UploadArtifact(context.Background(), req)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, domain.ErrorCodeArtifactTooBig, derr.Code)
}

func TestUploadArtifact_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, uploader, _, artifactRepo := newArtifactService(ctrl)

	body := strings.NewReader("recording bytes")

	uploader.
		EXPECT().
		Upload(gomock.Any(), []string{"p1", "42", "artifact_upload"}, "recording.webm", body).
		Return("p1/42/artifact_upload/recording.webm", nil)

	artifactRepo.
		EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, art domain.Artifact) error {
			require.NotEmpty(t, art.ID)
			require.Equal(t, "p1", art.ParticipantID)
			require.Equal(t, "42", art.IssueKey)
			require.Equal(t, domain.StageArtifact, art.Stage)
			require.Equal(t, "p1/42/artifact_upload/recording.webm", art.ObjectRef)
			return nil
		})

	art, err := svc.UploadArtifact(context.Background(), ArtifactUpload{
		ParticipantID: "p1",
		IssueKey:      "42",
		Stage:         domain.StageArtifact,
		Filename:      "recording.webm",
		Size:          15,
		Body:          body,
	})

	require.NoError(t, err)
	require.Equal(t, "p1/42/artifact_upload/recording.webm", art.ObjectRef)
}

// ----------TRANSCRIBE TESTS----------

func TestTranscribeAudio_RejectsNonWAV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newArtifactService(ctrl)

	_, err := svc.TranscribeAudio(context.Background(), domain.StageCollaboration, "note.mp3", []byte("not a wav"))

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, domain.ErrorCodeAudioFormat, derr.Code)
}

func TestTranscribeAudio_TooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newArtifactService(ctrl)

	// 5 seconds at 32 KiB/s, below the 10 second floor.
	audio := wavBytes(32000, 160000)

	_, err := svc.TranscribeAudio(context.Background(), domain.StageCollaboration, "note.wav", audio)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, domain.ErrorCodeAudioTooShort, derr.Code)
}

func TestTranscribeAudio_EndStudyNeedsLongerFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newArtifactService(ctrl)

	// 15 seconds passes the regular floor but not the end-study one.
	audio := wavBytes(32000, 480000)

	_, err := svc.TranscribeAudio(context.Background(), domain.StageEndStudy, "note.wav", audio)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, domain.ErrorCodeAudioTooShort, derr.Code)
}

func TestTranscribeAudio_TooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newArtifactService(ctrl)

	// Eleven minutes.
	audio := wavBytes(1000, 660000)

	_, err := svc.TranscribeAudio(context.Background(), domain.StageCollaboration, "note.wav", audio)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, domain.ErrorCodeAudioTooLong, derr.Code)
}

func TestTranscribeAudio_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, transcriber, _ := newArtifactService(ctrl)

	// 30 seconds.
	audio := wavBytes(32000, 960000)

	transcriber.
		EXPECT().
		Transcribe(gomock.Any(), "note.wav", audio).
		Return("the reviewer found the change easy to follow", nil)

	text, err := svc.TranscribeAudio(context.Background(), domain.StageCollaboration, "note.wav", audio)

	require.NoError(t, err)
	require.Equal(t, "the reviewer found the change easy to follow", text)
}
