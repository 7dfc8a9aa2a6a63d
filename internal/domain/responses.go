package domain

import "time"

// StageRecord is one saved row of a response table: a flat map of
// question-key to answer for a (participant, PR) pair. Global stages such as
// the end-of-study reflection leave PRURL empty.
type StageRecord struct {
	ParticipantID string
	PRURL         string
	Answers       map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SessionSnapshot is the per-participant navigation snapshot. Only the page
// index is restored from it; answers are restored from the stage records.
type SessionSnapshot struct {
	SessionID     string
	ParticipantID string
	CurrentPage   int
	StartedAt     time.Time
	UpdatedAt     time.Time
}

// Artifact records a completed screen-recording upload.
type Artifact struct {
	ID            string
	ParticipantID string
	IssueKey      string
	Stage         Stage
	ObjectRef     string
	SizeBytes     int64
	UploadedAt    time.Time
}

// Progress aggregates everything the resolver needs from the response
// tables. Counts are row counts, not per-PR completeness.
type Progress struct {
	ReviewRecords    []StageRecord
	ClosedRecords    []StageRecord
	EndStudyComplete bool
}

func (p Progress) ReviewCount() int { return len(p.ReviewRecords) }

func (p Progress) ClosedCount() int { return len(p.ClosedRecords) }

// AllReviewedClosed reports whether every reviewed PR also has its
// post-closure record, with at least one review on file.
func (p Progress) AllReviewedClosed() bool {
	return p.ReviewCount() > 0 && p.ClosedCount() >= p.ReviewCount()
}
