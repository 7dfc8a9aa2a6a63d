package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PRClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_claimed_total",
		Help: "Total number of PRs claimed by reviewers",
	})

	ClaimConflictTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_claim_conflict_total",
		Help: "Total number of claim attempts lost to a concurrent claim",
	})

	ResponsesSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survey_responses_saved_total",
		Help: "Total number of saved response records by stage",
	}, []string{"stage"})

	ResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "progress_resolve_total",
		Help: "Total number of resolver runs by resulting stage",
	}, []string{"stage"})

	ArtifactUploadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artifact_uploaded_total",
		Help: "Total number of stored artifact uploads",
	})

	TranscriptionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transcription_total",
		Help: "Total number of completed audio transcriptions",
	})
)
