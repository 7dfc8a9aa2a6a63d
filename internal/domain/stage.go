package domain

// Stage is one logical step of the survey. The resolver produces a Stage;
// the legacy page-index integers survive only in PageIndex, consumed at the
// rendering boundary.
type Stage int

const (
	StageEntry Stage = iota
	StageChecklist
	StageAssignment
	StageReviewSubmission
	StageNASATLX
	StageCodeQuality
	StageAIDetection
	StagePRStatus
	StageCollaboration
	StagePerception
	StageArtifact
	StageEndStudy
	StageComplete
)

var stagePages = map[Stage]int{
	StageEntry:            0,
	StageChecklist:        2,
	StageAssignment:       3,
	StageReviewSubmission: 4,
	StageNASATLX:          5,
	StageCodeQuality:      6,
	StageAIDetection:      7,
	StagePRStatus:         8,
	StageCollaboration:    9,
	StagePerception:       10,
	StageArtifact:         11,
	StageEndStudy:         12,
	StageComplete:         13,
}

// PageIndex maps the stage onto the page numbering the frontend renders.
func (s Stage) PageIndex() int {
	return stagePages[s]
}

func (s Stage) String() string {
	switch s {
	case StageEntry:
		return "entry"
	case StageChecklist:
		return "setup_checklist"
	case StageAssignment:
		return "pr_assignment"
	case StageReviewSubmission:
		return "review_submission"
	case StageNASATLX:
		return "nasa_tlx"
	case StageCodeQuality:
		return "code_quality"
	case StageAIDetection:
		return "ai_detection"
	case StagePRStatus:
		return "pr_status"
	case StageCollaboration:
		return "collaboration"
	case StagePerception:
		return "perception"
	case StageArtifact:
		return "artifact_upload"
	case StageEndStudy:
		return "end_study"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ParseStage resolves the string form back to a Stage, defaulting to entry.
func ParseStage(s string) Stage {
	for st := StageEntry; st <= StageComplete; st++ {
		if st.String() == s {
			return st
		}
	}
	return StageEntry
}
