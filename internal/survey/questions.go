// Package survey holds the question catalogs, answer scales and field
// naming shared by the response stores and the completion predicates.
package survey

import (
	"time"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

// NotSelected is the sentinel the frontend submits for untouched selects.
// Completeness checks treat it (case-insensitively) the same as empty.
const NotSelected = "Not selected"

type Question struct {
	Key    string
	Prompt string
}

var ExperienceOptions = []string{
	"Less than 1 year",
	"1–3 years",
	"4–6 years",
	"7–10 years",
	"More than 10 years",
}

var CodebaseExperienceOptions = []string{
	"Fewer than 100",
	"100–1,000",
	"1,001–10,000",
	"10,001–50,000",
	"More than 50,000",
}

// NASA-TLX workload items, 1-7 scale.
var NASATLXQuestions = []Question{
	{Key: "mental_demand", Prompt: "How mentally demanding was the task?"},
	{Key: "physical_demand", Prompt: "How hard did you have to work to accomplish your level of performance?"},
	{Key: "frustration", Prompt: "How frustrated, annoyed, or stressed did you feel while reviewing this PR?"},
}

// Code quality items, 1-5 agreement scale.
var CodeQualityQuestions = []Question{
	{Key: "readability", Prompt: "This code is easy to read (readability)"},
	{Key: "analyzability", Prompt: "This code's logic and structure are easy to understand (analyzability)"},
	{Key: "modifiability", Prompt: "This code would be easy to modify or extend (modifiability)"},
	{Key: "testability", Prompt: "This code would be easy to test (testability)"},
	{Key: "stability", Prompt: "This code would be stable when changes are made (stability)"},
	{Key: "correctness", Prompt: "This code performs as intended (correctness)"},
	{Key: "compliance", Prompt: "This code follows the repository's established standards and practices (compliance)"},
}

var AIDetectionQuestions = []Question{
	{Key: "ai_likelihood", Prompt: "How likely is it that this PR included AI-generated code?"},
	{Key: "ai_reasoning", Prompt: "What made you think this PR did or did not contain AI-generated code?"},
}

var CollaborationQuestions = []Question{
	{Key: "psychological_safety", Prompt: "I felt that my feedback was respected by the contributor (psychological safety)"},
	{Key: "constructiveness", Prompt: "Contributors engaged in discussions in a constructive way (constructiveness)"},
	{Key: "shared_ownership", Prompt: "I felt a shared sense of responsibility with the contributor for improving the code during reviews (shared ownership)"},
	{Key: "collaborative_problem_solving", Prompt: "The contributor engaged in productive discussions about code design (collaborative problem-solving)"},
}

var PerceptionQuestions = []Question{
	{Key: "capable", Prompt: "I see this contributor as capable"},
	{Key: "trustworthy", Prompt: "I see this contributor as trustworthy"},
	{Key: "friendly", Prompt: "I see this contributor as friendly"},
	{Key: "intelligent", Prompt: "I see this contributor as intelligent"},
}

// Representative answer keys, one per stage. A stage counts as complete for
// a PR when its representative key holds a usable value. Keys match the
// answer map naming the frontend submits.
const (
	FieldNASATLXPrimary       = "nasa_tlx_mental_demand"
	FieldCodeQualityPrimary   = "code_quality_readability"
	FieldAIDetectionPrimary   = "ai_likelihood"
	FieldCollaborationPrimary = "collaboration_psychological_safety"
	FieldEndStudyPrimary      = "workflow_comparison"
)

// RepresentativeField returns the stage's representative answer key, or ""
// for stages without a response record.
func RepresentativeField(stage domain.Stage) string {
	switch stage {
	case domain.StageNASATLX:
		return FieldNASATLXPrimary
	case domain.StageCodeQuality:
		return FieldCodeQualityPrimary
	case domain.StageAIDetection:
		return FieldAIDetectionPrimary
	case domain.StageCollaboration:
		return FieldCollaborationPrimary
	case domain.StageEndStudy:
		return FieldEndStudyPrimary
	default:
		return ""
	}
}

// AudioWindow returns the accepted recording duration for a stage's voice
// questions. Reflection stages ask for a bit more material.
func AudioWindow(stage domain.Stage) (min, max time.Duration) {
	switch stage {
	case domain.StageEndStudy:
		return 20 * time.Second, 10 * time.Minute
	default:
		return 10 * time.Second, 10 * time.Minute
	}
}
