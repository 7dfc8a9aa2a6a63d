package v1

import "time"

// Request/response bodies for the survey API.

type ErrorResponseErrorCode string

type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

type ValidateParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

type RepoAssignment struct {
	ParticipantID  string `json:"participant_id"`
	RepositoryName string `json:"repository_name"`
	RepositoryURL  string `json:"repository_url"`
}

type Assignment struct {
	IssueID                int64      `json:"issue_id"`
	Repository             string     `json:"repository"`
	IssueURL               string     `json:"issue_url"`
	PRURL                  string     `json:"pr_url"`
	PRNumber               string     `json:"pr_number,omitempty"`
	ReviewerID             string     `json:"reviewer_id"`
	ReviewerAssignedOn     *time.Time `json:"reviewer_assigned_on,omitempty"`
	ReviewerEstimate       string     `json:"reviewer_estimate,omitempty"`
	NewContributorEstimate string     `json:"new_contributor_estimate,omitempty"`
	IsClosed               bool       `json:"is_closed"`
	IsMerged               bool       `json:"is_merged"`
	IsReviewed             bool       `json:"is_reviewed"`
}

type ClaimRequest struct {
	ParticipantID string `json:"participant_id"`
}

type EstimatesRequest struct {
	IssueID                int64  `json:"issue_id"`
	ReviewerEstimate       string `json:"reviewer_estimate"`
	NewContributorEstimate string `json:"new_contributor_estimate"`
}

type StatusRequest struct {
	IssueID    int64 `json:"issue_id"`
	IsClosed   bool  `json:"is_closed"`
	IsMerged   bool  `json:"is_merged"`
	IsReviewed bool  `json:"is_reviewed"`
}

type ReviewResponsesRequest struct {
	ParticipantID string         `json:"participant_id"`
	PRURL         string         `json:"pr_url"`
	Answers       map[string]any `json:"answers"`
}

type EndStudyRequest struct {
	ParticipantID string         `json:"participant_id"`
	Answers       map[string]any `json:"answers"`
}

type SessionRequest struct {
	ParticipantID string `json:"participant_id"`
	CurrentPage   int    `json:"current_page"`
}

type Session struct {
	ParticipantID string     `json:"participant_id"`
	CurrentPage   int        `json:"current_page"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ResolveRequest carries the participant id plus the page layer's
// request-scoped response state the resolver consults.
type ResolveRequest struct {
	ParticipantID      string          `json:"participant_id"`
	SetupChecklistDone bool            `json:"setup_checklist_complete"`
	ReviewConfirmed    bool            `json:"review_confirmed"`
	ArtifactUploaded   map[string]bool `json:"artifact_upload_status"`
}

type ResolveResponse struct {
	Stage string `json:"stage"`
	Page  int    `json:"page"`
}

type Progress struct {
	ReviewCount      int  `json:"post_pr_review_count"`
	ClosedCount      int  `json:"post_pr_closed_count"`
	EndStudyComplete bool `json:"end_study_completed"`
}

type Artifact struct {
	ID         string    `json:"id"`
	ObjectRef  string    `json:"object_ref"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Transcript struct {
	Text string `json:"text"`
}
