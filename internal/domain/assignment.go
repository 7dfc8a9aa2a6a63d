package domain

import (
	"strconv"
	"strings"
	"time"
)

// RepoAssignment binds a study participant to the repository they review.
// The binding is created out-of-band and is read-only here.
type RepoAssignment struct {
	ParticipantID  string
	RepositoryName string
	RepositoryURL  string
}

// Assignment is one row of the contributor-side issue table: a completed
// issue whose pull request can be (or has been) handed to a reviewer.
type Assignment struct {
	IssueID    int64
	Repository string
	IssueURL   string
	PRURL      string

	IsCompleted bool

	ReviewerAssigned   bool
	ReviewerID         string
	ReviewerAssignedOn *time.Time

	ReviewerEstimate       string
	NewContributorEstimate string

	IsClosed   bool
	IsMerged   bool
	IsReviewed bool

	UsingAI       *bool
	IssueSequence *int
}

// PRNumber extracts the pull request number from the PR URL, or "" when the
// URL does not look like a pull request link.
func (a Assignment) PRNumber() string {
	const marker = "pull/"
	idx := strings.LastIndex(a.PRURL, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSuffix(a.PRURL[idx+len(marker):], "/")
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		rest = rest[:slash]
	}
	if _, err := strconv.Atoi(rest); err != nil {
		return ""
	}
	return rest
}

// Open reports whether the assignment still awaits closure.
func (a Assignment) Open() bool {
	return a.ReviewerAssigned && !a.IsClosed && !a.IsMerged
}

// HasEstimates reports whether both pre-review time estimates were recorded.
func (a Assignment) HasEstimates() bool {
	return a.ReviewerEstimate != "" && a.NewContributorEstimate != ""
}

// IssueKey identifies the assignment for artifact bookkeeping. Falls back to
// the PR URL when the issue id is unknown.
func (a Assignment) IssueKey() string {
	if a.IssueID != 0 {
		return strconv.FormatInt(a.IssueID, 10)
	}
	if a.PRURL != "" {
		return a.PRURL
	}
	return "current_pr"
}
