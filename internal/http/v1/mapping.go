package v1

import (
	"github.com/revlab/reviewer-survey-service/internal/domain"
)

func toAPIRepoAssignment(ra domain.RepoAssignment) RepoAssignment {
	return RepoAssignment{
		ParticipantID:  ra.ParticipantID,
		RepositoryName: ra.RepositoryName,
		RepositoryURL:  ra.RepositoryURL,
	}
}

func toAPIAssignment(a domain.Assignment) Assignment {
	return Assignment{
		IssueID:                a.IssueID,
		Repository:             a.Repository,
		IssueURL:               a.IssueURL,
		PRURL:                  a.PRURL,
		PRNumber:               a.PRNumber(),
		ReviewerID:             a.ReviewerID,
		ReviewerAssignedOn:     a.ReviewerAssignedOn,
		ReviewerEstimate:       a.ReviewerEstimate,
		NewContributorEstimate: a.NewContributorEstimate,
		IsClosed:               a.IsClosed,
		IsMerged:               a.IsMerged,
		IsReviewed:             a.IsReviewed,
	}
}

func toAPIAssignments(list []domain.Assignment) []Assignment {
	out := make([]Assignment, 0, len(list))
	for _, a := range list {
		out = append(out, toAPIAssignment(a))
	}
	return out
}

func toAPISession(s domain.SessionSnapshot) Session {
	resp := Session{
		ParticipantID: s.ParticipantID,
		CurrentPage:   s.CurrentPage,
	}
	if !s.StartedAt.IsZero() {
		startedAt := s.StartedAt
		resp.StartedAt = &startedAt
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

func toAPIProgress(p domain.Progress) Progress {
	return Progress{
		ReviewCount:      p.ReviewCount(),
		ClosedCount:      p.ClosedCount(),
		EndStudyComplete: p.EndStudyComplete,
	}
}

func toAPIArtifact(a domain.Artifact) Artifact {
	return Artifact{
		ID:         a.ID,
		ObjectRef:  a.ObjectRef,
		SizeBytes:  a.SizeBytes,
		UploadedAt: a.UploadedAt,
	}
}
