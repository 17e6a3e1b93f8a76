package model

type IssueType string

const (
	IssueNotSeeded        IssueType = "NOT_SEEDED"
	IssueMultipleAccounts IssueType = "MULTIPLE_ACCOUNTS"
	IssueDetailsMismatch  IssueType = "DETAILS_MISMATCH"
	IssueOther            IssueType = "OTHER"
)

// DisplayName returns the human-readable label used in prompts and tickets.
func (t IssueType) DisplayName() string {
	switch t {
	case IssueNotSeeded:
		return "Not Seeded"
	case IssueMultipleAccounts:
		return "Multiple Accounts"
	case IssueDetailsMismatch:
		return "Details Mismatch"
	case IssueOther:
		return "Other"
	}
	return string(t)
}

// Known reports whether t is one of the four accepted issue types.
func (t IssueType) Known() bool {
	switch t {
	case IssueNotSeeded, IssueMultipleAccounts, IssueDetailsMismatch, IssueOther:
		return true
	}
	return false
}

// GrievanceDraft is the mutable form state while a grievance is being written.
type GrievanceDraft struct {
	IssueType      IssueType `json:"issue_type"`
	Description    string    `json:"description"`
	IdentityNumber string    `json:"identity_number"`
}

const TicketStatusSubmitted = "SUBMITTED"

// GrievanceTicket is the immutable record minted from a draft on submission.
type GrievanceTicket struct {
	GrievanceDraft
	TicketID    string `json:"ticket_id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}
