// Package grievance mints immutable grievance tickets and hosts the optional
// AI description assistant. Tickets never leave the process; resolution
// happens at the bank and NPCI, the ticket id is the student's reference.
package grievance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dbt-portal/internal/lookup"
	"dbt-portal/internal/model"
)

var ErrInvalidGrievance = errors.New("grievance does not meet submission requirements")

// MinDescriptionLength is the shortest description accepted on submit.
const MinDescriptionLength = 10

const ticketPrefix = "DBT"

// Submit validates a draft and returns the immutable ticket. No network call,
// no stored state; the returned ticket is the only side effect.
func Submit(draft model.GrievanceDraft) (*model.GrievanceTicket, error) {
	if !draft.IssueType.Known() {
		return nil, fmt.Errorf("%w: unknown issue type %q", ErrInvalidGrievance, draft.IssueType)
	}
	if !lookup.ValidIdentityNumber(draft.IdentityNumber) {
		return nil, fmt.Errorf("%w: identity number must be exactly 12 digits", ErrInvalidGrievance)
	}
	if len(strings.TrimSpace(draft.Description)) < MinDescriptionLength {
		return nil, fmt.Errorf("%w: description must be at least %d characters", ErrInvalidGrievance, MinDescriptionLength)
	}

	now := time.Now()
	return &model.GrievanceTicket{
		GrievanceDraft: draft,
		TicketID:       newTicketID(now),
		Status:         model.TicketStatusSubmitted,
		SubmittedAt:    now.Format("02 Jan 2006, 3:04 PM"),
	}, nil
}

// newTicketID keeps the DBT-<millis> shape students already see on the
// portal, with a uuid fragment so two submissions in the same millisecond
// still get distinct ids.
func newTicketID(now time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%d-%s", ticketPrefix, now.UnixMilli(), suffix)
}
