package model

// StatusResponse wraps a lookup result with the derived progress tracker and
// the localized guidance card for this outcome.
type StatusResponse struct {
	Record   StatusRecord   `json:"record"`
	Progress []ProgressStep `json:"progress"`
	Advisory *Advisory      `json:"advisory,omitempty"`
}

// Advisory is a localized guidance card (e.g. "Action Required!" when the
// account is not seeded).
type Advisory struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TicketResponse carries the minted ticket plus the escalation guidance shown
// on the confirmation screen.
type TicketResponse struct {
	Ticket    GrievanceTicket `json:"ticket"`
	NextSteps []string        `json:"next_steps"`
}

type AssistResponse struct {
	Description string `json:"description"`
}

// ActionPlanResponse is the persisted checklist state for one plan.
type ActionPlanResponse struct {
	PlanID          string `json:"plan_id"`
	CompletedSteps  []int  `json:"completed_steps"`
	TotalSteps      int    `json:"total_steps"`
	ProgressPercent int    `json:"progress_percent"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
