package model

type StatusRequest struct {
	IdentityNumber string `json:"identity_number"`
}

type ToggleStepRequest struct {
	PlanID string `json:"plan_id,omitempty"`
	Step   int    `json:"step"`
}

type AssistRequest struct {
	IssueType   IssueType `json:"issue_type"`
	Description string    `json:"description"`
}

type QuizAnswerRequest struct {
	SessionID string `json:"session_id"`
	Option    int    `json:"option"`
}

type QuizSessionRequest struct {
	SessionID string `json:"session_id"`
}
