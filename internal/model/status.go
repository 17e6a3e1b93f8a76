package model

type ScholarshipStage string

const (
	StageApproved   ScholarshipStage = "APPROVED"
	StagePending    ScholarshipStage = "PENDING"
	StageRejected   ScholarshipStage = "REJECTED"
	StageNotApplied ScholarshipStage = "NOT_APPLIED"
)

// StatusRecord is the outcome of one NPCI mapper lookup. It is built once by
// the lookup client and never mutated or persisted afterwards.
type StatusRecord struct {
	IdentityNumber   string           `json:"identity_number"`
	IsSeeded         bool             `json:"is_seeded"`
	BankName         *string          `json:"bank_name"`
	LastUpdated      *string          `json:"last_updated"`
	ScholarshipStage ScholarshipStage `json:"scholarship_stage"`
	ScholarshipName  *string          `json:"scholarship_name"`
}

type StepStage string

const (
	StepCompleted StepStage = "COMPLETED"
	StepCurrent   StepStage = "CURRENT"
	StepRejected  StepStage = "REJECTED"
	StepUpcoming  StepStage = "UPCOMING"
)

// ProgressStep is one entry of the 3-step scholarship tracker shown under a
// status result. Label is a localized string resolved per request.
type ProgressStep struct {
	Label string    `json:"label"`
	Stage StepStage `json:"stage"`
}
