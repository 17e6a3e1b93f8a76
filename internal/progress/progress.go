// Package progress derives the 3-step scholarship tracker from an overall
// scholarship stage. Pure functions, no state.
package progress

import (
	"dbt-portal/internal/i18n"
	"dbt-portal/internal/model"
)

// StepCount is the fixed length of the tracker: application submitted,
// department review, approved and disbursed.
const StepCount = 3

// StepLabels are the localization keys for the three tracker steps, in order.
var StepLabels = [StepCount]i18n.Key{
	i18n.KeyProgressStepSubmitted,
	i18n.KeyProgressStepReview,
	i18n.KeyProgressStepDecided,
}

// DeriveStage maps an overall scholarship stage and a step index (0..2) to
// the state of that step. Rejection is modeled at the review step, so the
// final step is never reached for rejected applications. Unknown stages and
// out-of-range indexes fall through to UPCOMING, keeping the function total.
func DeriveStage(stage model.ScholarshipStage, step int) model.StepStage {
	switch stage {
	case model.StageApproved:
		return model.StepCompleted
	case model.StageRejected:
		switch step {
		case 0:
			return model.StepCompleted
		case 1:
			return model.StepRejected
		}
		return model.StepUpcoming
	case model.StagePending:
		switch step {
		case 0:
			return model.StepCompleted
		case 1:
			return model.StepCurrent
		}
		return model.StepUpcoming
	}
	// NOT_APPLIED: no progress has begun
	return model.StepUpcoming
}

// Track derives the state of all three steps at once.
func Track(stage model.ScholarshipStage) [StepCount]model.StepStage {
	var steps [StepCount]model.StepStage
	for i := range steps {
		steps[i] = DeriveStage(stage, i)
	}
	return steps
}
