package i18n

// Key enumerates every user-visible string the service renders. Handlers and
// content tables reference keys, never raw text, so a missing translation is
// detectable instead of silently shipping the wrong language.
type Key string

const (
	// Scholarship progress tracker
	KeyProgressStepSubmitted Key = "progress_step_submitted"
	KeyProgressStepReview    Key = "progress_step_review"
	KeyProgressStepDecided   Key = "progress_step_decided"

	// Status advisories
	KeyAdvisoryNotSeededTitle Key = "advisory_not_seeded_title"
	KeyAdvisoryNotSeededBody  Key = "advisory_not_seeded_body"
	KeyAdvisoryPendingTitle   Key = "advisory_pending_title"
	KeyAdvisoryPendingBody    Key = "advisory_pending_body"
	KeyAdvisoryApprovedTitle  Key = "advisory_approved_title"
	KeyAdvisoryApprovedBody   Key = "advisory_approved_body"
	KeyAdvisoryRejectedTitle  Key = "advisory_rejected_title"
	KeyAdvisoryRejectedBody   Key = "advisory_rejected_body"

	// Grievance confirmation guidance
	KeyGrievanceNextStepBank Key = "grievance_next_step_bank"
	KeyGrievanceNextStepNPCI Key = "grievance_next_step_npci"

	// Action plan steps
	KeyActionStep1Title Key = "action_step_1_title"
	KeyActionStep1Body  Key = "action_step_1_body"
	KeyActionStep1Note  Key = "action_step_1_note"
	KeyActionStep2Title Key = "action_step_2_title"
	KeyActionStep2Body  Key = "action_step_2_body"
	KeyActionStep2Note  Key = "action_step_2_note"
	KeyActionStep3Title Key = "action_step_3_title"
	KeyActionStep3Body  Key = "action_step_3_body"
	KeyActionStep3Note  Key = "action_step_3_note"
	KeyActionStep4Title Key = "action_step_4_title"
	KeyActionStep4Body  Key = "action_step_4_body"
	KeyActionStep4Note  Key = "action_step_4_note"
	KeyActionVideoTitle Key = "action_video_title"
	KeyActionVideoBody  Key = "action_video_body"

	// Learn Center topics
	KeyLearnTopic1Title Key = "learn_topic_1_title"
	KeyLearnTopic1Body  Key = "learn_topic_1_body"
	KeyLearnTopic2Title Key = "learn_topic_2_title"
	KeyLearnTopic2Body  Key = "learn_topic_2_body"
	KeyLearnTopic3Title Key = "learn_topic_3_title"
	KeyLearnTopic3Body  Key = "learn_topic_3_body"

	// Quiz feedback tiers
	KeyQuizFeedbackGood Key = "quiz_feedback_good"
	KeyQuizFeedbackOK   Key = "quiz_feedback_ok"
	KeyQuizFeedbackBad  Key = "quiz_feedback_bad"

	// Quiz questions and options
	KeyQuizQ1     Key = "quiz_q1"
	KeyQuizQ1OptA Key = "quiz_q1_opt_a"
	KeyQuizQ1OptB Key = "quiz_q1_opt_b"
	KeyQuizQ1OptC Key = "quiz_q1_opt_c"
	KeyQuizQ1OptD Key = "quiz_q1_opt_d"
	KeyQuizQ2     Key = "quiz_q2"
	KeyQuizQ2OptA Key = "quiz_q2_opt_a"
	KeyQuizQ2OptB Key = "quiz_q2_opt_b"
	KeyQuizQ2OptC Key = "quiz_q2_opt_c"
	KeyQuizQ2OptD Key = "quiz_q2_opt_d"
	KeyQuizQ3     Key = "quiz_q3"
	KeyQuizQ3OptA Key = "quiz_q3_opt_a"
	KeyQuizQ3OptB Key = "quiz_q3_opt_b"
	KeyQuizQ3OptC Key = "quiz_q3_opt_c"
	KeyQuizQ3OptD Key = "quiz_q3_opt_d"
	KeyQuizQ4     Key = "quiz_q4"
	KeyQuizQ4OptA Key = "quiz_q4_opt_a"
	KeyQuizQ4OptB Key = "quiz_q4_opt_b"
	KeyQuizQ4OptC Key = "quiz_q4_opt_c"
	KeyQuizQ4OptD Key = "quiz_q4_opt_d"
	KeyQuizQ5     Key = "quiz_q5"
	KeyQuizQ5OptA Key = "quiz_q5_opt_a"
	KeyQuizQ5OptB Key = "quiz_q5_opt_b"
	KeyQuizQ5OptC Key = "quiz_q5_opt_c"
	KeyQuizQ5OptD Key = "quiz_q5_opt_d"
)
