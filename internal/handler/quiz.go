package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"dbt-portal/internal/i18n"
	"dbt-portal/internal/model"
	"dbt-portal/internal/quiz"
)

// quizView is a session snapshot with every localization key resolved for the
// requested locale.
type quizView struct {
	SessionID      string   `json:"session_id"`
	State          string   `json:"state"`
	QuestionIndex  int      `json:"question_index"`
	TotalQuestions int      `json:"total_questions"`
	Prompt         string   `json:"prompt,omitempty"`
	Options        []string `json:"options,omitempty"`
	Selected       *int     `json:"selected,omitempty"`
	Revealed       bool     `json:"revealed"`
	CorrectOption  *int     `json:"correct_option,omitempty"`
	Score          int      `json:"score"`
	Percentage     *int     `json:"percentage,omitempty"`
	Feedback       string   `json:"feedback,omitempty"`
}

func (h *Handler) quizView(loc i18n.Locale, sessionID string, snap quiz.Snapshot) quizView {
	view := quizView{
		SessionID:      sessionID,
		State:          string(snap.State),
		QuestionIndex:  snap.QuestionIndex,
		TotalQuestions: snap.TotalQuestions,
		Selected:       snap.Selected,
		Revealed:       snap.Revealed,
		CorrectOption:  snap.CorrectOption,
		Score:          snap.Score,
		Percentage:     snap.Percentage,
	}
	if snap.Prompt != "" {
		view.Prompt = h.bundle.Lookup(loc, snap.Prompt)
	}
	for _, opt := range snap.Options {
		view.Options = append(view.Options, h.bundle.Lookup(loc, opt))
	}
	if snap.Feedback != "" {
		view.Feedback = h.bundle.Lookup(loc, snap.Feedback)
	}
	return view
}

func (h *Handler) handleQuizStart(ctx *fasthttp.RequestCtx) {
	id, session := h.quizzes.Create()
	h.writeJSON(ctx, fasthttp.StatusOK, h.quizView(h.locale(ctx), id, session.Snapshot()))
}

func (h *Handler) handleQuizAnswer(ctx *fasthttp.RequestCtx) {
	var req model.QuizAnswerRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, ok := h.quizzes.Get(req.SessionID)
	if !ok {
		h.writeError(ctx, fasthttp.StatusNotFound, "Unknown quiz session")
		return
	}
	if err := session.Answer(req.Option); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, h.quizView(h.locale(ctx), req.SessionID, session.Snapshot()))
}

func (h *Handler) handleQuizNext(ctx *fasthttp.RequestCtx) {
	session, id, ok := h.quizSession(ctx)
	if !ok {
		return
	}
	if err := session.Next(); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, h.quizView(h.locale(ctx), id, session.Snapshot()))
}

func (h *Handler) handleQuizRestart(ctx *fasthttp.RequestCtx) {
	session, id, ok := h.quizSession(ctx)
	if !ok {
		return
	}
	session.Restart()
	h.writeJSON(ctx, fasthttp.StatusOK, h.quizView(h.locale(ctx), id, session.Snapshot()))
}

func (h *Handler) quizSession(ctx *fasthttp.RequestCtx) (*quiz.Session, string, bool) {
	var req model.QuizSessionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, "", false
	}
	session, ok := h.quizzes.Get(req.SessionID)
	if !ok {
		h.writeError(ctx, fasthttp.StatusNotFound, "Unknown quiz session")
		return nil, "", false
	}
	return session, req.SessionID, true
}
