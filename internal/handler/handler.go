// Package handler is the HTTP facade over the portal's core packages. It
// owns no business rules: it decodes requests, picks a locale, delegates, and
// maps sentinel errors onto status codes.
package handler

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"dbt-portal/internal/actionplan"
	"dbt-portal/internal/grievance"
	"dbt-portal/internal/i18n"
	"dbt-portal/internal/lookup"
	"dbt-portal/internal/model"
	"dbt-portal/internal/progress"
	"dbt-portal/internal/quiz"
)

type Handler struct {
	lookup        *lookup.Client
	tracker       *actionplan.Tracker
	quizzes       *quiz.Registry
	assistant     grievance.DescriptionGenerator // nil when assist is not configured
	bundle        *i18n.Bundle
	defaultLocale i18n.Locale
	logger        *zap.Logger
}

func New(
	lookupClient *lookup.Client,
	tracker *actionplan.Tracker,
	quizzes *quiz.Registry,
	assistant grievance.DescriptionGenerator,
	bundle *i18n.Bundle,
	defaultLocale i18n.Locale,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		lookup:        lookupClient,
		tracker:       tracker,
		quizzes:       quizzes,
		assistant:     assistant,
		bundle:        bundle,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// Route dispatches one request. Registered as the fasthttp handler.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/api/status" && method == fasthttp.MethodPost:
		h.handleStatus(ctx)
	case path == "/api/action-plan" && method == fasthttp.MethodGet:
		h.handleActionPlan(ctx)
	case path == "/api/action-plan/toggle" && method == fasthttp.MethodPost:
		h.handleToggleStep(ctx)
	case path == "/api/grievances" && method == fasthttp.MethodPost:
		h.handleSubmitGrievance(ctx)
	case path == "/api/grievances/assist" && method == fasthttp.MethodPost:
		h.handleAssist(ctx)
	case path == "/api/quiz" && method == fasthttp.MethodPost:
		h.handleQuizStart(ctx)
	case path == "/api/quiz/answer" && method == fasthttp.MethodPost:
		h.handleQuizAnswer(ctx)
	case path == "/api/quiz/next" && method == fasthttp.MethodPost:
		h.handleQuizNext(ctx)
	case path == "/api/quiz/restart" && method == fasthttp.MethodPost:
		h.handleQuizRestart(ctx)
	case path == "/api/content/learn" && method == fasthttp.MethodGet:
		h.handleLearnContent(ctx)
	case path == "/api/content/action-plan" && method == fasthttp.MethodGet:
		h.handleActionPlanContent(ctx)
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleStatus(ctx *fasthttp.RequestCtx) {
	var req model.StatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.lookup.CheckStatus(ctx, req.IdentityNumber)
	switch {
	case errors.Is(err, lookup.ErrInvalidInput):
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	case errors.Is(err, lookup.ErrServiceUnavailable):
		h.writeError(ctx, fasthttp.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		h.logger.Error("status lookup failed", zap.Error(err))
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Lookup failed")
		return
	}

	loc := h.locale(ctx)
	stages := progress.Track(record.ScholarshipStage)
	steps := make([]model.ProgressStep, progress.StepCount)
	for i := range stages {
		steps[i] = model.ProgressStep{
			Label: h.bundle.Lookup(loc, progress.StepLabels[i]),
			Stage: stages[i],
		}
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.StatusResponse{
		Record:   *record,
		Progress: steps,
		Advisory: h.advisory(loc, record),
	})
}

// advisory picks the guidance card for a lookup outcome, mirroring the cards
// the status page shows under the result.
func (h *Handler) advisory(loc i18n.Locale, record *model.StatusRecord) *model.Advisory {
	var title, body i18n.Key
	switch {
	case !record.IsSeeded:
		title, body = i18n.KeyAdvisoryNotSeededTitle, i18n.KeyAdvisoryNotSeededBody
	case record.ScholarshipStage == model.StagePending:
		title, body = i18n.KeyAdvisoryPendingTitle, i18n.KeyAdvisoryPendingBody
	case record.ScholarshipStage == model.StageApproved:
		title, body = i18n.KeyAdvisoryApprovedTitle, i18n.KeyAdvisoryApprovedBody
	case record.ScholarshipStage == model.StageRejected:
		title, body = i18n.KeyAdvisoryRejectedTitle, i18n.KeyAdvisoryRejectedBody
	default:
		return nil
	}
	return &model.Advisory{
		Title: h.bundle.Lookup(loc, title),
		Body:  h.bundle.Lookup(loc, body),
	}
}

func (h *Handler) handleActionPlan(ctx *fasthttp.RequestCtx) {
	planID := planIDFrom(ctx)
	h.writeJSON(ctx, fasthttp.StatusOK, h.actionPlanState(planID))
}

func (h *Handler) handleToggleStep(ctx *fasthttp.RequestCtx) {
	var req model.ToggleStepRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	planID := req.PlanID
	if planID == "" {
		planID = actionplan.DefaultPlanID
	}

	if _, err := h.tracker.Toggle(planID, req.Step); err != nil {
		if errors.Is(err, actionplan.ErrInvalidStep) {
			h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("persisting checklist failed", zap.String("plan_id", planID), zap.Error(err))
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Could not save your progress")
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, h.actionPlanState(planID))
}

func (h *Handler) actionPlanState(planID string) model.ActionPlanResponse {
	return model.ActionPlanResponse{
		PlanID:          planID,
		CompletedSteps:  h.tracker.Completed(planID),
		TotalSteps:      actionplan.TotalSteps,
		ProgressPercent: h.tracker.ProgressPercent(planID),
	}
}

func (h *Handler) handleSubmitGrievance(ctx *fasthttp.RequestCtx) {
	var draft model.GrievanceDraft
	if err := json.Unmarshal(ctx.PostBody(), &draft); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ticket, err := grievance.Submit(draft)
	if err != nil {
		if errors.Is(err, grievance.ErrInvalidGrievance) {
			h.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("grievance submission failed", zap.Error(err))
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Submission failed")
		return
	}

	loc := h.locale(ctx)
	h.writeJSON(ctx, fasthttp.StatusOK, model.TicketResponse{
		Ticket: *ticket,
		NextSteps: []string{
			h.bundle.Lookup(loc, i18n.KeyGrievanceNextStepBank),
			h.bundle.Lookup(loc, i18n.KeyGrievanceNextStepNPCI),
		},
	})
}

func (h *Handler) handleAssist(ctx *fasthttp.RequestCtx) {
	var req model.AssistRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if h.assistant == nil {
		h.writeError(ctx, fasthttp.StatusBadGateway, grievance.ErrAssistUnavailable.Error())
		return
	}

	text, err := h.assistant.GenerateDescription(ctx, req.IssueType, req.Description)
	if err != nil {
		// Every assist failure maps to the one advisory; the draft the
		// student typed stays untouched on their side.
		h.writeError(ctx, fasthttp.StatusBadGateway, grievance.ErrAssistUnavailable.Error())
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.AssistResponse{Description: text})
}

func (h *Handler) locale(ctx *fasthttp.RequestCtx) i18n.Locale {
	if lang := string(ctx.QueryArgs().Peek("lang")); lang != "" {
		return i18n.ParseLocale(lang, h.defaultLocale)
	}
	return i18n.ParseLocale(string(ctx.Request.Header.Peek(fasthttp.HeaderAcceptLanguage)), h.defaultLocale)
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encoding response failed", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func planIDFrom(ctx *fasthttp.RequestCtx) string {
	if id := string(ctx.QueryArgs().Peek("plan_id")); id != "" {
		return id
	}
	return actionplan.DefaultPlanID
}
