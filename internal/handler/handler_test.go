package handler

import (
	"context"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"dbt-portal/internal/actionplan"
	"dbt-portal/internal/grievance"
	"dbt-portal/internal/i18n"
	"dbt-portal/internal/lookup"
	"dbt-portal/internal/model"
	"dbt-portal/internal/quiz"
)

type fakeAssistant struct {
	text string
	err  error
}

func (f *fakeAssistant) GenerateDescription(_ context.Context, _ model.IssueType, _ string) (string, error) {
	return f.text, f.err
}

func newTestHandler(assistant grievance.DescriptionGenerator) *Handler {
	return New(
		lookup.NewClientWithLatency(time.Millisecond),
		actionplan.NewTracker(actionplan.NewMemStore()),
		quiz.NewRegistry(),
		assistant,
		i18n.NewBundle(nil),
		i18n.LocaleEN,
		nil,
	)
}

func perform(t *testing.T, h *Handler, method, uri string, body any) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req.SetBody(data)
	}
	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	h.Route(&ctx)
	return &ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), v))
}

func TestStatusEndpoint(t *testing.T) {
	h := newTestHandler(nil)

	t.Run("approved scenario", func(t *testing.T) {
		ctx := perform(t, h, "POST", "/api/status", model.StatusRequest{IdentityNumber: "999999999991"})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp model.StatusResponse
		decode(t, ctx, &resp)

		assert.True(t, resp.Record.IsSeeded)
		require.NotNil(t, resp.Record.BankName)
		assert.Equal(t, "State Bank of India", *resp.Record.BankName)
		assert.Equal(t, model.StageApproved, resp.Record.ScholarshipStage)

		require.Len(t, resp.Progress, 3)
		for _, step := range resp.Progress {
			assert.Equal(t, model.StepCompleted, step.Stage)
		}
		require.NotNil(t, resp.Advisory)
		assert.Equal(t, "Good News!", resp.Advisory.Title)
	})

	t.Run("simulated outage", func(t *testing.T) {
		ctx := perform(t, h, "POST", "/api/status", model.StatusRequest{IdentityNumber: "000000000000"})
		require.Equal(t, fasthttp.StatusServiceUnavailable, ctx.Response.StatusCode())

		var resp model.ErrorResponse
		decode(t, ctx, &resp)
		assert.Contains(t, resp.Message, "Could not connect to the DBT server")
	})

	t.Run("malformed identity", func(t *testing.T) {
		ctx := perform(t, h, "POST", "/api/status", model.StatusRequest{IdentityNumber: "12345"})
		require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

		var resp model.ErrorResponse
		decode(t, ctx, &resp)
		assert.Contains(t, resp.Message, "valid 12-digit number")
	})

	t.Run("rejected scenario localizes advisory", func(t *testing.T) {
		ctx := perform(t, h, "POST", "/api/status?lang=hi", model.StatusRequest{IdentityNumber: "999999999993"})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp model.StatusResponse
		decode(t, ctx, &resp)
		assert.Equal(t, model.StepRejected, resp.Progress[1].Stage)
		require.NotNil(t, resp.Advisory)
		assert.Equal(t, "महत्वपूर्ण सूचना!", resp.Advisory.Title)
	})
}

func TestActionPlanEndpoints(t *testing.T) {
	h := newTestHandler(nil)

	ctx := perform(t, h, "GET", "/api/action-plan", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var state model.ActionPlanResponse
	decode(t, ctx, &state)
	assert.Empty(t, state.CompletedSteps)
	assert.Equal(t, 4, state.TotalSteps)

	ctx = perform(t, h, "POST", "/api/action-plan/toggle", model.ToggleStepRequest{Step: 1})
	decode(t, ctx, &state)
	ctx = perform(t, h, "POST", "/api/action-plan/toggle", model.ToggleStepRequest{Step: 3})
	decode(t, ctx, &state)
	assert.Equal(t, []int{1, 3}, state.CompletedSteps)
	assert.Equal(t, 50, state.ProgressPercent)

	ctx = perform(t, h, "POST", "/api/action-plan/toggle", model.ToggleStepRequest{Step: 9})
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestGrievanceEndpoints(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		h := newTestHandler(nil)
		ctx := perform(t, h, "POST", "/api/grievances", model.GrievanceDraft{
			IssueType:      model.IssueDetailsMismatch,
			Description:    "My name on the bank record differs from my Aadhaar card.",
			IdentityNumber: "123456789012",
		})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp model.TicketResponse
		decode(t, ctx, &resp)
		assert.NotEmpty(t, resp.Ticket.TicketID)
		assert.Equal(t, model.TicketStatusSubmitted, resp.Ticket.Status)
		assert.Len(t, resp.NextSteps, 2)
	})

	t.Run("short description rejected", func(t *testing.T) {
		h := newTestHandler(nil)
		ctx := perform(t, h, "POST", "/api/grievances", model.GrievanceDraft{
			IssueType:      model.IssueOther,
			Description:    "too short",
			IdentityNumber: "123456789012",
		})
		assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
	})

	t.Run("assist success", func(t *testing.T) {
		h := newTestHandler(&fakeAssistant{text: "Generated grievance description."})
		ctx := perform(t, h, "POST", "/api/grievances/assist", model.AssistRequest{
			IssueType:   model.IssueNotSeeded,
			Description: "payment failed",
		})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp model.AssistResponse
		decode(t, ctx, &resp)
		assert.Equal(t, "Generated grievance description.", resp.Description)
	})

	t.Run("assist failure surfaces the advisory only", func(t *testing.T) {
		h := newTestHandler(&fakeAssistant{err: grievance.ErrAssistUnavailable})
		ctx := perform(t, h, "POST", "/api/grievances/assist", model.AssistRequest{IssueType: model.IssueOther})
		require.Equal(t, fasthttp.StatusBadGateway, ctx.Response.StatusCode())

		var resp model.ErrorResponse
		decode(t, ctx, &resp)
		assert.Equal(t, grievance.ErrAssistUnavailable.Error(), resp.Message)
	})

	t.Run("assist not configured", func(t *testing.T) {
		h := newTestHandler(nil)
		ctx := perform(t, h, "POST", "/api/grievances/assist", model.AssistRequest{IssueType: model.IssueOther})
		assert.Equal(t, fasthttp.StatusBadGateway, ctx.Response.StatusCode())
	})
}

func TestQuizEndpoints(t *testing.T) {
	h := newTestHandler(nil)

	ctx := perform(t, h, "POST", "/api/quiz", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var view quizView
	decode(t, ctx, &view)
	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, "IN_PROGRESS", view.State)
	assert.Equal(t, 5, view.TotalQuestions)
	assert.Equal(t, "What does DBT stand for?", view.Prompt)
	assert.Len(t, view.Options, 4)

	id := view.SessionID
	questions := quiz.Questions()
	for i := range questions {
		ctx = perform(t, h, "POST", "/api/quiz/answer", model.QuizAnswerRequest{
			SessionID: id,
			Option:    questions[i].CorrectOption,
		})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		decode(t, ctx, &view)
		require.True(t, view.Revealed)
		require.NotNil(t, view.CorrectOption)

		ctx = perform(t, h, "POST", "/api/quiz/next", model.QuizSessionRequest{SessionID: id})
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		decode(t, ctx, &view)
	}

	assert.Equal(t, "FINISHED", view.State)
	assert.Equal(t, 5, view.Score)
	require.NotNil(t, view.Percentage)
	assert.Equal(t, 100, *view.Percentage)
	assert.NotEmpty(t, view.Feedback)

	ctx = perform(t, h, "POST", "/api/quiz/restart", model.QuizSessionRequest{SessionID: id})
	decode(t, ctx, &view)
	assert.Equal(t, "NOT_STARTED", view.State)
	assert.Equal(t, 0, view.Score)

	ctx = perform(t, h, "POST", "/api/quiz/answer", model.QuizAnswerRequest{SessionID: "missing"})
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestContentEndpoints(t *testing.T) {
	h := newTestHandler(nil)

	ctx := perform(t, h, "GET", "/api/content/action-plan", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var plan struct {
		Steps []actionStepView `json:"steps"`
		Video videoGuideView   `json:"video"`
	}
	decode(t, ctx, &plan)
	require.Len(t, plan.Steps, 4)
	assert.Equal(t, "Visit Your Bank Branch", plan.Steps[0].Title)
	assert.Equal(t, "gjPkUF23UTg", plan.Video.VideoID)

	ctx = perform(t, h, "GET", "/api/content/learn?lang=hi", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var learn struct {
		Topics []learnTopicView `json:"topics"`
	}
	decode(t, ctx, &learn)
	require.Len(t, learn.Topics, 3)
	assert.Equal(t, "DBT क्या है और यह क्यों महत्वपूर्ण है?", learn.Topics[0].Title)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHandler(nil)

	ctx := perform(t, h, "GET", "/api/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = perform(t, h, "GET", "/api/status", nil) // wrong method
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
