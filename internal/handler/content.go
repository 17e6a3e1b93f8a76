package handler

import (
	"github.com/valyala/fasthttp"

	"dbt-portal/internal/content"
)

type learnTopicView struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type actionStepView struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Note   string `json:"note"`
}

type videoGuideView struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

func (h *Handler) handleLearnContent(ctx *fasthttp.RequestCtx) {
	loc := h.locale(ctx)

	topics := make([]learnTopicView, 0, len(content.LearnTopics()))
	for _, t := range content.LearnTopics() {
		topics = append(topics, learnTopicView{
			Title: h.bundle.Lookup(loc, t.Title),
			Body:  h.bundle.Lookup(loc, t.Body),
		})
	}
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]any{"topics": topics})
}

func (h *Handler) handleActionPlanContent(ctx *fasthttp.RequestCtx) {
	loc := h.locale(ctx)

	steps := make([]actionStepView, 0, len(content.ActionSteps()))
	for _, s := range content.ActionSteps() {
		steps = append(steps, actionStepView{
			Number: s.Number,
			Title:  h.bundle.Lookup(loc, s.Title),
			Body:   h.bundle.Lookup(loc, s.Body),
			Note:   h.bundle.Lookup(loc, s.Note),
		})
	}

	video := content.ConsentFormVideo()
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]any{
		"steps": steps,
		"video": videoGuideView{
			VideoID: video.VideoID,
			Title:   h.bundle.Lookup(loc, video.Title),
			Body:    h.bundle.Lookup(loc, video.Body),
		},
	})
}
