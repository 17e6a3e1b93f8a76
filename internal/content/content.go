// Package content holds the static educational records served to the
// front-end: the four-step seeding action plan and the consent-form video
// reference. Text is addressed by localization key and resolved per request.
package content

import "dbt-portal/internal/i18n"

// ActionStep is one checklist entry of the seeding action plan.
type ActionStep struct {
	Number int      `json:"number"`
	Title  i18n.Key `json:"title"`
	Body   i18n.Key `json:"body"`
	Note   i18n.Key `json:"note"`
}

// VideoGuide points at the walkthrough for the seeding consent form.
type VideoGuide struct {
	VideoID string   `json:"video_id"`
	Title   i18n.Key `json:"title"`
	Body    i18n.Key `json:"body"`
}

// ActionSteps returns the plan in order. Step numbers are 1-based and match
// the tracker's step range.
func ActionSteps() []ActionStep {
	return []ActionStep{
		{Number: 1, Title: i18n.KeyActionStep1Title, Body: i18n.KeyActionStep1Body, Note: i18n.KeyActionStep1Note},
		{Number: 2, Title: i18n.KeyActionStep2Title, Body: i18n.KeyActionStep2Body, Note: i18n.KeyActionStep2Note},
		{Number: 3, Title: i18n.KeyActionStep3Title, Body: i18n.KeyActionStep3Body, Note: i18n.KeyActionStep3Note},
		{Number: 4, Title: i18n.KeyActionStep4Title, Body: i18n.KeyActionStep4Body, Note: i18n.KeyActionStep4Note},
	}
}

// LearnTopic is one Learn Center article.
type LearnTopic struct {
	Title i18n.Key `json:"title"`
	Body  i18n.Key `json:"body"`
}

// LearnTopics returns the Learn Center articles in display order.
func LearnTopics() []LearnTopic {
	return []LearnTopic{
		{Title: i18n.KeyLearnTopic1Title, Body: i18n.KeyLearnTopic1Body},
		{Title: i18n.KeyLearnTopic2Title, Body: i18n.KeyLearnTopic2Body},
		{Title: i18n.KeyLearnTopic3Title, Body: i18n.KeyLearnTopic3Body},
	}
}

func ConsentFormVideo() VideoGuide {
	return VideoGuide{
		VideoID: "gjPkUF23UTg",
		Title:   i18n.KeyActionVideoTitle,
		Body:    i18n.KeyActionVideoBody,
	}
}
