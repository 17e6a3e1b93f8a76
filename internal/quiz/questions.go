package quiz

import "dbt-portal/internal/i18n"

// Question is one entry of the fixed bank. Prompt and options are
// localization keys resolved at render time.
type Question struct {
	Prompt        i18n.Key
	Options       []i18n.Key
	CorrectOption int
}

// Questions returns the DBT awareness question bank in presentation order.
// The slice is freshly allocated so callers cannot mutate the bank.
func Questions() []Question {
	return []Question{
		{
			Prompt:        i18n.KeyQuizQ1,
			Options:       []i18n.Key{i18n.KeyQuizQ1OptA, i18n.KeyQuizQ1OptB, i18n.KeyQuizQ1OptC, i18n.KeyQuizQ1OptD},
			CorrectOption: 0,
		},
		{
			Prompt:        i18n.KeyQuizQ2,
			Options:       []i18n.Key{i18n.KeyQuizQ2OptA, i18n.KeyQuizQ2OptB, i18n.KeyQuizQ2OptC, i18n.KeyQuizQ2OptD},
			CorrectOption: 1,
		},
		{
			Prompt:        i18n.KeyQuizQ3,
			Options:       []i18n.Key{i18n.KeyQuizQ3OptA, i18n.KeyQuizQ3OptB, i18n.KeyQuizQ3OptC, i18n.KeyQuizQ3OptD},
			CorrectOption: 2,
		},
		{
			Prompt:        i18n.KeyQuizQ4,
			Options:       []i18n.Key{i18n.KeyQuizQ4OptA, i18n.KeyQuizQ4OptB, i18n.KeyQuizQ4OptC, i18n.KeyQuizQ4OptD},
			CorrectOption: 3,
		},
		{
			Prompt:        i18n.KeyQuizQ5,
			Options:       []i18n.Key{i18n.KeyQuizQ5OptA, i18n.KeyQuizQ5OptB, i18n.KeyQuizQ5OptC, i18n.KeyQuizQ5OptD},
			CorrectOption: 1,
		},
	}
}
