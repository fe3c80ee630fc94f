package domain

// QuestionOption carries the stable Value the classifier understands and a
// display label per language.
type QuestionOption struct {
	Value string        `json:"value"`
	Label LocalizedText `json:"label"`
}

type Question struct {
	ID      string           `json:"id"`
	Text    LocalizedText    `json:"text"`
	Options []QuestionOption `json:"options"`
}
