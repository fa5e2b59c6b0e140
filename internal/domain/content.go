package domain

// GeneratedText is the outcome of a text generation request. Fallback marks a
// canned string returned in place of model output.
type GeneratedText struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}
