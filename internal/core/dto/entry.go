package dto

type BeginEntryRequest struct {
	LineID string `json:"line_id" binding:"required"`
	Field  string `json:"field" binding:"required"`
}

type DigitRequest struct {
	Digit string `json:"digit" binding:"required"`
}

type AdjustRequest struct {
	Delta float64 `json:"delta"`
}

// InlineEditRequest carries one keystroke-level or blur-level edit of
// an inline numeric field.
type InlineEditRequest struct {
	LineID string `json:"line_id" binding:"required"`
	Field  string `json:"field" binding:"required"`
	Raw    string `json:"raw"`
}
