package domain

// Status represents lifecycle states for translation entities.
type Status string

const (
	// StatusDraft indicates a translation still under preparation.
	StatusDraft Status = "draft"
	// StatusAISuggested marks machine-suggested values pending human review.
	StatusAISuggested Status = "ai_suggested"
	// StatusTranslated identifies a translation produced by a human translator.
	StatusTranslated Status = "translated"
	// StatusCompleted marks a translation that passed review.
	StatusCompleted Status = "completed"
	// StatusApproved marks a translation signed off for publication.
	StatusApproved Status = "approved"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusAISuggested, StatusTranslated, StatusCompleted, StatusApproved:
		return true
	}
	return false
}
