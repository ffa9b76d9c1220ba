package domain

import "strings"

// Validate trims the draft and reports whether it can be persisted.
func (d NoteDraft) Validate() (NoteDraft, bool) {
	d.Message = strings.TrimSpace(d.Message)
	d.CandidateID = strings.TrimSpace(d.CandidateID)
	return d, d.Message != "" && d.CandidateID != "" && d.AuthorID != ""
}
