package model

import "strings"

// LinkPersonalDocReq sets or clears the soft case link on a personal
// document. An empty case id clears the link.
type LinkPersonalDocReq struct {
	CaseID string `json:"case_id" validate:"omitempty,len=24,hexadecimal"`
}

func (r *LinkPersonalDocReq) Validate() error {
	r.CaseID = strings.TrimSpace(r.CaseID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
