package model

import "strings"

type CreateCaseReq struct {
	Title       string `json:"title" validate:"required,min=3,max=75"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	CourtName   string `json:"court_name" validate:"omitempty,max=100"`
}

func (r *CreateCaseReq) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.CourtName = strings.TrimSpace(r.CourtName)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
