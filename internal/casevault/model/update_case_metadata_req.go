package model

import "strings"

// UpdateCaseMetadataReq is a partial update; nil fields are left untouched.
type UpdateCaseMetadataReq struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,min=10,max=1000"`
	CourtName   *string `json:"court_name" validate:"omitempty,min=3,max=100"`
}

func (r *UpdateCaseMetadataReq) Validate() error {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	r.Title = trim(r.Title)
	r.Description = trim(r.Description)
	r.CourtName = trim(r.CourtName)

	if r.Title == nil && r.Description == nil && r.CourtName == nil {
		return &ErrorDetail{Code: "bad_request", Message: "at least one metadata field is required"}
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
