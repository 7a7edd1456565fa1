package model

import "strings"

type ListCasesReq struct {
	IsClosed          *bool  `query:"is_closed"`
	FilterAdmin       bool   `query:"filter_admin"`
	FilterParticipant bool   `query:"filter_participant"`
	SortBy            string `query:"sort_by" validate:"omitempty,oneof=title createdAt"`
	SortOrder         string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page              int    `query:"page" validate:"omitempty,min=1"`
	PageSize          int    `query:"page_size" validate:"omitempty,min=1"`
}

func (r *ListCasesReq) Validate() error {
	r.SortBy = strings.TrimSpace(r.SortBy)
	r.SortOrder = strings.ToLower(strings.TrimSpace(r.SortOrder))

	if r.SortBy == "" {
		r.SortBy = "createdAt"
	}
	if r.SortOrder == "" {
		r.SortOrder = "desc"
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultCasePageSize
	}
	if r.PageSize > MaxCasePageSize {
		r.PageSize = MaxCasePageSize
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
