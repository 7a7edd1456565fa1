package model

import "strings"

type ListCaseDocsReq struct {
	Search       string `query:"search" validate:"omitempty,min=1"`
	FilterType   string `query:"filter_type" validate:"omitempty,oneof=all docs image media other"`
	AccessFilter string `query:"access_filter" validate:"omitempty,oneof=all canDelete"`
	SortBy       string `query:"sort_by" validate:"omitempty,oneof=newest oldest titleAsc titleDesc sizeAsc sizeDesc"`
	Page         int    `query:"page" validate:"omitempty,min=1"`
	Limit        int    `query:"limit"`
}

func (r *ListCaseDocsReq) Validate() error {
	r.Search = strings.TrimSpace(r.Search)
	r.FilterType = strings.TrimSpace(r.FilterType)
	r.AccessFilter = strings.TrimSpace(r.AccessFilter)
	r.SortBy = strings.TrimSpace(r.SortBy)

	if r.FilterType == "" {
		r.FilterType = FileGroupAll
	}
	if r.AccessFilter == "" {
		r.AccessFilter = "all"
	}
	if r.SortBy == "" {
		r.SortBy = "newest"
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit == 0 {
		r.Limit = DefaultDocPageSize
	}
	if !AllowedDocPageSizes[r.Limit] {
		return &ErrorDetail{Code: "bad_request", Message: "limit must be one of: 12, 24, 48, 96"}
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
