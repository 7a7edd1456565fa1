package model

import "strings"

type DeletePersonalDocReq struct {
	DocID string `json:"doc_id" validate:"required,len=24,hexadecimal"`
}

func (r *DeletePersonalDocReq) Validate() error {
	r.DocID = strings.TrimSpace(r.DocID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
