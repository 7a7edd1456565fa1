package model

import "strings"

type SharePersonalDocReq struct {
	DocID        string `json:"doc_id" validate:"required,len=24,hexadecimal"`
	TargetWallet string `json:"target_wallet" validate:"required,eth_addr"`
}

func (r *SharePersonalDocReq) Validate() error {
	r.DocID = strings.TrimSpace(r.DocID)
	r.TargetWallet = strings.ToLower(strings.TrimSpace(r.TargetWallet))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
