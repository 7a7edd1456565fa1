package model

import "strings"

type RevokeDocAccessReq struct {
	TargetWallet string `json:"target_wallet" validate:"required,eth_addr"`
}

func (r *RevokeDocAccessReq) Validate() error {
	r.TargetWallet = strings.ToLower(strings.TrimSpace(r.TargetWallet))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
