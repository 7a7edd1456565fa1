package model

import "strings"

type GrantParticipantReq struct {
	Wallet      string      `json:"wallet" validate:"required,eth_addr"`
	Role        string      `json:"role" validate:"required,oneof=Judge Lawyer Police Civilian"`
	Permissions Permissions `json:"permissions"`
}

func (r *GrantParticipantReq) Validate() error {
	r.Wallet = strings.ToLower(strings.TrimSpace(r.Wallet))
	r.Role = strings.TrimSpace(r.Role)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
