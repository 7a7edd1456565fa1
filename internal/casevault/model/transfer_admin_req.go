package model

import "strings"

// TransferAdminReq moves case admin rights to an existing participant.
// Admin rights can only be held by employee roles.
type TransferAdminReq struct {
	NewAdminWallet string `json:"new_admin_wallet" validate:"required,eth_addr"`
	NewAdminRole   string `json:"new_admin_role" validate:"required,oneof=Lawyer Police Judge"`
}

func (r *TransferAdminReq) Validate() error {
	r.NewAdminWallet = strings.ToLower(strings.TrimSpace(r.NewAdminWallet))
	r.NewAdminRole = strings.TrimSpace(r.NewAdminRole)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
