package model

import "strings"

type GrantDocAccessReq struct {
	TargetWallet string    `json:"target_wallet" validate:"required,eth_addr"`
	Permissions  DocAccess `json:"permissions"`
}

// DocAccess is the per-document right set a grant carries. Omitted fields
// default to false, matching revocation-by-downgrade semantics.
type DocAccess struct {
	CanView   bool `json:"can_view"`
	CanDelete bool `json:"can_delete"`
}

func (r *GrantDocAccessReq) Validate() error {
	r.TargetWallet = strings.ToLower(strings.TrimSpace(r.TargetWallet))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
