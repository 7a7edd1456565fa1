package model

import "strings"

// AccessEntryReq is a caller-supplied initial ACL entry. Uploader and case
// admin entries are force-merged at full access regardless of what the
// caller sends for them.
type AccessEntryReq struct {
	Wallet    string `json:"wallet" validate:"required,eth_addr"`
	CanView   bool   `json:"can_view"`
	CanDelete bool   `json:"can_delete"`
}

type UploadCaseDocReq struct {
	CaseID        string           `json:"case_id" validate:"required,len=24,hexadecimal"`
	Title         string           `json:"title" validate:"required,min=3"`
	FileType      string           `json:"file_type" validate:"required"`
	FileSize      int64            `json:"file_size" validate:"omitempty,min=0"`
	ContentCid    string           `json:"content_cid" validate:"required,min=10"`
	Encrypted     bool             `json:"encrypted"`
	AccessControl []AccessEntryReq `json:"access_control" validate:"omitempty,dive"`
}

func (r *UploadCaseDocReq) Validate() error {
	r.CaseID = strings.TrimSpace(r.CaseID)
	r.Title = strings.TrimSpace(r.Title)
	r.FileType = strings.TrimSpace(r.FileType)
	r.ContentCid = strings.TrimSpace(r.ContentCid)
	for i := range r.AccessControl {
		r.AccessControl[i].Wallet = strings.ToLower(strings.TrimSpace(r.AccessControl[i].Wallet))
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
