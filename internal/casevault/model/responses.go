package model

import "time"

// CreateCaseResult reports the new case and the ledger receipt, if any.
type CreateCaseResult struct {
	CaseID         string `json:"case_id"`
	TxHash         string `json:"tx_hash,omitempty"`
	PendingReceipt string `json:"pending_receipt,omitempty"`
}

type GrantParticipantResult struct {
	Participant    Participant `json:"participant"`
	TxHash         string      `json:"tx_hash,omitempty"`
	PendingReceipt string      `json:"pending_receipt,omitempty"`
}

type RevokeParticipantResult struct {
	RevokedWallet  string `json:"revoked_wallet"`
	TxHash         string `json:"tx_hash,omitempty"`
	PendingReceipt string `json:"pending_receipt,omitempty"`
}

type CloseCaseResult struct {
	CaseID         string `json:"case_id"`
	TxHash         string `json:"tx_hash,omitempty"`
	PendingReceipt string `json:"pending_receipt,omitempty"`
}

type TransferAdminResult struct {
	NewAdmin       string `json:"new_admin"`
	TxHash         string `json:"tx_hash,omitempty"`
	PendingReceipt string `json:"pending_receipt,omitempty"`
}

type CasePage struct {
	Cases       []*Case `json:"cases"`
	CurrentPage int     `json:"current_page"`
	PageSize    int     `json:"page_size"`
	TotalCases  int64   `json:"total_cases"`
	TotalPages  int     `json:"total_pages"`
}

// EffectivePermissions are the caller's resolved rights on a case, computed
// at read time. Admin implies both.
type EffectivePermissions struct {
	IsAdmin   bool `json:"is_admin"`
	CanView   bool `json:"can_view"`
	CanUpload bool `json:"can_upload"`
}

type CaseDetail struct {
	Case        *Case                `json:"case"`
	Permissions EffectivePermissions `json:"permissions"`
	Admin       *UserIdentity        `json:"admin_data,omitempty"`
}

// UploadDocResult reports the stored document id. AuditPending is set when
// the mutation committed but the audit append failed.
type UploadDocResult struct {
	DocID        string `json:"doc_id"`
	AuditPending bool   `json:"audit_pending,omitempty"`
}

type GrantDocAccessResult struct {
	GrantedTo    string    `json:"granted_to"`
	Permissions  DocAccess `json:"permissions"`
	Changed      bool      `json:"changed"`
	AuditPending bool      `json:"audit_pending,omitempty"`
}

type RevokeDocAccessResult struct {
	RevokedFrom  string `json:"revoked_from"`
	AuditPending bool   `json:"audit_pending,omitempty"`
}

// CaseDocSummary is a listing row with the ACL withheld.
type CaseDocSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size,omitempty"`
	ContentCid string    `json:"content_cid"`
	Encrypted  bool      `json:"encrypted"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type PageInfo struct {
	TotalDocs   int64 `json:"total_docs"`
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

type CaseDocPage struct {
	Documents  []CaseDocSummary `json:"documents"`
	Pagination PageInfo         `json:"pagination"`
}

// CaseDocView is a single document read, ACL withheld, with the caller's
// effective rights and a little case context.
type CaseDocView struct {
	Document     CaseDocSummary `json:"document"`
	IsCaseAdmin  bool           `json:"is_case_admin"`
	IsUploader   bool           `json:"is_uploader"`
	CanView      bool           `json:"can_view"`
	CanDelete    bool           `json:"can_delete"`
	CaseTitle    string         `json:"case_title"`
	CaseClosed   bool           `json:"case_closed"`
	AuditPending bool           `json:"audit_pending,omitempty"`
}

type DeleteDocResult struct {
	DocID        string `json:"doc_id"`
	AuditPending bool   `json:"audit_pending,omitempty"`
}

// DocParticipant joins an ACL entry with identity display data. Role is
// "Unknown" when no identity record matches the wallet.
type DocParticipant struct {
	Wallet      string `json:"wallet"`
	CanView     bool   `json:"can_view"`
	CanDelete   bool   `json:"can_delete"`
	Role        string `json:"role"`
	UserID      string `json:"user_id,omitempty"`
	EmployeeID  string `json:"employee_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// PersonalDocSummary is a listing row for owned documents.
type PersonalDocSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size,omitempty"`
	ContentCid  string    `json:"content_cid"`
	Encrypted   bool      `json:"encrypted"`
	CreatedAt   time.Time `json:"created_at"`
}

// SharedDocSummary is a listing row for documents shared with the caller.
type SharedDocSummary struct {
	PersonalDocSummary
	Owner    string    `json:"owner"`
	SharedAt time.Time `json:"shared_at"`
}

type SharePersonalDocResult struct {
	DocID        string `json:"doc_id"`
	SharedWith   string `json:"shared_with"`
	AuditPending bool   `json:"audit_pending,omitempty"`
}

type UnsharePersonalDocResult struct {
	DocID        string `json:"doc_id"`
	UnsharedWith string `json:"unshared_with"`
	AuditPending bool   `json:"audit_pending,omitempty"`
}

type LinkPersonalDocResult struct {
	DocID        string `json:"doc_id"`
	LinkedCaseID string `json:"linked_case_id,omitempty"`
	AuditPending bool   `json:"audit_pending,omitempty"`
}
