package model

// Participant / actor roles
const (
	RoleJudge    = "Judge"
	RoleLawyer   = "Lawyer"
	RolePolice   = "Police"
	RoleCivilian = "Civilian"
)

// EmployeeRoles are the roles allowed to create cases and to receive case
// admin rights.
var EmployeeRoles = map[string]bool{
	RoleJudge:  true,
	RoleLawyer: true,
	RolePolice: true,
}

// AllRoles defines every role the identity context may attach to a request.
var AllRoles = map[string]bool{
	RoleJudge:    true,
	RoleLawyer:   true,
	RolePolice:   true,
	RoleCivilian: true,
}

// Document model tags for audit log entries
const (
	DocModelCase     = "CaseDocument"
	DocModelPersonal = "PersonalDocument"
)

// Audit actions
const (
	ActionViewed     = "VIEWED"
	ActionShared     = "SHARED"
	ActionRevoked    = "REVOKED"
	ActionUploaded   = "UPLOADED"
	ActionDownloaded = "DOWNLOADED"
	ActionUnshared   = "UNSHARED"
	ActionDeleted    = "DELETED"
	ActionEdited     = "EDITED"
)

// File type filter groups for document listings
const (
	FileGroupAll   = "all"
	FileGroupDocs  = "docs"
	FileGroupImage = "image"
	FileGroupMedia = "media"
	FileGroupOther = "other"
)

// MimeGroups maps a filter group to the concrete file types it covers.
var MimeGroups = map[string][]string{
	FileGroupDocs: {
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	},
	FileGroupImage: {"image/jpeg", "image/png", "image/webp", "image/svg+xml"},
	FileGroupMedia: {"video/mp4", "audio/mpeg"},
	FileGroupOther: {"application/zip", "application/octet-stream"},
}

// Case listing pagination bounds
const (
	DefaultCasePageSize = 12
	MaxCasePageSize     = 100
)

// Document listing page sizes (fixed set, default first)
var AllowedDocPageSizes = map[int]bool{12: true, 24: true, 48: true, 96: true}

const DefaultDocPageSize = 12

// MaxAuditLogResults bounds audit trail reads per document.
const MaxAuditLogResults = 500

// RoleUnknown is reported for ACL entries with no matching identity record.
const RoleUnknown = "Unknown"
