package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the identity the external identity context attaches to a request.
type Actor struct {
	Wallet string
	Role   string
}

// Permissions is a participant's case-level rights.
type Permissions struct {
	CanView   bool `json:"can_view" bson:"canView"`
	CanUpload bool `json:"can_upload" bson:"canUpload"`
}

// Participant is one case member keyed by wallet.
type Participant struct {
	Wallet      string      `json:"wallet" bson:"wallet"`
	Role        string      `json:"role" bson:"role"`
	Permissions Permissions `json:"permissions" bson:"permissions"`
	AddedAt     time.Time   `json:"added_at" bson:"addedAt"`
}

// AdminChange is one append-only admin history entry.
type AdminChange struct {
	Wallet    string    `json:"wallet" bson:"wallet"`
	ChangedAt time.Time `json:"changed_at" bson:"changedAt"`
}

type Case struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	CourtName    string             `json:"court_name,omitempty" bson:"courtName,omitempty"`
	CreatedBy    string             `json:"created_by" bson:"createdBy"`
	Admin        string             `json:"admin" bson:"admin"`
	AdminHistory []AdminChange      `json:"admin_history" bson:"adminHistory"`
	Participants []Participant      `json:"participants" bson:"participants"`
	IsClosed     bool               `json:"is_closed" bson:"isClosed"`
	CreatedAt    time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updatedAt"`
}

// Participant returns the entry for wallet, or nil.
func (c *Case) Participant(wallet string) *Participant {
	for i := range c.Participants {
		if c.Participants[i].Wallet == wallet {
			return &c.Participants[i]
		}
	}
	return nil
}

// CanView reports whether wallet may read the case. The admin bypasses
// participant permissions entirely.
func (c *Case) CanView(wallet string) bool {
	if c.Admin == wallet {
		return true
	}
	p := c.Participant(wallet)
	return p != nil && p.Permissions.CanView
}

// CanUpload reports whether wallet may add documents to the case.
func (c *Case) CanUpload(wallet string) bool {
	if c.Admin == wallet {
		return true
	}
	p := c.Participant(wallet)
	return p != nil && p.Permissions.CanUpload
}

// AccessEntry is one document ACL entry keyed by wallet.
type AccessEntry struct {
	Wallet    string `json:"wallet" bson:"wallet"`
	CanView   bool   `json:"can_view" bson:"canView"`
	CanDelete bool   `json:"can_delete" bson:"canDelete"`
}

type CaseDocument struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CaseID        primitive.ObjectID `json:"case_id" bson:"caseId"`
	UploadedBy    string             `json:"uploaded_by" bson:"uploadedBy"`
	Title         string             `json:"title" bson:"title"`
	FileType      string             `json:"file_type" bson:"fileType"`
	FileSize      int64              `json:"file_size,omitempty" bson:"fileSize,omitempty"`
	ContentCid    string             `json:"content_cid" bson:"contentCid"`
	Encrypted     bool               `json:"encrypted" bson:"encrypted"`
	AccessControl []AccessEntry      `json:"access_control,omitempty" bson:"accessControl"`
	IsDeleted     bool               `json:"is_deleted" bson:"isDeleted"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

// Access returns the ACL entry for wallet, or nil.
func (d *CaseDocument) Access(wallet string) *AccessEntry {
	for i := range d.AccessControl {
		if d.AccessControl[i].Wallet == wallet {
			return &d.AccessControl[i]
		}
	}
	return nil
}

// SharedEntry is a view-only grant on a personal document.
type SharedEntry struct {
	Wallet   string    `json:"wallet" bson:"wallet"`
	SharedAt time.Time `json:"shared_at" bson:"sharedAt"`
}

type PersonalDocument struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Owner        string              `json:"owner" bson:"owner"`
	Title        string              `json:"title" bson:"title"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty"`
	FileType     string              `json:"file_type" bson:"fileType"`
	FileSize     int64               `json:"file_size,omitempty" bson:"fileSize,omitempty"`
	ContentCid   string              `json:"content_cid" bson:"contentCid"`
	Encrypted    bool                `json:"encrypted" bson:"encrypted"`
	SharedWith   []SharedEntry       `json:"shared_with,omitempty" bson:"sharedWith"`
	LinkedCaseID *primitive.ObjectID `json:"linked_case_id,omitempty" bson:"linkedCaseId,omitempty"`
	IsArchived   bool                `json:"is_archived" bson:"isArchived"`
	IsDeleted    bool                `json:"is_deleted" bson:"isDeleted"`
	CreatedAt    time.Time           `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time           `json:"updated_at" bson:"updatedAt"`
}

// SharedWithWallet reports whether wallet currently holds a view grant.
func (d *PersonalDocument) SharedWithWallet(wallet string) bool {
	for i := range d.SharedWith {
		if d.SharedWith[i].Wallet == wallet {
			return true
		}
	}
	return false
}

// AccessAuditLog is one append-only access trail entry. Document references
// are weak (id + model tag) so archived or deleted documents never break the
// trail.
type AccessAuditLog struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	DocID      primitive.ObjectID  `json:"doc_id" bson:"docId"`
	DocModel   string              `json:"doc_model" bson:"docModel"`
	CaseID     *primitive.ObjectID `json:"case_id,omitempty" bson:"caseId,omitempty"`
	UserWallet string              `json:"user_wallet" bson:"userWallet"`
	UserRole   string              `json:"user_role" bson:"userRole"`
	Action     string              `json:"action" bson:"action"`
	Timestamp  time.Time           `json:"timestamp" bson:"timestamp"`
	Notes      string              `json:"notes,omitempty" bson:"notes,omitempty"`
	IPAddress  string              `json:"ip_address,omitempty" bson:"ipAddress,omitempty"`
}

// UserIdentity is the read-only join target owned by the identity context.
type UserIdentity struct {
	WalletAddress string `json:"wallet_address" bson:"walletAddress"`
	Role          string `json:"role" bson:"role"`
	FirstName     string `json:"first_name,omitempty" bson:"firstName,omitempty"`
	LastName      string `json:"last_name,omitempty" bson:"lastName,omitempty"`
	UserID        string `json:"user_id,omitempty" bson:"userId,omitempty"`
	EmployeeID    string `json:"employee_id,omitempty" bson:"employeeId,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty" bson:"phoneNumber,omitempty"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
