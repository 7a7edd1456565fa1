package repository

import (
	"context"
	"errors"

	"casevault/internal/casevault/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDuplicate = errors.New("duplicate record")

// CaseRepository owns case records. Single-record mutations rely on Mongo's
// atomic per-document update; guarded filters keep them race-free.
type CaseRepository interface {
	CreateCase(ctx context.Context, c *model.Case) error
	GetCase(ctx context.Context, id primitive.ObjectID) (*model.Case, error)
	// AddParticipant appends the participant unless the wallet is already
	// present; returns ErrDuplicate when it is.
	AddParticipant(ctx context.Context, caseID primitive.ObjectID, p model.Participant) error
	RemoveParticipant(ctx context.Context, caseID primitive.ObjectID, wallet string) error
	// CloseCase sets isClosed true; mongo.ErrNoDocuments when the case is
	// missing or already closed.
	CloseCase(ctx context.Context, caseID primitive.ObjectID) error
	UpdateMetadata(ctx context.Context, caseID primitive.ObjectID, req model.UpdateCaseMetadataReq) error
	// FindVisibleCases returns the page plus the total match count.
	FindVisibleCases(ctx context.Context, wallet string, req model.ListCasesReq) ([]*model.Case, int64, error)
	// TransferAdmin applies the case-level half of an admin transfer in one
	// document update: admin swap, history append, participant
	// demotion/promotion.
	TransferAdmin(ctx context.Context, caseID primitive.ObjectID, oldAdmin, newAdmin string) error
	EnsureCaseIndexes(ctx context.Context) error
}

// CaseDocumentRepository owns case-scoped document records and their ACLs.
type CaseDocumentRepository interface {
	CreateDocument(ctx context.Context, d *model.CaseDocument) error
	// GetDocument resolves a non-deleted document scoped to its case.
	GetDocument(ctx context.Context, caseID, docID primitive.ObjectID) (*model.CaseDocument, error)
	UpsertAccessEntry(ctx context.Context, docID primitive.ObjectID, entry model.AccessEntry) error
	RemoveAccessEntry(ctx context.Context, docID primitive.ObjectID, wallet string) error
	FindDocuments(ctx context.Context, caseID primitive.ObjectID, wallet string, req model.ListCaseDocsReq) ([]*model.CaseDocument, int64, error)
	SoftDeleteDocument(ctx context.Context, docID primitive.ObjectID) error
	// CascadeAdminTransfer rewrites every non-deleted document's ACL after
	// an admin change: old admin downgraded to view-only where present,
	// new admin upserted at full access. Idempotent; safe to re-run.
	CascadeAdminTransfer(ctx context.Context, caseID primitive.ObjectID, oldAdmin, newAdmin string) error
	EnsureDocumentIndexes(ctx context.Context) error
}

// PersonalDocumentRepository owns documents uploaded outside any case.
type PersonalDocumentRepository interface {
	CreatePersonalDocument(ctx context.Context, d *model.PersonalDocument) error
	GetPersonalDocument(ctx context.Context, docID primitive.ObjectID) (*model.PersonalDocument, error)
	FindOwnedDocuments(ctx context.Context, owner string) ([]*model.PersonalDocument, error)
	FindSharedDocuments(ctx context.Context, wallet string) ([]*model.PersonalDocument, error)
	// AddShare appends a view grant; ErrDuplicate when already shared.
	AddShare(ctx context.Context, docID primitive.ObjectID, entry model.SharedEntry) error
	RemoveShare(ctx context.Context, docID primitive.ObjectID, wallet string) error
	SoftDeletePersonalDocument(ctx context.Context, docID primitive.ObjectID) error
	SetLinkedCase(ctx context.Context, docID primitive.ObjectID, caseID *primitive.ObjectID) error
	EnsurePersonalIndexes(ctx context.Context) error
}

// AuditRepository is append-only: no update or delete methods exist.
type AuditRepository interface {
	AppendAccessLog(ctx context.Context, entry *model.AccessAuditLog) error
	// FindLogsForDocument returns entries newest first, bounded by limit.
	FindLogsForDocument(ctx context.Context, docID primitive.ObjectID, docModel string, limit int64) ([]*model.AccessAuditLog, error)
	EnsureAuditIndexes(ctx context.Context) error
}

// IdentityRepository reads the identity context's user records for display
// joins. It never writes.
type IdentityRepository interface {
	FindByWallet(ctx context.Context, wallet string) (*model.UserIdentity, error)
	FindByWallets(ctx context.Context, wallets []string) ([]*model.UserIdentity, error)
}
