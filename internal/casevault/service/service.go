package service

import (
	"context"
	"errors"
	"log/slog"

	"casevault/internal/casevault/ledger"
	"casevault/internal/casevault/model"
	"casevault/internal/casevault/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnavailable  = errors.New("temporarily unavailable")
)

type VaultService interface {
	// Case registry
	CreateCase(ctx context.Context, actor model.Actor, req model.CreateCaseReq) (*model.CreateCaseResult, error)
	GrantParticipant(ctx context.Context, actor model.Actor, caseID string, req model.GrantParticipantReq) (*model.GrantParticipantResult, error)
	RevokeParticipant(ctx context.Context, actor model.Actor, caseID, wallet string) (*model.RevokeParticipantResult, error)
	CloseCase(ctx context.Context, actor model.Actor, caseID string) (*model.CloseCaseResult, error)
	UpdateCaseMetadata(ctx context.Context, actor model.Actor, caseID string, req model.UpdateCaseMetadataReq) (*model.Case, error)
	ListVisibleCases(ctx context.Context, actor model.Actor, req model.ListCasesReq) (*model.CasePage, error)
	GetCase(ctx context.Context, actor model.Actor, caseID string) (*model.CaseDetail, error)

	// Admin transfer coordinator
	TransferAdmin(ctx context.Context, actor model.Actor, caseID string, req model.TransferAdminReq) (*model.TransferAdminResult, error)

	// Case document store
	UploadCaseDocument(ctx context.Context, actor model.Actor, req model.UploadCaseDocReq, ip string) (*model.UploadDocResult, error)
	GrantDocAccess(ctx context.Context, actor model.Actor, caseID, docID string, req model.GrantDocAccessReq, ip string) (*model.GrantDocAccessResult, error)
	RevokeDocAccess(ctx context.Context, actor model.Actor, caseID, docID string, req model.RevokeDocAccessReq, ip string) (*model.RevokeDocAccessResult, error)
	ListCaseDocuments(ctx context.Context, actor model.Actor, caseID string, req model.ListCaseDocsReq) (*model.CaseDocPage, error)
	ViewCaseDocument(ctx context.Context, actor model.Actor, caseID, docID, ip string) (*model.CaseDocView, error)
	DeleteCaseDocument(ctx context.Context, actor model.Actor, caseID, docID, ip string) (*model.DeleteDocResult, error)
	ListDocParticipants(ctx context.Context, actor model.Actor, caseID, docID string) ([]model.DocParticipant, error)
	ListCaseDocumentLogs(ctx context.Context, actor model.Actor, caseID, docID string) ([]*model.AccessAuditLog, error)

	// Personal document store
	UploadPersonalDocument(ctx context.Context, actor model.Actor, req model.UploadPersonalDocReq, ip string) (*model.UploadDocResult, error)
	ListOwnedDocuments(ctx context.Context, actor model.Actor) ([]model.PersonalDocSummary, error)
	ListSharedWithMe(ctx context.Context, actor model.Actor) ([]model.SharedDocSummary, error)
	SharePersonalDocument(ctx context.Context, actor model.Actor, req model.SharePersonalDocReq, ip string) (*model.SharePersonalDocResult, error)
	UnsharePersonalDocument(ctx context.Context, actor model.Actor, req model.UnsharePersonalDocReq) (*model.UnsharePersonalDocResult, error)
	DeletePersonalDocument(ctx context.Context, actor model.Actor, req model.DeletePersonalDocReq, ip string) (*model.DeleteDocResult, error)
	LinkPersonalDocument(ctx context.Context, actor model.Actor, docID string, req model.LinkPersonalDocReq) (*model.LinkPersonalDocResult, error)
	ListPersonalDocumentLogs(ctx context.Context, actor model.Actor, docID string) ([]*model.AccessAuditLog, error)
}

type Service struct {
	Cases    repository.CaseRepository
	CaseDocs repository.CaseDocumentRepository
	Personal repository.PersonalDocumentRepository
	Audit    repository.AuditRepository
	Identity repository.IdentityRepository
	Ledger   ledger.Notifier
}

// Repositories groups the store interfaces a Service needs. One
// MongoRepository satisfies all of them.
type Repositories interface {
	repository.CaseRepository
	repository.CaseDocumentRepository
	repository.PersonalDocumentRepository
	repository.AuditRepository
	repository.IdentityRepository
}

func NewService(repos Repositories, notifier ledger.Notifier) *Service {
	if notifier == nil {
		notifier = ledger.NoopNotifier{}
	}
	return &Service{
		Cases:    repos,
		CaseDocs: repos,
		Personal: repos,
		Audit:    repos,
		Identity: repos,
		Ledger:   notifier,
	}
}

func (s *Service) validateActor(actor model.Actor) error {
	if actor.Wallet == "" {
		return ErrUnauthorized
	}
	if !model.AllRoles[actor.Role] {
		return ErrUnauthorized
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrBadRequest
	}
	return oid, nil
}

// mapStorageErr folds driver errors into the service taxonomy. Timeouts are
// retryable; everything unexpected passes through to the internal handler.
func mapStorageErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return ErrUnavailable
	default:
		return err
	}
}

// appendAudit writes the trail entry synchronously. A failed append does not
// roll back the committed mutation; it degrades the response instead, so the
// caller knows the trail is incomplete.
func (s *Service) appendAudit(ctx context.Context, entry *model.AccessAuditLog) (pending bool) {
	if err := s.Audit.AppendAccessLog(ctx, entry); err != nil {
		slog.Error("audit append failed, trail incomplete",
			"action", entry.Action,
			"doc_id", entry.DocID.Hex(),
			"doc_model", entry.DocModel,
			"error", err,
		)
		return true
	}
	return false
}

// notifyLedger runs one ledger call. On failure the mutation stands; the
// returned reconciliation receipt marks the notification for out-of-band
// retry.
func (s *Service) notifyLedger(ctx context.Context, op, caseID string, call func(context.Context) (string, error)) (txHash, pendingReceipt string) {
	tx, err := call(ctx)
	if err != nil {
		receipt := uuid.NewString()
		slog.Warn("ledger notification failed, pending reconciliation",
			"op", op,
			"case_id", caseID,
			"receipt", receipt,
			"error", err,
		)
		return "", receipt
	}
	return tx, ""
}
