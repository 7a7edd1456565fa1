package service

import (
	"context"

	"casevault/internal/casevault/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepos is a shared mock over every store interface the service consumes.
type MockRepos struct {
	mock.Mock
}

func (m *MockRepos) CreateCase(ctx context.Context, c *model.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepos) GetCase(ctx context.Context, id primitive.ObjectID) (*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockRepos) AddParticipant(ctx context.Context, caseID primitive.ObjectID, p model.Participant) error {
	args := m.Called(ctx, caseID, p)
	return args.Error(0)
}

func (m *MockRepos) RemoveParticipant(ctx context.Context, caseID primitive.ObjectID, wallet string) error {
	args := m.Called(ctx, caseID, wallet)
	return args.Error(0)
}

func (m *MockRepos) CloseCase(ctx context.Context, caseID primitive.ObjectID) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func (m *MockRepos) UpdateMetadata(ctx context.Context, caseID primitive.ObjectID, req model.UpdateCaseMetadataReq) error {
	args := m.Called(ctx, caseID, req)
	return args.Error(0)
}

func (m *MockRepos) FindVisibleCases(ctx context.Context, wallet string, req model.ListCasesReq) ([]*model.Case, int64, error) {
	args := m.Called(ctx, wallet, req)
	var cases []*model.Case
	if args.Get(0) != nil {
		cases = args.Get(0).([]*model.Case)
	}
	return cases, args.Get(1).(int64), args.Error(2)
}

func (m *MockRepos) TransferAdmin(ctx context.Context, caseID primitive.ObjectID, oldAdmin, newAdmin string) error {
	args := m.Called(ctx, caseID, oldAdmin, newAdmin)
	return args.Error(0)
}

func (m *MockRepos) EnsureCaseIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepos) CreateDocument(ctx context.Context, d *model.CaseDocument) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepos) GetDocument(ctx context.Context, caseID, docID primitive.ObjectID) (*model.CaseDocument, error) {
	args := m.Called(ctx, caseID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockRepos) UpsertAccessEntry(ctx context.Context, docID primitive.ObjectID, entry model.AccessEntry) error {
	args := m.Called(ctx, docID, entry)
	return args.Error(0)
}

func (m *MockRepos) RemoveAccessEntry(ctx context.Context, docID primitive.ObjectID, wallet string) error {
	args := m.Called(ctx, docID, wallet)
	return args.Error(0)
}

func (m *MockRepos) FindDocuments(ctx context.Context, caseID primitive.ObjectID, wallet string, req model.ListCaseDocsReq) ([]*model.CaseDocument, int64, error) {
	args := m.Called(ctx, caseID, wallet, req)
	var docs []*model.CaseDocument
	if args.Get(0) != nil {
		docs = args.Get(0).([]*model.CaseDocument)
	}
	return docs, args.Get(1).(int64), args.Error(2)
}

func (m *MockRepos) SoftDeleteDocument(ctx context.Context, docID primitive.ObjectID) error {
	args := m.Called(ctx, docID)
	return args.Error(0)
}

func (m *MockRepos) CascadeAdminTransfer(ctx context.Context, caseID primitive.ObjectID, oldAdmin, newAdmin string) error {
	args := m.Called(ctx, caseID, oldAdmin, newAdmin)
	return args.Error(0)
}

func (m *MockRepos) EnsureDocumentIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepos) CreatePersonalDocument(ctx context.Context, d *model.PersonalDocument) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepos) GetPersonalDocument(ctx context.Context, docID primitive.ObjectID) (*model.PersonalDocument, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonalDocument), args.Error(1)
}

func (m *MockRepos) FindOwnedDocuments(ctx context.Context, owner string) ([]*model.PersonalDocument, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PersonalDocument), args.Error(1)
}

func (m *MockRepos) FindSharedDocuments(ctx context.Context, wallet string) ([]*model.PersonalDocument, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PersonalDocument), args.Error(1)
}

func (m *MockRepos) AddShare(ctx context.Context, docID primitive.ObjectID, entry model.SharedEntry) error {
	args := m.Called(ctx, docID, entry)
	return args.Error(0)
}

func (m *MockRepos) RemoveShare(ctx context.Context, docID primitive.ObjectID, wallet string) error {
	args := m.Called(ctx, docID, wallet)
	return args.Error(0)
}

func (m *MockRepos) SoftDeletePersonalDocument(ctx context.Context, docID primitive.ObjectID) error {
	args := m.Called(ctx, docID)
	return args.Error(0)
}

func (m *MockRepos) SetLinkedCase(ctx context.Context, docID primitive.ObjectID, caseID *primitive.ObjectID) error {
	args := m.Called(ctx, docID, caseID)
	return args.Error(0)
}

func (m *MockRepos) EnsurePersonalIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepos) AppendAccessLog(ctx context.Context, entry *model.AccessAuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepos) FindLogsForDocument(ctx context.Context, docID primitive.ObjectID, docModel string, limit int64) ([]*model.AccessAuditLog, error) {
	args := m.Called(ctx, docID, docModel, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AccessAuditLog), args.Error(1)
}

func (m *MockRepos) EnsureAuditIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepos) FindByWallet(ctx context.Context, wallet string) (*model.UserIdentity, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserIdentity), args.Error(1)
}

func (m *MockRepos) FindByWallets(ctx context.Context, wallets []string) ([]*model.UserIdentity, error) {
	args := m.Called(ctx, wallets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserIdentity), args.Error(1)
}

// MockNotifier stands in for the ledger integration.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) RegisterCase(ctx context.Context, caseID, adminWallet string) (string, error) {
	args := m.Called(ctx, caseID, adminWallet)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) GrantAccess(ctx context.Context, caseID, wallet string) (string, error) {
	args := m.Called(ctx, caseID, wallet)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) RevokeAccess(ctx context.Context, caseID, wallet string) (string, error) {
	args := m.Called(ctx, caseID, wallet)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) TransferCaseOwnership(ctx context.Context, caseID, newAdminWallet string) (string, error) {
	args := m.Called(ctx, caseID, newAdminWallet)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) CloseCase(ctx context.Context, caseID string) (string, error) {
	args := m.Called(ctx, caseID)
	return args.String(0), args.Error(1)
}
