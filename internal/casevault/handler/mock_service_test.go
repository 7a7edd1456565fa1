package handler_test

import (
	"context"

	"casevault/internal/casevault/model"

	"github.com/stretchr/testify/mock"
)

// MockVaultService is a testify mock over the full service surface.
type MockVaultService struct {
	mock.Mock
}

func (m *MockVaultService) CreateCase(ctx context.Context, actor model.Actor, req model.CreateCaseReq) (*model.CreateCaseResult, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreateCaseResult), args.Error(1)
}

func (m *MockVaultService) GrantParticipant(ctx context.Context, actor model.Actor, caseID string, req model.GrantParticipantReq) (*model.GrantParticipantResult, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GrantParticipantResult), args.Error(1)
}

func (m *MockVaultService) RevokeParticipant(ctx context.Context, actor model.Actor, caseID, wallet string) (*model.RevokeParticipantResult, error) {
	args := m.Called(ctx, actor, caseID, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RevokeParticipantResult), args.Error(1)
}

func (m *MockVaultService) CloseCase(ctx context.Context, actor model.Actor, caseID string) (*model.CloseCaseResult, error) {
	args := m.Called(ctx, actor, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CloseCaseResult), args.Error(1)
}

func (m *MockVaultService) UpdateCaseMetadata(ctx context.Context, actor model.Actor, caseID string, req model.UpdateCaseMetadataReq) (*model.Case, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockVaultService) ListVisibleCases(ctx context.Context, actor model.Actor, req model.ListCasesReq) (*model.CasePage, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CasePage), args.Error(1)
}

func (m *MockVaultService) GetCase(ctx context.Context, actor model.Actor, caseID string) (*model.CaseDetail, error) {
	args := m.Called(ctx, actor, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDetail), args.Error(1)
}

func (m *MockVaultService) TransferAdmin(ctx context.Context, actor model.Actor, caseID string, req model.TransferAdminReq) (*model.TransferAdminResult, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransferAdminResult), args.Error(1)
}

func (m *MockVaultService) UploadCaseDocument(ctx context.Context, actor model.Actor, req model.UploadCaseDocReq, ip string) (*model.UploadDocResult, error) {
	args := m.Called(ctx, actor, req, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadDocResult), args.Error(1)
}

func (m *MockVaultService) GrantDocAccess(ctx context.Context, actor model.Actor, caseID, docID string, req model.GrantDocAccessReq, ip string) (*model.GrantDocAccessResult, error) {
	args := m.Called(ctx, actor, caseID, docID, req, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GrantDocAccessResult), args.Error(1)
}

func (m *MockVaultService) RevokeDocAccess(ctx context.Context, actor model.Actor, caseID, docID string, req model.RevokeDocAccessReq, ip string) (*model.RevokeDocAccessResult, error) {
	args := m.Called(ctx, actor, caseID, docID, req, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RevokeDocAccessResult), args.Error(1)
}

func (m *MockVaultService) ListCaseDocuments(ctx context.Context, actor model.Actor, caseID string, req model.ListCaseDocsReq) (*model.CaseDocPage, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocPage), args.Error(1)
}

func (m *MockVaultService) ViewCaseDocument(ctx context.Context, actor model.Actor, caseID, docID, ip string) (*model.CaseDocView, error) {
	args := m.Called(ctx, actor, caseID, docID, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocView), args.Error(1)
}

func (m *MockVaultService) DeleteCaseDocument(ctx context.Context, actor model.Actor, caseID, docID, ip string) (*model.DeleteDocResult, error) {
	args := m.Called(ctx, actor, caseID, docID, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteDocResult), args.Error(1)
}

func (m *MockVaultService) ListDocParticipants(ctx context.Context, actor model.Actor, caseID, docID string) ([]model.DocParticipant, error) {
	args := m.Called(ctx, actor, caseID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocParticipant), args.Error(1)
}

func (m *MockVaultService) ListCaseDocumentLogs(ctx context.Context, actor model.Actor, caseID, docID string) ([]*model.AccessAuditLog, error) {
	args := m.Called(ctx, actor, caseID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AccessAuditLog), args.Error(1)
}

func (m *MockVaultService) UploadPersonalDocument(ctx context.Context, actor model.Actor, req model.UploadPersonalDocReq, ip string) (*model.UploadDocResult, error) {
	args := m.Called(ctx, actor, req, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadDocResult), args.Error(1)
}

func (m *MockVaultService) ListOwnedDocuments(ctx context.Context, actor model.Actor) ([]model.PersonalDocSummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PersonalDocSummary), args.Error(1)
}

func (m *MockVaultService) ListSharedWithMe(ctx context.Context, actor model.Actor) ([]model.SharedDocSummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SharedDocSummary), args.Error(1)
}

func (m *MockVaultService) SharePersonalDocument(ctx context.Context, actor model.Actor, req model.SharePersonalDocReq, ip string) (*model.SharePersonalDocResult, error) {
	args := m.Called(ctx, actor, req, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SharePersonalDocResult), args.Error(1)
}

func (m *MockVaultService) UnsharePersonalDocument(ctx context.Context, actor model.Actor, req model.UnsharePersonalDocReq) (*model.UnsharePersonalDocResult, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UnsharePersonalDocResult), args.Error(1)
}

func (m *MockVaultService) DeletePersonalDocument(ctx context.Context, actor model.Actor, req model.DeletePersonalDocReq, ip string) (*model.DeleteDocResult, error) {
	args := m.Called(ctx, actor, req, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteDocResult), args.Error(1)
}

func (m *MockVaultService) LinkPersonalDocument(ctx context.Context, actor model.Actor, docID string, req model.LinkPersonalDocReq) (*model.LinkPersonalDocResult, error) {
	args := m.Called(ctx, actor, docID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LinkPersonalDocResult), args.Error(1)
}

func (m *MockVaultService) ListPersonalDocumentLogs(ctx context.Context, actor model.Actor, docID string) ([]*model.AccessAuditLog, error) {
	args := m.Called(ctx, actor, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AccessAuditLog), args.Error(1)
}
