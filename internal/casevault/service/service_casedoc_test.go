package service

import (
	"context"
	"testing"

	"casevault/internal/casevault/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func testDoc(caseID, docID primitive.ObjectID) *model.CaseDocument {
	return &model.CaseDocument{
		ID:         docID,
		CaseID:     caseID,
		UploadedBy: lawyerWallet,
		Title:      "Witness statement",
		FileType:   "application/pdf",
		ContentCid: "bafybeigdyrztest",
		AccessControl: []model.AccessEntry{
			{Wallet: lawyerWallet, CanView: true, CanDelete: true},
			{Wallet: adminWallet, CanView: true, CanDelete: true},
			{Wallet: civWallet, CanView: true},
		},
	}
}

func TestUploadCaseDocument(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	uploader := model.Actor{Wallet: lawyerWallet, Role: model.RoleLawyer}

	baseReq := func() model.UploadCaseDocReq {
		return model.UploadCaseDocReq{
			CaseID:     id.Hex(),
			Title:      "Witness statement",
			FileType:   "application/pdf",
			ContentCid: "bafybeigdyrztest",
		}
	}

	t.Run("view-only participant cannot upload", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)

		_, err := svc.UploadCaseDocument(ctx, model.Actor{Wallet: civWallet, Role: model.RoleCivilian}, baseReq(), "10.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("upload-only participant may upload", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		c := testCase(id)
		c.Participants = append(c.Participants, model.Participant{
			Wallet:      strangeWallet,
			Role:        model.RoleCivilian,
			Permissions: model.Permissions{CanUpload: true},
		})
		repos.On("GetCase", ctx, id).Return(c, nil)
		repos.On("CreateDocument", ctx, mock.Anything).Return(nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Return(nil)

		result, err := svc.UploadCaseDocument(ctx, model.Actor{Wallet: strangeWallet, Role: model.RoleCivilian}, baseReq(), "10.0.0.1")
		assert.NoError(t, err)
		assert.False(t, result.AuditPending)
	})

	t.Run("uploader and admin are forced to full access", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		docID := primitive.NewObjectID()
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("CreateDocument", ctx, mock.Anything).Run(func(args mock.Arguments) {
			d := args.Get(1).(*model.CaseDocument)
			d.ID = docID

			uploaderEntry := d.Access(lawyerWallet)
			assert.NotNil(t, uploaderEntry)
			assert.True(t, uploaderEntry.CanView)
			assert.True(t, uploaderEntry.CanDelete)

			adminEntry := d.Access(adminWallet)
			assert.NotNil(t, adminEntry)
			assert.True(t, adminEntry.CanView)
			assert.True(t, adminEntry.CanDelete)

			// The caller-supplied weaker entries did not survive the merge.
			assert.Len(t, d.AccessControl, 3)
		}).Return(nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*model.AccessAuditLog)
			assert.Equal(t, model.ActionUploaded, entry.Action)
			assert.Equal(t, model.DocModelCase, entry.DocModel)
			assert.Equal(t, "10.0.0.1", entry.IPAddress)
		}).Return(nil)

		req := baseReq()
		req.AccessControl = []model.AccessEntryReq{
			{Wallet: lawyerWallet, CanView: true, CanDelete: false},
			{Wallet: adminWallet, CanView: false, CanDelete: false},
			{Wallet: civWallet, CanView: true},
		}
		result, err := svc.UploadCaseDocument(ctx, uploader, req, "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, docID.Hex(), result.DocID)
		assert.False(t, result.AuditPending)
	})

	t.Run("failed audit append degrades the response", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("CreateDocument", ctx, mock.Anything).Return(nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Return(assert.AnError)

		result, err := svc.UploadCaseDocument(ctx, uploader, baseReq(), "")
		assert.NoError(t, err)
		assert.True(t, result.AuditPending)
	})
}

func TestGrantDocAccess(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()
	uploader := model.Actor{Wallet: lawyerWallet, Role: model.RoleLawyer}

	setup := func() (*MockRepos, VaultService) {
		repos := new(MockRepos)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(testDoc(id, docID), nil)
		return repos, NewService(repos, nil)
	}

	t.Run("only uploader or admin may grant", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.GrantDocAccess(ctx, model.Actor{Wallet: civWallet, Role: model.RoleCivilian}, id.Hex(), docID.Hex(), model.GrantDocAccessReq{
			TargetWallet: strangeWallet,
		}, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("no self-grant", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.GrantDocAccess(ctx, uploader, id.Hex(), docID.Hex(), model.GrantDocAccessReq{
			TargetWallet: lawyerWallet,
		}, "")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("admin rights are not grantable", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.GrantDocAccess(ctx, uploader, id.Hex(), docID.Hex(), model.GrantDocAccessReq{
			TargetWallet: adminWallet,
		}, "")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("target must participate in the case", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.GrantDocAccess(ctx, uploader, id.Hex(), docID.Hex(), model.GrantDocAccessReq{
			TargetWallet: strangeWallet,
			Permissions:  model.DocAccess{CanView: true},
		}, "")
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("exact-match grant is a no-op without audit", func(t *testing.T) {
		repos, svc := setup()
		result, err := svc.GrantDocAccess(ctx, uploader, id.Hex(), docID.Hex(), model.GrantDocAccessReq{
			TargetWallet: civWallet,
			Permissions:  model.DocAccess{CanView: true, CanDelete: false},
		}, "")
		assert.NoError(t, err)
		assert.False(t, result.Changed)
		repos.AssertNotCalled(t, "UpsertAccessEntry", mock.Anything, mock.Anything, mock.Anything)
		repos.AssertNotCalled(t, "AppendAccessLog", mock.Anything, mock.Anything)
	})

	t.Run("changed grant upserts and audits the delta", func(t *testing.T) {
		repos, svc := setup()
		repos.On("UpsertAccessEntry", ctx, docID, model.AccessEntry{Wallet: civWallet, CanView: true, CanDelete: true}).Return(nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*model.AccessAuditLog)
			assert.Equal(t, model.ActionShared, entry.Action)
			assert.Contains(t, entry.Notes, "delete=true")
			assert.NotContains(t, entry.Notes, "view=")
		}).Return(nil)

		result, err := svc.GrantDocAccess(ctx, uploader, id.Hex(), docID.Hex(), model.GrantDocAccessReq{
			TargetWallet: civWallet,
			Permissions:  model.DocAccess{CanView: true, CanDelete: true},
		}, "10.0.0.2")
		assert.NoError(t, err)
		assert.True(t, result.Changed)
		repos.AssertExpectations(t)
	})
}

func TestRevokeDocAccess(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()
	admin := model.Actor{Wallet: adminWallet, Role: model.RolePolice}

	setup := func() (*MockRepos, VaultService) {
		repos := new(MockRepos)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(testDoc(id, docID), nil)
		return repos, NewService(repos, nil)
	}

	t.Run("admin entry cannot be revoked", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.RevokeDocAccess(ctx, model.Actor{Wallet: lawyerWallet, Role: model.RoleLawyer}, id.Hex(), docID.Hex(), model.RevokeDocAccessReq{
			TargetWallet: adminWallet,
		}, "")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("revoking an absent entry is not found", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.RevokeDocAccess(ctx, admin, id.Hex(), docID.Hex(), model.RevokeDocAccessReq{
			TargetWallet: strangeWallet,
		}, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("revoke removes the entry entirely", func(t *testing.T) {
		repos, svc := setup()
		repos.On("RemoveAccessEntry", ctx, docID, civWallet).Return(nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*model.AccessAuditLog)
			assert.Equal(t, model.ActionRevoked, entry.Action)
			assert.Contains(t, entry.Notes, civWallet)
		}).Return(nil)

		result, err := svc.RevokeDocAccess(ctx, admin, id.Hex(), docID.Hex(), model.RevokeDocAccessReq{
			TargetWallet: civWallet,
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, civWallet, result.RevokedFrom)
		repos.AssertExpectations(t)
	})
}

func TestViewCaseDocument(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("viewer without ACL entry is forbidden", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		doc := testDoc(id, docID)
		doc.AccessControl = doc.AccessControl[:2]
		repos.On("GetDocument", ctx, id, docID).Return(doc, nil)

		_, err := svc.ViewCaseDocument(ctx, model.Actor{Wallet: civWallet, Role: model.RoleCivilian}, id.Hex(), docID.Hex(), "")
		assert.ErrorIs(t, err, ErrForbidden)
		repos.AssertNotCalled(t, "AppendAccessLog", mock.Anything, mock.Anything)
	})

	t.Run("successful view is audited", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(testDoc(id, docID), nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*model.AccessAuditLog)
			assert.Equal(t, model.ActionViewed, entry.Action)
			assert.Equal(t, civWallet, entry.UserWallet)
		}).Return(nil)

		view, err := svc.ViewCaseDocument(ctx, model.Actor{Wallet: civWallet, Role: model.RoleCivilian}, id.Hex(), docID.Hex(), "10.0.0.3")
		assert.NoError(t, err)
		assert.True(t, view.CanView)
		assert.False(t, view.CanDelete)
		assert.False(t, view.IsCaseAdmin)
		assert.Equal(t, "State v. Doe", view.CaseTitle)
	})

	t.Run("admin bypasses the ACL and gets full rights", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		doc := testDoc(id, docID)
		doc.AccessControl = nil
		repos.On("GetDocument", ctx, id, docID).Return(doc, nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Return(nil)

		view, err := svc.ViewCaseDocument(ctx, model.Actor{Wallet: adminWallet, Role: model.RolePolice}, id.Hex(), docID.Hex(), "")
		assert.NoError(t, err)
		assert.True(t, view.IsCaseAdmin)
		assert.True(t, view.CanView)
		assert.True(t, view.CanDelete)
	})
}

func TestDeleteCaseDocument(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("view-only holder cannot delete", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(testDoc(id, docID), nil)

		_, err := svc.DeleteCaseDocument(ctx, model.Actor{Wallet: civWallet, Role: model.RoleCivilian}, id.Hex(), docID.Hex(), "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("uploader soft-deletes and audits", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(testDoc(id, docID), nil)
		repos.On("SoftDeleteDocument", ctx, docID).Return(nil)
		repos.On("AppendAccessLog", ctx, mock.Anything).Run(func(args mock.Arguments) {
			assert.Equal(t, model.ActionDeleted, args.Get(1).(*model.AccessAuditLog).Action)
		}).Return(nil)

		result, err := svc.DeleteCaseDocument(ctx, model.Actor{Wallet: lawyerWallet, Role: model.RoleLawyer}, id.Hex(), docID.Hex(), "")
		assert.NoError(t, err)
		assert.Equal(t, docID.Hex(), result.DocID)
		repos.AssertExpectations(t)
	})

	t.Run("deleted document is gone from reads", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(nil, mongo.ErrNoDocuments)

		_, err := svc.ViewCaseDocument(ctx, model.Actor{Wallet: lawyerWallet, Role: model.RoleLawyer}, id.Hex(), docID.Hex(), "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListDocParticipants(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("missing identity reports Unknown role", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("GetDocument", ctx, id, docID).Return(testDoc(id, docID), nil)
		repos.On("FindByWallets", ctx, mock.Anything).Return([]*model.UserIdentity{
			{WalletAddress: lawyerWallet, Role: model.RoleLawyer, EmployeeID: "E-100"},
		}, nil)

		out, err := svc.ListDocParticipants(ctx, model.Actor{Wallet: adminWallet, Role: model.RolePolice}, id.Hex(), docID.Hex())
		assert.NoError(t, err)
		assert.Len(t, out, 3)
		assert.Equal(t, model.RoleLawyer, out[0].Role)
		assert.Equal(t, model.RoleUnknown, out[1].Role)
		assert.Equal(t, model.RoleUnknown, out[2].Role)
	})
}

func TestListCaseDocumentLogs(t *testing.T) {
	ctx := context.TODO()
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("admin reads the trail even after delete", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		repos.On("FindLogsForDocument", ctx, docID, model.DocModelCase, int64(model.MaxAuditLogResults)).Return([]*model.AccessAuditLog{
			{DocID: docID, Action: model.ActionDeleted},
			{DocID: docID, Action: model.ActionViewed},
		}, nil)

		logs, err := svc.ListCaseDocumentLogs(ctx, model.Actor{Wallet: adminWallet, Role: model.RolePolice}, id.Hex(), docID.Hex())
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
		repos.AssertNotCalled(t, "GetDocument", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-holder is forbidden", func(t *testing.T) {
		repos := new(MockRepos)
		svc := NewService(repos, nil)
		repos.On("GetCase", ctx, id).Return(testCase(id), nil)
		doc := testDoc(id, docID)
		doc.AccessControl = doc.AccessControl[:2]
		repos.On("GetDocument", ctx, id, docID).Return(doc, nil)

		_, err := svc.ListCaseDocumentLogs(ctx, model.Actor{Wallet: civWallet, Role: model.RoleCivilian}, id.Hex(), docID.Hex())
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
