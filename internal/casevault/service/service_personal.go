package service

import (
	"context"
	"log/slog"
	"time"

	"casevault/internal/casevault/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Service) UploadPersonalDocument(ctx context.Context, actor model.Actor, req model.UploadPersonalDocReq, ip string) (*model.UploadDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}

	doc := &model.PersonalDocument{
		Owner:       actor.Wallet,
		Title:       req.Title,
		Description: req.Description,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		ContentCid:  req.ContentCid,
		Encrypted:   req.Encrypted,
	}
	if err := s.Personal.CreatePersonalDocument(ctx, doc); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      doc.ID,
		DocModel:   model.DocModelPersonal,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionUploaded,
		Notes:      "Personal document uploaded",
		IPAddress:  ip,
	})

	slog.Info("personal document uploaded", "doc_id", doc.ID.Hex(), "owner", actor.Wallet)

	return &model.UploadDocResult{DocID: doc.ID.Hex(), AuditPending: pending}, nil
}

func (s *Service) ListOwnedDocuments(ctx context.Context, actor model.Actor) ([]model.PersonalDocSummary, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}

	docs, err := s.Personal.FindOwnedDocuments(ctx, actor.Wallet)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	out := make([]model.PersonalDocSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, summarizePersonalDoc(d))
	}
	return out, nil
}

func (s *Service) ListSharedWithMe(ctx context.Context, actor model.Actor) ([]model.SharedDocSummary, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}

	docs, err := s.Personal.FindSharedDocuments(ctx, actor.Wallet)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	out := make([]model.SharedDocSummary, 0, len(docs))
	for _, d := range docs {
		var sharedAt time.Time
		for _, e := range d.SharedWith {
			if e.Wallet == actor.Wallet {
				sharedAt = e.SharedAt
				break
			}
		}
		out = append(out, model.SharedDocSummary{
			PersonalDocSummary: summarizePersonalDoc(d),
			Owner:              d.Owner,
			SharedAt:           sharedAt,
		})
	}
	return out, nil
}

func (s *Service) SharePersonalDocument(ctx context.Context, actor model.Actor, req model.SharePersonalDocReq, ip string) (*model.SharePersonalDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	did, err := parseObjectID(req.DocID)
	if err != nil {
		return nil, err
	}

	doc, err := s.Personal.GetPersonalDocument(ctx, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if doc.Owner != actor.Wallet {
		return nil, ErrForbidden
	}
	if req.TargetWallet == actor.Wallet {
		// No self-share.
		return nil, ErrConflict
	}

	entry := model.SharedEntry{Wallet: req.TargetWallet, SharedAt: time.Now().UTC()}
	if err := s.Personal.AddShare(ctx, did, entry); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelPersonal,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionShared,
		Notes:      "Shared with " + req.TargetWallet,
		IPAddress:  ip,
	})

	return &model.SharePersonalDocResult{
		DocID:        req.DocID,
		SharedWith:   req.TargetWallet,
		AuditPending: pending,
	}, nil
}

func (s *Service) UnsharePersonalDocument(ctx context.Context, actor model.Actor, req model.UnsharePersonalDocReq) (*model.UnsharePersonalDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	did, err := parseObjectID(req.DocID)
	if err != nil {
		return nil, err
	}

	doc, err := s.Personal.GetPersonalDocument(ctx, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if doc.Owner != actor.Wallet {
		return nil, ErrForbidden
	}
	if !doc.SharedWithWallet(req.TargetWallet) {
		return nil, ErrConflict
	}

	if err := s.Personal.RemoveShare(ctx, did, req.TargetWallet); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelPersonal,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionUnshared,
		Notes:      "Unshared from " + req.TargetWallet,
	})

	return &model.UnsharePersonalDocResult{
		DocID:        req.DocID,
		UnsharedWith: req.TargetWallet,
		AuditPending: pending,
	}, nil
}

func (s *Service) DeletePersonalDocument(ctx context.Context, actor model.Actor, req model.DeletePersonalDocReq, ip string) (*model.DeleteDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	did, err := parseObjectID(req.DocID)
	if err != nil {
		return nil, err
	}

	doc, err := s.Personal.GetPersonalDocument(ctx, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if doc.Owner != actor.Wallet {
		return nil, ErrForbidden
	}

	if err := s.Personal.SoftDeletePersonalDocument(ctx, did); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelPersonal,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionDeleted,
		IPAddress:  ip,
	})

	slog.Info("personal document deleted", "doc_id", req.DocID, "owner", actor.Wallet)

	return &model.DeleteDocResult{DocID: req.DocID, AuditPending: pending}, nil
}

func (s *Service) LinkPersonalDocument(ctx context.Context, actor model.Actor, docID string, req model.LinkPersonalDocReq) (*model.LinkPersonalDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	doc, err := s.Personal.GetPersonalDocument(ctx, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if doc.Owner != actor.Wallet {
		return nil, ErrForbidden
	}

	// The link is informational only, but it must at least point at a real
	// case. It grants no access in either direction.
	var linked *primitive.ObjectID
	if req.CaseID != "" {
		cid, err := parseObjectID(req.CaseID)
		if err != nil {
			return nil, err
		}
		if _, err := s.Cases.GetCase(ctx, cid); err != nil {
			return nil, mapStorageErr(err)
		}
		linked = &cid
	}

	if err := s.Personal.SetLinkedCase(ctx, did, linked); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelPersonal,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionEdited,
		Notes:      linkNotes(req.CaseID),
	})

	return &model.LinkPersonalDocResult{
		DocID:        docID,
		LinkedCaseID: req.CaseID,
		AuditPending: pending,
	}, nil
}

func (s *Service) ListPersonalDocumentLogs(ctx context.Context, actor model.Actor, docID string) ([]*model.AccessAuditLog, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	doc, err := s.Personal.GetPersonalDocument(ctx, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if doc.Owner != actor.Wallet && !doc.SharedWithWallet(actor.Wallet) {
		return nil, ErrForbidden
	}

	logs, err := s.Audit.FindLogsForDocument(ctx, did, model.DocModelPersonal, model.MaxAuditLogResults)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return logs, nil
}

func linkNotes(caseID string) string {
	if caseID == "" {
		return "Case link cleared"
	}
	return "Linked to case " + caseID
}

func summarizePersonalDoc(d *model.PersonalDocument) model.PersonalDocSummary {
	return model.PersonalDocSummary{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		FileType:    d.FileType,
		FileSize:    d.FileSize,
		ContentCid:  d.ContentCid,
		Encrypted:   d.Encrypted,
		CreatedAt:   d.CreatedAt,
	}
}
