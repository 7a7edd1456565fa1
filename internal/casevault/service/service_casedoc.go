package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"casevault/internal/casevault/model"
)

func (s *Service) UploadCaseDocument(ctx context.Context, actor model.Actor, req model.UploadCaseDocReq, ip string) (*model.UploadDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	caseID, err := parseObjectID(req.CaseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, caseID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if !c.CanUpload(actor.Wallet) {
		return nil, ErrForbidden
	}

	// Merge the caller-supplied ACL in a wallet-keyed map, keeping first-seen
	// order. Uploader and admin are forced to full access afterwards, so
	// weaker caller-supplied entries for them never survive.
	order := make([]string, 0, len(req.AccessControl)+2)
	acl := make(map[string]model.AccessEntry, len(req.AccessControl)+2)
	upsert := func(e model.AccessEntry) {
		if _, ok := acl[e.Wallet]; !ok {
			order = append(order, e.Wallet)
		}
		acl[e.Wallet] = e
	}
	for _, e := range req.AccessControl {
		upsert(model.AccessEntry{Wallet: e.Wallet, CanView: e.CanView, CanDelete: e.CanDelete})
	}
	upsert(model.AccessEntry{Wallet: actor.Wallet, CanView: true, CanDelete: true})
	upsert(model.AccessEntry{Wallet: c.Admin, CanView: true, CanDelete: true})

	entries := make([]model.AccessEntry, 0, len(order))
	for _, w := range order {
		entries = append(entries, acl[w])
	}

	doc := &model.CaseDocument{
		CaseID:        caseID,
		UploadedBy:    actor.Wallet,
		Title:         req.Title,
		FileType:      req.FileType,
		FileSize:      req.FileSize,
		ContentCid:    req.ContentCid,
		Encrypted:     req.Encrypted,
		AccessControl: entries,
	}
	if err := s.CaseDocs.CreateDocument(ctx, doc); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      doc.ID,
		DocModel:   model.DocModelCase,
		CaseID:     &caseID,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionUploaded,
		IPAddress:  ip,
	})

	slog.Info("case document uploaded", "case_id", req.CaseID, "doc_id", doc.ID.Hex(), "by", actor.Wallet)

	return &model.UploadDocResult{DocID: doc.ID.Hex(), AuditPending: pending}, nil
}

func (s *Service) GrantDocAccess(ctx context.Context, actor model.Actor, caseID, docID string, req model.GrantDocAccessReq, ip string) (*model.GrantDocAccessResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	doc, err := s.CaseDocs.GetDocument(ctx, cid, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if actor.Wallet != doc.UploadedBy && actor.Wallet != c.Admin {
		return nil, ErrForbidden
	}
	if req.TargetWallet == actor.Wallet {
		// No self-grant.
		return nil, ErrConflict
	}
	if req.TargetWallet == c.Admin {
		// Admin rights are not grantable through the ACL.
		return nil, ErrConflict
	}
	if c.Participant(req.TargetWallet) == nil {
		return nil, ErrBadRequest
	}

	existing := doc.Access(req.TargetWallet)
	if existing != nil &&
		existing.CanView == req.Permissions.CanView &&
		existing.CanDelete == req.Permissions.CanDelete {
		// Exact match: no mutation, no audit entry.
		return &model.GrantDocAccessResult{
			GrantedTo:   req.TargetWallet,
			Permissions: req.Permissions,
			Changed:     false,
		}, nil
	}

	entry := model.AccessEntry{
		Wallet:    req.TargetWallet,
		CanView:   req.Permissions.CanView,
		CanDelete: req.Permissions.CanDelete,
	}
	if err := s.CaseDocs.UpsertAccessEntry(ctx, did, entry); err != nil {
		return nil, mapStorageErr(err)
	}

	var changed []string
	if existing == nil || existing.CanView != entry.CanView {
		changed = append(changed, fmt.Sprintf("view=%t", entry.CanView))
	}
	if existing == nil || existing.CanDelete != entry.CanDelete {
		changed = append(changed, fmt.Sprintf("delete=%t", entry.CanDelete))
	}
	notes := fmt.Sprintf("Granted %s to %s", strings.Join(changed, ", "), req.TargetWallet)

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelCase,
		CaseID:     &cid,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionShared,
		Notes:      notes,
		IPAddress:  ip,
	})

	return &model.GrantDocAccessResult{
		GrantedTo:    req.TargetWallet,
		Permissions:  req.Permissions,
		Changed:      true,
		AuditPending: pending,
	}, nil
}

func (s *Service) RevokeDocAccess(ctx context.Context, actor model.Actor, caseID, docID string, req model.RevokeDocAccessReq, ip string) (*model.RevokeDocAccessResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	doc, err := s.CaseDocs.GetDocument(ctx, cid, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if actor.Wallet != doc.UploadedBy && actor.Wallet != c.Admin {
		return nil, ErrForbidden
	}
	if req.TargetWallet == actor.Wallet {
		return nil, ErrConflict
	}
	if req.TargetWallet == c.Admin {
		return nil, ErrConflict
	}
	if doc.Access(req.TargetWallet) == nil {
		return nil, ErrNotFound
	}

	// The entry is removed entirely, never downgraded to {false,false}.
	if err := s.CaseDocs.RemoveAccessEntry(ctx, did, req.TargetWallet); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelCase,
		CaseID:     &cid,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionRevoked,
		Notes:      "Revoked access from " + req.TargetWallet,
		IPAddress:  ip,
	})

	return &model.RevokeDocAccessResult{RevokedFrom: req.TargetWallet, AuditPending: pending}, nil
}

func (s *Service) ListCaseDocuments(ctx context.Context, actor model.Actor, caseID string, req model.ListCaseDocsReq) (*model.CaseDocPage, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	// Case-level access and document-level ACL are independently necessary:
	// the repository query additionally requires a canView ACL entry.
	if !c.CanView(actor.Wallet) {
		return nil, ErrForbidden
	}

	docs, total, err := s.CaseDocs.FindDocuments(ctx, cid, actor.Wallet, req)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	summaries := make([]model.CaseDocSummary, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, summarizeCaseDoc(d))
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &model.CaseDocPage{
		Documents: summaries,
		Pagination: model.PageInfo{
			TotalDocs:   total,
			CurrentPage: req.Page,
			Limit:       req.Limit,
			TotalPages:  totalPages,
			HasNextPage: req.Page < totalPages,
			HasPrevPage: req.Page > 1,
		},
	}, nil
}

func (s *Service) ViewCaseDocument(ctx context.Context, actor model.Actor, caseID, docID, ip string) (*model.CaseDocView, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	doc, err := s.CaseDocs.GetDocument(ctx, cid, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	isAdmin := c.Admin == actor.Wallet
	isUploader := doc.UploadedBy == actor.Wallet
	access := doc.Access(actor.Wallet)
	aclView := access != nil && access.CanView
	aclDelete := access != nil && access.CanDelete

	if !isAdmin && !isUploader && !aclView {
		return nil, ErrForbidden
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelCase,
		CaseID:     &cid,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionViewed,
		IPAddress:  ip,
	})

	return &model.CaseDocView{
		Document:     summarizeCaseDoc(doc),
		IsCaseAdmin:  isAdmin,
		IsUploader:   isUploader,
		CanView:      aclView || isAdmin || isUploader,
		CanDelete:    aclDelete || isAdmin || isUploader,
		CaseTitle:    c.Title,
		CaseClosed:   c.IsClosed,
		AuditPending: pending,
	}, nil
}

func (s *Service) DeleteCaseDocument(ctx context.Context, actor model.Actor, caseID, docID, ip string) (*model.DeleteDocResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	doc, err := s.CaseDocs.GetDocument(ctx, cid, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	access := doc.Access(actor.Wallet)
	canDelete := c.Admin == actor.Wallet ||
		doc.UploadedBy == actor.Wallet ||
		(access != nil && access.CanDelete)
	if !canDelete {
		return nil, ErrForbidden
	}

	if err := s.CaseDocs.SoftDeleteDocument(ctx, did); err != nil {
		return nil, mapStorageErr(err)
	}

	pending := s.appendAudit(ctx, &model.AccessAuditLog{
		DocID:      did,
		DocModel:   model.DocModelCase,
		CaseID:     &cid,
		UserWallet: actor.Wallet,
		UserRole:   actor.Role,
		Action:     model.ActionDeleted,
		IPAddress:  ip,
	})

	slog.Info("case document deleted", "case_id", caseID, "doc_id", docID, "by", actor.Wallet)

	return &model.DeleteDocResult{DocID: docID, AuditPending: pending}, nil
}

func (s *Service) ListDocParticipants(ctx context.Context, actor model.Actor, caseID, docID string) ([]model.DocParticipant, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if !c.CanView(actor.Wallet) {
		return nil, ErrForbidden
	}

	doc, err := s.CaseDocs.GetDocument(ctx, cid, did)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	wallets := make([]string, 0, len(doc.AccessControl))
	for _, e := range doc.AccessControl {
		wallets = append(wallets, e.Wallet)
	}

	// Pure display join; an absent identity becomes role "Unknown".
	users, err := s.Identity.FindByWallets(ctx, wallets)
	if err != nil {
		slog.Warn("identity join failed, reporting unknown roles", "doc_id", docID, "error", err)
		users = nil
	}
	byWallet := make(map[string]*model.UserIdentity, len(users))
	for _, u := range users {
		byWallet[u.WalletAddress] = u
	}

	out := make([]model.DocParticipant, 0, len(doc.AccessControl))
	for _, e := range doc.AccessControl {
		p := model.DocParticipant{
			Wallet:    e.Wallet,
			CanView:   e.CanView,
			CanDelete: e.CanDelete,
			Role:      model.RoleUnknown,
		}
		if u := byWallet[e.Wallet]; u != nil {
			p.Role = u.Role
			p.UserID = u.UserID
			p.EmployeeID = u.EmployeeID
			p.PhoneNumber = u.PhoneNumber
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) ListCaseDocumentLogs(ctx context.Context, actor model.Actor, caseID, docID string) ([]*model.AccessAuditLog, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	cid, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}
	did, err := parseObjectID(docID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, cid)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	// The trail outlives the document: the admin may reconstruct it even
	// after a soft delete. Everyone else needs the live document's ACL.
	allowed := c.Admin == actor.Wallet
	if !allowed {
		doc, err := s.CaseDocs.GetDocument(ctx, cid, did)
		if err != nil {
			merr := mapStorageErr(err)
			if errors.Is(merr, ErrNotFound) {
				return nil, ErrForbidden
			}
			return nil, merr
		}
		access := doc.Access(actor.Wallet)
		allowed = doc.UploadedBy == actor.Wallet || (access != nil && access.CanView)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	logs, err := s.Audit.FindLogsForDocument(ctx, did, model.DocModelCase, model.MaxAuditLogResults)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return logs, nil
}

func summarizeCaseDoc(d *model.CaseDocument) model.CaseDocSummary {
	return model.CaseDocSummary{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		ContentCid: d.ContentCid,
		Encrypted:  d.Encrypted,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
}
