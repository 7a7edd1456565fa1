package service

import (
	"context"
	"log/slog"
	"time"

	"casevault/internal/casevault/model"
)

func (s *Service) CreateCase(ctx context.Context, actor model.Actor, req model.CreateCaseReq) (*model.CreateCaseResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	if !model.EmployeeRoles[actor.Role] {
		// Only system employees (Judge, Lawyer, Police) can open a case.
		return nil, ErrForbidden
	}

	now := time.Now()
	newCase := &model.Case{
		Title:       req.Title,
		Description: req.Description,
		CourtName:   req.CourtName,
		CreatedBy:   actor.Wallet,
		Admin:       actor.Wallet,
		AdminHistory: []model.AdminChange{
			{Wallet: actor.Wallet, ChangedAt: now},
		},
		Participants: []model.Participant{
			{
				Wallet:      actor.Wallet,
				Role:        actor.Role,
				Permissions: model.Permissions{CanView: true, CanUpload: true},
				AddedAt:     now,
			},
		},
	}

	if err := s.Cases.CreateCase(ctx, newCase); err != nil {
		return nil, mapStorageErr(err)
	}

	caseID := newCase.ID.Hex()
	tx, receipt := s.notifyLedger(ctx, "registerCase", caseID, func(ctx context.Context) (string, error) {
		return s.Ledger.RegisterCase(ctx, caseID, actor.Wallet)
	})

	slog.Info("case created", "case_id", caseID, "admin", actor.Wallet, "role", actor.Role)

	return &model.CreateCaseResult{CaseID: caseID, TxHash: tx, PendingReceipt: receipt}, nil
}

func (s *Service) GrantParticipant(ctx context.Context, actor model.Actor, caseID string, req model.GrantParticipantReq) (*model.GrantParticipantResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	id, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if c.Admin != actor.Wallet {
		return nil, ErrForbidden
	}
	if req.Wallet == c.Admin {
		// The admin already owns the case.
		return nil, ErrConflict
	}
	if c.Participant(req.Wallet) != nil {
		return nil, ErrConflict
	}

	participant := model.Participant{
		Wallet:      req.Wallet,
		Role:        req.Role,
		Permissions: req.Permissions,
		AddedAt:     time.Now(),
	}
	if err := s.Cases.AddParticipant(ctx, id, participant); err != nil {
		return nil, mapStorageErr(err)
	}

	tx, receipt := s.notifyLedger(ctx, "grantAccess", caseID, func(ctx context.Context) (string, error) {
		return s.Ledger.GrantAccess(ctx, caseID, req.Wallet)
	})

	slog.Info("participant granted", "case_id", caseID, "wallet", req.Wallet, "by", actor.Wallet)

	return &model.GrantParticipantResult{Participant: participant, TxHash: tx, PendingReceipt: receipt}, nil
}

func (s *Service) RevokeParticipant(ctx context.Context, actor model.Actor, caseID, wallet string) (*model.RevokeParticipantResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	id, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if c.Admin != actor.Wallet {
		return nil, ErrForbidden
	}
	if wallet == c.Admin {
		// The admin cannot be revoked as a participant.
		return nil, ErrConflict
	}
	if c.Participant(wallet) == nil {
		return nil, ErrNotFound
	}

	// Removes the participant entry only; document ACLs are untouched.
	if err := s.Cases.RemoveParticipant(ctx, id, wallet); err != nil {
		return nil, mapStorageErr(err)
	}

	tx, receipt := s.notifyLedger(ctx, "revokeAccess", caseID, func(ctx context.Context) (string, error) {
		return s.Ledger.RevokeAccess(ctx, caseID, wallet)
	})

	slog.Info("participant revoked", "case_id", caseID, "wallet", wallet, "by", actor.Wallet)

	return &model.RevokeParticipantResult{RevokedWallet: wallet, TxHash: tx, PendingReceipt: receipt}, nil
}

func (s *Service) CloseCase(ctx context.Context, actor model.Actor, caseID string) (*model.CloseCaseResult, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	id, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if c.Admin != actor.Wallet {
		return nil, ErrForbidden
	}
	if c.IsClosed {
		return nil, ErrConflict
	}

	if err := s.Cases.CloseCase(ctx, id); err != nil {
		return nil, mapStorageErr(err)
	}

	tx, receipt := s.notifyLedger(ctx, "closeCase", caseID, func(ctx context.Context) (string, error) {
		return s.Ledger.CloseCase(ctx, caseID)
	})

	slog.Info("case closed", "case_id", caseID, "by", actor.Wallet)

	return &model.CloseCaseResult{CaseID: caseID, TxHash: tx, PendingReceipt: receipt}, nil
}

func (s *Service) UpdateCaseMetadata(ctx context.Context, actor model.Actor, caseID string, req model.UpdateCaseMetadataReq) (*model.Case, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	id, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if c.Admin != actor.Wallet {
		return nil, ErrForbidden
	}

	if err := s.Cases.UpdateMetadata(ctx, id, req); err != nil {
		return nil, mapStorageErr(err)
	}

	return s.Cases.GetCase(ctx, id)
}

func (s *Service) ListVisibleCases(ctx context.Context, actor model.Actor, req model.ListCasesReq) (*model.CasePage, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}

	cases, total, err := s.Cases.FindVisibleCases(ctx, actor.Wallet, req)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if cases == nil {
		cases = []*model.Case{}
	}

	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))

	return &model.CasePage{
		Cases:       cases,
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
		TotalCases:  total,
		TotalPages:  totalPages,
	}, nil
}

func (s *Service) GetCase(ctx context.Context, actor model.Actor, caseID string) (*model.CaseDetail, error) {
	if err := s.validateActor(actor); err != nil {
		return nil, err
	}
	id, err := parseObjectID(caseID)
	if err != nil {
		return nil, err
	}

	c, err := s.Cases.GetCase(ctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	perms := model.EffectivePermissions{IsAdmin: c.Admin == actor.Wallet}
	if perms.IsAdmin {
		perms.CanView = true
		perms.CanUpload = true
	} else if p := c.Participant(actor.Wallet); p != nil && p.Permissions.CanView {
		perms.CanView = true
		perms.CanUpload = p.Permissions.CanUpload
	}
	if !perms.CanView {
		return nil, ErrForbidden
	}

	// Display join only; a missing identity record is not an error.
	adminData, err := s.Identity.FindByWallet(ctx, c.Admin)
	if err != nil {
		slog.Warn("admin identity lookup failed", "case_id", caseID, "error", err)
		adminData = nil
	}

	return &model.CaseDetail{Case: c, Permissions: perms, Admin: adminData}, nil
}
