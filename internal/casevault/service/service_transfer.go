package service

import (
	"context"
	"log/slog"

	"casevault/internal/casevault/model"
)

// TransferAdmin moves case admin rights to an existing participant and
// cascades the consequence into every non-deleted case document's ACL.
//
// The case update and the cascade are not one storage transaction. The case
// update commits first; the cascade is idempotent, so a crash in between is
// repaired by re-running it. Preconditions are checked in a fixed order and
// the first failure wins.
func (s *Service) TransferAdmin(ctx context.Context, actor model.Actor, caseID string, req model.TransferAdminReq) (*model.TransferAdminResult, error) {
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
	// New admin role is validated to Lawyer/Police/Judge at bind time.
	if c.Admin != actor.Wallet {
		return nil, ErrForbidden
	}
	if req.NewAdminWallet == actor.Wallet {
		// Explicitly rejected rather than silently accepted.
		return nil, ErrConflict
	}
	if c.Participant(req.NewAdminWallet) == nil {
		return nil, ErrBadRequest
	}

	// Phase 1: the case record — admin swap, history append, participant
	// demotion/promotion — in one atomic document update.
	if err := s.Cases.TransferAdmin(ctx, id, actor.Wallet, req.NewAdminWallet); err != nil {
		return nil, mapStorageErr(err)
	}

	// Phase 2: document ACL cascade. Old admin keeps view but loses delete;
	// new admin gains full access on every live document.
	if err := s.CaseDocs.CascadeAdminTransfer(ctx, id, actor.Wallet, req.NewAdminWallet); err != nil {
		// The case-level transfer has committed. Surface the failure so the
		// caller can re-run the cascade; re-running converges.
		slog.Error("admin transfer cascade incomplete",
			"case_id", caseID,
			"old_admin", actor.Wallet,
			"new_admin", req.NewAdminWallet,
			"error", err,
		)
		return nil, mapStorageErr(err)
	}

	tx, receipt := s.notifyLedger(ctx, "transferCaseOwnership", caseID, func(ctx context.Context) (string, error) {
		return s.Ledger.TransferCaseOwnership(ctx, caseID, req.NewAdminWallet)
	})

	slog.Info("case admin transferred",
		"case_id", caseID,
		"old_admin", actor.Wallet,
		"new_admin", req.NewAdminWallet,
	)

	return &model.TransferAdminResult{NewAdmin: req.NewAdminWallet, TxHash: tx, PendingReceipt: receipt}, nil
}
