// Package ledger is the boundary with the external access-control ledger.
// Calls are idempotent-safe-to-retry; a failure never fails the mutation
// that triggered the notification.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier mirrors access-relevant state changes to an external ledger and
// returns an opaque receipt (a transaction hash).
type Notifier interface {
	RegisterCase(ctx context.Context, caseID, adminWallet string) (string, error)
	GrantAccess(ctx context.Context, caseID, wallet string) (string, error)
	RevokeAccess(ctx context.Context, caseID, wallet string) (string, error)
	TransferCaseOwnership(ctx context.Context, caseID, newAdminWallet string) (string, error)
	CloseCase(ctx context.Context, caseID string) (string, error)
}

// HTTPNotifier posts JSON notifications to a relay endpoint fronting the
// chain. Every call carries a bounded timeout.
type HTTPNotifier struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPNotifier(endpoint string, timeout time.Duration) *HTTPNotifier {
	return &HTTPNotifier{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

type notifyRequest struct {
	Method string `json:"method"`
	CaseID string `json:"case_id"`
	Wallet string `json:"wallet,omitempty"`
}

type notifyResponse struct {
	TxHash string `json:"tx_hash"`
}

func (n *HTTPNotifier) call(ctx context.Context, method, caseID, wallet string) (string, error) {
	body, err := json.Marshal(notifyRequest{Method: method, CaseID: caseID, Wallet: wallet})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ledger relay returned status %d", resp.StatusCode)
	}

	var out notifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.TxHash, nil
}

func (n *HTTPNotifier) RegisterCase(ctx context.Context, caseID, adminWallet string) (string, error) {
	return n.call(ctx, "registerCase", caseID, adminWallet)
}

func (n *HTTPNotifier) GrantAccess(ctx context.Context, caseID, wallet string) (string, error) {
	return n.call(ctx, "grantAccess", caseID, wallet)
}

func (n *HTTPNotifier) RevokeAccess(ctx context.Context, caseID, wallet string) (string, error) {
	return n.call(ctx, "revokeAccess", caseID, wallet)
}

func (n *HTTPNotifier) TransferCaseOwnership(ctx context.Context, caseID, newAdminWallet string) (string, error) {
	return n.call(ctx, "transferCaseOwnership", caseID, newAdminWallet)
}

func (n *HTTPNotifier) CloseCase(ctx context.Context, caseID string) (string, error) {
	return n.call(ctx, "closeCase", caseID, "")
}

// NoopNotifier is wired when the ledger is disabled.
type NoopNotifier struct{}

func (NoopNotifier) RegisterCase(context.Context, string, string) (string, error) { return "", nil }
func (NoopNotifier) GrantAccess(context.Context, string, string) (string, error)  { return "", nil }
func (NoopNotifier) RevokeAccess(context.Context, string, string) (string, error) { return "", nil }
func (NoopNotifier) TransferCaseOwnership(context.Context, string, string) (string, error) {
	return "", nil
}
func (NoopNotifier) CloseCase(context.Context, string) (string, error) { return "", nil }
