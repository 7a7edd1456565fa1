package handler

import (
	"net/http"
	"strings"

	"casevault/internal/casevault/model"
	"casevault/internal/casevault/service"

	"github.com/labstack/echo/v4"
)

type VaultHandler struct {
	Service service.VaultService
}

func NewVaultHandler(s service.VaultService) *VaultHandler {
	return &VaultHandler{Service: s}
}

// extractActor reads the identity the upstream identity context attaches to
// every request. Wallets are compared lowercase throughout.
func (h *VaultHandler) extractActor(c echo.Context) (model.Actor, error) {
	wallet := strings.ToLower(strings.TrimSpace(c.Request().Header.Get("x-wallet-address")))
	role := strings.TrimSpace(c.Request().Header.Get("x-user-role"))
	if wallet == "" || role == "" {
		return model.Actor{}, service.ErrUnauthorized
	}
	if !model.AllRoles[role] {
		return model.Actor{}, service.ErrUnauthorized
	}
	return model.Actor{Wallet: wallet, Role: role}, nil
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
