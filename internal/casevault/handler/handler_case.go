package handler

import (
	"net/http"
	"strings"

	"casevault/internal/casevault/model"

	"github.com/labstack/echo/v4"
)

// PostCase handles POST /cases
func (h *VaultHandler) PostCase(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateCaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.CreateCase(c.Request().Context(), actor, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, result)
}

// PostParticipant handles POST /cases/:caseId/participants
func (h *VaultHandler) PostParticipant(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GrantParticipantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.GrantParticipant(c.Request().Context(), actor, c.Param("caseId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteParticipant handles DELETE /cases/:caseId/participants/:wallet
func (h *VaultHandler) DeleteParticipant(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	wallet := strings.ToLower(strings.TrimSpace(c.Param("wallet")))

	result, err := h.Service.RevokeParticipant(c.Request().Context(), actor, c.Param("caseId"), wallet)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PatchCaseClose handles PATCH /cases/:caseId/close
func (h *VaultHandler) PatchCaseClose(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.CloseCase(c.Request().Context(), actor, c.Param("caseId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PatchCaseMetadata handles PATCH /cases/:caseId/metadata
func (h *VaultHandler) PatchCaseMetadata(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateCaseMetadataReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.UpdateCaseMetadata(c.Request().Context(), actor, c.Param("caseId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PatchCaseAdmin handles PATCH /cases/:caseId/admin
func (h *VaultHandler) PatchCaseAdmin(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.TransferAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.TransferAdmin(c.Request().Context(), actor, c.Param("caseId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetCases handles GET /cases
func (h *VaultHandler) GetCases(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListCasesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.ListVisibleCases(c.Request().Context(), actor, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetCase handles GET /cases/:caseId
func (h *VaultHandler) GetCase(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.GetCase(c.Request().Context(), actor, c.Param("caseId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}
