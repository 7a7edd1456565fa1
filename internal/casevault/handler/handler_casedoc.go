package handler

import (
	"net/http"

	"casevault/internal/casevault/model"

	"github.com/labstack/echo/v4"
)

// PostCaseDocUpload handles POST /case-doc/upload
func (h *VaultHandler) PostCaseDocUpload(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UploadCaseDocReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.UploadCaseDocument(c.Request().Context(), actor, req, c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, result)
}

// GetCaseDocs handles GET /case-doc/:caseId
func (h *VaultHandler) GetCaseDocs(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListCaseDocsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.ListCaseDocuments(c.Request().Context(), actor, c.Param("caseId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetCaseDocView handles GET /case-doc/:caseId/view/:docId
func (h *VaultHandler) GetCaseDocView(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ViewCaseDocument(c.Request().Context(), actor, c.Param("caseId"), c.Param("docId"), c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PatchCaseDocGrantAccess handles PATCH /case-doc/:caseId/:docId/grant-access
func (h *VaultHandler) PatchCaseDocGrantAccess(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GrantDocAccessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.GrantDocAccess(c.Request().Context(), actor, c.Param("caseId"), c.Param("docId"), req, c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PatchCaseDocRevokeAccess handles PATCH /case-doc/:caseId/:docId/revoke-access
func (h *VaultHandler) PatchCaseDocRevokeAccess(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.RevokeDocAccessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.RevokeDocAccess(c.Request().Context(), actor, c.Param("caseId"), c.Param("docId"), req, c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteCaseDoc handles DELETE /case-doc/:caseId/:docId
func (h *VaultHandler) DeleteCaseDoc(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.DeleteCaseDocument(c.Request().Context(), actor, c.Param("caseId"), c.Param("docId"), c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetCaseDocParticipants handles GET /case-doc/:caseId/:docId/participants
func (h *VaultHandler) GetCaseDocParticipants(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListDocParticipants(c.Request().Context(), actor, c.Param("caseId"), c.Param("docId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetCaseDocLogs handles GET /case-doc/:caseId/:docId/logs
func (h *VaultHandler) GetCaseDocLogs(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListCaseDocumentLogs(c.Request().Context(), actor, c.Param("caseId"), c.Param("docId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}
