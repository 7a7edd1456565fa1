package handler

import (
	"net/http"

	"casevault/internal/casevault/model"

	"github.com/labstack/echo/v4"
)

// PostPersonalDocUpload handles POST /personal-doc/upload
func (h *VaultHandler) PostPersonalDocUpload(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UploadPersonalDocReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.UploadPersonalDocument(c.Request().Context(), actor, req, c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, result)
}

// GetPersonalDocsOwned handles GET /personal-doc/owned
func (h *VaultHandler) GetPersonalDocsOwned(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListOwnedDocuments(c.Request().Context(), actor)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetPersonalDocsShared handles GET /personal-doc/shared
func (h *VaultHandler) GetPersonalDocsShared(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListSharedWithMe(c.Request().Context(), actor)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PostPersonalDocShare handles POST /personal-doc/share
func (h *VaultHandler) PostPersonalDocShare(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.SharePersonalDocReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.SharePersonalDocument(c.Request().Context(), actor, req, c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PostPersonalDocUnshare handles POST /personal-doc/unshare
func (h *VaultHandler) PostPersonalDocUnshare(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UnsharePersonalDocReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.UnsharePersonalDocument(c.Request().Context(), actor, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PostPersonalDocDelete handles POST /personal-doc/delete
func (h *VaultHandler) PostPersonalDocDelete(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.DeletePersonalDocReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.DeletePersonalDocument(c.Request().Context(), actor, req, c.RealIP())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PatchPersonalDocLinkCase handles PATCH /personal-doc/:docId/link-case
func (h *VaultHandler) PatchPersonalDocLinkCase(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.LinkPersonalDocReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.LinkPersonalDocument(c.Request().Context(), actor, c.Param("docId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetPersonalDocLogs handles GET /personal-doc/:docId/logs
func (h *VaultHandler) GetPersonalDocLogs(c echo.Context) error {
	actor, err := h.extractActor(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListPersonalDocumentLogs(c.Request().Context(), actor, c.Param("docId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}
