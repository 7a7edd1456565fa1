package router

import (
	"casevault/internal/casevault/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.VaultHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.PATCH, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "x-wallet-address", "x-user-role"},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Case registry
	v1.POST("/cases", h.PostCase)
	v1.GET("/cases", h.GetCases)
	v1.GET("/cases/:caseId", h.GetCase)
	v1.POST("/cases/:caseId/participants", h.PostParticipant)
	v1.DELETE("/cases/:caseId/participants/:wallet", h.DeleteParticipant)
	v1.PATCH("/cases/:caseId/close", h.PatchCaseClose)
	v1.PATCH("/cases/:caseId/metadata", h.PatchCaseMetadata)
	v1.PATCH("/cases/:caseId/admin", h.PatchCaseAdmin)

	// Case document store
	v1.POST("/case-doc/upload", h.PostCaseDocUpload)
	v1.GET("/case-doc/:caseId", h.GetCaseDocs)
	v1.GET("/case-doc/:caseId/view/:docId", h.GetCaseDocView)
	v1.PATCH("/case-doc/:caseId/:docId/grant-access", h.PatchCaseDocGrantAccess)
	v1.PATCH("/case-doc/:caseId/:docId/revoke-access", h.PatchCaseDocRevokeAccess)
	v1.DELETE("/case-doc/:caseId/:docId", h.DeleteCaseDoc)
	v1.GET("/case-doc/:caseId/:docId/participants", h.GetCaseDocParticipants)
	v1.GET("/case-doc/:caseId/:docId/logs", h.GetCaseDocLogs)

	// Personal document store
	v1.POST("/personal-doc/upload", h.PostPersonalDocUpload)
	v1.GET("/personal-doc/owned", h.GetPersonalDocsOwned)
	v1.GET("/personal-doc/shared", h.GetPersonalDocsShared)
	v1.POST("/personal-doc/share", h.PostPersonalDocShare)
	v1.POST("/personal-doc/unshare", h.PostPersonalDocUnshare)
	v1.POST("/personal-doc/delete", h.PostPersonalDocDelete)
	v1.PATCH("/personal-doc/:docId/link-case", h.PatchPersonalDocLinkCase)
	v1.GET("/personal-doc/:docId/logs", h.GetPersonalDocLogs)
}
