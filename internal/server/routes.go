package server

import (
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// Password reset is reached from an email link, no session required
	e.GET("/reset-password", routes.GetResetPasswordFormHandler)
	e.POST("/reset-password", routes.ResetPasswordHandler)

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Case routes
	apiRoutes.GET("/cases", routes.GetCasesHandler)
	apiRoutes.GET("/cases/:id", routes.GetCaseHandler)
	apiRoutes.GET("/case-types", routes.GetCaseTypesHandler)
	apiRoutes.POST("/cases", routes.CreateCaseHandler, middleware.RequirePermission("case.create"))
	apiRoutes.PATCH("/cases/:id", routes.UpdateCaseHandler, middleware.RequirePermission("case.update"))
	apiRoutes.POST("/cases/:id/close", routes.CloseCaseHandler, middleware.RequirePermission("case.close"))
	apiRoutes.POST("/cases/:id/reopen", routes.ReopenCaseHandler, middleware.RequirePermission("case.close"))
	apiRoutes.DELETE("/cases/:id", routes.DeleteCaseHandler, middleware.RequirePermission("case.delete"))
	apiRoutes.POST("/cases/:id/services", routes.AddCaseServiceHandler, middleware.RequireAnyPermission("case.create", "case.update"))
	apiRoutes.DELETE("/case-services/:id", routes.DeleteCaseServiceHandler, middleware.RequirePermission("case.update"))

	// Subject routes
	apiRoutes.GET("/cases/:id/subjects", routes.GetCaseSubjectsHandler)
	apiRoutes.GET("/subjects/:id", routes.GetSubjectHandler)
	apiRoutes.POST("/cases/:id/subjects", routes.CreateSubjectHandler, middleware.RequirePermission("subject.create"))
	apiRoutes.PATCH("/subjects/:id", routes.UpdateSubjectHandler, middleware.RequirePermission("subject.update"))
	apiRoutes.POST("/subjects/:id/archive", routes.ArchiveSubjectHandler, middleware.RequirePermission("subject.archive"))
	apiRoutes.POST("/subjects/:id/unarchive", routes.UnarchiveSubjectHandler, middleware.RequirePermission("subject.archive"))
	apiRoutes.POST("/subjects/:id/primary", routes.SetPrimarySubjectHandler, middleware.RequirePermission("subject.update"))
	// Subjects are never hard-deleted; DELETE archives.
	apiRoutes.DELETE("/subjects/:id", routes.ArchiveSubjectHandler, middleware.RequirePermission("subject.archive"))

	// Subject link routes
	apiRoutes.GET("/subjects/:id/links", routes.GetSubjectLinksHandler)
	apiRoutes.GET("/subjects/:id/links/candidates", routes.GetLinkCandidatesHandler)
	apiRoutes.POST("/subjects/:id/links", routes.CreateSubjectLinkHandler, middleware.RequirePermission("subject.link"))
	apiRoutes.DELETE("/subject-links/:id", routes.DeleteSubjectLinkHandler, middleware.RequirePermission("subject.unlink"))

	// Social link routes
	apiRoutes.GET("/subjects/:id/social-links", routes.GetSocialLinksHandler)
	apiRoutes.POST("/subjects/:id/social-links", routes.CreateSocialLinkHandler, middleware.RequirePermission("subject.update"))
	apiRoutes.PATCH("/social-links/:id", routes.UpdateSocialLinkHandler, middleware.RequirePermission("subject.update"))
	apiRoutes.DELETE("/social-links/:id", routes.DeleteSocialLinkHandler, middleware.RequirePermission("subject.update"))

	// Account and contact routes
	apiRoutes.GET("/accounts", routes.GetAccountsHandler)
	apiRoutes.POST("/accounts", routes.CreateAccountHandler, middleware.RequirePermission("account.manage"))
	apiRoutes.PATCH("/accounts/:id", routes.UpdateAccountHandler, middleware.RequirePermission("account.manage"))
	apiRoutes.DELETE("/accounts/:id", routes.DeleteAccountHandler, middleware.RequirePermission("account.manage"))
	apiRoutes.GET("/contacts", routes.GetContactsHandler)
	apiRoutes.POST("/contacts", routes.CreateContactHandler, middleware.RequirePermission("contact.manage"))
	apiRoutes.PATCH("/contacts/:id", routes.UpdateContactHandler, middleware.RequirePermission("contact.manage"))
	apiRoutes.DELETE("/contacts/:id", routes.DeleteContactHandler, middleware.RequirePermission("contact.manage"))

	// Invoice and expense routes
	apiRoutes.GET("/cases/:id/invoices", routes.GetCaseInvoicesHandler)
	apiRoutes.POST("/cases/:id/invoices", routes.CreateInvoiceHandler, middleware.RequirePermission("invoice.manage"))
	apiRoutes.PATCH("/invoices/:id/status", routes.UpdateInvoiceStatusHandler, middleware.RequirePermission("invoice.manage"))
	apiRoutes.DELETE("/invoices/:id", routes.DeleteInvoiceHandler, middleware.RequirePermission("invoice.manage"))
	apiRoutes.GET("/cases/:id/expenses", routes.GetCaseExpensesHandler)
	apiRoutes.POST("/cases/:id/expenses", routes.CreateExpenseHandler, middleware.RequirePermission("expense.manage"))
	apiRoutes.PATCH("/expenses/:id", routes.UpdateExpenseHandler, middleware.RequirePermission("expense.manage"))
	apiRoutes.POST("/expenses/:id/receipt", routes.UploadExpenseReceiptHandler, middleware.RequirePermission("expense.manage"))
	apiRoutes.GET("/expenses/:id/receipt", routes.GetExpenseReceiptHandler)
	apiRoutes.DELETE("/expenses/:id", routes.DeleteExpenseHandler, middleware.RequirePermission("expense.manage"))

	// Activity routes
	apiRoutes.GET("/cases/:id/activities", routes.GetCaseActivitiesHandler)
	apiRoutes.POST("/cases/:id/activities", routes.CreateActivityHandler, middleware.RequirePermission("activity.manage"))
	apiRoutes.PATCH("/activities/:id", routes.UpdateActivityHandler, middleware.RequirePermission("activity.manage"))
	apiRoutes.PATCH("/activities/:id/status", routes.SetActivityStatusHandler, middleware.RequirePermission("activity.manage"))
	apiRoutes.DELETE("/activities/:id", routes.DeleteActivityHandler, middleware.RequirePermission("activity.manage"))

	// Attachment routes
	apiRoutes.GET("/cases/:id/attachments", routes.GetCaseAttachmentsHandler)
	apiRoutes.POST("/cases/:id/attachments", routes.UploadCaseAttachmentHandler, middleware.RequirePermission("case.add:attachment"))
	apiRoutes.GET("/attachments/:id/link", routes.GetCaseAttachmentLinkHandler)
	apiRoutes.DELETE("/attachments/:id", routes.DeleteCaseAttachmentHandler, middleware.RequirePermission("case.delete:attachment"))

	// Notification routes
	apiRoutes.GET("/notifications", routes.GetNotificationsHandler)
	apiRoutes.GET("/notifications/stream", routes.StreamNotificationsHandler)
	apiRoutes.PATCH("/notifications/:id/read", routes.MarkNotificationReadHandler)
	apiRoutes.POST("/notifications/read-all", routes.MarkAllNotificationsReadHandler)
	apiRoutes.DELETE("/notifications/:id", routes.DeleteNotificationHandler)
}
