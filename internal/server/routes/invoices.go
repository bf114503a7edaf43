package routes

import (
	"net/http"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

// Allowed invoice status transitions. Issuing stamps issued_at once.
var invoiceTransitions = map[string][]string{
	"draft": {"sent", "void"},
	"sent":  {"paid", "void"},
	"paid":  {},
	"void":  {},
}

func GetCaseInvoicesHandler(c echo.Context) error {
	type getInvoicesParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getInvoicesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	invoices, err := q.ListInvoices(c.Request().Context(), db.ListInvoicesParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, invoices)
}

func CreateInvoiceHandler(c echo.Context) error {
	type createInvoiceParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type createInvoiceBody struct {
		InvoiceNumber string     `json:"invoice_number" validate:"required"`
		AmountCents   int64      `json:"amount_cents" validate:"required,gt=0"`
		DueDate       *time.Time `json:"due_date,omitempty"`
	}

	type createInvoiceResponse struct {
		Message string      `json:"message"`
		Invoice *db.Invoice `json:"invoice,omitempty"`
	}

	params := new(createInvoiceParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, createInvoiceResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, createInvoiceResponse{
			Message: "Invalid request params",
		})
	}

	data := new(createInvoiceBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createInvoiceResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createInvoiceResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createInvoiceResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if _, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	}); err != nil {
		return c.JSON(http.StatusNotFound, createInvoiceResponse{
			Message: "Case not found",
		})
	}

	invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
		InvoiceNumber:  data.InvoiceNumber,
		AmountCents:    data.AmountCents,
		DueDate:        data.DueDate,
		CreatedBy:      user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, createInvoiceResponse{
			Message: "Invoice number already in use",
		})
	}

	return c.JSON(http.StatusOK, createInvoiceResponse{
		Message: "Invoice created successfully",
		Invoice: &invoice,
	})
}

func UpdateInvoiceStatusHandler(c echo.Context) error {
	type updateInvoiceStatusParams struct {
		InvoiceID int64 `param:"id" validate:"required,numeric"`
	}

	type updateInvoiceStatusBody struct {
		Status string `json:"status" validate:"required,oneof=sent paid void"`
	}

	type updateInvoiceStatusResponse struct {
		Message string      `json:"message"`
		Invoice *db.Invoice `json:"invoice,omitempty"`
	}

	params := new(updateInvoiceStatusParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateInvoiceStatusResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateInvoiceStatusResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateInvoiceStatusBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateInvoiceStatusResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateInvoiceStatusResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateInvoiceStatusResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	existing, err := q.GetInvoice(ctx, db.GetInvoiceParams{
		OrganizationID: user.OrganizationID,
		ID:             params.InvoiceID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateInvoiceStatusResponse{
			Message: "Invoice not found",
		})
	}

	allowed := false
	for _, next := range invoiceTransitions[existing.Status] {
		if next == data.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		return c.JSON(http.StatusBadRequest, updateInvoiceStatusResponse{
			Message: "Cannot move invoice from " + existing.Status + " to " + data.Status,
		})
	}

	invoice, err := q.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
		OrganizationID: user.OrganizationID,
		ID:             params.InvoiceID,
		Status:         data.Status,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, updateInvoiceStatusResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, updateInvoiceStatusResponse{
		Message: "Invoice updated successfully",
		Invoice: &invoice,
	})
}

// DeleteInvoiceHandler removes an invoice. Only drafts can be deleted;
// anything issued must be voided instead.
func DeleteInvoiceHandler(c echo.Context) error {
	type deleteInvoiceParams struct {
		InvoiceID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteInvoiceParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	existing, err := q.GetInvoice(ctx, db.GetInvoiceParams{
		OrganizationID: user.OrganizationID,
		ID:             params.InvoiceID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Invoice not found"})
	}
	if existing.Status != "draft" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only draft invoices can be deleted"})
	}

	if err := q.DeleteInvoice(ctx, db.GetInvoiceParams{
		OrganizationID: user.OrganizationID,
		ID:             params.InvoiceID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Invoice deleted successfully"})
}
