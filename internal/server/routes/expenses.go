package routes

import (
	"net/http"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/internal/storage"
	"github.com/emerginginv/traceaid/pkg/logger"
)

func GetCaseExpensesHandler(c echo.Context) error {
	type getExpensesParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getExpensesParams)
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

	expenses, err := q.ListExpenses(c.Request().Context(), db.ListExpensesParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, expenses)
}

func CreateExpenseHandler(c echo.Context) error {
	type createExpenseParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type createExpenseBody struct {
		Description string    `json:"description" validate:"required"`
		AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
		IncurredOn  time.Time `json:"incurred_on" validate:"required"`
	}

	type createExpenseResponse struct {
		Message string           `json:"message"`
		Expense *db.ExpenseEntry `json:"expense,omitempty"`
	}

	params := new(createExpenseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, createExpenseResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, createExpenseResponse{
			Message: "Invalid request params",
		})
	}

	data := new(createExpenseBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createExpenseResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createExpenseResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createExpenseResponse{
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
		return c.JSON(http.StatusNotFound, createExpenseResponse{
			Message: "Case not found",
		})
	}

	expense, err := q.CreateExpense(ctx, db.CreateExpenseParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
		Description:    data.Description,
		AmountCents:    data.AmountCents,
		IncurredOn:     data.IncurredOn,
		CreatedBy:      user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createExpenseResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createExpenseResponse{
		Message: "Expense recorded successfully",
		Expense: &expense,
	})
}

func UpdateExpenseHandler(c echo.Context) error {
	type updateExpenseParams struct {
		ExpenseID int64 `param:"id" validate:"required,numeric"`
	}

	type updateExpenseBody struct {
		Description string    `json:"description" validate:"required"`
		AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
		IncurredOn  time.Time `json:"incurred_on" validate:"required"`
	}

	type updateExpenseResponse struct {
		Message string           `json:"message"`
		Expense *db.ExpenseEntry `json:"expense,omitempty"`
	}

	params := new(updateExpenseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateExpenseResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateExpenseResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateExpenseBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateExpenseResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateExpenseResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateExpenseResponse{
			Message: "Unauthorized",
		})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	expense, err := q.UpdateExpense(c.Request().Context(), db.UpdateExpenseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ExpenseID,
		Description:    data.Description,
		AmountCents:    data.AmountCents,
		IncurredOn:     data.IncurredOn,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateExpenseResponse{
			Message: "Expense not found",
		})
	}

	return c.JSON(http.StatusOK, updateExpenseResponse{
		Message: "Expense updated successfully",
		Expense: &expense,
	})
}

// UploadExpenseReceiptHandler stores a receipt image against an expense.
// Multipart form, field name "file". Replaces any existing receipt.
func UploadExpenseReceiptHandler(c echo.Context) error {
	type uploadReceiptParams struct {
		ExpenseID int64 `param:"id" validate:"required,numeric"`
	}

	type uploadReceiptResponse struct {
		Message string           `json:"message"`
		Expense *db.ExpenseEntry `json:"expense,omitempty"`
	}

	params := new(uploadReceiptParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, uploadReceiptResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, uploadReceiptResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, uploadReceiptResponse{
			Message: "Unauthorized",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadReceiptResponse{
			Message: "Missing file",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	existing, err := q.GetExpense(ctx, db.GetExpenseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ExpenseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, uploadReceiptResponse{
			Message: "Expense not found",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadReceiptResponse{
			Message: "Could not read file",
		})
	}
	defer src.Close()

	fileID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadReceiptResponse{
			Message: "Internal server error",
		})
	}

	key, err := storage.PutFile(ctx, app.S3, "receipts", fileHeader.Filename, fileID, src)
	if err != nil {
		logger.Error("Receipt upload failed", "expense", params.ExpenseID, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadReceiptResponse{
			Message: "Upload failed",
		})
	}

	if existing.ReceiptKey != nil {
		if err := storage.DeleteFile(ctx, app.S3, *existing.ReceiptKey); err != nil {
			logger.Warn("Failed to delete old receipt", "key", *existing.ReceiptKey, "err", err)
		}
	}

	expense, err := q.SetExpenseReceipt(ctx, db.SetExpenseReceiptParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ExpenseID,
		ReceiptKey:     &key,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadReceiptResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, uploadReceiptResponse{
		Message: "Receipt uploaded successfully",
		Expense: &expense,
	})
}

// GetExpenseReceiptHandler returns a short-lived download link for the
// stored receipt.
func GetExpenseReceiptHandler(c echo.Context) error {
	type getReceiptParams struct {
		ExpenseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getReceiptParams)
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
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	expense, err := q.GetExpense(ctx, db.GetExpenseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ExpenseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Expense not found"})
	}
	if expense.ReceiptKey == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Expense has no receipt"})
	}

	link, err := storage.GenerateDownloadLink(ctx, app.S3, *expense.ReceiptKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"url": link})
}

func DeleteExpenseHandler(c echo.Context) error {
	type deleteExpenseParams struct {
		ExpenseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteExpenseParams)
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
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	existing, err := q.GetExpense(ctx, db.GetExpenseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ExpenseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Expense not found"})
	}

	if existing.ReceiptKey != nil {
		if err := storage.DeleteFile(ctx, app.S3, *existing.ReceiptKey); err != nil {
			logger.Warn("Failed to delete receipt", "key", *existing.ReceiptKey, "err", err)
		}
	}

	if err := q.DeleteExpense(ctx, db.GetExpenseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ExpenseID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
