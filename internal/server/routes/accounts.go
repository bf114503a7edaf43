package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

func GetAccountsHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	res, err := q.ListAccounts(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, res)
}

func CreateAccountHandler(c echo.Context) error {
	type createAccountBody struct {
		Name    string  `json:"name" validate:"required"`
		Website *string `json:"website,omitempty"`
		Phone   *string `json:"phone,omitempty"`
	}

	type createAccountResponse struct {
		Message string      `json:"message"`
		Account *db.Account `json:"account,omitempty"`
	}

	data := new(createAccountBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createAccountResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createAccountResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createAccountResponse{
			Message: "Unauthorized",
		})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	account, err := q.CreateAccount(c.Request().Context(), db.CreateAccountParams{
		OrganizationID: user.OrganizationID,
		Name:           data.Name,
		Website:        data.Website,
		Phone:          data.Phone,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createAccountResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createAccountResponse{
		Message: "Account created successfully",
		Account: &account,
	})
}

func UpdateAccountHandler(c echo.Context) error {
	type updateAccountParams struct {
		AccountID int64 `param:"id" validate:"required,numeric"`
	}

	type updateAccountBody struct {
		Name    string  `json:"name" validate:"required"`
		Website *string `json:"website,omitempty"`
		Phone   *string `json:"phone,omitempty"`
	}

	type updateAccountResponse struct {
		Message string      `json:"message"`
		Account *db.Account `json:"account,omitempty"`
	}

	params := new(updateAccountParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateAccountResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateAccountResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateAccountBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateAccountResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateAccountResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateAccountResponse{
			Message: "Unauthorized",
		})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	account, err := q.UpdateAccount(c.Request().Context(), db.UpdateAccountParams{
		OrganizationID: user.OrganizationID,
		ID:             params.AccountID,
		Name:           data.Name,
		Website:        data.Website,
		Phone:          data.Phone,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateAccountResponse{
			Message: "Account not found",
		})
	}

	return c.JSON(http.StatusOK, updateAccountResponse{
		Message: "Account updated successfully",
		Account: &account,
	})
}

func DeleteAccountHandler(c echo.Context) error {
	type deleteAccountParams struct {
		AccountID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteAccountParams)
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

	if err := q.DeleteAccount(c.Request().Context(), db.GetAccountParams{
		OrganizationID: user.OrganizationID,
		ID:             params.AccountID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
