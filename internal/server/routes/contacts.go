package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

func GetContactsHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	res, err := q.ListContacts(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, res)
}

func CreateContactHandler(c echo.Context) error {
	type createContactBody struct {
		AccountID *int64  `json:"account_id,omitempty"`
		FirstName string  `json:"first_name" validate:"required"`
		LastName  string  `json:"last_name" validate:"required"`
		Email     *string `json:"email,omitempty" validate:"omitempty,email"`
		Phone     *string `json:"phone,omitempty"`
		Title     *string `json:"title,omitempty"`
	}

	type createContactResponse struct {
		Message string      `json:"message"`
		Contact *db.Contact `json:"contact,omitempty"`
	}

	data := new(createContactBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createContactResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createContactResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createContactResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if data.AccountID != nil {
		if _, err := q.GetAccount(ctx, db.GetAccountParams{
			OrganizationID: user.OrganizationID,
			ID:             *data.AccountID,
		}); err != nil {
			return c.JSON(http.StatusBadRequest, createContactResponse{
				Message: "Account not found",
			})
		}
	}

	contact, err := q.CreateContact(ctx, db.CreateContactParams{
		OrganizationID: user.OrganizationID,
		AccountID:      data.AccountID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		Phone:          data.Phone,
		Title:          data.Title,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createContactResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createContactResponse{
		Message: "Contact created successfully",
		Contact: &contact,
	})
}

func UpdateContactHandler(c echo.Context) error {
	type updateContactParams struct {
		ContactID int64 `param:"id" validate:"required,numeric"`
	}

	type updateContactBody struct {
		AccountID *int64  `json:"account_id,omitempty"`
		FirstName string  `json:"first_name" validate:"required"`
		LastName  string  `json:"last_name" validate:"required"`
		Email     *string `json:"email,omitempty" validate:"omitempty,email"`
		Phone     *string `json:"phone,omitempty"`
		Title     *string `json:"title,omitempty"`
	}

	type updateContactResponse struct {
		Message string      `json:"message"`
		Contact *db.Contact `json:"contact,omitempty"`
	}

	params := new(updateContactParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateContactResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateContactResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateContactBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateContactResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateContactResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateContactResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if data.AccountID != nil {
		if _, err := q.GetAccount(ctx, db.GetAccountParams{
			OrganizationID: user.OrganizationID,
			ID:             *data.AccountID,
		}); err != nil {
			return c.JSON(http.StatusBadRequest, updateContactResponse{
				Message: "Account not found",
			})
		}
	}

	contact, err := q.UpdateContact(ctx, db.UpdateContactParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ContactID,
		AccountID:      data.AccountID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		Phone:          data.Phone,
		Title:          data.Title,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateContactResponse{
			Message: "Contact not found",
		})
	}

	return c.JSON(http.StatusOK, updateContactResponse{
		Message: "Contact updated successfully",
		Contact: &contact,
	})
}

func DeleteContactHandler(c echo.Context) error {
	type deleteContactParams struct {
		ContactID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteContactParams)
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

	if err := q.DeleteContact(c.Request().Context(), db.GetContactParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ContactID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}
