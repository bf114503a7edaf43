package routes

import (
	"encoding/json"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/internal/server/util"
	"github.com/emerginginv/traceaid/pkg/linkgraph"
)

// CreateSubjectHandler adds a subject to a case. Details are validated
// against the subject type's schema before storage.
func CreateSubjectHandler(c echo.Context) error {
	type createSubjectParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type createSubjectBody struct {
		SubjectType string          `json:"subject_type" validate:"required,oneof=person vehicle location item"`
		Name        string          `json:"name" validate:"required"`
		DisplayName *string         `json:"display_name,omitempty"`
		Details     json.RawMessage `json:"details,omitempty"`
		IsPrimary   bool            `json:"is_primary"`
	}

	type createSubjectResponse struct {
		Message string          `json:"message"`
		Subject *db.CaseSubject `json:"subject,omitempty"`
	}

	params := new(createSubjectParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, createSubjectResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, createSubjectResponse{
			Message: "Invalid request params",
		})
	}

	data := new(createSubjectBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSubjectResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSubjectResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createSubjectResponse{
			Message: "Unauthorized",
		})
	}

	details, err := util.NormalizeSubjectDetails(linkgraph.Category(data.SubjectType), data.Details)
	if err != nil {
		return c.JSON(http.StatusBadRequest, createSubjectResponse{
			Message: "Invalid details for subject type",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	publicID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSubjectResponse{
			Message: "Internal server error",
		})
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSubjectResponse{
			Message: "Internal server error",
		})
	}
	defer tx.Rollback(ctx)
	queries := db.New(conn)
	qtx := queries.WithTx(tx)

	caseRow, err := qtx.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, createSubjectResponse{
			Message: "Case not found",
		})
	}
	if caseRow.Status != "open" {
		return c.JSON(http.StatusForbidden, createSubjectResponse{
			Message: "Cannot add subjects to a closed case",
		})
	}

	subject, err := qtx.CreateSubject(ctx, db.CreateSubjectParams{
		PublicID:       publicID,
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
		SubjectType:    data.SubjectType,
		Name:           data.Name,
		DisplayName:    data.DisplayName,
		Details:        details,
		IsPrimary:      data.IsPrimary,
		CreatedBy:      user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSubjectResponse{
			Message: "Internal server error",
		})
	}

	if data.IsPrimary {
		subject, err = qtx.SetPrimarySubject(ctx, db.SetPrimarySubjectParams{
			OrganizationID: user.OrganizationID,
			CaseID:         params.CaseID,
			ID:             subject.ID,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, createSubjectResponse{
				Message: "Internal server error",
			})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, createSubjectResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createSubjectResponse{
		Message: "Subject created successfully",
		Subject: &subject,
	})
}
