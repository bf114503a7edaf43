package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/internal/server/util"
	"github.com/emerginginv/traceaid/pkg/linkgraph"
)

func UpdateSubjectHandler(c echo.Context) error {
	type updateSubjectParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type updateSubjectBody struct {
		Name        string          `json:"name" validate:"required"`
		DisplayName *string         `json:"display_name,omitempty"`
		Details     json.RawMessage `json:"details,omitempty"`
	}

	type updateSubjectResponse struct {
		Message string          `json:"message"`
		Subject *db.CaseSubject `json:"subject,omitempty"`
	}

	params := new(updateSubjectParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateSubjectResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateSubjectResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateSubjectBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateSubjectResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateSubjectResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateSubjectResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	existing, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateSubjectResponse{
			Message: "Subject not found",
		})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, existing.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, updateSubjectResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, updateSubjectResponse{
			Message: "Internal server error",
		})
	}

	details := existing.Details
	if data.Details != nil {
		details, err = util.NormalizeSubjectDetails(linkgraph.Category(existing.SubjectType), data.Details)
		if err != nil {
			return c.JSON(http.StatusBadRequest, updateSubjectResponse{
				Message: "Invalid details for subject type",
			})
		}
	}

	subject, err := q.UpdateSubject(ctx, db.UpdateSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
		Name:           data.Name,
		DisplayName:    data.DisplayName,
		Details:        details,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, updateSubjectResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, updateSubjectResponse{
		Message: "Subject updated successfully",
		Subject: &subject,
	})
}

// ArchiveSubjectHandler hides a subject from the default case view without
// losing its links or history.
func ArchiveSubjectHandler(c echo.Context) error {
	type archiveSubjectParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type archiveSubjectResponse struct {
		Message string          `json:"message"`
		Subject *db.CaseSubject `json:"subject,omitempty"`
	}

	params := new(archiveSubjectParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, archiveSubjectResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, archiveSubjectResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, archiveSubjectResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	existing, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, archiveSubjectResponse{
			Message: "Subject not found",
		})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, existing.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, archiveSubjectResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, archiveSubjectResponse{
			Message: "Internal server error",
		})
	}

	if err := util.CanArchive(existing.Status); err != nil {
		return c.JSON(http.StatusBadRequest, archiveSubjectResponse{
			Message: err.Error(),
		})
	}

	subject, err := q.ArchiveSubject(ctx, db.ArchiveSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
		ArchivedBy:     user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, archiveSubjectResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, archiveSubjectResponse{
		Message: "Subject archived successfully",
		Subject: &subject,
	})
}

func UnarchiveSubjectHandler(c echo.Context) error {
	type unarchiveSubjectParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type unarchiveSubjectResponse struct {
		Message string          `json:"message"`
		Subject *db.CaseSubject `json:"subject,omitempty"`
	}

	params := new(unarchiveSubjectParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, unarchiveSubjectResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, unarchiveSubjectResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, unarchiveSubjectResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	existing, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, unarchiveSubjectResponse{
			Message: "Subject not found",
		})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, existing.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, unarchiveSubjectResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, unarchiveSubjectResponse{
			Message: "Internal server error",
		})
	}

	if err := util.CanUnarchive(existing.Status); err != nil {
		return c.JSON(http.StatusBadRequest, unarchiveSubjectResponse{
			Message: err.Error(),
		})
	}

	subject, err := q.UnarchiveSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, unarchiveSubjectResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, unarchiveSubjectResponse{
		Message: "Subject restored successfully",
		Subject: &subject,
	})
}

func SetPrimarySubjectHandler(c echo.Context) error {
	type setPrimaryParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type setPrimaryResponse struct {
		Message string          `json:"message"`
		Subject *db.CaseSubject `json:"subject,omitempty"`
	}

	params := new(setPrimaryParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, setPrimaryResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, setPrimaryResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, setPrimaryResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, setPrimaryResponse{
			Message: "Internal server error",
		})
	}
	defer tx.Rollback(ctx)
	queries := db.New(conn)
	qtx := queries.WithTx(tx)

	existing, err := qtx.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, setPrimaryResponse{
			Message: "Subject not found",
		})
	}
	if existing.Status != "active" {
		return c.JSON(http.StatusBadRequest, setPrimaryResponse{
			Message: "Archived subjects cannot be primary",
		})
	}

	if err := requireOpenCase(ctx, qtx, user.OrganizationID, existing.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, setPrimaryResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, setPrimaryResponse{
			Message: "Internal server error",
		})
	}

	subject, err := qtx.SetPrimarySubject(ctx, db.SetPrimarySubjectParams{
		OrganizationID: user.OrganizationID,
		CaseID:         existing.CaseID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, setPrimaryResponse{
			Message: "Internal server error",
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, setPrimaryResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, setPrimaryResponse{
		Message: "Primary subject updated",
		Subject: &subject,
	})
}
