package routes

import (
	"errors"
	"net/http"
	"slices"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/pkg/linkgraph"
)

// CreateSubjectLinkHandler creates a directed labeled edge from the viewed
// subject to another subject of the same case. The label must come from the
// vocabulary for the category pair.
func CreateSubjectLinkHandler(c echo.Context) error {
	type createLinkParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type createLinkBody struct {
		TargetSubjectID int64  `json:"target_subject_id" validate:"required,numeric"`
		LinkType        string `json:"link_type" validate:"required"`
	}

	type createLinkResponse struct {
		Message string          `json:"message"`
		Link    *db.SubjectLink `json:"link,omitempty"`
	}

	params := new(createLinkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "Invalid request params",
		})
	}

	data := new(createLinkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "Invalid request body",
		})
	}

	if data.TargetSubjectID == params.SubjectID {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "A subject cannot be linked to itself",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createLinkResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	source, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, createLinkResponse{
			Message: "Subject not found",
		})
	}

	target, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             data.TargetSubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, createLinkResponse{
			Message: "Target subject not found",
		})
	}

	if source.CaseID != target.CaseID {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "Subjects belong to different cases",
		})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, source.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, createLinkResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, createLinkResponse{
			Message: "Internal server error",
		})
	}

	allowed := linkgraph.LinkTypesFor(
		linkgraph.Category(source.SubjectType),
		linkgraph.Category(target.SubjectType),
	)
	if !slices.Contains(allowed, data.LinkType) {
		return c.JSON(http.StatusBadRequest, createLinkResponse{
			Message: "Link type not valid for this pairing",
		})
	}

	link, err := q.CreateSubjectLink(ctx, db.CreateSubjectLinkParams{
		OrganizationID:  user.OrganizationID,
		CaseID:          source.CaseID,
		SourceSubjectID: source.ID,
		TargetSubjectID: target.ID,
		LinkType:        data.LinkType,
		CreatedBy:       user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createLinkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createLinkResponse{
		Message: "Link created successfully",
		Link:    &link,
	})
}
