package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

// DeleteSubjectLinkHandler removes an edge. Both endpoints stop showing it;
// there is no per-direction removal.
func DeleteSubjectLinkHandler(c echo.Context) error {
	type deleteLinkParams struct {
		LinkID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteLinkParams)
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

	link, err := q.GetSubjectLink(ctx, db.GetSubjectLinkParams{
		OrganizationID: user.OrganizationID,
		ID:             params.LinkID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Link not found"})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, link.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Case is closed"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := q.DeleteSubjectLink(ctx, db.GetSubjectLinkParams{
		OrganizationID: user.OrganizationID,
		ID:             params.LinkID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Link removed successfully"})
}
