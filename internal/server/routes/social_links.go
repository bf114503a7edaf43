package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/pkg/platform"
)

var errUnknownPlatform = errors.New("unknown platform")

// updatedPlatform decides the stored platform for a social link edit. An
// explicit override wins; otherwise the platform is re-derived only when the
// URL actually changed, so an override chosen at creation survives label-only
// edits.
func updatedPlatform(current, currentURL, newURL string, override *string) (string, error) {
	if override != nil {
		if !platform.Known(platform.Platform(*override)) {
			return "", errUnknownPlatform
		}
		return *override, nil
	}
	if newURL == currentURL {
		return current, nil
	}
	return string(platform.FromURL(newURL)), nil
}

func GetSocialLinksHandler(c echo.Context) error {
	type getSocialLinksParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getSocialLinksParams)
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

	if _, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	}); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Subject not found"})
	}

	links, err := q.ListSocialLinks(ctx, db.ListSocialLinksParams{
		OrganizationID: user.OrganizationID,
		SubjectID:      params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, links)
}

// CreateSocialLinkHandler attaches a social profile URL to a subject. When no
// platform is given it is detected from the URL's domain.
func CreateSocialLinkHandler(c echo.Context) error {
	type createSocialLinkParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type createSocialLinkBody struct {
		URL      string  `json:"url" validate:"required,url"`
		Label    *string `json:"label,omitempty"`
		Platform *string `json:"platform,omitempty"`
	}

	type createSocialLinkResponse struct {
		Message string                `json:"message"`
		Link    *db.SubjectSocialLink `json:"link,omitempty"`
	}

	params := new(createSocialLinkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, createSocialLinkResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, createSocialLinkResponse{
			Message: "Invalid request params",
		})
	}

	data := new(createSocialLinkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSocialLinkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSocialLinkResponse{
			Message: "Invalid request body",
		})
	}

	detected := platform.FromURL(data.URL)
	platformName := string(detected)
	if data.Platform != nil {
		if !platform.Known(platform.Platform(*data.Platform)) {
			return c.JSON(http.StatusBadRequest, createSocialLinkResponse{
				Message: "Unknown platform",
			})
		}
		platformName = *data.Platform
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createSocialLinkResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	subject, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, createSocialLinkResponse{
			Message: "Subject not found",
		})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, subject.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, createSocialLinkResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, createSocialLinkResponse{
			Message: "Internal server error",
		})
	}

	link, err := q.CreateSocialLink(ctx, db.CreateSocialLinkParams{
		OrganizationID: user.OrganizationID,
		SubjectID:      params.SubjectID,
		Platform:       platformName,
		Label:          data.Label,
		URL:            data.URL,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSocialLinkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createSocialLinkResponse{
		Message: "Social link added successfully",
		Link:    &link,
	})
}

func UpdateSocialLinkHandler(c echo.Context) error {
	type updateSocialLinkParams struct {
		LinkID int64 `param:"id" validate:"required,numeric"`
	}

	type updateSocialLinkBody struct {
		URL      string  `json:"url" validate:"required,url"`
		Label    *string `json:"label,omitempty"`
		Platform *string `json:"platform,omitempty"`
	}

	type updateSocialLinkResponse struct {
		Message string                `json:"message"`
		Link    *db.SubjectSocialLink `json:"link,omitempty"`
	}

	params := new(updateSocialLinkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateSocialLinkResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateSocialLinkResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateSocialLinkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateSocialLinkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateSocialLinkResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateSocialLinkResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	existing, err := q.GetSocialLink(ctx, db.GetSocialLinkParams{
		OrganizationID: user.OrganizationID,
		ID:             params.LinkID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateSocialLinkResponse{
			Message: "Social link not found",
		})
	}

	subject, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             existing.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, updateSocialLinkResponse{
			Message: "Internal server error",
		})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, subject.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, updateSocialLinkResponse{
				Message: "Case is closed",
			})
		}
		return c.JSON(http.StatusInternalServerError, updateSocialLinkResponse{
			Message: "Internal server error",
		})
	}

	platformName, err := updatedPlatform(existing.Platform, existing.URL, data.URL, data.Platform)
	if err != nil {
		return c.JSON(http.StatusBadRequest, updateSocialLinkResponse{
			Message: "Unknown platform",
		})
	}

	link, err := q.UpdateSocialLink(ctx, db.UpdateSocialLinkParams{
		OrganizationID: user.OrganizationID,
		ID:             params.LinkID,
		Platform:       platformName,
		Label:          data.Label,
		URL:            data.URL,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateSocialLinkResponse{
			Message: "Social link not found",
		})
	}

	return c.JSON(http.StatusOK, updateSocialLinkResponse{
		Message: "Social link updated successfully",
		Link:    &link,
	})
}

func DeleteSocialLinkHandler(c echo.Context) error {
	type deleteSocialLinkParams struct {
		LinkID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteSocialLinkParams)
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

	existing, err := q.GetSocialLink(ctx, db.GetSocialLinkParams{
		OrganizationID: user.OrganizationID,
		ID:             params.LinkID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Social link not found"})
	}

	subject, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             existing.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := requireOpenCase(ctx, q, user.OrganizationID, subject.CaseID); err != nil {
		if errors.Is(err, errCaseClosed) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Case is closed"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := q.DeleteSocialLink(ctx, db.GetSocialLinkParams{
		OrganizationID: user.OrganizationID,
		ID:             params.LinkID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Social link removed successfully"})
}
