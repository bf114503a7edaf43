package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/internal/storage"
	"github.com/emerginginv/traceaid/pkg/logger"
)

func GetCaseAttachmentsHandler(c echo.Context) error {
	type getAttachmentsParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getAttachmentsParams)
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

	attachments, err := q.ListCaseAttachments(c.Request().Context(), db.ListCaseAttachmentsParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, attachments)
}

func UploadCaseAttachmentHandler(c echo.Context) error {
	type uploadAttachmentParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type uploadAttachmentResponse struct {
		Message    string             `json:"message"`
		Attachment *db.CaseAttachment `json:"attachment,omitempty"`
	}

	params := new(uploadAttachmentParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, uploadAttachmentResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, uploadAttachmentResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, uploadAttachmentResponse{
			Message: "Unauthorized",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadAttachmentResponse{
			Message: "Missing file",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	if _, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	}); err != nil {
		return c.JSON(http.StatusNotFound, uploadAttachmentResponse{
			Message: "Case not found",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadAttachmentResponse{
			Message: "Could not read file",
		})
	}
	defer src.Close()

	fileID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadAttachmentResponse{
			Message: "Internal server error",
		})
	}

	key, err := storage.PutFile(ctx, app.S3, "attachments", fileHeader.Filename, fileID, src)
	if err != nil {
		logger.Error("Attachment upload failed", "case", params.CaseID, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadAttachmentResponse{
			Message: "Upload failed",
		})
	}

	attachment, err := q.AddCaseAttachment(ctx, db.AddCaseAttachmentParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
		Name:           fileHeader.Filename,
		FileKey:        key,
		UploadedBy:     user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadAttachmentResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, uploadAttachmentResponse{
		Message:    "Attachment uploaded successfully",
		Attachment: &attachment,
	})
}

func GetCaseAttachmentLinkHandler(c echo.Context) error {
	type getAttachmentLinkParams struct {
		AttachmentID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getAttachmentLinkParams)
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

	attachment, err := q.GetCaseAttachment(ctx, db.GetCaseAttachmentParams{
		OrganizationID: user.OrganizationID,
		ID:             params.AttachmentID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Attachment not found"})
	}

	link, err := storage.GenerateDownloadLink(ctx, app.S3, attachment.FileKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"url": link})
}

func DeleteCaseAttachmentHandler(c echo.Context) error {
	type deleteAttachmentParams struct {
		AttachmentID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteAttachmentParams)
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

	attachment, err := q.GetCaseAttachment(ctx, db.GetCaseAttachmentParams{
		OrganizationID: user.OrganizationID,
		ID:             params.AttachmentID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Attachment not found"})
	}

	if err := storage.DeleteFile(ctx, app.S3, attachment.FileKey); err != nil {
		logger.Warn("Failed to delete attachment file", "key", attachment.FileKey, "err", err)
	}

	if err := q.DeleteCaseAttachment(ctx, db.GetCaseAttachmentParams{
		OrganizationID: user.OrganizationID,
		ID:             params.AttachmentID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Attachment deleted successfully"})
}
