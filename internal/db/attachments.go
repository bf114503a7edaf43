package db

import "context"

const attachmentColumns = `id, organization_id, case_id, name, file_key, uploaded_by, created_at`

func scanAttachment(row interface{ Scan(dest ...any) error }) (CaseAttachment, error) {
	var a CaseAttachment
	err := row.Scan(&a.ID, &a.OrganizationID, &a.CaseID, &a.Name, &a.FileKey, &a.UploadedBy, &a.CreatedAt)
	return a, err
}

type AddCaseAttachmentParams struct {
	OrganizationID int64
	CaseID         int64
	Name           string
	FileKey        string
	UploadedBy     int64
}

func (q *Queries) AddCaseAttachment(ctx context.Context, arg AddCaseAttachmentParams) (CaseAttachment, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO case_attachments (organization_id, case_id, name, file_key, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+attachmentColumns,
		arg.OrganizationID, arg.CaseID, arg.Name, arg.FileKey, arg.UploadedBy,
	)
	return scanAttachment(row)
}

type GetCaseAttachmentParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetCaseAttachment(ctx context.Context, arg GetCaseAttachmentParams) (CaseAttachment, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+attachmentColumns+` FROM case_attachments
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanAttachment(row)
}

type ListCaseAttachmentsParams struct {
	OrganizationID int64
	CaseID         int64
}

func (q *Queries) ListCaseAttachments(ctx context.Context, arg ListCaseAttachmentsParams) ([]CaseAttachment, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+attachmentColumns+` FROM case_attachments
		WHERE organization_id = $1 AND case_id = $2
		ORDER BY created_at`,
		arg.OrganizationID, arg.CaseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments := make([]CaseAttachment, 0)
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func (q *Queries) DeleteCaseAttachment(ctx context.Context, arg GetCaseAttachmentParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM case_attachments WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
