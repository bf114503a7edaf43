package db

import (
	"context"
	"encoding/json"
)

const subjectColumns = `id, public_id, organization_id, case_id, subject_type, name, display_name,
	details, status, archived_at, archived_by, is_primary, created_by, created_at, updated_at`

func scanSubject(row interface{ Scan(dest ...any) error }) (CaseSubject, error) {
	var s CaseSubject
	err := row.Scan(
		&s.ID, &s.PublicID, &s.OrganizationID, &s.CaseID, &s.SubjectType, &s.Name, &s.DisplayName,
		&s.Details, &s.Status, &s.ArchivedAt, &s.ArchivedBy, &s.IsPrimary, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

type CreateSubjectParams struct {
	PublicID       string
	OrganizationID int64
	CaseID         int64
	SubjectType    string
	Name           string
	DisplayName    *string
	Details        json.RawMessage
	IsPrimary      bool
	CreatedBy      int64
}

func (q *Queries) CreateSubject(ctx context.Context, arg CreateSubjectParams) (CaseSubject, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO case_subjects
			(public_id, organization_id, case_id, subject_type, name, display_name, details, status, is_primary, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', $8, $9)
		RETURNING `+subjectColumns,
		arg.PublicID, arg.OrganizationID, arg.CaseID, arg.SubjectType, arg.Name,
		arg.DisplayName, arg.Details, arg.IsPrimary, arg.CreatedBy,
	)
	return scanSubject(row)
}

type GetSubjectParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetSubject(ctx context.Context, arg GetSubjectParams) (CaseSubject, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+subjectColumns+` FROM case_subjects
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanSubject(row)
}

type ListSubjectsByCaseParams struct {
	OrganizationID  int64
	CaseID          int64
	IncludeArchived bool
}

func (q *Queries) ListSubjectsByCase(ctx context.Context, arg ListSubjectsByCaseParams) ([]CaseSubject, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+subjectColumns+` FROM case_subjects
		WHERE organization_id = $1 AND case_id = $2
		  AND ($3 OR status = 'active')
		ORDER BY is_primary DESC, created_at`,
		arg.OrganizationID, arg.CaseID, arg.IncludeArchived,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]CaseSubject, 0)
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

type ListSubjectsByIDsParams struct {
	OrganizationID int64
	IDs            []int64
}

// ListSubjectsByIDs batches the endpoint lookup for link resolution.
func (q *Queries) ListSubjectsByIDs(ctx context.Context, arg ListSubjectsByIDsParams) ([]CaseSubject, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+subjectColumns+` FROM case_subjects
		WHERE organization_id = $1 AND id = ANY($2)`,
		arg.OrganizationID, arg.IDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]CaseSubject, 0, len(arg.IDs))
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

type UpdateSubjectParams struct {
	OrganizationID int64
	ID             int64
	Name           string
	DisplayName    *string
	Details        json.RawMessage
}

func (q *Queries) UpdateSubject(ctx context.Context, arg UpdateSubjectParams) (CaseSubject, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE case_subjects
		SET name = $3, display_name = $4, details = $5, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+subjectColumns,
		arg.OrganizationID, arg.ID, arg.Name, arg.DisplayName, arg.Details,
	)
	return scanSubject(row)
}

type ArchiveSubjectParams struct {
	OrganizationID int64
	ID             int64
	ArchivedBy     int64
}

func (q *Queries) ArchiveSubject(ctx context.Context, arg ArchiveSubjectParams) (CaseSubject, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE case_subjects
		SET status = 'archived', archived_at = now(), archived_by = $3, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+subjectColumns,
		arg.OrganizationID, arg.ID, arg.ArchivedBy,
	)
	return scanSubject(row)
}

func (q *Queries) UnarchiveSubject(ctx context.Context, arg GetSubjectParams) (CaseSubject, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE case_subjects
		SET status = 'active', archived_at = NULL, archived_by = NULL, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+subjectColumns,
		arg.OrganizationID, arg.ID,
	)
	return scanSubject(row)
}

type SetPrimarySubjectParams struct {
	OrganizationID int64
	CaseID         int64
	ID             int64
}

// SetPrimarySubject makes one subject primary and clears the flag on the
// rest of the case. Run inside a transaction.
func (q *Queries) SetPrimarySubject(ctx context.Context, arg SetPrimarySubjectParams) (CaseSubject, error) {
	_, err := q.db.Exec(ctx, `
		UPDATE case_subjects
		SET is_primary = FALSE, updated_at = now()
		WHERE organization_id = $1 AND case_id = $2 AND is_primary AND id <> $3`,
		arg.OrganizationID, arg.CaseID, arg.ID,
	)
	if err != nil {
		return CaseSubject{}, err
	}
	row := q.db.QueryRow(ctx, `
		UPDATE case_subjects
		SET is_primary = TRUE, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+subjectColumns,
		arg.OrganizationID, arg.ID,
	)
	return scanSubject(row)
}
