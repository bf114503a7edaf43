package db

import "context"

const linkColumns = `id, organization_id, case_id, source_subject_id, target_subject_id,
	link_type, created_by, created_at`

func scanLink(row interface{ Scan(dest ...any) error }) (SubjectLink, error) {
	var l SubjectLink
	err := row.Scan(
		&l.ID, &l.OrganizationID, &l.CaseID, &l.SourceSubjectID, &l.TargetSubjectID,
		&l.LinkType, &l.CreatedBy, &l.CreatedAt,
	)
	return l, err
}

type CreateSubjectLinkParams struct {
	OrganizationID  int64
	CaseID          int64
	SourceSubjectID int64
	TargetSubjectID int64
	LinkType        string
	CreatedBy       int64
}

func (q *Queries) CreateSubjectLink(ctx context.Context, arg CreateSubjectLinkParams) (SubjectLink, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO subject_links
			(organization_id, case_id, source_subject_id, target_subject_id, link_type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+linkColumns,
		arg.OrganizationID, arg.CaseID, arg.SourceSubjectID, arg.TargetSubjectID,
		arg.LinkType, arg.CreatedBy,
	)
	return scanLink(row)
}

type GetSubjectLinkParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetSubjectLink(ctx context.Context, arg GetSubjectLinkParams) (SubjectLink, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+linkColumns+` FROM subject_links
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanLink(row)
}

type ListLinksForSubjectParams struct {
	OrganizationID int64
	SubjectID      int64
}

// ListLinksBySource returns edges where the subject is the source.
func (q *Queries) ListLinksBySource(ctx context.Context, arg ListLinksForSubjectParams) ([]SubjectLink, error) {
	return q.listLinks(ctx, `
		SELECT `+linkColumns+` FROM subject_links
		WHERE organization_id = $1 AND source_subject_id = $2
		ORDER BY created_at`, arg.OrganizationID, arg.SubjectID)
}

// ListLinksByTarget returns edges where the subject is the target.
func (q *Queries) ListLinksByTarget(ctx context.Context, arg ListLinksForSubjectParams) ([]SubjectLink, error) {
	return q.listLinks(ctx, `
		SELECT `+linkColumns+` FROM subject_links
		WHERE organization_id = $1 AND target_subject_id = $2
		ORDER BY created_at`, arg.OrganizationID, arg.SubjectID)
}

func (q *Queries) listLinks(ctx context.Context, sql string, args ...any) ([]SubjectLink, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]SubjectLink, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (q *Queries) DeleteSubjectLink(ctx context.Context, arg GetSubjectLinkParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM subject_links WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
