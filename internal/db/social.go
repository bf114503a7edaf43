package db

import "context"

const socialColumns = `id, organization_id, subject_id, platform, label, url, created_at, updated_at`

func scanSocialLink(row interface{ Scan(dest ...any) error }) (SubjectSocialLink, error) {
	var l SubjectSocialLink
	err := row.Scan(&l.ID, &l.OrganizationID, &l.SubjectID, &l.Platform, &l.Label, &l.URL, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

type CreateSocialLinkParams struct {
	OrganizationID int64
	SubjectID      int64
	Platform       string
	Label          *string
	URL            string
}

func (q *Queries) CreateSocialLink(ctx context.Context, arg CreateSocialLinkParams) (SubjectSocialLink, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO subject_social_links (organization_id, subject_id, platform, label, url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+socialColumns,
		arg.OrganizationID, arg.SubjectID, arg.Platform, arg.Label, arg.URL,
	)
	return scanSocialLink(row)
}

type GetSocialLinkParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetSocialLink(ctx context.Context, arg GetSocialLinkParams) (SubjectSocialLink, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+socialColumns+` FROM subject_social_links
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanSocialLink(row)
}

type ListSocialLinksParams struct {
	OrganizationID int64
	SubjectID      int64
}

func (q *Queries) ListSocialLinks(ctx context.Context, arg ListSocialLinksParams) ([]SubjectSocialLink, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+socialColumns+` FROM subject_social_links
		WHERE organization_id = $1 AND subject_id = $2
		ORDER BY created_at`,
		arg.OrganizationID, arg.SubjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]SubjectSocialLink, 0)
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

type UpdateSocialLinkParams struct {
	OrganizationID int64
	ID             int64
	Platform       string
	Label          *string
	URL            string
}

func (q *Queries) UpdateSocialLink(ctx context.Context, arg UpdateSocialLinkParams) (SubjectSocialLink, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE subject_social_links
		SET platform = $3, label = $4, url = $5, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+socialColumns,
		arg.OrganizationID, arg.ID, arg.Platform, arg.Label, arg.URL,
	)
	return scanSocialLink(row)
}

func (q *Queries) DeleteSocialLink(ctx context.Context, arg GetSocialLinkParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM subject_social_links WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
