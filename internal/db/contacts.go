package db

import "context"

const contactColumns = `id, organization_id, account_id, first_name, last_name, email, phone, title,
	created_at, updated_at`

func scanContact(row interface{ Scan(dest ...any) error }) (Contact, error) {
	var c Contact
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.AccountID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Title,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

type CreateContactParams struct {
	OrganizationID int64
	AccountID      *int64
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Title          *string
}

func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (Contact, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO contacts (organization_id, account_id, first_name, last_name, email, phone, title)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+contactColumns,
		arg.OrganizationID, arg.AccountID, arg.FirstName, arg.LastName, arg.Email, arg.Phone, arg.Title,
	)
	return scanContact(row)
}

type GetContactParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetContact(ctx context.Context, arg GetContactParams) (Contact, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+contactColumns+` FROM contacts
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanContact(row)
}

func (q *Queries) ListContacts(ctx context.Context, organizationID int64) ([]Contact, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+contactColumns+` FROM contacts
		WHERE organization_id = $1
		ORDER BY last_name, first_name`,
		organizationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

type UpdateContactParams struct {
	OrganizationID int64
	ID             int64
	AccountID      *int64
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Title          *string
}

func (q *Queries) UpdateContact(ctx context.Context, arg UpdateContactParams) (Contact, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE contacts
		SET account_id = $3, first_name = $4, last_name = $5, email = $6, phone = $7, title = $8,
			updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+contactColumns,
		arg.OrganizationID, arg.ID, arg.AccountID, arg.FirstName, arg.LastName, arg.Email, arg.Phone, arg.Title,
	)
	return scanContact(row)
}

func (q *Queries) DeleteContact(ctx context.Context, arg GetContactParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM contacts WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
