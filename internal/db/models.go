package db

import (
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type OrganizationMember struct {
	OrganizationID int64     `json:"organization_id"`
	UserID         int64     `json:"user_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

type CaseType struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
}

type Case struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	CaseNumber     string     `json:"case_number"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	CaseTypeID     *int64     `json:"case_type_id,omitempty"`
	Status         string     `json:"status"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	ClosedBy       *int64     `json:"closed_by,omitempty"`
	CreatedBy      int64      `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type CaseService struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id"`
	CaseID         int64  `json:"case_id"`
	Name           string `json:"name"`
	RateCents      *int64 `json:"rate_cents,omitempty"`
}

type CaseSubject struct {
	ID             int64           `json:"id"`
	PublicID       string          `json:"public_id"`
	OrganizationID int64           `json:"organization_id"`
	CaseID         int64           `json:"case_id"`
	SubjectType    string          `json:"subject_type"`
	Name           string          `json:"name"`
	DisplayName    *string         `json:"display_name,omitempty"`
	Details        json.RawMessage `json:"details"`
	Status         string          `json:"status"`
	ArchivedAt     *time.Time      `json:"archived_at,omitempty"`
	ArchivedBy     *int64          `json:"archived_by,omitempty"`
	IsPrimary      bool            `json:"is_primary"`
	CreatedBy      int64           `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

type SubjectLink struct {
	ID              int64     `json:"id"`
	OrganizationID  int64     `json:"organization_id"`
	CaseID          int64     `json:"case_id"`
	SourceSubjectID int64     `json:"source_subject_id"`
	TargetSubjectID int64     `json:"target_subject_id"`
	LinkType        string    `json:"link_type"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type SubjectSocialLink struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	SubjectID      int64      `json:"subject_id"`
	Platform       string     `json:"platform"`
	Label          *string    `json:"label,omitempty"`
	URL            string     `json:"url"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type Account struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	Name           string     `json:"name"`
	Website        *string    `json:"website,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type Contact struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	AccountID      *int64     `json:"account_id,omitempty"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          *string    `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Title          *string    `json:"title,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type Invoice struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	CaseID         int64      `json:"case_id"`
	InvoiceNumber  string     `json:"invoice_number"`
	Status         string     `json:"status"`
	AmountCents    int64      `json:"amount_cents"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	CreatedBy      int64      `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type ExpenseEntry struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	CaseID         int64     `json:"case_id"`
	Description    string    `json:"description"`
	AmountCents    int64     `json:"amount_cents"`
	IncurredOn     time.Time `json:"incurred_on"`
	ReceiptKey     *string   `json:"receipt_key,omitempty"`
	CreatedBy      int64     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type CaseActivity struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	CaseID         int64      `json:"case_id"`
	ActivityType   string     `json:"activity_type"`
	Title          string     `json:"title"`
	Notes          *string    `json:"notes,omitempty"`
	Status         string     `json:"status"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	AssignedTo     *int64     `json:"assigned_to,omitempty"`
	RemindedAt     *time.Time `json:"reminded_at,omitempty"`
	CreatedBy      int64      `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type Notification struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	UserID         int64     `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Body           *string   `json:"body,omitempty"`
	CaseID         *int64    `json:"case_id,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

type PasswordResetRequest struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Token      string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CaseAttachment struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	CaseID         int64     `json:"case_id"`
	Name           string    `json:"name"`
	FileKey        string    `json:"file_key"`
	UploadedBy     int64     `json:"uploaded_by"`
	CreatedAt      time.Time `json:"created_at"`
}
