package invoice

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Invoice struct {
	Id            ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID     `gorm:"type:varchar(26);index:idx_invoices_user_id;not null" json:"userId"`
	Number        string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_user_number,priority:2" json:"number"`
	ClientName    string        `gorm:"type:varchar(255)" json:"clientName"`
	Description   string        `gorm:"type:varchar(255)" json:"description"`
	Amount        float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status        InvoiceStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_invoices_status" json:"status"`
	IssueDate     time.Time     `gorm:"not null" json:"issueDate"`
	DueDate       time.Time     `gorm:"not null;index:idx_invoices_due_date" json:"dueDate"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	TransactionId *ulid.ULID    `gorm:"type:varchar(26)" json:"transactionId,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "DRAFT"
	StatusSent    InvoiceStatus = "SENT"
	StatusPaid    InvoiceStatus = "PAID"
	StatusOverdue InvoiceStatus = "OVERDUE"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

func (i *Invoice) IsOverdue(asOf time.Time) bool {
	return i.Status == StatusSent && i.DueDate.Before(asOf)
}
