package infrastructure

import (
	"context"
	"time"

	"Fluxo/internal/domain/invoice"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

var _ invoice.Repository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	return r.DB.WithContext(ctx).Create(inv).Error
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	return r.DB.WithContext(ctx).Save(inv).Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, invoiceID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", invoiceID.String(), userID.String()).
		Delete(&invoice.Invoice{}).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, invoiceID, userID ulid.ULID) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", invoiceID.String(), userID.String()).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetByUserID(ctx context.Context, userID ulid.ULID, status *invoice.InvoiceStatus, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error) {
	query := r.DB.WithContext(ctx).Model(&invoice.Invoice{}).Where("user_id = ?", userID.String())
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	return pkg.Paginate[invoice.Invoice](query, pagination, "due_date ASC")
}

func (r *InvoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Model(&invoice.Invoice{}).
		Where("status = ? AND due_date < ?", invoice.StatusSent, asOf).
		Updates(map[string]interface{}{
			"status":     invoice.StatusOverdue,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
