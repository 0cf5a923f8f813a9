package repository

import (
	"context"
	"time"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceHeaderRow is one row of the header-to-client join. The client name
// parts are scanned as nullables so a dangling client_id surfaces as nil
// rather than an empty string.
type InvoiceHeaderRow struct {
	ID              uint
	ClientID        *uint
	InvoiceNumber   string
	InvoiceDate     *time.Time
	Status          string
	TotalDue        decimal.Decimal
	ClientFirstName *string
	ClientLastName  *string
}

type InvoiceRepository interface {
	ListHeaders(ctx context.Context) ([]InvoiceHeaderRow, error)
	FindHeaderByID(ctx context.Context, id uint) (*InvoiceHeaderRow, error)
	ListItems(ctx context.Context, invoiceID uint) ([]model.LineItem, error)
	CreateHeader(ctx context.Context, invoice *model.Invoice) error
	SetInvoiceNumber(ctx context.Context, id uint, number string) error
	UpdateHeader(ctx context.Context, invoice *model.Invoice) (int64, error)
	DeleteItems(ctx context.Context, invoiceID uint) error
	CreateItems(ctx context.Context, items []model.LineItem) error
	DeleteHeader(ctx context.Context, id uint) (int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

const headerColumns = `i.id, i.client_id, i.invoice_number, i.invoice_date, i.status, i.total_due,
	c.first_name AS client_first_name, c.last_name AS client_last_name`

func (r *invoiceRepository) headerQuery(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Table("invoices AS i").
		Select(headerColumns).
		Joins("LEFT JOIN clients AS c ON i.client_id = c.id")
}

func (r *invoiceRepository) ListHeaders(ctx context.Context) ([]InvoiceHeaderRow, error) {
	var rows []InvoiceHeaderRow
	if err := r.headerQuery(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invoiceRepository) FindHeaderByID(ctx context.Context, id uint) (*InvoiceHeaderRow, error) {
	var rows []InvoiceHeaderRow
	if err := r.headerQuery(ctx).Where("i.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// ListItems returns the invoice's line items in storage order; no ordering is
// guaranteed beyond what the database happens to produce.
func (r *invoiceRepository) ListItems(ctx context.Context, invoiceID uint) ([]model.LineItem, error) {
	var items []model.LineItem
	if err := GetDB(ctx, r.db).Where("invoice_id = ?", invoiceID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *invoiceRepository) CreateHeader(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) SetInvoiceNumber(ctx context.Context, id uint, number string) error {
	return GetDB(ctx, r.db).Model(&model.Invoice{}).Where("id = ?", id).
		Update("invoice_number", number).Error
}

// UpdateHeader rewrites the mutable header columns by id. The invoice number
// is deliberately absent: it is immutable after creation. Uses a column map so
// nil client_id and invoice_date are written as NULL.
func (r *invoiceRepository) UpdateHeader(ctx context.Context, invoice *model.Invoice) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.Invoice{}).Where("id = ?", invoice.ID).Updates(map[string]interface{}{
		"client_id":    invoice.ClientID,
		"invoice_date": invoice.InvoiceDate,
		"status":       invoice.Status,
		"total_due":    invoice.TotalDue,
	})
	return res.RowsAffected, res.Error
}

func (r *invoiceRepository) DeleteItems(ctx context.Context, invoiceID uint) error {
	return GetDB(ctx, r.db).Where("invoice_id = ?", invoiceID).Delete(&model.LineItem{}).Error
}

func (r *invoiceRepository) CreateItems(ctx context.Context, items []model.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Create(&items).Error
}

func (r *invoiceRepository) DeleteHeader(ctx context.Context, id uint) (int64, error) {
	res := GetDB(ctx, r.db).Delete(&model.Invoice{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
