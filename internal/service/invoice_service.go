package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/model"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/repository"

	"gorm.io/gorm"
)

// Invoice numbers are derived from the database-assigned id with a fixed
// prefix and offset, so they can only be generated after the header row
// exists. Once written they never change.
const (
	invoiceNumberPrefix = "OTT"
	invoiceNumberOffset = 99
)

// ErrInvoiceNotFound reports that the referenced invoice id does not exist.
var ErrInvoiceNotFound = errors.New("invoice not found")

// --- DTOs ---

type LineItemPayload struct {
	ItemDate    string `json:"item_date"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	Rate        Number `json:"rate"`
	Amount      Number `json:"amount"`
}

// SaveInvoiceRequest is the shared body shape of POST and PUT. client_id is
// not validated against the clients table; a dangling reference is tolerated
// and shows up as a null client_name on reads.
type SaveInvoiceRequest struct {
	ClientID    *uint             `json:"client_id"`
	InvoiceDate string            `json:"invoice_date"`
	Status      string            `json:"status"`
	LineItems   []LineItemPayload `json:"line_items"`
}

type InvoiceSummary struct {
	ID            uint    `json:"id"`
	ClientID      *uint   `json:"client_id"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   *string `json:"invoice_date"`
	Status        string  `json:"status"`
	TotalDue      string  `json:"total_due"`
	ClientName    *string `json:"client_name"`
}

type LineItemResponse struct {
	ID          uint    `json:"id"`
	InvoiceID   uint    `json:"invoice_id"`
	ItemDate    *string `json:"item_date"`
	Activity    string  `json:"activity"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	Rate        string  `json:"rate"`
	Amount      string  `json:"amount"`
}

type InvoiceDetail struct {
	InvoiceSummary
	LineItems []LineItemResponse `json:"line_items"`
}

type CreateInvoiceResult struct {
	ID            uint
	InvoiceNumber string
}

// --- Interface ---

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]InvoiceSummary, error)
	GetInvoice(ctx context.Context, id uint) (InvoiceDetail, error)
	CreateInvoice(ctx context.Context, req SaveInvoiceRequest) (CreateInvoiceResult, error)
	UpdateInvoice(ctx context.Context, id uint, req SaveInvoiceRequest) (int64, error)
	DeleteInvoice(ctx context.Context, id uint) (int64, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	txManager   repository.TransactionManager
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, txManager repository.TransactionManager) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, txManager: txManager}
}

// --- Reads ---

func (s *invoiceService) ListInvoices(ctx context.Context) ([]InvoiceSummary, error) {
	rows, err := s.invoiceRepo.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	summaries := make([]InvoiceSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toInvoiceSummary(row))
	}
	return summaries, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uint) (InvoiceDetail, error) {
	header, err := s.invoiceRepo.FindHeaderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceDetail{}, ErrInvoiceNotFound
		}
		return InvoiceDetail{}, fmt.Errorf("failed to fetch invoice: %w", err)
	}

	items, err := s.invoiceRepo.ListItems(ctx, id)
	if err != nil {
		return InvoiceDetail{}, fmt.Errorf("failed to fetch line items: %w", err)
	}

	detail := InvoiceDetail{
		InvoiceSummary: toInvoiceSummary(*header),
		LineItems:      make([]LineItemResponse, 0, len(items)),
	}
	for _, it := range items {
		detail.LineItems = append(detail.LineItems, toLineItemResponse(it))
	}
	return detail, nil
}

// --- Writes ---

// CreateInvoice inserts the header with an empty invoice number and the total
// resolved from the payload, then assigns the number from the fresh id and
// writes the line items. All statements run in one transaction: a failure at
// any step leaves no header and no items behind.
func (s *invoiceService) CreateInvoice(ctx context.Context, req SaveInvoiceRequest) (CreateInvoiceResult, error) {
	invoice := model.Invoice{
		ClientID:    req.ClientID,
		InvoiceDate: parseDate(req.InvoiceDate),
		Status:      statusOrPending(req.Status),
		TotalDue:    SumAmounts(req.LineItems),
	}

	var number string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.invoiceRepo.CreateHeader(txCtx, &invoice); err != nil {
			return fmt.Errorf("failed to insert invoice header: %w", err)
		}

		number = invoiceNumber(invoice.ID)
		if err := s.invoiceRepo.SetInvoiceNumber(txCtx, invoice.ID, number); err != nil {
			return fmt.Errorf("failed to assign invoice number: %w", err)
		}

		if err := s.invoiceRepo.CreateItems(txCtx, toLineItemModels(invoice.ID, req.LineItems)); err != nil {
			return fmt.Errorf("failed to insert line items: %w", err)
		}
		return nil
	})
	if err != nil {
		return CreateInvoiceResult{}, err
	}

	return CreateInvoiceResult{ID: invoice.ID, InvoiceNumber: number}, nil
}

// UpdateInvoice rewrites the header (invoice number untouched) and replaces
// the full line-item set. A zero-row header update means the invoice does not
// exist: the transaction rolls back before any item is touched.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id uint, req SaveInvoiceRequest) (int64, error) {
	invoice := model.Invoice{
		ID:          id,
		ClientID:    req.ClientID,
		InvoiceDate: parseDate(req.InvoiceDate),
		Status:      statusOrPending(req.Status),
		TotalDue:    SumAmounts(req.LineItems),
	}

	var affected int64
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rows, err := s.invoiceRepo.UpdateHeader(txCtx, &invoice)
		if err != nil {
			return fmt.Errorf("failed to update invoice header: %w", err)
		}
		if rows == 0 {
			return ErrInvoiceNotFound
		}
		affected = rows

		if err := s.invoiceRepo.DeleteItems(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete line items: %w", err)
		}
		if err := s.invoiceRepo.CreateItems(txCtx, toLineItemModels(id, req.LineItems)); err != nil {
			return fmt.Errorf("failed to insert line items: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteInvoice removes the item set before the header, respecting the
// ownership direction. The item delete is unconditionally safe, so deleting
// an invoice whose items are already gone still succeeds; only a missing
// header reports not found. Runs on the shared pool, no transaction.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id uint) (int64, error) {
	if err := s.invoiceRepo.DeleteItems(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to delete line items: %w", err)
	}

	rows, err := s.invoiceRepo.DeleteHeader(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invoice: %w", err)
	}
	if rows == 0 {
		return 0, ErrInvoiceNotFound
	}
	return rows, nil
}

// --- Helpers ---

func invoiceNumber(id uint) string {
	return fmt.Sprintf("%s-%d", invoiceNumberPrefix, id+invoiceNumberOffset)
}

func statusOrPending(status string) string {
	if status == "" {
		return model.StatusPending
	}
	return status
}

func toLineItemModels(invoiceID uint, payloads []LineItemPayload) []model.LineItem {
	items := make([]model.LineItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, model.LineItem{
			InvoiceID:   invoiceID,
			ItemDate:    parseDate(p.ItemDate),
			Activity:    p.Activity,
			Description: p.Description,
			Quantity:    p.Quantity.Decimal(),
			Rate:        p.Rate.Decimal(),
			Amount:      ResolveAmount(p.Amount, p.Quantity, p.Rate),
		})
	}
	return items
}

// --- Mapping ---

func toInvoiceSummary(row repository.InvoiceHeaderRow) InvoiceSummary {
	return InvoiceSummary{
		ID:            row.ID,
		ClientID:      row.ClientID,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   formatDate(row.InvoiceDate),
		Status:        row.Status,
		TotalDue:      row.TotalDue.StringFixed(2),
		ClientName:    clientDisplayName(row.ClientFirstName, row.ClientLastName),
	}
}

func toLineItemResponse(item model.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		ItemDate:    formatDate(item.ItemDate),
		Activity:    item.Activity,
		Description: item.Description,
		Quantity:    item.Quantity.StringFixed(2),
		Rate:        item.Rate.StringFixed(2),
		Amount:      item.Amount.StringFixed(2),
	}
}

// clientDisplayName joins the joined name parts with a space. Both parts nil
// means the client reference is dangling or absent, which yields a null name.
func clientDisplayName(first, last *string) *string {
	if first == nil && last == nil {
		return nil
	}
	name := deref(first) + " " + deref(last)
	return &name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
