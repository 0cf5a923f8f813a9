package service

import (
	"context"
	"testing"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/model"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInvoiceService(t *testing.T) (InvoiceService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewInvoiceService(repository.NewInvoiceRepository(db), repository.NewTransactionManager(db))
	return svc, db
}

func seedClient(t *testing.T, db *gorm.DB, first, last string) uint {
	t.Helper()
	client := model.Client{FirstName: first, LastName: last}
	require.NoError(t, db.Create(&client).Error)
	return client.ID
}

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "OTT-104", invoiceNumber(5))
	assert.Equal(t, "OTT-100", invoiceNumber(1))
}

func TestCreateInvoiceRoundTrip(t *testing.T) {
	svc, db := newInvoiceService(t)
	ctx := context.Background()
	clientID := seedClient(t, db, "Ada", "Lovelace")

	result, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{
		ClientID:    &clientID,
		InvoiceDate: "2024-03-15",
		LineItems: []LineItemPayload{
			{Activity: "Consulting", Description: "On-site visit", Quantity: "3", Rate: "150"},
			{Activity: "Hardware", Description: "Router", Amount: "200", Quantity: "1", Rate: "999"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceNumber(result.ID), result.InvoiceNumber)

	detail, err := svc.GetInvoice(ctx, result.ID)
	require.NoError(t, err)

	assert.Equal(t, result.InvoiceNumber, detail.InvoiceNumber)
	assert.Equal(t, "650.00", detail.TotalDue)
	assert.Equal(t, "pending", detail.Status)
	require.NotNil(t, detail.InvoiceDate)
	assert.Equal(t, "2024-03-15", *detail.InvoiceDate)
	require.NotNil(t, detail.ClientName)
	assert.Equal(t, "Ada Lovelace", *detail.ClientName)

	require.Len(t, detail.LineItems, 2)
	byActivity := map[string]LineItemResponse{}
	for _, it := range detail.LineItems {
		byActivity[it.Activity] = it
	}
	assert.Equal(t, "450.00", byActivity["Consulting"].Amount)
	assert.Equal(t, "On-site visit", byActivity["Consulting"].Description)
	assert.Equal(t, "200.00", byActivity["Hardware"].Amount)
}

func TestCreateInvoiceWithoutItems(t *testing.T) {
	svc, _ := newInvoiceService(t)
	ctx := context.Background()

	result, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{Status: "sent"})
	require.NoError(t, err)

	detail, err := svc.GetInvoice(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", detail.TotalDue)
	assert.Equal(t, "sent", detail.Status)
	assert.Nil(t, detail.ClientID)
	assert.Nil(t, detail.ClientName)
	assert.Nil(t, detail.InvoiceDate)
	assert.Empty(t, detail.LineItems)
}

func TestListInvoicesDanglingClient(t *testing.T) {
	svc, _ := newInvoiceService(t)
	ctx := context.Background()

	missing := uint(4242)
	_, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{ClientID: &missing})
	require.NoError(t, err)

	summaries, err := svc.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].ClientID)
	assert.Equal(t, missing, *summaries[0].ClientID)
	assert.Nil(t, summaries[0].ClientName)
}

func TestUpdateInvoiceReplacesItems(t *testing.T) {
	svc, _ := newInvoiceService(t)
	ctx := context.Background()

	result, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{
		LineItems: []LineItemPayload{
			{Activity: "Consulting", Quantity: "3", Rate: "150"},
			{Activity: "Hardware", Amount: "200"},
		},
	})
	require.NoError(t, err)

	rows, err := svc.UpdateInvoice(ctx, result.ID, SaveInvoiceRequest{
		LineItems: []LineItemPayload{
			{Activity: "Support", Quantity: "2", Rate: "80"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	detail, err := svc.GetInvoice(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.InvoiceNumber, detail.InvoiceNumber, "invoice number must survive updates")
	assert.Equal(t, "160.00", detail.TotalDue)
	assert.Equal(t, "pending", detail.Status)
	require.Len(t, detail.LineItems, 1)
	assert.Equal(t, "Support", detail.LineItems[0].Activity)
}

func TestUpdateInvoiceClearsItemsWhenOmitted(t *testing.T) {
	svc, _ := newInvoiceService(t)
	ctx := context.Background()

	result, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{
		LineItems: []LineItemPayload{{Activity: "Consulting", Amount: "100"}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(ctx, result.ID, SaveInvoiceRequest{})
	require.NoError(t, err)

	detail, err := svc.GetInvoice(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", detail.TotalDue)
	assert.Empty(t, detail.LineItems)
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	svc, db := newInvoiceService(t)
	ctx := context.Background()

	existing, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{
		LineItems: []LineItemPayload{{Activity: "Consulting", Amount: "100"}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(ctx, 9999, SaveInvoiceRequest{
		LineItems: []LineItemPayload{{Activity: "Ghost", Amount: "1"}},
	})
	assert.ErrorIs(t, err, ErrInvoiceNotFound)

	// The rolled-back update must not have touched any line items.
	var count int64
	require.NoError(t, db.Model(&model.LineItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	detail, err := svc.GetInvoice(ctx, existing.ID)
	require.NoError(t, err)
	require.Len(t, detail.LineItems, 1)
	assert.Equal(t, "Consulting", detail.LineItems[0].Activity)
}

func TestDeleteInvoice(t *testing.T) {
	svc, _ := newInvoiceService(t)
	ctx := context.Background()

	// No line items: the unconditional item delete must not get in the way.
	result, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{})
	require.NoError(t, err)

	rows, err := svc.DeleteInvoice(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = svc.GetInvoice(ctx, result.ID)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)

	_, err = svc.DeleteInvoice(ctx, result.ID)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestCreateInvoiceRollsBackOnItemFailure(t *testing.T) {
	svc, db := newInvoiceService(t)
	ctx := context.Background()

	// Sabotage the item insert: with the table gone, the statement after the
	// header insert fails and the whole transaction must roll back.
	require.NoError(t, db.Migrator().DropTable(&model.LineItem{}))

	_, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{
		LineItems: []LineItemPayload{{Activity: "Consulting", Amount: "100"}},
	})
	require.Error(t, err)

	require.NoError(t, db.AutoMigrate(&model.LineItem{}))

	summaries, err := svc.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries, "no header may survive a failed item insert")
}

func TestUpdateInvoiceRollsBackOnItemFailure(t *testing.T) {
	svc, db := newInvoiceService(t)
	ctx := context.Background()

	result, err := svc.CreateInvoice(ctx, SaveInvoiceRequest{
		Status:    "sent",
		LineItems: []LineItemPayload{{Activity: "Consulting", Amount: "100"}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(&model.LineItem{}))

	_, err = svc.UpdateInvoice(ctx, result.ID, SaveInvoiceRequest{
		Status:    "paid",
		LineItems: []LineItemPayload{{Activity: "Support", Amount: "50"}},
	})
	require.Error(t, err)

	require.NoError(t, db.AutoMigrate(&model.LineItem{}))

	detail, err := svc.GetInvoice(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", detail.Status, "rolled-back update must leave the header unchanged")
	assert.Equal(t, "100.00", detail.TotalDue)
}
