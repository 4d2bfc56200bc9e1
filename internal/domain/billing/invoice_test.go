package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, description string, quantity, price string) InvoiceLine {
	t.Helper()
	line, err := NewInvoiceLine(description, decimal.RequireFromString(quantity), decimal.RequireFromString(price))
	require.NoError(t, err)
	return *line
}

func TestNewInvoiceLine(t *testing.T) {
	t.Run("computes amount from price and quantity", func(t *testing.T) {
		line, err := NewInvoiceLine("Consulting", decimal.NewFromInt(2), decimal.RequireFromString("100"))

		require.NoError(t, err)
		assert.True(t, line.Amount.Equal(decimal.RequireFromString("200")))
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewInvoiceLine("   ", decimal.NewFromInt(1), decimal.NewFromInt(100))

		assert.Error(t, err)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewInvoiceLine("Consulting", decimal.Zero, decimal.NewFromInt(100))

		assert.Error(t, err)
	})

	t.Run("rejects fractional quantity", func(t *testing.T) {
		_, err := NewInvoiceLine("Consulting", decimal.RequireFromString("2.5"), decimal.NewFromInt(100))

		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewInvoiceLine("Consulting", decimal.NewFromInt(-1), decimal.NewFromInt(100))

		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewInvoiceLine("Consulting", decimal.NewFromInt(1), decimal.NewFromInt(-100))

		assert.Error(t, err)
	})

	t.Run("allows zero price", func(t *testing.T) {
		line, err := NewInvoiceLine("Sample", decimal.NewFromInt(1), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, line.Amount.IsZero())
	})
}

func TestNewInvoice(t *testing.T) {
	userID := uuid.New()
	invoiceDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates invoice with total from lines", func(t *testing.T) {
		lines := []InvoiceLine{
			mustLine(t, "Item A", "2", "10.50"),
			mustLine(t, "Item B", "1", "5.25"),
		}

		invoice, err := NewInvoice(userID, "March services", invoiceDate, nil, lines)

		require.NoError(t, err)
		assert.Equal(t, userID, invoice.UserID)
		assert.True(t, invoice.TotalAmount.Equal(decimal.RequireFromString("26.25")))
		assert.Len(t, invoice.Lines, 2)
		assert.False(t, invoice.RecordDate.IsZero())
		assert.Nil(t, invoice.CustomerID)
	})

	t.Run("stamps lines with invoice ID, owner and record date", func(t *testing.T) {
		lines := []InvoiceLine{mustLine(t, "Item A", "1", "10")}

		invoice, err := NewInvoice(userID, "F-1001", invoiceDate, nil, lines)

		require.NoError(t, err)
		for _, line := range invoice.Lines {
			assert.Equal(t, invoice.ID, line.InvoiceID)
			assert.Equal(t, invoice.UserID, line.UserID)
			assert.Equal(t, invoice.RecordDate, line.RecordDate)
		}
	})

	t.Run("assigns customer when reference is set", func(t *testing.T) {
		customerID := uuid.New()

		invoice, err := NewInvoice(userID, "F-1002", invoiceDate, &customerID, nil)

		require.NoError(t, err)
		require.NotNil(t, invoice.CustomerID)
		assert.Equal(t, customerID, *invoice.CustomerID)
	})

	t.Run("normalizes zero customer reference to unassigned", func(t *testing.T) {
		zero := uuid.Nil

		invoice, err := NewInvoice(userID, "F-1003", invoiceDate, &zero, nil)

		require.NoError(t, err)
		assert.Nil(t, invoice.CustomerID)
	})

	t.Run("allows empty line set with zero total", func(t *testing.T) {
		invoice, err := NewInvoice(userID, "F-1004", invoiceDate, nil, nil)

		require.NoError(t, err)
		assert.True(t, invoice.TotalAmount.IsZero())
		assert.Empty(t, invoice.Lines)
	})

	t.Run("fails without owner", func(t *testing.T) {
		_, err := NewInvoice(uuid.Nil, "F-1005", invoiceDate, nil, nil)

		assert.Error(t, err)
	})

	t.Run("fails with blank description", func(t *testing.T) {
		_, err := NewInvoice(userID, "   ", invoiceDate, nil, nil)

		assert.Error(t, err)
	})

	t.Run("fails without invoice date", func(t *testing.T) {
		_, err := NewInvoice(userID, "F-1006", time.Time{}, nil, nil)

		assert.Error(t, err)
	})
}

func TestInvoice_ReplaceLines(t *testing.T) {
	userID := uuid.New()
	invoiceDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("replaces the full line set and recomputes total", func(t *testing.T) {
		invoice, err := NewInvoice(userID, "F-2001", invoiceDate, nil, []InvoiceLine{
			mustLine(t, "Old item", "1", "100"),
		})
		require.NoError(t, err)

		invoice.ReplaceLines([]InvoiceLine{
			mustLine(t, "New item", "3", "7"),
			mustLine(t, "Another", "2", "1.50"),
		})

		assert.Len(t, invoice.Lines, 2)
		assert.True(t, invoice.TotalAmount.Equal(decimal.RequireFromString("24")))
		for _, line := range invoice.Lines {
			assert.Equal(t, invoice.ID, line.InvoiceID)
			assert.Equal(t, invoice.UserID, line.UserID)
			assert.Equal(t, invoice.RecordDate, line.RecordDate)
		}
	})

	t.Run("ignores tampered line amounts", func(t *testing.T) {
		line := mustLine(t, "Item", "2", "10")
		line.Amount = decimal.NewFromInt(9999)

		invoice, err := NewInvoice(userID, "F-2002", invoiceDate, nil, []InvoiceLine{line})
		require.NoError(t, err)

		assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(20)))
		assert.True(t, invoice.Lines[0].Amount.Equal(decimal.NewFromInt(20)))
	})

	t.Run("clearing lines zeroes the total", func(t *testing.T) {
		invoice, err := NewInvoice(userID, "F-2003", invoiceDate, nil, []InvoiceLine{
			mustLine(t, "Item", "1", "100"),
		})
		require.NoError(t, err)

		invoice.ReplaceLines(nil)

		assert.Empty(t, invoice.Lines)
		assert.True(t, invoice.TotalAmount.IsZero())
	})
}

func TestInvoice_UpdateDetails(t *testing.T) {
	userID := uuid.New()
	invoiceDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("overwrites header fields", func(t *testing.T) {
		customerID := uuid.New()
		invoice, err := NewInvoice(userID, "Old", invoiceDate, nil, nil)
		require.NoError(t, err)

		newDate := invoiceDate.AddDate(0, 1, 0)
		err = invoice.UpdateDetails("New description", newDate, &customerID)

		require.NoError(t, err)
		assert.Equal(t, "New description", invoice.Description)
		assert.Equal(t, newDate, invoice.InvoiceDate)
		require.NotNil(t, invoice.CustomerID)
		assert.Equal(t, customerID, *invoice.CustomerID)
	})

	t.Run("rejects blank description", func(t *testing.T) {
		invoice, err := NewInvoice(userID, "F-3001", invoiceDate, nil, nil)
		require.NoError(t, err)

		err = invoice.UpdateDetails("  ", invoiceDate, nil)

		assert.Error(t, err)
		assert.Equal(t, "F-3001", invoice.Description)
	})

	t.Run("unassigns customer on zero reference", func(t *testing.T) {
		customerID := uuid.New()
		invoice, err := NewInvoice(userID, "F-3002", invoiceDate, &customerID, nil)
		require.NoError(t, err)

		err = invoice.UpdateDetails("F-3002", invoiceDate, nil)

		require.NoError(t, err)
		assert.Nil(t, invoice.CustomerID)
	})
}

func TestInvoice_StampRecord(t *testing.T) {
	invoice, err := NewInvoice(uuid.New(), "F-4001", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), nil, []InvoiceLine{
		mustLine(t, "Item", "1", "10"),
	})
	require.NoError(t, err)

	newOwner := uuid.New()
	before := time.Now()
	invoice.StampRecord(newOwner)

	assert.Equal(t, newOwner, invoice.UserID)
	assert.False(t, invoice.RecordDate.Before(before))
	for _, line := range invoice.Lines {
		assert.Equal(t, newOwner, line.UserID)
		assert.Equal(t, invoice.RecordDate, line.RecordDate)
	}
}
