package slip

import (
	"bytes"
	"testing"
	"time"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	order := &domain.Order{
		ID:     "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Number: "MTW000000000001",
		Customer: domain.CustomerInfo{
			FirstName: "Ali",
			LastName:  "Khan",
			Email:     "ali@example.com",
			Phone:     "+92 300 1234567",
		},
		Delivery: domain.DeliveryAddress{
			Address: "House 12, Street 4",
			Area:    "Model Town",
			City:    "Lahore",
		},
		PaymentType: domain.PaymentTypeEasypaisa,
		Items: []domain.OrderItem{
			{ID: "product-1", Kind: domain.ItemKindProduct, Name: "Biology Notes", UnitPrice: 1000, Quantity: 2},
		},
		Subtotal:        2000,
		DeliveryCharges: 450,
		PromoCode:       "MTXUH",
		PromoDiscount:   50,
		Total:           2400,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		CreatedAt:       time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, order))
	html := buf.String()

	assert.Contains(t, html, "MTW000000000001")
	assert.Contains(t, html, "Ali Khan")
	assert.Contains(t, html, "House 12, Street 4, Model Town, Lahore")
	assert.Contains(t, html, "10 June 2024")
	assert.Contains(t, html, "Biology Notes")
	// Сумма строки: 1000 * 2
	assert.Contains(t, html, "PKR 2000")
	assert.Contains(t, html, "MTXUH")
	assert.Contains(t, html, "-PKR 50")
	assert.Contains(t, html, "PKR 2400")
}

func TestRender_NoPromo(t *testing.T) {
	order := &domain.Order{
		Number:          "MTW000000000002",
		Items:           []domain.OrderItem{{Name: "Notes", UnitPrice: 500, Quantity: 1}},
		Subtotal:        500,
		DeliveryCharges: 250,
		Total:           750,
		CreatedAt:       time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, order))

	assert.NotContains(t, buf.String(), "Discount")
}
