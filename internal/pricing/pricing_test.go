package pricing

import (
	"fmt"
	"testing"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPaperSubtotal(t *testing.T) {
	t.Run("Single year", func(t *testing.T) {
		subtotal := PaperSubtotal(180, domain.YearRange{Start: 2020, End: 2020})
		assert.Equal(t, int64(180), subtotal)
	})

	t.Run("Six years", func(t *testing.T) {
		subtotal := PaperSubtotal(180, domain.YearRange{Start: 2019, End: 2024})
		assert.Equal(t, int64(1080), subtotal)
	})

	t.Run("Inverted range counts as zero", func(t *testing.T) {
		subtotal := PaperSubtotal(180, domain.YearRange{Start: 2024, End: 2020})
		assert.Equal(t, int64(0), subtotal)
	})

	t.Run("Sessions do not affect price", func(t *testing.T) {
		// Цена зависит только от диапазона лет
		years := domain.YearRange{Start: 2020, End: 2024}
		assert.Equal(t, int64(900), PaperSubtotal(180, years))
	})
}

func TestPackagePrice(t *testing.T) {
	price := func(subjectID, paper string) int64 {
		if subjectID == "biology" && paper == "P1" {
			return 180
		}
		return 200
	}

	selections := []domain.SubjectSelection{
		{
			SubjectID: "biology",
			Papers: []domain.PaperSelection{
				{Paper: "P1", Sessions: []domain.Session{domain.SessionMayJun}, Years: domain.YearRange{Start: 2020, End: 2024}},
				{Paper: "P2", Sessions: []domain.Session{domain.SessionMayJun}, Years: domain.YearRange{Start: 2023, End: 2024}},
			},
		},
		{
			SubjectID: "chemistry",
			Papers: []domain.PaperSelection{
				{Paper: "P1", Sessions: []domain.Session{domain.SessionOctNov}, Years: domain.YearRange{Start: 2024, End: 2024}},
			},
		},
	}

	// biology P1: 180*5=900, biology P2: 200*2=400, chemistry P1: 200*1=200
	base := int64(900 + 400 + 200)

	t.Run("No binding", func(t *testing.T) {
		assert.Equal(t, base, PackagePrice(selections, domain.BindingNone, price))
	})

	t.Run("Tape binding adds 50 per paper", func(t *testing.T) {
		assert.Equal(t, base+3*50, PackagePrice(selections, domain.BindingTape, price))
	})

	t.Run("Ring binding adds 200 per paper", func(t *testing.T) {
		assert.Equal(t, base+3*200, PackagePrice(selections, domain.BindingRing, price))
	})

	t.Run("Empty selection", func(t *testing.T) {
		assert.Equal(t, int64(0), PackagePrice(nil, domain.BindingRing, price))
	})
}

func TestDeliveryCharges(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{1, 250},
		{999, 250},
		{1000, 350},
		{1999, 350},
		{2000, 450},
		{2999, 450},
		{3000, 500},
		{3999, 500},
		{4000, 650},
		{4999, 650},
		{5000, 625},  // 12.5%
		{8000, 1000}, // 12.5%
		{9999, 1250}, // 12.5% округляется вверх
		{10000, 900}, // 9%
		{25000, 2250},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("subtotal=%d", tt.subtotal), func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryCharges(tt.subtotal))
		})
	}
}

func TestValidatePromo(t *testing.T) {
	codes := []domain.PromoCode{
		{Code: "MTXUH", Discount: 2.5, MinPurchase: 1000, Active: true},
		{Code: "OLDCODE", Discount: 10, MinPurchase: 500, Active: false},
	}

	t.Run("Valid code", func(t *testing.T) {
		result := ValidatePromo(codes, "MTXUH", 2000)
		assert.True(t, result.Valid)
		assert.Equal(t, int64(50), result.Discount)
		assert.Equal(t, "2.5% discount applied!", result.Message)
	})

	t.Run("Case insensitive match", func(t *testing.T) {
		result := ValidatePromo(codes, "mtxuh", 2000)
		assert.True(t, result.Valid)
		assert.Equal(t, int64(50), result.Discount)
	})

	t.Run("Unknown code", func(t *testing.T) {
		result := ValidatePromo(codes, "NOPE", 2000)
		assert.False(t, result.Valid)
		assert.Equal(t, int64(0), result.Discount)
		assert.Equal(t, "Invalid promo code", result.Message)
	})

	t.Run("Inactive code treated as invalid", func(t *testing.T) {
		result := ValidatePromo(codes, "OLDCODE", 2000)
		assert.False(t, result.Valid)
		assert.Equal(t, "Invalid promo code", result.Message)
	})

	t.Run("Below minimum purchase", func(t *testing.T) {
		result := ValidatePromo(codes, "MTXUH", 999)
		assert.False(t, result.Valid)
		assert.Equal(t, "Minimum purchase of PKR 1000 required for this promo code", result.Message)
	})

	t.Run("Exactly minimum purchase", func(t *testing.T) {
		result := ValidatePromo(codes, "MTXUH", 1000)
		assert.True(t, result.Valid)
		assert.Equal(t, int64(25), result.Discount)
	})

	t.Run("Discount rounds half away from zero", func(t *testing.T) {
		// 2.5% от 1300 = 32.5 -> 33
		result := ValidatePromo(codes, "MTXUH", 1300)
		assert.True(t, result.Valid)
		assert.Equal(t, int64(33), result.Discount)
	})
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, int64(2475), OrderTotal(2000, 500, 25))
	assert.Equal(t, int64(1250), OrderTotal(1000, 250, 0))
}
