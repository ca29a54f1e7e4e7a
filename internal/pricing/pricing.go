// Package pricing реализует детерминированный расчет цен: стоимость
// собранного пакета, стоимость доставки от суммы корзины и проверку
// промокодов. Все функции чистые, PKR в целых рупиях.
package pricing

import (
	"fmt"
	"strings"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/shopspring/decimal"
)

// Надбавка за переплет за одну выбранную работу
const (
	tapeBindingPerPaper int64 = 50
	ringBindingPerPaper int64 = 200
)

// PriceFunc возвращает цену работы за один год для предмета
type PriceFunc func(subjectID, paper string) int64

// PaperSubtotal возвращает стоимость одной работы: цена за год, умноженная
// на количество лет диапазона. Выбор сессий на цену не влияет.
func PaperSubtotal(pricePerYear int64, years domain.YearRange) int64 {
	count := int64(years.End - years.Start + 1)
	if count < 0 {
		count = 0
	}
	return pricePerYear * count
}

// PackagePrice возвращает полную стоимость собранного пакета:
// сумму по работам всех предметов плюс надбавку за переплет,
// умноженную на общее число работ.
func PackagePrice(selections []domain.SubjectSelection, binding domain.Binding, price PriceFunc) int64 {
	var total int64
	var paperCount int64

	for _, subject := range selections {
		for _, paper := range subject.Papers {
			total += PaperSubtotal(price(subject.SubjectID, paper.Paper), paper.Years)
			paperCount++
		}
	}

	switch binding {
	case domain.BindingTape:
		total += tapeBindingPerPaper * paperCount
	case domain.BindingRing:
		total += ringBindingPerPaper * paperCount
	}

	return total
}

// DeliveryCharges возвращает стоимость доставки от суммы корзины.
// Город на формулу не влияет: тарифы едины для всех городов доставки.
func DeliveryCharges(subtotal int64) int64 {
	switch {
	case subtotal < 1000:
		return 250
	case subtotal < 2000:
		return 350
	case subtotal < 3000:
		return 450
	case subtotal < 4000:
		return 500
	case subtotal < 5000:
		return 650
	case subtotal < 10000:
		return percentOf(subtotal, 12.5)
	default:
		return percentOf(subtotal, 9)
	}
}

// ValidatePromo проверяет промокод по таблице: совпадение без учета
// регистра, активность и минимальная сумма покупки. Скидка округляется
// до целой рупии.
func ValidatePromo(codes []domain.PromoCode, code string, subtotal int64) domain.PromoResult {
	var promo *domain.PromoCode
	for i := range codes {
		if codes[i].Active && strings.EqualFold(codes[i].Code, code) {
			promo = &codes[i]
			break
		}
	}

	if promo == nil {
		return domain.PromoResult{Message: "Invalid promo code"}
	}

	if subtotal < promo.MinPurchase {
		return domain.PromoResult{
			Message: fmt.Sprintf("Minimum purchase of PKR %d required for this promo code", promo.MinPurchase),
		}
	}

	return domain.PromoResult{
		Valid:    true,
		Discount: percentOf(subtotal, promo.Discount),
		Message:  fmt.Sprintf("%s%% discount applied!", trimZeros(promo.Discount)),
	}
}

// OrderTotal возвращает итоговую сумму заказа
func OrderTotal(subtotal, deliveryCharges, promoDiscount int64) int64 {
	return subtotal + deliveryCharges - promoDiscount
}

// percentOf возвращает percent% от amount, округленные до целой рупии
// (половина — от нуля, как Math.round)
func percentOf(amount int64, percent float64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// trimZeros форматирует процент без хвостовых нулей (2.5 -> "2.5", 10 -> "10")
func trimZeros(percent float64) string {
	return decimal.NewFromFloat(percent).String()
}
