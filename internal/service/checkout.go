package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mtw/paperstore/internal/catalog"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/pricing"
	"github.com/mtw/paperstore/internal/utils/phone"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NotificationQueue определяет постановку уведомления о заказе в очередь
type NotificationQueue interface {
	Enqueue(order *domain.Order)
}

// CheckoutService реализует domain.CheckoutService
type CheckoutService struct {
	cartRepo  domain.CartRepository
	orderRepo domain.OrderRepository
	notify    NotificationQueue
	logger    *zap.Logger
	now       func() time.Time
}

// NewCheckoutService создает новый CheckoutService
func NewCheckoutService(
	cartRepo domain.CartRepository,
	orderRepo domain.OrderRepository,
	notify NotificationQueue,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		notify:    notify,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit проверяет форму, строит неизменяемый заказ из текущего
// содержимого корзины, сохраняет его, ставит уведомление в очередь
// и очищает корзину. Ошибка отправки уведомления заказ не блокирует.
func (s *CheckoutService) Submit(ctx context.Context, cartID string, req domain.CheckoutRequest) (*domain.Order, error) {
	if fieldErrs := validateCheckout(req); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	items, err := s.cartRepo.GetItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("checkout service: failed to get cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		subtotal += item.UnitPrice * int64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ID:        item.ID,
			Kind:      item.Kind,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Details:   item.Details,
		})
	}

	deliveryCharges := pricing.DeliveryCharges(subtotal)

	// Не более одного промокода на заказ
	var promoCode string
	var promoDiscount int64
	if req.PromoCode != "" {
		result := pricing.ValidatePromo(catalog.PromoCodes(), req.PromoCode, subtotal)
		if !result.Valid {
			return nil, domain.FieldErrors{"promo_code": result.Message}
		}
		promoCode = strings.ToUpper(req.PromoCode)
		promoDiscount = result.Discount
	}

	countryCode := req.CountryCode
	if countryCode == "" {
		countryCode = phone.PakistanCode
	}

	order := &domain.Order{
		ID: uuid.New().String(),
		Customer: domain.CustomerInfo{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     strings.TrimSpace(req.Email),
			Phone:     phone.Format(req.Phone, countryCode),
		},
		Delivery: domain.DeliveryAddress{
			Address:      strings.TrimSpace(req.Address),
			Area:         req.Area,
			City:         req.City,
			PostalCode:   req.PostalCode,
			Landmark:     req.Landmark,
			Instructions: req.Instructions,
		},
		PaymentType:       req.PaymentType,
		Items:             orderItems,
		Subtotal:          subtotal,
		DeliveryCharges:   deliveryCharges,
		PromoCode:         promoCode,
		PromoDiscount:     promoDiscount,
		Total:             pricing.OrderTotal(subtotal, deliveryCharges, promoDiscount),
		Status:            domain.OrderStatusPending,
		PaymentStatus:     domain.PaymentStatusPending,
		EstimatedDelivery: catalog.EstimatedDelivery(req.City, s.now()),
	}
	if req.AlternatePhone != "" {
		order.Customer.AlternatePhone = phone.Format(req.AlternatePhone, countryCode)
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("checkout service: failed to create order: %w", err)
	}

	// Уведомление отправляется по принципу best effort
	s.notify.Enqueue(created)

	// Заказ уже создан: ошибка очистки корзины не откатывает его
	if err := s.cartRepo.Clear(ctx, cartID); err != nil {
		s.logger.Error("failed to clear cart after checkout",
			zap.String("order", created.Number),
			zap.Error(err),
		)
	}

	return created, nil
}

// ValidatePromo проверяет промокод для текущей суммы корзины
func (s *CheckoutService) ValidatePromo(code string, subtotal int64) domain.PromoResult {
	return pricing.ValidatePromo(catalog.PromoCodes(), code, subtotal)
}

// DeliveryQuote возвращает стоимость доставки для суммы корзины
func (s *CheckoutService) DeliveryQuote(subtotal int64) int64 {
	return pricing.DeliveryCharges(subtotal)
}

// validateCheckout проверяет обязательные поля формы.
// Каждое нарушение — локальная ошибка поля, запрос не выполняется.
func validateCheckout(req domain.CheckoutRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if strings.TrimSpace(req.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errs["email"] = "Please enter a valid email address"
	}

	countryCode := req.CountryCode
	if countryCode == "" {
		countryCode = phone.PakistanCode
	}
	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phone.Validate(req.Phone, countryCode) {
		errs["phone"] = "Please enter a valid phone number"
	}
	if req.AlternatePhone != "" && !phone.Validate(req.AlternatePhone, countryCode) {
		errs["alternate_phone"] = "Please enter a valid phone number"
	}

	if strings.TrimSpace(req.Address) == "" {
		errs["address"] = "Address is required"
	}
	if req.City == "" {
		errs["city"] = "City is required"
	} else if _, ok := catalog.City(req.City); !ok {
		errs["city"] = "Please select a city from the list"
	}

	if !req.PaymentType.Valid() {
		errs["payment_type"] = "Please select a payment method"
	}
	if !req.AgreeToTerms {
		errs["agree_to_terms"] = "You must agree to terms and conditions"
	}

	return errs
}
