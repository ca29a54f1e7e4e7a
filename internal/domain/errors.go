package domain

import "errors"

// Ошибки каталога и конфигуратора
var (
	ErrUnknownLevel      = errors.New("unknown exam level")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrPaperNotAvailable = errors.New("paper not available for subject")
	ErrNoPapersSelected  = errors.New("no papers selected")
)

// Ошибки корзины и оформления заказа
var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrPromoInvalid     = errors.New("invalid promo code")
	ErrPromoMinPurchase = errors.New("minimum purchase not reached for promo code")
)

// Ошибки заказов
var (
	ErrOrderNotFound = errors.New("order not found")
)

// Ошибки доступа к дашборду
var (
	ErrInvalidPasscode = errors.New("invalid passcode")
)

// FieldErrors представляет ошибки валидации формы по полям
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation failed"
}
