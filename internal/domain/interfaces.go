package domain

import "context"

// CartRepository определяет методы для работы с корзиной.
// Корзина идентифицируется токеном, который клиент хранит у себя.
type CartRepository interface {
	AddItem(ctx context.Context, cartID string, item CartItem) error
	GetItems(ctx context.Context, cartID string) ([]CartItem, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
	TotalPrice(ctx context.Context, cartID string) (int64, error)
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	GetOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
	DeleteOrder(ctx context.Context, id string) error
	ClearOrders(ctx context.Context) error
}

// CartService определяет операции над корзиной
type CartService interface {
	AddItem(ctx context.Context, cartID string, item CartItem) error
	Items(ctx context.Context, cartID string) ([]CartItem, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
	TotalPrice(ctx context.Context, cartID string) (int64, error)
}

// CheckoutRequest представляет данные формы оформления заказа
type CheckoutRequest struct {
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          string      `json:"email"`
	CountryCode    string      `json:"country_code"`
	Phone          string      `json:"phone"`
	AlternatePhone string      `json:"alternate_phone,omitempty"`
	Address        string      `json:"address"`
	Area           string      `json:"area,omitempty"`
	City           string      `json:"city"`
	PostalCode     string      `json:"postal_code,omitempty"`
	Landmark       string      `json:"landmark,omitempty"`
	Instructions   string      `json:"instructions,omitempty"`
	PaymentType    PaymentType `json:"payment_type"`
	PromoCode      string      `json:"promo_code,omitempty"`
	AgreeToTerms   bool        `json:"agree_to_terms"`
}

// PromoResult представляет результат проверки промокода
type PromoResult struct {
	Valid    bool   `json:"valid"`
	Discount int64  `json:"discount"`
	Message  string `json:"message"`
}

// CheckoutService определяет операции оформления заказа
type CheckoutService interface {
	Submit(ctx context.Context, cartID string, req CheckoutRequest) (*Order, error)
	ValidatePromo(code string, subtotal int64) PromoResult
	DeliveryQuote(subtotal int64) int64
}

// OrderService определяет операции дашборда над заказами
type OrderService interface {
	Orders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	OrderByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

// AuthService определяет проверку пасскода администратора
type AuthService interface {
	Login(passcode string) (string, error)
}

// Notifier определяет отправку уведомления о заказе
type Notifier interface {
	SendOrderEmail(ctx context.Context, order *Order) error
}
