package domain

import "time"

// Level представляет экзаменационный уровень
type Level string

const (
	LevelOLevel Level = "o-level"
	LevelALevel Level = "a-level"
	LevelIGCSE  Level = "igcse"
)

// Name возвращает отображаемое название уровня
func (l Level) Name() string {
	switch l {
	case LevelOLevel:
		return "O Level"
	case LevelALevel:
		return "A Level"
	case LevelIGCSE:
		return "IGCSE"
	}
	return string(l)
}

// Valid проверяет, что уровень входит в фиксированный список
func (l Level) Valid() bool {
	return l == LevelOLevel || l == LevelALevel || l == LevelIGCSE
}

// Session представляет экзаменационную сессию
type Session string

const (
	SessionMayJun Session = "may-jun"
	SessionOctNov Session = "oct-nov"
)

// Binding представляет вариант переплета
type Binding string

const (
	BindingNone Binding = "none"
	BindingTape Binding = "tape"
	BindingRing Binding = "ring"
)

// Valid проверяет, что вариант переплета известен
func (b Binding) Valid() bool {
	return b == BindingNone || b == BindingTape || b == BindingRing
}

// Description возвращает отображаемое описание переплета
func (b Binding) Description() string {
	switch b {
	case BindingTape:
		return "Tape Binding"
	case BindingRing:
		return "Ring Binding"
	}
	return "No Binding"
}

// Subject представляет предмет каталога
type Subject struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Code   string   `json:"code"`
	Papers []string `json:"papers"`
}

// NoteProduct представляет готовый товар каталога: печатные конспекты
// уровня с фиксированной ценой
type NoteProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// YearRange представляет включительный диапазон годов
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PaperSelection представляет выбранную работу с сессиями и диапазоном годов.
// Инвариант: Sessions непусто, Years.Start <= Years.End в пределах [2010, 2024].
type PaperSelection struct {
	Paper    string    `json:"paper"`
	Sessions []Session `json:"sessions"`
	Years    YearRange `json:"years"`
}

// SubjectSelection представляет выбор работ внутри одного предмета
type SubjectSelection struct {
	SubjectID string           `json:"subject_id"`
	Papers    []PaperSelection `json:"papers"`
}

// PackageDetails описывает собранный пользователем пакет внутри позиции корзины
type PackageDetails struct {
	Level    string                 `json:"level"`
	Subjects []PackageSubjectDetail `json:"subjects"`
	Binding  string                 `json:"binding"`
}

// PackageSubjectDetail описывает предмет внутри собранного пакета
type PackageSubjectDetail struct {
	Name   string               `json:"name"`
	Code   string               `json:"code"`
	Papers []PackagePaperDetail `json:"papers"`
}

// PackagePaperDetail описывает работу внутри собранного пакета
type PackagePaperDetail struct {
	Paper     string `json:"paper"`
	Sessions  string `json:"sessions"`
	YearRange string `json:"year_range"`
}

// ItemKind представляет тип позиции корзины
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindCustom  ItemKind = "custom"
)

// CartItem представляет позицию корзины.
// Для ItemKindCustom поле Details содержит описание собранного пакета.
type CartItem struct {
	ID        string          `json:"id"`
	Kind      ItemKind        `json:"kind"`
	Name      string          `json:"name"`
	UnitPrice int64           `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Details   *PackageDetails `json:"details,omitempty"`
}

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid проверяет, что статус входит в фиксированный список
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus представляет статус оплаты, независимая от статуса заказа ось
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusCODPending PaymentStatus = "cod_pending"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Valid проверяет, что статус оплаты известен
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCODPending, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentType представляет способ оплаты
type PaymentType string

const (
	PaymentTypeEasypaisa PaymentType = "easypaisa"
	PaymentTypeBank      PaymentType = "bank"
)

// Valid проверяет, что способ оплаты поддерживается
func (t PaymentType) Valid() bool {
	return t == PaymentTypeEasypaisa || t == PaymentTypeBank
}

// PaymentInstructions описывает реквизиты для перевода оплаты заказа
type PaymentInstructions struct {
	Title   string   `json:"title"`
	Lines   []string `json:"lines"`
	Message string   `json:"message"`
}

// CustomerInfo представляет данные покупателя
type CustomerInfo struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
}

// DeliveryAddress представляет адрес доставки
type DeliveryAddress struct {
	Address      string `json:"address"`
	Area         string `json:"area,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// OrderItem представляет неизменяемый снимок позиции корзины внутри заказа
type OrderItem struct {
	ID        string          `json:"id"`
	Kind      ItemKind        `json:"kind"`
	Name      string          `json:"name"`
	UnitPrice int64           `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Details   *PackageDetails `json:"details,omitempty"`
}

// Order представляет оформленный заказ.
// Инвариант: Total = Subtotal + DeliveryCharges - PromoDiscount на момент
// создания; после создания суммы не пересчитываются (snapshot-семантика).
type Order struct {
	ID                string          `json:"id"`
	Number            string          `json:"order_number"`
	Customer          CustomerInfo    `json:"customer"`
	Delivery          DeliveryAddress `json:"delivery"`
	PaymentType       PaymentType     `json:"payment_type"`
	Items             []OrderItem     `json:"items"`
	Subtotal          int64           `json:"subtotal"`
	DeliveryCharges   int64           `json:"delivery_charges"`
	PromoCode         string          `json:"promo_code,omitempty"`
	PromoDiscount     int64           `json:"promo_discount"`
	Total             int64           `json:"total"`
	Status            OrderStatus     `json:"status"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderFilter задает условия выборки заказов для дашборда
type OrderFilter struct {
	Status        OrderStatus   // пустое значение — без фильтра
	PaymentStatus PaymentStatus // пустое значение — без фильтра
	Search        string        // поиск по номеру заказа, имени и телефону
}

// City представляет город доставки из каталога
type City struct {
	Name            string   `json:"name"`
	DeliveryCharges int64    `json:"delivery_charges"`
	CODAvailable    bool     `json:"cod_available"`
	EstimatedDays   string   `json:"estimated_days"`
	Areas           []string `json:"areas"`
}

// PromoCode представляет фиксированный промокод
type PromoCode struct {
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"` // процент скидки
	MinPurchase int64   `json:"min_purchase"`
	Active      bool    `json:"active"`
	Description string  `json:"description"`
}

// CountryCode представляет телефонный код страны
type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}
