package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mtw/paperstore/internal/domain"
)

// EmailConfig содержит настройки транзакционного email-сервиса
type EmailConfig struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	UserID     string
}

// EmailClient отправляет уведомления о заказах через EmailJS-совместимый
// HTTP API. Реализует domain.Notifier.
type EmailClient struct {
	cfg        EmailConfig
	httpClient *http.Client
}

// NewEmailClient создает новый EmailClient
func NewEmailClient(cfg EmailConfig) *EmailClient {
	return &EmailClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// emailRequest представляет тело запроса отправки письма
type emailRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// SendOrderEmail отправляет уведомление о новом заказе
func (c *EmailClient) SendOrderEmail(ctx context.Context, order *domain.Order) error {
	body, err := json.Marshal(emailRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.UserID,
		TemplateParams: orderTemplateParams(order),
	})
	if err != nil {
		return fmt.Errorf("email client: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1.0/email/send", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("email client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email client: unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

// orderTemplateParams собирает поля шаблона письма
func orderTemplateParams(order *domain.Order) map[string]string {
	return map[string]string{
		"order_id":         order.Number,
		"order_date":       order.CreatedAt.Format("02/01/2006"),
		"order_total":      fmt.Sprintf("%d", order.Total),
		"payment_method":   strings.ToUpper(string(order.PaymentType)),
		"customer_name":    fmt.Sprintf("%s %s", order.Customer.FirstName, order.Customer.LastName),
		"customer_email":   order.Customer.Email,
		"customer_phone":   order.Customer.Phone,
		"customer_address": fmt.Sprintf("%s, %s", order.Delivery.Address, order.Delivery.City),
		"order_items":      formatOrderItems(order.Items),
	}
}

// formatOrderItems возвращает плоское текстовое описание позиций заказа
func formatOrderItems(items []domain.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s\nQuantity: %d\nPrice: PKR %d",
			formatItemName(item), item.Quantity, item.UnitPrice*int64(item.Quantity)))
	}
	return strings.Join(parts, "\n\n")
}

// formatItemName описывает позицию; для собранных пакетов — уровень,
// предметы с работами и переплет
func formatItemName(item domain.OrderItem) string {
	if item.Kind != domain.ItemKindCustom || item.Details == nil {
		return item.Name
	}

	d := item.Details
	desc := fmt.Sprintf("%s Package (%d subjects)", d.Level, len(d.Subjects))

	if len(d.Subjects) > 0 {
		subjectParts := make([]string, 0, len(d.Subjects))
		for _, subject := range d.Subjects {
			paperParts := make([]string, 0, len(subject.Papers))
			for _, paper := range subject.Papers {
				paperParts = append(paperParts, fmt.Sprintf("%s (%s)", paper.Paper, paper.YearRange))
			}
			papers := "No papers"
			if len(paperParts) > 0 {
				papers = strings.Join(paperParts, ", ")
			}
			subjectParts = append(subjectParts, fmt.Sprintf("%s (%s)", subject.Name, papers))
		}
		desc += " - Subjects: " + strings.Join(subjectParts, ", ")
	}

	return desc + " - Binding: " + d.Binding
}
