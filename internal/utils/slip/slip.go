// Package slip рендерит печатную накладную заказа: статический HTML
// документ для печати средствами браузера.
package slip

import (
	"fmt"
	"html/template"
	"io"

	"github.com/mtw/paperstore/internal/domain"
)

var slipTemplate = template.Must(template.New("slip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Delivery Slip {{.Order.Number}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #333; padding: 6px 10px; text-align: left; }
.totals td { border: none; text-align: right; }
.meta { margin: 0.2em 0; }
</style>
</head>
<body onload="window.print()">
<h1>Delivery Slip — {{.Order.Number}}</h1>
<p class="meta">Date: {{.Date}}</p>
<p class="meta">Customer: {{.Order.Customer.FirstName}} {{.Order.Customer.LastName}}</p>
<p class="meta">Phone: {{.Order.Customer.Phone}}</p>
<p class="meta">Email: {{.Order.Customer.Email}}</p>
<p class="meta">Address: {{.Order.Delivery.Address}}{{if .Order.Delivery.Area}}, {{.Order.Delivery.Area}}{{end}}, {{.Order.Delivery.City}}</p>
{{if .Order.Delivery.Instructions}}<p class="meta">Instructions: {{.Order.Delivery.Instructions}}</p>{{end}}
<p class="meta">Payment: {{.Order.PaymentType}} ({{.Order.PaymentStatus}})</p>
<table>
<tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>
{{range .Order.Items}}
<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>PKR {{.UnitPrice}}</td><td>PKR {{.Total}}</td></tr>
{{end}}
</table>
<table class="totals">
<tr><td>Subtotal:</td><td>PKR {{.Order.Subtotal}}</td></tr>
<tr><td>Delivery:</td><td>PKR {{.Order.DeliveryCharges}}</td></tr>
{{if .Order.PromoDiscount}}<tr><td>Discount ({{.Order.PromoCode}}):</td><td>-PKR {{.Order.PromoDiscount}}</td></tr>{{end}}
<tr><td><strong>Total:</strong></td><td><strong>PKR {{.Order.Total}}</strong></td></tr>
</table>
</body>
</html>
`))

type slipItem struct {
	Name      string
	Quantity  int
	UnitPrice int64
	Total     int64
}

type slipOrder struct {
	*domain.Order
	Items []slipItem
}

type slipData struct {
	Order slipOrder
	Date  string
}

// Render записывает накладную заказа в w
func Render(w io.Writer, order *domain.Order) error {
	items := make([]slipItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, slipItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.UnitPrice * int64(item.Quantity),
		})
	}

	data := slipData{
		Order: slipOrder{Order: order, Items: items},
		Date:  order.CreatedAt.Format("2 January 2006"),
	}

	if err := slipTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render delivery slip: %w", err)
	}

	return nil
}
