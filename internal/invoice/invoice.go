package invoice

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"digipasal-be/internal/order"
	"digipasal-be/internal/user"
	"digipasal-be/internal/utils"
)

var (
	ErrMissingOrder = errors.New("invoice: order is required")
	ErrMissingUser  = errors.New("invoice: user is required")
)

const notSpecified = "Not specified"

// StoreInfo carries the support contact block printed on every invoice.
type StoreInfo struct {
	Name         string
	SupportEmail string
	WhatsApp     string
}

// Document is a self-contained downloadable invoice.
type Document struct {
	Filename string
	HTML     string
}

type lineView struct {
	Title    string
	Quantity int
	Price    string
	Subtotal string
}

type invoiceView struct {
	Number       string
	OrderID      string
	Date         string
	Status       string
	CustomerName string
	Email        string
	Address      string
	Phone        string
	Method       string
	Lines        []lineView
	Subtotal     string
	Shipping     string
	Tax          string
	Total        string
	Store        StoreInfo
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Number}}</title>
<style>
  body { font-family: sans-serif; color: #222; margin: 2rem; }
  h1 { font-size: 1.4rem; }
  table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
  th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
  th { background: #f4f4f4; }
  .totals td { border: none; text-align: right; }
  .totals .grand { font-weight: bold; }
  .meta, .support { font-size: 0.9rem; color: #555; }
</style>
</head>
<body>
<h1>{{.Store.Name}} &middot; Invoice {{.Number}}</h1>
<p class="meta">
  Order: {{.OrderID}}<br>
  Date: {{.Date}}<br>
  Status: {{.Status}}
</p>
<p class="meta">
  Customer: {{.CustomerName}} ({{.Email}})<br>
  Address: {{.Address}}<br>
  Phone: {{.Phone}}<br>
  Payment method: {{.Method}}
</p>
<table>
  <tr><th>Item</th><th>Qty</th><th>Unit price</th><th>Subtotal</th></tr>
  {{range .Lines}}<tr><td>{{.Title}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.Subtotal}}</td></tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Subtotal</td><td>{{.Subtotal}}</td></tr>
  <tr><td>Shipping</td><td>{{.Shipping}}</td></tr>
  <tr><td>Tax</td><td>{{.Tax}}</td></tr>
  <tr class="grand"><td>Total</td><td>{{.Total}}</td></tr>
</table>
<p class="support">
  Need help? Email {{.Store.SupportEmail}} or WhatsApp {{.Store.WhatsApp}}.
</p>
</body>
</html>
`))

// Build renders a self-contained HTML invoice for an order. It fails fast
// when the order or the owning user is absent; there is no partial
// rendering.
func Build(o *order.Order, u *user.User, store StoreInfo) (*Document, error) {
	if o == nil {
		return nil, ErrMissingOrder
	}
	if u == nil {
		return nil, ErrMissingUser
	}

	view := invoiceView{
		Number:       GenerateNumber(),
		OrderID:      o.ID,
		Date:         o.CreatedAt.Format(time.RFC1123),
		Status:       string(o.Status),
		CustomerName: u.Name,
		Email:        u.Email,
		Address:      o.ShippingAddress,
		Phone:        o.Phone,
		Method:       o.PaymentMethod,
		Subtotal:     utils.FormatNPR(o.Total()),
		Shipping:     utils.FormatNPR(0),
		Tax:          utils.FormatNPR(0),
		Total:        utils.FormatNPR(o.Total()),
		Store:        store,
	}

	if view.Address == "" {
		view.Address = notSpecified
	}
	if view.Phone == "" {
		view.Phone = notSpecified
	}

	for _, item := range o.Items {
		view.Lines = append(view.Lines, lineView{
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    utils.FormatNPR(item.Price),
			Subtotal: utils.FormatNPR(item.Subtotal()),
		})
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}

	return &Document{
		Filename: fmt.Sprintf("invoice-%s.html", utils.TruncateID(o.ID, 8)),
		HTML:     buf.String(),
	}, nil
}
