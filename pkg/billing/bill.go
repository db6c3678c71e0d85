// Package billing renders the printable Urdu receipt for an order.
// The layout targets an 80mm thermal printer.
package billing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/likeam/mernpos/internal/domain/order"
)

type billItem struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

type billData struct {
	OrderNumber   string
	Date          string
	CustomerName  string
	CustomerPhone string
	Items         []billItem
	Subtotal      string
	Tax           string
	HasTax        bool
	Discount      string
	HasDiscount   bool
	Total         string
	CashReceived  string
	Change        string
}

var billTemplate = template.Must(template.New("bill").Parse(billHTML))

// Render produces the bill HTML for an order. Item lines prefer the Urdu
// product name, falling back to the English one.
func Render(o *order.Order) (string, error) {
	data := billData{
		OrderNumber:   o.OrderNumber,
		Date:          o.OrderDate.Format("02/01/2006, 15:04"),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Subtotal:      money(o.Subtotal),
		Tax:           money(o.Tax),
		HasTax:        o.Tax > 0,
		Discount:      money(o.Discount),
		HasDiscount:   o.Discount > 0,
		Total:         money(o.Total),
		CashReceived:  money(o.CashReceived),
		Change:        money(o.Change),
	}

	for _, it := range o.Items {
		name := it.ProductNameUrdu
		if name == "" {
			name = it.ProductName
		}
		data.Items = append(data.Items, billItem{
			Name:     name,
			Quantity: it.Quantity,
			Price:    money(it.Price),
			Total:    money(it.Total),
		})
	}

	var buf bytes.Buffer
	if err := billTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render bill: %w", err)
	}
	return buf.String(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

const billHTML = `<!DOCTYPE html>
<html dir="rtl" lang="ur">
<head>
    <meta charset="UTF-8">
    <title>بل</title>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Noto+Nastaliq+Urdu&display=swap');

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: 'Noto Nastaliq Urdu', 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            direction: rtl;
            line-height: 1.6;
            color: #000;
            background: #fff;
            padding: 10px;
            font-size: 14px;
        }

        .receipt {
            width: 80mm;
            margin: 0 auto;
            border: 1px solid #000;
            padding: 15px;
            background: white;
        }

        .header {
            text-align: center;
            margin-bottom: 15px;
            border-bottom: 2px dashed #000;
            padding-bottom: 10px;
        }

        .store-name { font-size: 22px; font-weight: bold; margin-bottom: 5px; }
        .store-address { font-size: 14px; margin-bottom: 5px; }

        .order-info {
            margin-bottom: 15px;
            border-bottom: 1px dashed #000;
            padding-bottom: 10px;
        }

        .info-row {
            display: flex;
            justify-content: space-between;
            margin-bottom: 3px;
        }

        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 15px;
        }

        .items-table th {
            border-bottom: 1px solid #000;
            padding: 5px 3px;
            text-align: right;
            font-weight: bold;
        }

        .items-table td {
            padding: 4px 3px;
            border-bottom: 1px dashed #ccc;
        }

        .item-name { text-align: right; width: 50%; }
        .item-qty, .item-price, .item-total { text-align: center; width: 16.66%; }

        .totals {
            margin-bottom: 15px;
            border-top: 2px dashed #000;
            padding-top: 10px;
        }

        .total-row {
            display: flex;
            justify-content: space-between;
            margin-bottom: 5px;
        }

        .total-final {
            font-weight: bold;
            font-size: 16px;
            border-top: 1px solid #000;
            padding-top: 5px;
        }

        .payment-info {
            margin-bottom: 15px;
            border-top: 1px dashed #000;
            padding-top: 10px;
        }

        .footer {
            text-align: center;
            margin-top: 20px;
            border-top: 2px dashed #000;
            padding-top: 10px;
            font-size: 12px;
        }

        .thank-you { font-size: 16px; font-weight: bold; margin-bottom: 10px; }

        @media print {
            body { padding: 0; }
            .receipt { border: none; padding: 10px; }
        }
    </style>
</head>
<body>
    <div class="receipt">
        <div class="header">
            <div class="store-name">گروسری اسٹور</div>
            <div class="store-address">مرکزی مارکیٹ، لاہور</div>
            <div class="store-phone">0321-1234567</div>
        </div>

        <div class="order-info">
            <div class="info-row">
                <span>آرڈر نمبر:</span>
                <span>{{.OrderNumber}}</span>
            </div>
            <div class="info-row">
                <span>تاریخ اور وقت:</span>
                <span>{{.Date}}</span>
            </div>
            {{if .CustomerName}}
            <div class="info-row">
                <span>گاہک کا نام:</span>
                <span>{{.CustomerName}}</span>
            </div>
            {{end}}
            {{if .CustomerPhone}}
            <div class="info-row">
                <span>فون نمبر:</span>
                <span>{{.CustomerPhone}}</span>
            </div>
            {{end}}
        </div>

        <table class="items-table">
            <thead>
                <tr>
                    <th class="item-name">پرڈکٹ</th>
                    <th class="item-qty">مقدار</th>
                    <th class="item-price">قیمت</th>
                    <th class="item-total">کل</th>
                </tr>
            </thead>
            <tbody>
                {{range .Items}}
                <tr>
                    <td class="item-name">{{.Name}}</td>
                    <td class="item-qty">{{.Quantity}}</td>
                    <td class="item-price">{{.Price}}</td>
                    <td class="item-total">{{.Total}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <div class="totals">
            <div class="total-row">
                <span>سب ٹوٹل:</span>
                <span>Rs. {{.Subtotal}}</span>
            </div>
            {{if .HasTax}}
            <div class="total-row">
                <span>ٹیکس:</span>
                <span>Rs. {{.Tax}}</span>
            </div>
            {{end}}
            {{if .HasDiscount}}
            <div class="total-row">
                <span>ڈسکاؤنٹ:</span>
                <span>Rs. {{.Discount}}</span>
            </div>
            {{end}}
            <div class="total-row total-final">
                <span>کل رقم:</span>
                <span>Rs. {{.Total}}</span>
            </div>
        </div>

        <div class="payment-info">
            <div class="info-row">
                <span>ادائیگی کا طریقہ:</span>
                <span>کیش</span>
            </div>
            <div class="info-row">
                <span>وصولی رقم:</span>
                <span>Rs. {{.CashReceived}}</span>
            </div>
            <div class="info-row">
                <span>بدلہ:</span>
                <span>Rs. {{.Change}}</span>
            </div>
        </div>

        <div class="footer">
            <div class="thank-you">شکریہ!</div>
            <div>دوبارہ تشریف لائیے</div>
            <div>واپسی کی شرائط لاگو نہیں ہیں</div>
        </div>
    </div>
</body>
</html>
`
