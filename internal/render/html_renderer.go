package render

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/utils"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice #{{.Sale.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .document { max-width: 820px; margin: 0 auto; }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .meta { text-align: right; font-size: 14px; }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .section { margin-bottom: 24px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    td.amount, th.amount { text-align: right; }
    .summary { margin-top: 12px; font-size: 14px; }
    .summary table { max-width: 340px; margin-left: auto; }
    .summary .grand { font-size: 16px; font-weight: bold; }
    .footer {
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="document">
    <div class="header">
      <div>
        <div><strong>{{.ShopName}}</strong></div>
        <div>{{.Sale.Customer.Name}}</div>
        {{if .Sale.Customer.Phone}}<div>{{.Sale.Customer.Phone}}</div>{{end}}
        {{if .Sale.Customer.Address}}<div>{{.Sale.Customer.Address}}</div>{{end}}
      </div>
      <div class="meta">
        <div class="label">Invoice</div>
        <div><strong>#{{.Sale.InvoiceNumber}}</strong></div>
        <div>Date: {{formatDate .Sale.SaleDate}}</div>
      </div>
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Item</th>
            <th class="amount">Quantity</th>
            <th class="amount">Unit Price</th>
            <th class="amount">Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Sale.Items}}
          <tr>
            <td>{{.ProductName}}</td>
            <td class="amount">{{.Quantity}}</td>
            <td class="amount">{{formatTaka .PriceAtSale}}</td>
            <td class="amount">{{formatTaka (lineTotal .)}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="summary">
      <table>
        <tr><td>Total</td><td class="amount">{{formatTaka .Sale.TotalAmount}}</td></tr>
        <tr><td>Paid</td><td class="amount">{{formatTaka .Sale.AmountPaid}}</td></tr>
        <tr><td>Previous Balance ({{balanceLabel .Sale.PreviousBalance}})</td><td class="amount">{{formatBalance .Sale.PreviousBalance}}</td></tr>
        <tr class="grand"><td>Current Balance ({{balanceLabel .Sale.NewTotalBalance}})</td><td class="amount">{{formatBalance .Sale.NewTotalBalance}}</td></tr>
      </table>
    </div>

    <div class="footer">Thank you for your business.</div>
  </div>
</body>
</html>
`

const ledgerHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Ledger - {{.Ledger.Customer.Name}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .document { max-width: 820px; margin: 0 auto; }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .meta { text-align: right; font-size: 14px; }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    td.amount, th.amount { text-align: right; }
    .summary { margin-top: 16px; font-size: 14px; }
    .summary table { max-width: 340px; margin-left: auto; }
    .summary .grand { font-size: 16px; font-weight: bold; }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="document">
    <div class="header">
      <div>
        <div><strong>{{.ShopName}}</strong></div>
        <div>{{.Ledger.Customer.Name}}</div>
        {{if .Ledger.Customer.Phone}}<div>{{.Ledger.Customer.Phone}}</div>{{end}}
      </div>
      <div class="meta">
        <div class="label">Customer Ledger</div>
        <div>Printed: {{formatDate .PrintedAt}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Description</th>
          <th class="amount">Debit</th>
          <th class="amount">Credit</th>
          <th class="amount">Balance</th>
        </tr>
      </thead>
      <tbody>
        {{range .Ledger.OrderedByDate}}
        <tr>
          <td>{{formatDate .Date}}</td>
          <td>{{.Description}}</td>
          <td class="amount">{{if not .Debit.IsZero}}{{formatTaka .Debit}}{{end}}</td>
          <td class="amount">{{if not .Credit.IsZero}}{{formatTaka .Credit}}{{end}}</td>
          <td class="amount">{{formatBalance .RunningBalanceAfter}} {{balanceLabel .RunningBalanceAfter}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="summary">
      <table>
        <tr><td>Total Debit</td><td class="amount">{{formatTaka .Ledger.TotalDebit}}</td></tr>
        <tr><td>Total Credit</td><td class="amount">{{formatTaka .Ledger.TotalCredit}}</td></tr>
        <tr class="grand"><td>Balance ({{balanceLabel .Ledger.Balance}})</td><td class="amount">{{formatBalance .Ledger.Balance}}</td></tr>
      </table>
    </div>
  </div>
</body>
</html>
`

type invoiceTemplateData struct {
	ShopName string
	Sale     *domain.SaleDetails
}

type ledgerTemplateData struct {
	ShopName  string
	Ledger    *domain.CustomerLedger
	PrintedAt time.Time
}

type HTMLRenderer struct {
	invoiceTpl *template.Template
	ledgerTpl  *template.Template
	now        func() time.Time
}

func NewHTMLRenderer() Renderer {
	funcs := template.FuncMap{
		"formatTaka":    utils.FormatTaka,
		"formatBalance": utils.FormatBalance,
		"balanceLabel":  utils.BalanceLabel,
		"formatDate":    formatDate,
		"lineTotal":     lineTotal,
	}
	return &HTMLRenderer{
		invoiceTpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
		ledgerTpl:  template.Must(template.New("ledger").Funcs(funcs).Parse(ledgerHTMLTemplate)),
		now:        time.Now,
	}
}

func (r *HTMLRenderer) RenderInvoice(shopName string, details *domain.SaleDetails) (string, error) {
	data := invoiceTemplateData{ShopName: shopName, Sale: details}
	if data.ShopName == "" {
		data.ShopName = "Invoice"
	}

	var buf bytes.Buffer
	if err := r.invoiceTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) RenderLedgerStatement(shopName string, ledger *domain.CustomerLedger) (string, error) {
	data := ledgerTemplateData{ShopName: shopName, Ledger: ledger, PrintedAt: r.now().UTC()}
	if data.ShopName == "" {
		data.ShopName = "Customer Ledger"
	}

	var buf bytes.Buffer
	if err := r.ledgerTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("02 Jan 2006")
}

func lineTotal(item domain.SaleItem) decimal.Decimal {
	return item.PriceAtSale.Mul(decimal.NewFromInt(item.Quantity))
}
