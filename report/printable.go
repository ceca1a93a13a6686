package report

import (
	"errors"
	"html/template"
	"strings"
	"time"

	"sufra/model"
	"sufra/utils"
)

var (
	ErrNoOrders    = errors.New("لا توجد طلبات للطباعة")
	ErrNoDateRange = errors.New("يرجى تحديد فترة التقرير")
)

var printableTemplate = template.Must(template.New("printable").Funcs(template.FuncMap{
	"money":  utils.FormatArabicNumber,
	"count":  utils.FormatArabicCount,
	"digits": utils.ToArabicDigits,
	"status": statusLabel,
	"kind":   orderKind,
	"date": func(t time.Time) string {
		return utils.ToArabicDigits(t.Format("02/01/2006 15:04"))
	},
}).Parse(printableHTML))

type printableData struct {
	Summary    model.ReportSummary
	Orders     []model.OrderRecord
	BranchName string
	Range      string
}

// RenderPrintable builds the self contained print document for a range
// report. the caller feeds the string to a hidden iframe and opens the
// platform print dialog on it.
func RenderPrintable(summary model.ReportSummary, orders []model.OrderRecord, branchName string, startDate, endDate time.Time) (string, error) {
	if len(orders) == 0 {
		return "", ErrNoOrders
	}
	if startDate.IsZero() || endDate.IsZero() {
		return "", ErrNoDateRange
	}
	if branchName == "" {
		branchName = "جميع الفروع"
	}

	data := printableData{
		Summary:    summary,
		Orders:     orders,
		BranchName: branchName,
		Range:      utils.ToArabicDigits(startDate.Format("02/01/2006") + " - " + endDate.Format("02/01/2006")),
	}

	var b strings.Builder
	if err := printableTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func statusLabel(status string) string {
	switch status {
	case model.OrderStatusPending:
		return "قيد الانتظار"
	case model.OrderStatusPreparing:
		return "قيد التحضير"
	case model.OrderStatusReady:
		return "جاهز"
	case model.OrderStatusDelivered:
		return "تم التوصيل"
	case model.OrderStatusCancelled:
		return "ملغي"
	}
	return status
}

func orderKind(order model.OrderRecord) string {
	if order.DeliveryFee == nil {
		return "-"
	}
	if order.DeliveryFee.Fee > 0 {
		return "توصيل"
	}
	return "استلام"
}

const printableHTML = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="utf-8">
<title>تقرير المبيعات</title>
<style>
body { font-family: "Segoe UI", Tahoma, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 22px; margin-bottom: 4px; }
.meta { color: #555; margin-bottom: 16px; }
.cards { display: flex; gap: 12px; margin-bottom: 20px; }
.card { border: 1px solid #ccc; border-radius: 6px; padding: 10px 16px; text-align: center; }
.card .value { font-size: 20px; font-weight: bold; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
th, td { border: 1px solid #bbb; padding: 6px 8px; text-align: center; font-size: 13px; }
th { background: #f0f0f0; }
@media print { .cards { break-inside: avoid; } }
</style>
</head>
<body>
<h1>تقرير المبيعات</h1>
<div class="meta">{{.BranchName}} — {{.Range}}</div>

<div class="cards">
<div class="card"><div class="value">{{money .Summary.TotalSales}}</div><div>إجمالي المبيعات</div></div>
<div class="card"><div class="value">{{count .Summary.TotalOrders}}</div><div>عدد الطلبات</div></div>
<div class="card"><div class="value">{{count .Summary.DeliveryOrders}}</div><div>طلبات التوصيل</div></div>
<div class="card"><div class="value">{{count .Summary.PickupOrders}}</div><div>طلبات الاستلام</div></div>
</div>

<table>
<tr><th>رقم الطلب</th><th>التاريخ</th><th>النوع</th><th>الحالة</th><th>الإجمالي</th><th>الخصم</th><th>الصافي</th></tr>
{{range .Orders}}
<tr>
<td>{{digits .OrderNumber}}</td>
<td>{{date .CreatedAt}}</td>
<td>{{kind .}}</td>
<td>{{status .Status}}</td>
<td>{{money .TotalPrice}}</td>
<td>{{money .Discount}}</td>
<td>{{money .FinalPrice}}</td>
</tr>
{{end}}
</table>

<h1>الأصناف الأكثر مبيعاً</h1>
<table>
<tr><th>المنتج</th><th>الكمية</th><th>الإيراد</th></tr>
{{range .Summary.TopProducts}}
<tr><td>{{.Name}}</td><td>{{count .Quantity}}</td><td>{{money .Revenue}}</td></tr>
{{end}}
</table>
</body>
</html>
`
