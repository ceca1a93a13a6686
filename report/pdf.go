package report

import (
	"bytes"
	"fmt"
	"time"

	"sufra/model"

	"github.com/jung-kurt/gofpdf/v2"
)

// RenderPDF builds the downloadable pdf variant of the range report.
// gofpdf's core fonts have no Arabic glyphs, so this export sticks to
// latin labels and ascii digits.
func RenderPDF(summary model.ReportSummary, orders []model.OrderRecord, branchName string, startDate, endDate time.Time) ([]byte, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrNoDateRange
	}
	if branchName == "" {
		branchName = "All branches"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Sales Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 8, fmt.Sprintf("Branch: %s", branchName))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Range: %s - %s", startDate.Format("02/01/2006"), endDate.Format("02/01/2006")))
	pdf.Ln(12)

	pdf.Cell(60, 8, fmt.Sprintf("Total sales: %.2f", summary.TotalSales))
	pdf.Cell(60, 8, fmt.Sprintf("Orders: %d", summary.TotalOrders))
	pdf.Ln(8)
	pdf.Cell(60, 8, fmt.Sprintf("Delivery: %d", summary.DeliveryOrders))
	pdf.Cell(60, 8, fmt.Sprintf("Pickup: %d", summary.PickupOrders))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(35, 8, "Order")
	pdf.Cell(40, 8, "Date")
	pdf.Cell(30, 8, "Status")
	pdf.Cell(28, 8, "Total")
	pdf.Cell(28, 8, "Discount")
	pdf.Cell(28, 8, "Final")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, order := range orders {
		pdf.Cell(35, 7, order.OrderNumber)
		pdf.Cell(40, 7, order.CreatedAt.Format("02/01/2006 15:04"))
		pdf.Cell(30, 7, order.Status)
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", order.TotalPrice))
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", order.Discount))
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", order.FinalPrice))
		pdf.Ln(7)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(80, 8, "Top products")
	pdf.Ln(8)
	pdf.Cell(80, 8, "Product")
	pdf.Cell(30, 8, "Quantity")
	pdf.Cell(40, 8, "Revenue")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, product := range summary.TopProducts {
		pdf.Cell(80, 7, product.Name)
		pdf.Cell(30, 7, fmt.Sprintf("%d", product.Quantity))
		pdf.Cell(40, 7, fmt.Sprintf("%.2f", product.Revenue))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
