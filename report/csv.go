package report

import (
	"time"

	"sufra/model"

	"github.com/gocarina/gocsv"
)

// RenderCSV flattens the range report's detail rows for download.
func RenderCSV(orders []model.OrderRecord, startDate, endDate time.Time) ([]byte, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrNoDateRange
	}

	rows := make([]model.ReportRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, model.ReportRow{
			OrderNumber: order.OrderNumber,
			CreatedAt:   order.CreatedAt.Format("02/01/2006 15:04"),
			Status:      order.Status,
			OrderType:   orderKind(order),
			TotalPrice:  order.TotalPrice,
			Discount:    order.Discount,
			FinalPrice:  order.FinalPrice,
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, err
	}
	return out, nil
}
