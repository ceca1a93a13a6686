package report

import (
	"sort"
	"time"

	"sufra/model"
	"sufra/utils"
)

const topProductsLimit = 5

// ComputeSummary reduces the full order set of a range into the figures
// shown on the summary cards. totalPriceOverride is the upstream total
// for the range and wins over the local sum when it is present.
func ComputeSummary(orders []model.OrderRecord, startDate, endDate time.Time, totalPriceOverride float64) model.ReportSummary {
	if len(orders) == 0 {
		return model.ReportSummary{
			TopProducts: []model.ProductSales{},
			DateRange:   "لا توجد بيانات في هذه الفترة",
		}
	}

	summary := model.ReportSummary{
		TotalOrders: len(orders),
		DateRange:   formatDateRange(startDate, endDate),
	}

	//accumulate per product, keeping first-seen order for stable ties
	totals := make(map[string]*model.ProductSales)
	var names []string

	for _, order := range orders {
		summary.TotalSales += order.FinalPrice

		if order.DeliveryFee != nil {
			if order.DeliveryFee.Fee > 0 {
				summary.DeliveryOrders++
			} else {
				summary.PickupOrders++
			}
		}

		for _, item := range order.Items {
			name := productName(item)
			sales, ok := totals[name]
			if !ok {
				sales = &model.ProductSales{Name: name}
				totals[name] = sales
				names = append(names, name)
			}
			sales.Quantity += item.Quantity
			sales.Revenue += lineRevenue(item)
		}
	}

	if totalPriceOverride > 0 {
		summary.TotalSales = totalPriceOverride
	}

	top := make([]model.ProductSales, 0, len(names))
	for _, name := range names {
		top = append(top, *totals[name])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}
	summary.TopProducts = top

	return summary
}

// prefer the live catalog name, fall back to the snapshot captured at
// order time, then to the fixed unknown label
func productName(item model.OrderItem) string {
	if item.Product != nil && item.Product.Name != "" {
		return item.Product.Name
	}
	if item.ProductName != "" {
		return item.ProductName
	}
	return model.UnknownProductLabel
}

func lineRevenue(item model.OrderItem) float64 {
	revenue := item.UnitPrice * float64(item.Quantity)
	for _, option := range item.Options {
		revenue += option.Price * float64(item.Quantity)
	}
	return revenue - item.Discount
}

func formatDateRange(startDate, endDate time.Time) string {
	return utils.ToArabicDigits(startDate.Format("02/01/2006") + " - " + endDate.Format("02/01/2006"))
}
