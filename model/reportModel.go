package model

// ProductSales accumulates one menu item's share of a range report.
type ProductSales struct {
	Name     string  `json:"name" csv:"المنتج"`
	Quantity int     `json:"quantity" csv:"الكمية"`
	Revenue  float64 `json:"revenue" csv:"الإيراد"`
}

// ReportSummary is recomputed from the full order set on every fetch
// and reset to its zero value on failure.
type ReportSummary struct {
	TotalSales     float64        `json:"total_sales"`
	TotalOrders    int            `json:"total_orders"`
	DeliveryOrders int            `json:"delivery_orders"`
	PickupOrders   int            `json:"pickup_orders"`
	TopProducts    []ProductSales `json:"top_products"`
	DateRange      string         `json:"date_range"`
}

type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PageSize    int `json:"page_size"`
}

// flattened report row for the csv export
type ReportRow struct {
	OrderNumber string  `csv:"رقم الطلب"`
	CreatedAt   string  `csv:"التاريخ"`
	Status      string  `csv:"الحالة"`
	OrderType   string  `csv:"النوع"`
	TotalPrice  float64 `csv:"الإجمالي"`
	Discount    float64 `csv:"الخصم"`
	FinalPrice  float64 `csv:"الصافي"`
}
