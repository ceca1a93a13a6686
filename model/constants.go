package model

const (
	AdminRole   = "admin"
	CashierRole = "cashier"
	ManagerRole = "manager"

	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"

	//sentinel for the branch filter, 0 means every branch
	AllBranches = 0

	//page size of the report detail table
	ReportPageSize = 10
	//single page large enough to cover a whole range, used for the stats fetch
	StatsPageSize = 10000

	UnknownProductLabel = "منتج غير معروف"
)
