package model

import "time"

// records returned by the remote orders API. the console never writes
// these locally, every mutation goes back upstream.

type OrderRecord struct {
	ID          int          `json:"id"`
	OrderNumber string       `json:"orderNumber"`
	CustomerID  int          `json:"customerId"`
	DeliveryFee *DeliveryFee `json:"deliveryFee,omitempty"`
	Items       []OrderItem  `json:"items"`
	TotalPrice  float64      `json:"totalPrice"`
	Discount    float64      `json:"discount"`
	FinalPrice  float64      `json:"finalPrice"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type DeliveryFee struct {
	Fee float64 `json:"fee"`
}

type OrderItem struct {
	ProductID   int           `json:"productId"`
	Product     *ProductRef   `json:"product,omitempty"`
	ProductName string        `json:"productName"`
	Quantity    int           `json:"quantity"`
	UnitPrice   float64       `json:"unitPrice"`
	Discount    float64       `json:"discount"`
	Options     []OptionPrice `json:"options,omitempty"`
}

type ProductRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// priced snapshot of an add-on option, captured at order time
type OptionPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Branch struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Blocked     bool   `json:"blocked"`
}

// promotional discount on one menu item, active between Start and End
type Offer struct {
	ID         int     `json:"id"`
	ProductID  int     `json:"productId"`
	Percentage float64 `json:"percentage"`
	Start      string  `json:"startDate"`
	End        string  `json:"endDate"`
}

// response of the order-report endpoint
type OrderReportResponse struct {
	Data       []OrderRecord `json:"data"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
	TotalPrice float64       `json:"totalPrice"`
}
