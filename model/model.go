package model

type EnvVariables struct {
	APIBaseURL string
	APIToken   string
	JWTSecret  string
	Port       string
}

type ReportRequest struct {
	StartDate string `form:"start_date" validate:"required"`
	EndDate   string `form:"end_date" validate:"required"`
	BranchID  int    `form:"branch_id"`
	Page      int    `form:"page"`
}

type BranchTimesRequest struct {
	BranchID    int    `json:"branch_id" validate:"required,number"`
	OpeningTime string `json:"opening_time" validate:"required"`
	ClosingTime string `json:"closing_time" validate:"required"`
}

type OfferRequest struct {
	ProductID  int     `json:"product_id" validate:"required,number"`
	Percentage float64 `json:"percentage" validate:"required,gt=0,lte=100"`
	Start      string  `json:"start_date" validate:"required"`
	End        string  `json:"end_date" validate:"required"`
}

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,number"`
	Role        string `json:"role" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
}

type TicketLineRequest struct {
	ProductID int     `json:"product_id" validate:"required,number"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"required,number"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Discount  float64 `json:"discount"`
}

type SubmitTicketRequest struct {
	BranchID    int                 `json:"branch_id" validate:"required,number"`
	Lines       []TicketLineRequest `json:"lines" validate:"required,dive"`
	DeliveryFee float64             `json:"delivery_fee"`
}
