package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sufra/client"
	"sufra/model"

	"github.com/gin-gonic/gin"
)

func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/orders/report"):
			json.NewEncoder(w).Encode(model.OrderReportResponse{
				Data: []model.OrderRecord{
					{
						ID: 1, OrderNumber: "ORD-1", FinalPrice: 100, TotalPrice: 100,
						DeliveryFee: &model.DeliveryFee{Fee: 10},
						Status:      model.OrderStatusDelivered,
						CreatedAt:   time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC),
						Items:       []model.OrderItem{{ProductName: "شاورما", Quantity: 2, UnitPrice: 50}},
					},
					{
						ID: 2, OrderNumber: "ORD-2", FinalPrice: 50, TotalPrice: 50,
						DeliveryFee: &model.DeliveryFee{Fee: 0},
						Status:      model.OrderStatusReady,
						CreatedAt:   time.Date(2025, 5, 11, 12, 0, 0, 0, time.UTC),
						Items:       []model.OrderItem{{ProductName: "فلافل", Quantity: 1, UnitPrice: 50}},
					},
				},
				TotalItems: 2,
				TotalPages: 1,
			})
		case strings.HasPrefix(r.URL.Path, "/orders/"):
			json.NewEncoder(w).Encode(model.OrderRecord{ID: 1, OrderNumber: "ORD-1"})
		case r.URL.Path == "/branches/3":
			json.NewEncoder(w).Encode(model.Branch{ID: 3, Name: "فرع العليا"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func setupRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	upstream := fakeUpstream(t)
	Setup(client.New(upstream.URL, ""))

	router := gin.New()
	router.GET("/reports/sales", SalesReport)
	router.GET("/reports/sales/print", SalesReportPrintable)
	router.GET("/reports/orders/:orderid", OrderDetails)
	return router, upstream.Close
}

func TestSalesReportHandler(t *testing.T) {
	router, teardown := setupRouter(t)
	defer teardown()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/sales?start_date=2025-05-01&end_date=2025-05-31", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Status  bool                `json:"status"`
		Summary model.ReportSummary `json:"summary"`
		Orders  []model.OrderRecord `json:"orders"`
		Labels  []string            `json:"page_labels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Status {
		t.Fatalf("status flag false")
	}
	if body.Summary.TotalOrders != 2 || body.Summary.TotalSales != 150 {
		t.Fatalf("summary = %+v", body.Summary)
	}
	if body.Summary.DeliveryOrders != 1 || body.Summary.PickupOrders != 1 {
		t.Fatalf("split = %+v", body.Summary)
	}
	if len(body.Orders) != 2 {
		t.Fatalf("orders = %d", len(body.Orders))
	}
}

func TestSalesReportRejectsInvertedRange(t *testing.T) {
	router, teardown := setupRouter(t)
	defer teardown()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/sales?start_date=2025-05-31&end_date=2025-05-01", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSalesReportRejectsMissingRange(t *testing.T) {
	router, teardown := setupRouter(t)
	defer teardown()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/sales", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSalesReportPrintableHandler(t *testing.T) {
	router, teardown := setupRouter(t)
	defer teardown()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/sales/print?start_date=2025-05-01&end_date=2025-05-31&branch_id=3", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "فرع العليا") || !strings.Contains(body, "تقرير المبيعات") {
		t.Fatalf("printable output missing fragments")
	}
}

func TestOrderDetailsHandler(t *testing.T) {
	router, teardown := setupRouter(t)
	defer teardown()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/orders/1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ORD-1") {
		t.Fatalf("order details missing: %s", w.Body.String())
	}
}
