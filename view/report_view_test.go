package view

import (
	"reflect"
	"testing"
	"time"

	"sufra/model"
)

func rangeFor(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
}

func TestReportViewAppliesLatestFetch(t *testing.T) {
	start, end := rangeFor(t)
	rv := NewReportView()
	rv.SetRange(start, end, model.AllBranches)

	seq := rv.BeginFetch()
	resp := model.OrderReportResponse{
		Data:       []model.OrderRecord{{ID: 1}},
		TotalItems: 25,
		TotalPages: 3,
	}
	if !rv.ApplyPage(seq, 2, resp) {
		t.Fatalf("latest fetch must apply")
	}
	if rv.Pagination.CurrentPage != 2 || rv.Pagination.TotalPages != 3 || rv.Pagination.TotalItems != 25 {
		t.Fatalf("pagination = %+v", rv.Pagination)
	}
	if rv.Loading {
		t.Fatalf("loading must clear on completion")
	}
}

func TestReportViewDropsSupersededFetch(t *testing.T) {
	start, end := rangeFor(t)
	rv := NewReportView()
	rv.SetRange(start, end, model.AllBranches)

	stale := rv.BeginFetch()
	fresh := rv.BeginFetch()

	if rv.ApplyPage(stale, 1, model.OrderReportResponse{TotalItems: 99, TotalPages: 9}) {
		t.Fatalf("superseded fetch must be dropped")
	}
	if rv.Pagination.TotalItems != 0 {
		t.Fatalf("stale completion leaked into state: %+v", rv.Pagination)
	}

	if !rv.ApplySummary(fresh, model.ReportSummary{TotalOrders: 4}) {
		t.Fatalf("latest fetch must apply")
	}
	if rv.Summary.TotalOrders != 4 {
		t.Fatalf("summary not installed")
	}
}

func TestReportViewFailResetsToDefaults(t *testing.T) {
	start, end := rangeFor(t)
	rv := NewReportView()
	rv.SetRange(start, end, 2)

	seq := rv.BeginFetch()
	rv.ApplyPage(seq, 3, model.OrderReportResponse{Data: []model.OrderRecord{{ID: 1}}, TotalItems: 40, TotalPages: 4})
	rv.ApplySummary(seq, model.ReportSummary{TotalOrders: 40, TotalSales: 900})

	seq = rv.BeginFetch()
	if !rv.FailFetch(seq) {
		t.Fatalf("latest failure must apply")
	}
	if rv.Rows != nil || rv.Summary.TotalOrders != 0 || rv.Summary.TotalSales != 0 {
		t.Fatalf("failure must reset figures: %+v %+v", rv.Rows, rv.Summary)
	}
	if rv.Pagination.CurrentPage != 1 {
		t.Fatalf("failure must rewind to page 1")
	}
}

func TestReportViewPageLabels(t *testing.T) {
	start, end := rangeFor(t)
	rv := NewReportView()
	rv.SetRange(start, end, model.AllBranches)

	seq := rv.BeginFetch()
	rv.ApplyPage(seq, 5, model.OrderReportResponse{TotalItems: 100, TotalPages: 10})

	want := []string{"1", "...", "3", "4", "5", "6", "7", "...", "10"}
	if got := rv.PageLabels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("PageLabels = %v, want %v", got, want)
	}
}

func TestReportViewSetRangeInvalidatesInFlight(t *testing.T) {
	start, end := rangeFor(t)
	rv := NewReportView()
	rv.SetRange(start, end, model.AllBranches)

	seq := rv.BeginFetch()
	rv.SetRange(start, end.AddDate(0, 1, 0), model.AllBranches)

	if rv.ApplyPage(seq, 1, model.OrderReportResponse{TotalItems: 7, TotalPages: 1}) {
		t.Fatalf("changing the range mid-flight must invalidate the fetch")
	}
}
