package view

import (
	"sync"
	"time"

	"sufra/model"
	"sufra/report"
)

// ReportView owns everything the sales report screen displays: the
// queried range, the visible page and its rows, and the summary cards.
// every fetch is tagged with an increasing sequence number so a late
// completion of a superseded request never overwrites newer state.
type ReportView struct {
	mu      sync.Mutex
	lastSeq uint64

	StartDate time.Time
	EndDate   time.Time
	BranchID  int

	Pagination model.Pagination
	Rows       []model.OrderRecord
	Summary    model.ReportSummary
	Loading    bool
}

func NewReportView() *ReportView {
	return &ReportView{
		BranchID: model.AllBranches,
		Pagination: model.Pagination{
			CurrentPage: 1,
			PageSize:    model.ReportPageSize,
		},
	}
}

// SetRange resets the view for a new query and invalidates whatever is
// still in flight.
func (v *ReportView) SetRange(startDate, endDate time.Time, branchID int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.StartDate = startDate
	v.EndDate = endDate
	v.BranchID = branchID
	v.Pagination.CurrentPage = 1
	v.lastSeq++
}

// BeginFetch marks the view loading and returns the tag the completion
// must present.
func (v *ReportView) BeginFetch() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastSeq++
	v.Loading = true
	return v.lastSeq
}

// ApplyPage installs one page of detail rows. returns false and changes
// nothing when the fetch has been superseded.
func (v *ReportView) ApplyPage(seq uint64, page int, resp model.OrderReportResponse) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.lastSeq {
		return false
	}
	v.Loading = false
	v.Rows = resp.Data
	v.Pagination.TotalItems = resp.TotalItems
	v.Pagination.TotalPages = resp.TotalPages
	v.Pagination.CurrentPage = report.ClampPage(page, resp.TotalPages)
	return true
}

// ApplySummary installs the figures computed from the full range fetch.
func (v *ReportView) ApplySummary(seq uint64, summary model.ReportSummary) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.lastSeq {
		return false
	}
	v.Loading = false
	v.Summary = summary
	return true
}

// FailFetch resets the view to its empty defaults so stale figures are
// never shown after an error.
func (v *ReportView) FailFetch(seq uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.lastSeq {
		return false
	}
	v.Loading = false
	v.Rows = nil
	v.Summary = model.ReportSummary{}
	v.Pagination.TotalItems = 0
	v.Pagination.TotalPages = 0
	v.Pagination.CurrentPage = 1
	return true
}

// PageLabels returns the pager row for the current state.
func (v *ReportView) PageLabels() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return report.PageLabels(v.Pagination.CurrentPage, v.Pagination.TotalPages)
}
