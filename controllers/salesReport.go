package controllers

import (
	"net/http"
	"strconv"
	"time"

	"sufra/model"
	"sufra/report"
	"sufra/view"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseReportRequest binds the range query and rejects it before any
// upstream call when the dates are missing or inverted.
func parseReportRequest(c *gin.Context) (model.ReportRequest, time.Time, time.Time, bool) {
	var req model.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "طلب غير صالح")
		return req, time.Time{}, time.Time{}, false
	}
	if !validate(&req, c) {
		return req, time.Time{}, time.Time{}, false
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		badRequest(c, "تاريخ البداية غير صالح")
		return req, time.Time{}, time.Time{}, false
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		badRequest(c, "تاريخ النهاية غير صالح")
		return req, time.Time{}, time.Time{}, false
	}
	if endDate.Before(startDate) {
		badRequest(c, "تاريخ النهاية قبل تاريخ البداية")
		return req, time.Time{}, time.Time{}, false
	}
	if req.Page < 1 {
		req.Page = 1
	}
	return req, startDate, endDate, true
}

// SalesReport serves the report screen: one page of detail rows plus
// the summary cards computed from the full range.
func SalesReport(c *gin.Context) {
	req, startDate, endDate, ok := parseReportRequest(c)
	if !ok {
		return
	}

	rv := view.NewReportView()
	rv.SetRange(startDate, endDate, req.BranchID)
	seq := rv.BeginFetch()

	pageResp, err := api.OrderReportPage(c.Request.Context(), startDate, endDate, req.BranchID, req.Page)
	if err != nil {
		rv.FailFetch(seq)
		upstreamError(c, err)
		return
	}
	rv.ApplyPage(seq, req.Page, pageResp)

	//summary figures come from a separate full range fetch, not the page
	statsResp, err := api.OrderReportAll(c.Request.Context(), startDate, endDate, req.BranchID)
	if err != nil {
		rv.FailFetch(seq)
		upstreamError(c, err)
		return
	}
	summary := report.ComputeSummary(statsResp.Data, startDate, endDate, statsResp.TotalPrice)
	rv.ApplySummary(seq, summary)

	c.JSON(http.StatusOK, gin.H{
		"status":      true,
		"summary":     rv.Summary,
		"orders":      rv.Rows,
		"pagination":  rv.Pagination,
		"page_labels": rv.PageLabels(),
	})
}

// fetchRangeForExport pulls the full order set and its summary for the
// print and download variants.
func fetchRangeForExport(c *gin.Context) (model.ReportSummary, []model.OrderRecord, string, time.Time, time.Time, bool) {
	req, startDate, endDate, ok := parseReportRequest(c)
	if !ok {
		return model.ReportSummary{}, nil, "", time.Time{}, time.Time{}, false
	}

	statsResp, err := api.OrderReportAll(c.Request.Context(), startDate, endDate, req.BranchID)
	if err != nil {
		upstreamError(c, err)
		return model.ReportSummary{}, nil, "", time.Time{}, time.Time{}, false
	}

	branchName := ""
	if req.BranchID != model.AllBranches {
		branch, err := api.BranchByID(c.Request.Context(), req.BranchID)
		if err != nil {
			upstreamError(c, err)
			return model.ReportSummary{}, nil, "", time.Time{}, time.Time{}, false
		}
		branchName = branch.Name
	}

	summary := report.ComputeSummary(statsResp.Data, startDate, endDate, statsResp.TotalPrice)
	return summary, statsResp.Data, branchName, startDate, endDate, true
}

// SalesReportPrintable returns the print document the console loads
// into a hidden iframe before opening the print dialog.
func SalesReportPrintable(c *gin.Context) {
	summary, orders, branchName, startDate, endDate, ok := fetchRangeForExport(c)
	if !ok {
		return
	}

	document, err := report.RenderPrintable(summary, orders, branchName, startDate, endDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}

func SalesReportPDF(c *gin.Context) {
	summary, orders, branchName, startDate, endDate, ok := fetchRangeForExport(c)
	if !ok {
		return
	}

	document, err := report.RenderPDF(summary, orders, branchName, startDate, endDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="sales-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", document)
}

func SalesReportCSV(c *gin.Context) {
	_, orders, _, startDate, endDate, ok := fetchRangeForExport(c)
	if !ok {
		return
	}

	document, err := report.RenderCSV(orders, startDate, endDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="sales-report.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", document)
}

// OrderDetails serves the view-details drill down of one report row.
func OrderDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("orderid"))
	if err != nil {
		badRequest(c, "رقم الطلب غير صالح")
		return
	}

	order, err := api.OrderByID(c.Request.Context(), id)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   order,
	})
}
