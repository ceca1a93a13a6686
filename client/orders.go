package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"sufra/model"
)

// the backend stores order times two hours behind local wall clock, so
// a calendar day [start, end] is queried as the utc window
// (start-1d)T22:00:00.000Z .. endT21:59:59.999Z. fixed convention, not
// a general timezone conversion.
func reportRange(startDate, endDate time.Time) (string, string) {
	start := startDate.AddDate(0, 0, -1).Format("2006-01-02") + "T22:00:00.000Z"
	end := endDate.Format("2006-01-02") + "T21:59:59.999Z"
	return start, end
}

func reportQuery(startDate, endDate time.Time, branchID, page, size int) url.Values {
	start, end := reportRange(startDate, endDate)
	query := url.Values{}
	query.Set("rangeStartUtc", start)
	query.Set("rangeEndUtc", end)
	query.Set("pageNumber", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(size))
	if branchID != model.AllBranches {
		query.Set("branchId", strconv.Itoa(branchID))
	}
	return query
}

// OrderReportPage fetches one page of the detail table for a range.
func (c *Client) OrderReportPage(ctx context.Context, startDate, endDate time.Time, branchID, page int) (model.OrderReportResponse, error) {
	var resp model.OrderReportResponse
	query := reportQuery(startDate, endDate, branchID, page, model.ReportPageSize)
	if err := c.doJSON(ctx, "GET", "/orders/report", query, nil, &resp); err != nil {
		return model.OrderReportResponse{}, err
	}
	return resp, nil
}

// OrderReportAll fetches the whole range in one oversized page, used
// only to feed the summary figures independent of the visible page.
func (c *Client) OrderReportAll(ctx context.Context, startDate, endDate time.Time, branchID int) (model.OrderReportResponse, error) {
	var resp model.OrderReportResponse
	query := reportQuery(startDate, endDate, branchID, 1, model.StatsPageSize)
	if err := c.doJSON(ctx, "GET", "/orders/report", query, nil, &resp); err != nil {
		return model.OrderReportResponse{}, err
	}
	return resp, nil
}

// OrderByID fetches one full order record for the details drill down.
func (c *Client) OrderByID(ctx context.Context, id int) (model.OrderRecord, error) {
	var order model.OrderRecord
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/orders/%d", id), nil, nil, &order); err != nil {
		return model.OrderRecord{}, err
	}
	return order, nil
}

// SubmitOrder sends a cashier ticket upstream, the api recomputes and
// enforces the totals.
func (c *Client) SubmitOrder(ctx context.Context, ticket model.SubmitTicketRequest) (model.OrderRecord, error) {
	var order model.OrderRecord
	if err := c.doJSON(ctx, "POST", "/orders", nil, ticket, &order); err != nil {
		return model.OrderRecord{}, err
	}
	return order, nil
}
