package controllers

import (
	"net/http"

	"sufra/model"
	"sufra/view"

	"github.com/gin-gonic/gin"
)

// SubmitTicket assembles the cashier's ticket, previews the totals and
// sends it upstream. the api recomputes and enforces every amount.
func SubmitTicket(c *gin.Context) {
	var request model.SubmitTicketRequest
	if err := c.BindJSON(&request); err != nil {
		badRequest(c, "failed to bind the json")
		return
	}
	if !validate(&request, c) {
		return
	}

	ticket := view.Ticket{
		BranchID:    request.BranchID,
		DeliveryFee: request.DeliveryFee,
	}
	for _, line := range request.Lines {
		ticket.AddLine(view.TicketLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Discount:  line.Discount,
		})
	}

	payload, err := ticket.Payload()
	if err != nil {
		badRequest(c, "لا يمكن إرسال طلب فارغ")
		return
	}
	total, discount, final := ticket.Totals()

	order, err := api.SubmitOrder(c.Request.Context(), payload)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "تم إرسال الطلب",
		"data": gin.H{
			"order": order,
			"preview": gin.H{
				"total":    total,
				"discount": discount,
				"final":    final,
			},
		},
	})
}
