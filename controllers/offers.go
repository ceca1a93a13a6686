package controllers

import (
	"net/http"
	"strconv"
	"time"

	"sufra/model"
	"sufra/view"

	"github.com/gin-gonic/gin"
)

const offerInputLayout = "2006-01-02T15:04"

// GetOffers lists offer windows with their instants shifted into local
// display time.
func GetOffers(c *gin.Context) {
	offers, err := api.Offers(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	forms := make([]view.OfferForm, 0, len(offers))
	for _, offer := range offers {
		form, err := view.LoadOfferForm(offer)
		if err != nil {
			//skip a window the api stored malformed rather than hide the rest
			continue
		}
		forms = append(forms, form)
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   forms,
	})
}

// CreateOffer opens a discount window on one menu item.
func CreateOffer(c *gin.Context) {
	var request model.OfferRequest
	if err := c.BindJSON(&request); err != nil {
		badRequest(c, "failed to bind the json")
		return
	}
	if !validate(&request, c) {
		return
	}

	start, err := time.Parse(offerInputLayout, request.Start)
	if err != nil {
		badRequest(c, "تاريخ بداية العرض غير صالح")
		return
	}
	end, err := time.Parse(offerInputLayout, request.End)
	if err != nil {
		badRequest(c, "تاريخ نهاية العرض غير صالح")
		return
	}

	form := view.OfferForm{
		ProductID:  request.ProductID,
		Percentage: request.Percentage,
		Start:      start,
		End:        end,
	}
	payload, err := form.Payload()
	if err != nil {
		badRequest(c, "نهاية العرض يجب أن تكون بعد بدايته")
		return
	}

	created, err := api.CreateOffer(c.Request.Context(), payload)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "تم إنشاء العرض",
		"data":    created,
	})
}

func DeleteOffer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("offerid"))
	if err != nil {
		badRequest(c, "رقم العرض غير صالح")
		return
	}

	if err := api.DeleteOffer(c.Request.Context(), id); err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "تم حذف العرض",
	})
}
