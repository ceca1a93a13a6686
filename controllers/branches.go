package controllers

import (
	"net/http"
	"strconv"

	"sufra/model"
	"sufra/view"

	"github.com/gin-gonic/gin"
)

// GetBranches serves the outlet list for the report filter and the
// customer facing branch browser.
func GetBranches(c *gin.Context) {
	branches, err := api.Branches(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   branches,
	})
}

// GetBranchForm loads one branch with its opening hours shifted into
// display form for the edit screen.
func GetBranchForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("branchid"))
	if err != nil {
		badRequest(c, "رقم الفرع غير صالح")
		return
	}

	branch, err := api.BranchByID(c.Request.Context(), id)
	if err != nil {
		upstreamError(c, err)
		return
	}

	form, err := view.LoadBranchForm(branch)
	if err != nil {
		badRequest(c, "وقت الدوام المخزن غير صالح")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   form,
	})
}

// UpdateBranchTimes writes an edited opening/closing pair back through
// the backend shift.
func UpdateBranchTimes(c *gin.Context) {
	var request model.BranchTimesRequest
	if err := c.BindJSON(&request); err != nil {
		badRequest(c, "failed to bind the json")
		return
	}
	if !validate(&request, c) {
		return
	}

	form := view.BranchForm{
		BranchID:    request.BranchID,
		OpeningTime: request.OpeningTime,
		ClosingTime: request.ClosingTime,
	}
	opening, closing, err := form.BackendTimes()
	if err != nil {
		badRequest(c, "صيغة الوقت غير صالحة")
		return
	}

	if err := api.UpdateBranchTimes(c.Request.Context(), request.BranchID, opening, closing); err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "تم تحديث أوقات الدوام",
	})
}
