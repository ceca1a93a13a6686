package main

import (
	"net/http"

	"sufra/controllers"
	"sufra/model"

	"github.com/gin-gonic/gin"
)

func ServerHealth(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "hello, its working",
		})
	})
}

// branch browsing is the only surface open without a session
func PublicRoutes(router *gin.Engine) {
	router.GET("/api/v1/branches", controllers.GetBranches)
}

func AdminRoutes(router *gin.Engine) {
	admin := router.Group("/api/v1/admin")
	admin.Use(controllers.RequireRoles(model.AdminRole))

	admin.GET("/users", controllers.GetUserList)
	admin.POST("/users", controllers.CreateUser)
	admin.PUT("/users/:userid/block", controllers.BlockUser)
	admin.PUT("/users/:userid/unblock", controllers.UnblockUser)

	admin.GET("/branches/:branchid", controllers.GetBranchForm)
	admin.PUT("/branches/times", controllers.UpdateBranchTimes)

	admin.GET("/offers", controllers.GetOffers)
	admin.POST("/offers", controllers.CreateOffer)
	admin.DELETE("/offers/:offerid", controllers.DeleteOffer)
}

func ReportRoutes(router *gin.Engine) {
	reports := router.Group("/api/v1/reports")
	reports.Use(controllers.RequireRoles(model.AdminRole, model.ManagerRole))

	reports.GET("/sales", controllers.SalesReport)
	reports.GET("/sales/print", controllers.SalesReportPrintable)
	reports.GET("/sales/pdf", controllers.SalesReportPDF)
	reports.GET("/sales/csv", controllers.SalesReportCSV)
	reports.GET("/orders/:orderid", controllers.OrderDetails)
}

func CashierRoutes(router *gin.Engine) {
	cashier := router.Group("/api/v1/cashier")
	cashier.Use(controllers.RequireRoles(model.AdminRole, model.ManagerRole, model.CashierRole))

	cashier.POST("/orders", controllers.SubmitTicket)
	cashier.GET("/menu", controllers.GetMenu)
}
