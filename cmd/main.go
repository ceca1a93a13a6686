package main

import (
	"log"

	"sufra/client"
	"sufra/controllers"
	"sufra/helper"

	"github.com/gin-gonic/gin"
)

func main() {
	env := helper.GetEnvVariables()
	if env.APIBaseURL == "" {
		log.Fatal("APIBASEURL is not set")
	}

	controllers.Setup(client.New(env.APIBaseURL, env.APIToken))

	//start server with default logger and recovery
	router := gin.Default()

	//middleware for api rate limiting
	router.Use(controllers.RateLimitMiddleware())

	//access all the routes
	ServerHealth(router)
	PublicRoutes(router)
	AdminRoutes(router)
	ReportRoutes(router)
	CashierRoutes(router)

	port := env.Port
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		panic(err)
	}
}
