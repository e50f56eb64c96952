package routes

import (
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/config"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/controllers"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://sparkandmend.co.uk",
			"https://www.sparkandmend.co.uk",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public quote and booking routes
		api.POST("/quote", controllers.GetQuote)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("/:reference", controllers.GetBookingByReference)
			bookings.POST("/:reference/checkout", controllers.StartCheckout)
			bookings.POST("/:reference/paid", controllers.ConfirmPayment)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware())
		{
			offers := admin.Group("/offers")
			{
				offers.POST("", controllers.CreateOffer)
				offers.GET("", controllers.GetOffers)
				offers.PUT("/:id", controllers.UpdateOffer)
				offers.DELETE("/:id", controllers.DeleteOffer)
			}

			admin.GET("/bookings", controllers.GetBookings)
			admin.PUT("/bookings/:id", controllers.UpdateBooking)
			admin.GET("/series/:seriesId", controllers.GetSeries)

			admin.POST("/extend-series", controllers.ExtendSeries)
		}
	}

	return r
}
