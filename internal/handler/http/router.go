package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/FoodBridge/internal/handler/http/middleware"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

type Router struct {
	authHandler     *AuthHandler
	donationHandler *DonationHandler
	authUsecase     usecasecontract.IAuthUseCase
	rateLimit       float64
}

func NewRouter(authUsecase usecasecontract.IAuthUseCase, donationUsecase usecasecontract.IDonationUseCase, rateLimit float64) *Router {
	return &Router{
		authHandler:     NewAuthHandler(authUsecase),
		donationHandler: NewDonationHandler(donationUsecase),
		authUsecase:     authUsecase,
		rateLimit:       rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.Use(metrics.Instrument())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	auth := router.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
	}

	// Protected routes (authentication required)
	donations := router.Group("/donations")
	donations.Use(middleware.AuthMiddleWare(r.authUsecase))
	{
		donations.POST("", r.donationHandler.Create)
		donations.GET("", r.donationHandler.ListAll)
		donations.GET("/my-donations", r.donationHandler.ListMine)
		donations.GET("/pending", r.donationHandler.ListPending)
		donations.PATCH("/:id/collect", r.donationHandler.Collect)
	}
}
