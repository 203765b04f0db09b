package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/wahe7/book-slots/config"
	"github.com/wahe7/book-slots/internal/service"
	"github.com/wahe7/book-slots/internal/transport/middleware"
)

func InitRoutes(cfg *config.Config, eventHandler *EventHandler, bookingHandler *BookingHandler, adminHandler *AdminHandler, admins service.AdminService) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))
	router.Use(withAdminSession(admins, cfg.Session.CookieName))

	router.Static("/static", "./web/static")
	router.LoadHTMLGlob("web/templates/*.html")

	// Pages
	router.GET("/", eventHandler.ListEvents)
	// /create-event rather than /events/new: the :id route below owns that
	// subtree in gin's router.
	router.GET("/create-event", eventHandler.NewEventForm)
	router.POST("/create-event", eventHandler.SubmitEventForm)
	router.GET("/events/:id", eventHandler.EventDetail)
	router.POST("/events/:id/bookings", bookingHandler.BookSlot)
	router.GET("/bookings", bookingHandler.UserBookings)

	// Admin session
	router.POST("/admin/login", adminHandler.Login)
	router.POST("/admin/logout", adminHandler.Logout)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "book-slots-web",
		})
	})

	return router
}
