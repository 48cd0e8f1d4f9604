package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/handler"
	"github.com/lin-hy/gangcheng-bnb/internal/middleware"
)

// New builds the gin engine with all application routes registered.
func New(a *app.App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Identify(a.AuthService))

	public := handler.NewPublicHandler(a)
	contact := handler.NewContactHandler(a)
	booking := handler.NewBookingHandler(a)
	auth := handler.NewAuthHandler(a)
	admin := handler.NewAdminHandler(a)
	bootstrap := handler.NewBootstrapHandler(a)

	// public pages
	r.GET("/", public.Index)
	r.GET("/rooms", public.AllRooms)
	r.GET("/room/:id", public.RoomDetail)
	r.GET("/api/rooms", public.APIRooms)

	// submissions; booking accepts both guests and logged-in users
	r.POST("/api/contact", contact.HandleContact)
	r.POST("/api/booking", booking.HandleBooking)

	// authentication
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	authed := r.Group("", middleware.RequireAuth())
	authed.GET("/logout", auth.Logout)
	authed.GET("/profile", auth.Profile)

	// admin back-office
	adm := r.Group("/admin", middleware.RequireAdmin())
	adm.GET("", admin.Dashboard)
	adm.POST("/booking/:id/status", admin.UpdateBookingStatus)
	adm.DELETE("/booking/:id", admin.DeleteBooking)
	adm.POST("/room", admin.CreateRoom)
	adm.PUT("/room/:id", admin.UpdateRoom)
	adm.DELETE("/room/:id", admin.DeleteRoom)
	adm.POST("/contact/:id/status", admin.UpdateContactStatus)
	adm.DELETE("/contact/:id", admin.DeleteContact)

	// one-time seed endpoint, idempotent
	r.GET("/init-db", bootstrap.InitDB)

	return r
}
