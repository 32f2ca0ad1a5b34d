package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"residesk/internal/domain/user"
	"residesk/internal/handler/api"
	"residesk/internal/handler/middleware"
	"residesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	visitorHandler *api.VisitorHandler,
	bookingHandler *api.BookingHandler,
	communityHandler *api.CommunityHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, visitorHandler, bookingHandler, communityHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	visitorHandler *api.VisitorHandler,
	bookingHandler *api.BookingHandler,
	communityHandler *api.CommunityHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	// Unauthenticated: the registration screen loads the picker before login
	engine.GET("/apartments", authHandler.ListApartments)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	otpLimiter := middleware.NewRateLimiter(cfg.OTP.SendPerMin)
	listCache := middleware.NewResponseCache(30 * time.Second)

	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
	requireWatchman := authMiddleware.RequireRole(user.RoleWatchman)

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/send-otp", Handler: authHandler.SendOTP, Mw: []gin.HandlerFunc{otpLimiter.Middleware()}},
			{Method: http.MethodPost, Path: "/verify-otp", Handler: authHandler.VerifyOTP},
			{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			{Method: http.MethodPut, Path: "/update", Handler: authHandler.Update},
		})
	}

	visitors := engine.Group("/visitors")
	visitors.Use(authMiddleware.RequireAuth())
	{
		addRoutes(visitors, []route{
			{Method: http.MethodPost, Path: "", Handler: visitorHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: visitorHandler.ListMine},
			{Method: http.MethodPost, Path: "/validate", Handler: visitorHandler.Validate, Mw: []gin.HandlerFunc{requireWatchman}},
			{Method: http.MethodGet, Path: "/scanned", Handler: visitorHandler.ListScanned, Mw: []gin.HandlerFunc{requireWatchman}},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.RequireAuth())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/me", Handler: bookingHandler.ListMine},
			{Method: http.MethodPost, Path: "/amenities/:id", Handler: bookingHandler.Create},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
		})
	}

	chat := engine.Group("/chat")
	chat.Use(authMiddleware.RequireAuth())
	{
		addRoutes(chat, []route{
			{Method: http.MethodPost, Path: "/complaints", Handler: communityHandler.CreateComplaint},
			{Method: http.MethodGet, Path: "/complaints", Handler: communityHandler.ListMyComplaints},
			{Method: http.MethodPut, Path: "/admin/complaints/:id/status", Handler: communityHandler.UpdateComplaintStatus, Mw: []gin.HandlerFunc{requireAdmin}},
		})
	}

	announcements := engine.Group("/announcements")
	announcements.Use(authMiddleware.RequireAuth())
	{
		addRoutes(announcements, []route{
			{Method: http.MethodGet, Path: "", Handler: communityHandler.ListAnnouncements, Mw: []gin.HandlerFunc{listCache.Middleware()}},
			{Method: http.MethodPost, Path: "", Handler: communityHandler.CreateAnnouncement, Mw: []gin.HandlerFunc{requireAdmin}},
		})
	}

	marketplace := engine.Group("/marketplace")
	marketplace.Use(authMiddleware.RequireAuth())
	{
		addRoutes(marketplace, []route{
			{Method: http.MethodGet, Path: "", Handler: communityHandler.ListListings},
			{Method: http.MethodPost, Path: "/add", Handler: communityHandler.CreateListing},
		})
	}

	profile := engine.Group("/profile")
	profile.Use(authMiddleware.RequireAuth())
	{
		addRoutes(profile, []route{
			{Method: http.MethodGet, Path: "/me", Handler: communityHandler.GetProfile},
			{Method: http.MethodPost, Path: "/family", Handler: communityHandler.AddFamilyMember},
			{Method: http.MethodPost, Path: "/vehicles", Handler: communityHandler.AddVehicle},
			{Method: http.MethodPost, Path: "/pets", Handler: communityHandler.AddPet},
			{Method: http.MethodPost, Path: "/daily-help", Handler: communityHandler.AddDailyHelp},
			{Method: http.MethodPost, Path: "/address", Handler: communityHandler.AddAddress},
		})
	}

	admin := engine.Group("/admin")
	admin.Use(authMiddleware.RequireAuth())
	{
		addRoutes(admin, []route{
			// Amenity listing is under /admin for historical reasons but any
			// authenticated user may read it.
			{Method: http.MethodGet, Path: "/amenities", Handler: bookingHandler.ListAmenities, Mw: []gin.HandlerFunc{listCache.Middleware()}},
			{Method: http.MethodPost, Path: "/amenities", Handler: adminHandler.CreateAmenity, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/visitor-logs", Handler: visitorHandler.ListLogs, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.History, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/complaints", Handler: communityHandler.ListAllComplaints, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/pending-residents", Handler: adminHandler.ListPendingResidents, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodPut, Path: "/approve-resident/:id", Handler: adminHandler.ApproveResident, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/users", Handler: adminHandler.ListUsers, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: adminHandler.DeleteUser, Mw: []gin.HandlerFunc{requireAdmin}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		// Route middleware must join gin's handler chain so c.Next() advances
		// into the handler; invoking it as a plain function would break
		// middleware that runs logic after Next (the response cache).
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, handlers...)
		case http.MethodPost:
			g.POST(r.Path, handlers...)
		case http.MethodPut:
			g.PUT(r.Path, handlers...)
		case http.MethodPatch:
			g.PATCH(r.Path, handlers...)
		case http.MethodDelete:
			g.DELETE(r.Path, handlers...)
		default:
			g.Any(r.Path, handlers...)
		}
	}
}
