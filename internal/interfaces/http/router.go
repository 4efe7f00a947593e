package http

import (
	"github.com/gin-gonic/gin"
	"github.com/opalessence/backend/internal/infrastructure/auth"
	"github.com/opalessence/backend/internal/interfaces/http/handler"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Wishlist *handler.WishlistHandler
}

// NewRouter builds the gin engine with all routes and middleware. The auth
// limiter is stricter than the global one and only guards the auth routes.
func NewRouter(h Handlers, jwtManager *auth.JWTManager, limiter, authLimiter *middleware.RateLimiter, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	handler.RegisterValidators()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(allowedOrigins),
		middleware.Secure(),
		limiter.Middleware(),
	)

	router.GET("/ping", h.System.Ping)
	router.GET("/health", h.System.Health)

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		authRoutes.Use(authLimiter.Middleware(), middleware.CSRF())
		{
			authRoutes.GET("/csrf", h.System.CSRFToken)
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.POST("/verify-email", h.Auth.VerifyEmail)
			authRoutes.POST("/forgot-password", h.Auth.ForgotPassword)
			authRoutes.POST("/reset-password", h.Auth.ResetPassword)
		}
		v1.GET("/auth/me", middleware.Auth(jwtManager), h.Auth.Me)

		v1.GET("/products", h.Product.List)
		v1.GET("/products/:id", h.Product.Get)

		v1.POST("/checkout/quote", h.Checkout.Quote)

		authed := v1.Group("")
		authed.Use(middleware.Auth(jwtManager))
		{
			authed.POST("/checkout", h.Checkout.PlaceOrder)

			authed.GET("/orders", h.Order.List)
			authed.GET("/orders/:id", h.Order.Get)
			authed.GET("/orders/:id/tracking", h.Order.Tracking)
			authed.POST("/orders/:id/status", h.Order.UpdateStatus)
			authed.POST("/orders/:id/cancel", h.Order.Cancel)

			authed.GET("/wishlist", h.Wishlist.List)
			authed.POST("/wishlist/items", h.Wishlist.Add)
			authed.GET("/wishlist/items/:productId", h.Wishlist.Contains)
			authed.DELETE("/wishlist/items/:productId", h.Wishlist.Remove)
		}
	}

	return router
}
