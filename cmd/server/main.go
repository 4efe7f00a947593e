package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/opalessence/backend/internal/application/catalog"
	appcheckout "github.com/opalessence/backend/internal/application/checkout"
	appidentity "github.com/opalessence/backend/internal/application/identity"
	apporder "github.com/opalessence/backend/internal/application/order"
	appwishlist "github.com/opalessence/backend/internal/application/wishlist"
	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/opalessence/backend/internal/infrastructure/auth"
	"github.com/opalessence/backend/internal/infrastructure/config"
	"github.com/opalessence/backend/internal/infrastructure/email"
	"github.com/opalessence/backend/internal/infrastructure/logger"
	"github.com/opalessence/backend/internal/infrastructure/payment"
	"github.com/opalessence/backend/internal/infrastructure/persistence"
	httpiface "github.com/opalessence/backend/internal/interfaces/http"
	"github.com/opalessence/backend/internal/interfaces/http/handler"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Getenv("OPAL_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := persistence.NewDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("open database", zap.Error(err))
	}
	if err := persistence.Seed(context.Background(), db, zapLogger); err != nil {
		zapLogger.Fatal("seed database", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	wishlistRepo := persistence.NewGormWishlistRepository(db)

	// Infrastructure services
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	emailSender := email.NewLogSender(cfg.Email.From, zapLogger)
	gateway := payment.NewSimulatedGateway(cfg.Payment.Latency, cfg.Payment.SuccessRate, zapLogger)
	rates := pricing.DefaultRateTable()
	rates.FreeShippingThreshold = decimal.NewFromFloat(cfg.Checkout.FreeShippingThreshold)

	// Application services
	shippingService := appcheckout.NewShippingService(rates)
	taxService := appcheckout.NewTaxService(rates)
	paymentService := appcheckout.NewPaymentService(gateway, cfg.Payment.Timeout, zapLogger)
	checkoutService := appcheckout.NewService(shippingService, taxService, paymentService, productRepo, orderRepo, userRepo, emailSender, zapLogger)
	orderService := apporder.NewService(orderRepo, zapLogger)
	identityService := appidentity.NewService(userRepo, jwtManager, emailSender, zapLogger)
	catalogService := appcatalog.NewService(productRepo)
	wishlistService := appwishlist.NewService(wishlistRepo, productRepo)

	// HTTP layer
	handlers := httpiface.Handlers{
		System:   handler.NewSystemHandler(db, zapLogger),
		Auth:     handler.NewAuthHandler(identityService, zapLogger),
		Product:  handler.NewProductHandler(catalogService, zapLogger),
		Checkout: handler.NewCheckoutHandler(checkoutService, zapLogger),
		Order:    handler.NewOrderHandler(orderService, zapLogger),
		Wishlist: handler.NewWishlistHandler(wishlistService, zapLogger),
	}
	limiter := middleware.NewRateLimiter(cfg.Limits.RequestsPerMinute)
	authLimiter := middleware.NewRateLimiter(cfg.Limits.AuthRequestsPerMinute)
	router := httpiface.NewRouter(handlers, jwtManager, limiter, authLimiter, cfg.HTTP.AllowedOrigins, zapLogger)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
