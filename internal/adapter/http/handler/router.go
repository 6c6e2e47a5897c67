package handler

import (
	"slices"
	"time"

	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	WalletSvc      ports.WalletService
	ExchangeSvc    ports.ExchangeService
	TransferSvc    ports.TransferService
	PaymentSvc     ports.ExternalPaymentService
	InsuranceSvc   ports.InsuranceService
	ReferralSvc    ports.ReferralService
	ReferralGate   ports.ReferralGate
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = edge audit disabled
	CORSOrigins    []string
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(corsMiddleware(deps.CORSOrigins))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	insuranceHandler := NewInsuranceHandler(deps.InsuranceSvc)
	v1.GET("/insurance/plans", rl("read"), insuranceHandler.ListPlans)
	v1.GET("/insurance/plans/:id", rl("read"), insuranceHandler.GetPlan)

	// --- Session routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	secured := v1.Group("", jwtAuth)

	secured.GET("/auth/me", rl("read"), authHandler.Me)

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := secured.Group("/wallets")
	{
		wallets.GET("", rl("read"), walletHandler.List)
		wallets.POST("/deposit", rl("payments"), walletHandler.Deposit)
	}

	exchangeHandler := NewExchangeHandler(deps.ExchangeSvc)
	exchange := secured.Group("/exchange")
	{
		exchange.GET("/rate", rl("read"), exchangeHandler.Rate)
		exchange.POST("/convert", rl("payments"), exchangeHandler.Convert)
	}

	transferHandler := NewTransferHandler(deps.TransferSvc)
	transfers := secured.Group("/transfers")
	{
		transfers.POST("", rl("transfers"), transferHandler.Send)
		transfers.GET("/recent", rl("read"), transferHandler.Recent)
		transfers.GET("/feed", rl("read"), transferHandler.Feed)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	secured.POST("/payments/external", rl("payments"), paymentHandler.PayExternal)

	insurance := secured.Group("/insurance")
	{
		insurance.POST("/quote", rl("read"), insuranceHandler.Quote)
		insurance.POST("/purchase", rl("insurance"), insuranceHandler.Purchase)
		insurance.GET("/policies", rl("read"), insuranceHandler.Policies)
		insurance.GET("/payments", rl("read"), insuranceHandler.Payments)
	}

	referralHandler := NewReferralHandler(deps.ReferralSvc, deps.ReferralGate)
	referrals := secured.Group("/referrals")
	{
		referrals.POST("/apply", rl("payments"), referralHandler.Apply)
		referrals.GET("/me", rl("read"), referralHandler.Info)
		referrals.DELETE("/gate", rl("read"), referralHandler.ClearGate)
	}

	qrHandler := NewQRHandler(deps.AuthSvc)
	qr := secured.Group("/qr")
	{
		qr.POST("/decode", rl("read"), qrHandler.Decode)
		qr.POST("/merchant", rl("read"), qrHandler.Merchant)
		qr.GET("/me", rl("read"), qrHandler.Mine)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
