package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashout-gateway/config"
	httpHandler "cashout-gateway/internal/adapter/http/handler"
	"cashout-gateway/internal/adapter/storage/memory"
	pgStorage "cashout-gateway/internal/adapter/storage/postgres"
	redisStorage "cashout-gateway/internal/adapter/storage/redis"
	"cashout-gateway/internal/adapter/upstream"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/internal/service"
	"cashout-gateway/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("CASHOUT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("bank_configured", cfg.Bank.Configured()).
		Msg("Starting CashOut gateway")

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Referral gate and rate limit stores: Redis when enabled, else in-process.
	var (
		gateStore      ports.KeyValueStore
		rateLimitStore ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		gateStore = redisStorage.NewKVStore(rdb, cfg.Referral.KeyPrefix)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, referral gate and rate limits are per process")
		gateStore = memory.NewKVStore()
		rateLimitStore = memory.NewRateLimitStore()
	}

	// Audit persistence is optional; without it entries only reach the log.
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply audit schema")
		}
		log.Info().Msg("PostgreSQL connected")

		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	gateways := newGateways(cfg, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))
	referralGate := service.NewReferralGate(gateStore, gateways.referrals, logger.Component(log, "referral_gate"))

	// Initialize business services
	authSvc := service.NewAuthService(
		gateways.users, gateways.wallets, gateways.referrals, tokenSvc, auditSvc,
		logger.Component(log, "auth"),
	)
	walletSvc := service.NewWalletService(gateways.wallets, referralGate, auditSvc, logger.Component(log, "wallets"))
	exchangeSvc := service.NewExchangeService(gateways.exchange, auditSvc, logger.Component(log, "exchange"))
	transferSvc := service.NewTransferService(
		gateways.transfers, gateways.users, referralGate, auditSvc,
		logger.Component(log, "transfers"),
	)
	paymentSvc := service.NewExternalPaymentService(
		gateways.wallets, gateways.bank, referralGate, auditSvc,
		logger.Component(log, "external_payment"),
	)
	insuranceSvc := service.NewInsuranceService(
		gateways.insurance,
		gateways.wallets,
		gateways.exchange,
		gateways.users,
		auditSvc,
		cfg.Upstream.ReferenceCurrency,
		logger.Component(log, "insurance"),
	)
	referralSvc := service.NewReferralService(gateways.referrals, logger.Component(log, "referrals"))

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		WalletSvc:      walletSvc,
		ExchangeSvc:    exchangeSvc,
		TransferSvc:    transferSvc,
		PaymentSvc:     paymentSvc,
		InsuranceSvc:   insuranceSvc,
		ReferralSvc:    referralSvc,
		ReferralGate:   referralGate,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// a purchase chains several upstream calls
		WriteTimeout: 6*cfg.Upstream.Timeout + 10*time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

type gateways struct {
	wallets   *upstream.WalletClient
	exchange  *upstream.ExchangeClient
	transfers *upstream.TransferClient
	insurance *upstream.InsuranceClient
	bank      *upstream.BankClient
	users     *upstream.UserClient
	referrals *upstream.ReferralClient
}

// newGateways builds one REST client per remote service. They share a
// single http.Client so connections are pooled per host.
func newGateways(cfg *config.Config, log zerolog.Logger) gateways {
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	client := func(name, baseURL string, opts ...upstream.Option) *upstream.Client {
		return upstream.NewClient(name, baseURL, httpClient, log, opts...)
	}

	return gateways{
		wallets:   upstream.NewWalletClient(client("wallet", cfg.Upstream.WalletURL)),
		exchange:  upstream.NewExchangeClient(client("exchange", cfg.Upstream.ExchangeURL)),
		transfers: upstream.NewTransferClient(client("transfer", cfg.Upstream.TransferURL)),
		insurance: upstream.NewInsuranceClient(
			client("insurance", cfg.Upstream.InsuranceURL),
			client("policy", cfg.Upstream.PolicyURL),
		),
		bank: upstream.NewBankClient(
			client("bank", cfg.Bank.URL, upstream.WithBasicAuth(cfg.Bank.Username, cfg.Bank.Password)),
			cfg.Bank.TargetAccountID,
			cfg.Bank.Configured(),
		),
		users:     upstream.NewUserClient(client("user", cfg.Upstream.UserURL)),
		referrals: upstream.NewReferralClient(client("referral", cfg.Upstream.ReferralURL)),
	}
}
