package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"donate/internal/payments"
	"donate/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 20
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            time.Minute,
		Enabled:              enabled,
	}
}

// LoadStripeConfig reads the Stripe keys, retry count and outbound proxy.
func LoadStripeConfig() stripeConfig {
	defaultRetries := int64(2)

	retries := defaultRetries
	if val, exists := os.LookupEnv("STRIPE_MAX_NETWORK_RETRIES"); exists {
		if parsedVal, err := strconv.ParseInt(val, 10, 64); err == nil && parsedVal >= 0 {
			retries = parsedVal
		} else {
			fmt.Println("Invalid STRIPE_MAX_NETWORK_RETRIES, defaulting to", defaultRetries)
		}
	}

	scheme := os.Getenv("PROXY_SCHEME")
	if scheme == "" {
		scheme = "http"
	}

	return stripeConfig{
		secretKey:         os.Getenv("STRIPE_SECRET_KEY"),
		publishableKey:    os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		maxNetworkRetries: retries,
		proxy: payments.ProxyConfig{
			Scheme:   scheme,
			Host:     os.Getenv("PROXY_HOST"),
			Port:     os.Getenv("PROXY_PORT"),
			Username: os.Getenv("PROXY_USERNAME"),
			Password: os.Getenv("PROXY_PASSWORD"),
		},
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Donate API
//	@description	Accepts donation payments from the browser and relays Stripe's answer.

//	@contact.name	API Support

//	@BasePath	/

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cfg := config{
		addr:   addr,
		env:    os.Getenv("ENV"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		stripe: LoadStripeConfig(),
		auth: basicConfig{
			user: os.Getenv("AUTH_BASIC_USER"),
			pass: os.Getenv("AUTH_BASIC_PASS"),
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if cfg.stripe.secretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set; payment requests will fail")
	}

	processor := payments.NewStripeAdapter(payments.StripeConfig{
		SecretKey:         cfg.stripe.secretKey,
		MaxNetworkRetries: cfg.stripe.maxNetworkRetries,
		Proxy:             cfg.stripe.proxy,
	}, logger)

	manager := payments.NewPaymentManager(
		payments.ManagerConfig{Configured: cfg.stripe.secretKey != ""},
		processor,
		logger,
	)

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		payments:    manager,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
