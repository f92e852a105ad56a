package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Backend struct {
		APIURL    string
		SocketURL string
	}

	Push struct {
		ProcessTimeout time.Duration // per order_state_changed event
		FetchTimeout   time.Duration // supplementary full-order fetch
	}

	Cart struct {
		DeliveryFee float64
	}

	Tasks struct {
		OrderRefreshInterval time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
		PoolSize int
	}

	Config struct {
		Server  HTTPServer
		Backend Backend
		Push    Push
		Cart    Cart
		Tasks   Tasks
		Redis   Redis
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	processTimeout, err := osGetEnvDuration("PUSH_ORDER_STATUS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fetchTimeout, err := osGetEnvDuration("PUSH_ORDER_FETCH_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deliveryFee, err := osGetFloat("CART_DELIVERY_FEE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	refreshInterval, err := osGetEnvDuration("BACKGROUND_ORDER_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisPoolSize, err := osGetInt("REDIS_POOL_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	apiURL := strings.TrimRight(os.Getenv("API_URL"), "/")
	socketURL := strings.TrimRight(os.Getenv("SOCKET_URL"), "/")
	if socketURL == "" {
		socketURL = apiURL
	}

	return &Config{
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Backend: Backend{
			APIURL:    apiURL,
			SocketURL: socketURL,
		},
		Push: Push{
			ProcessTimeout: processTimeout,
			FetchTimeout:   fetchTimeout,
		},
		Cart: Cart{
			DeliveryFee: deliveryFee,
		},
		Tasks: Tasks{
			OrderRefreshInterval: refreshInterval,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			PoolSize: redisPoolSize,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Backend.APIURL == "" {
		return errors.New("API_URL is required")
	}

	if cfg.Push.ProcessTimeout == time.Duration(0) {
		return errors.New("PUSH_ORDER_STATUS_PROCESS_TIMEOUT is required")
	}
	if cfg.Push.FetchTimeout == time.Duration(0) {
		return errors.New("PUSH_ORDER_FETCH_TIMEOUT is required")
	}

	if cfg.Cart.DeliveryFee < 0 {
		return errors.New("CART_DELIVERY_FEE must be non-negative")
	}

	if cfg.Tasks.OrderRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_REFRESH_INTERVAL is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
