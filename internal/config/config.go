package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort     string
	Environment string
	LogLevel    string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// External score provider
	ScoreAPIURL  string
	ScoreTimeout time.Duration

	// External payment gateway
	GatewayURL        string
	GatewayTimeout    time.Duration
	GatewayMaxRetries int
	GatewayRetryDelay time.Duration

	JWTSecret string
	JWTTTL    time.Duration
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvSecs(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:     getenv("APP_PORT", "8080"),
		Environment: getenv("APP_ENV", "development"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "payrollloan"),
		MySQLUser: getenv("MYSQL_USER", "payrollloan"),
		MySQLPass: getenv("MYSQL_PASS", "payrollloan"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		ScoreAPIURL:  getenv("SCORE_API_URL", "https://mocki.io/v1/f7b3627c-444a-4d65-b76b-d94a6c63bdcf"),
		ScoreTimeout: getenvSecs("SCORE_TIMEOUT_SECONDS", 5*time.Second),

		GatewayURL:        getenv("PAYMENT_GATEWAY_URL", "https://mocki.io/v1/386c594b-d42f-4d14-8036-508a0cf1264c"),
		GatewayTimeout:    getenvSecs("PAYMENT_GATEWAY_TIMEOUT_SECONDS", 10*time.Second),
		GatewayMaxRetries: getenvInt("PAYMENT_GATEWAY_MAX_RETRIES", 3),
		GatewayRetryDelay: getenvSecs("PAYMENT_GATEWAY_RETRY_DELAY_SECONDS", 1*time.Second),

		JWTSecret: getenv("JWT_SECRET", ""),
		JWTTTL:    getenvSecs("JWT_TTL_SECONDS", 8*time.Hour),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.GatewayMaxRetries < 1 {
		return fmt.Errorf("PAYMENT_GATEWAY_MAX_RETRIES must be >= 1, got %d", c.GatewayMaxRetries)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
