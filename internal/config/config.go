package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Underwriting policy knobs. These were hardcoded thresholds in the
	// legacy system; keep them overridable so policy changes don't need a
	// redeploy.
	MinCreditScore  int
	MaxDebtToIncome float64
	MinIncome       float64

	// Flat fee assessed per overdue installment when the flat-fee penalty
	// policy is enabled. Zero keeps the no-penalty default.
	OverduePenaltyFee float64
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

func getenvFloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "microlend"),
		MySQLUser: getenv("MYSQL_USER", "microlend"),
		MySQLPass: getenv("MYSQL_PASS", "microlend"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		MinCreditScore:  getenvInt("MIN_CREDIT_SCORE", 600),
		MaxDebtToIncome: getenvFloat("MAX_DEBT_TO_INCOME", 0.40),
		MinIncome:       getenvFloat("MIN_INCOME", 1000),

		OverduePenaltyFee: getenvFloat("OVERDUE_PENALTY_FEE", 0),
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
	if c.MinCreditScore <= 0 {
		return errors.New("MIN_CREDIT_SCORE must be positive")
	}
	if c.MaxDebtToIncome <= 0 || c.MaxDebtToIncome > 1 {
		return fmt.Errorf("MAX_DEBT_TO_INCOME out of range: %v", c.MaxDebtToIncome)
	}
	if c.MinIncome < 0 {
		return errors.New("MIN_INCOME must be non-negative")
	}
	if c.OverduePenaltyFee < 0 {
		return errors.New("OVERDUE_PENALTY_FEE must be non-negative")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
