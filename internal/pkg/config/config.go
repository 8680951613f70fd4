package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, rate policy, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Pricing PricingConfig
	Webhook WebhookConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// PricingConfig carries the fallback rate policy used when no row matches in
// the rate tables. Percentages are expressed as fractions (0.21 = 21%).
type PricingConfig struct {
	IntraProvinceBase   float64 `envconfig:"PRICING_INTRA_PROVINCE_BASE" default:"3000"`
	InterProvinceBase   float64 `envconfig:"PRICING_INTER_PROVINCE_BASE" default:"5000"`
	WeightStepSurcharge float64 `envconfig:"PRICING_WEIGHT_STEP_SURCHARGE" default:"750"`
	DomicileLegBase     float64 `envconfig:"PRICING_DOMICILE_LEG_BASE" default:"800"`
	AgencyLegBase       float64 `envconfig:"PRICING_AGENCY_LEG_BASE" default:"400"`
	InsuranceRate       float64 `envconfig:"PRICING_INSURANCE_RATE" default:"0.001"`
	AdministrativeRate  float64 `envconfig:"PRICING_ADMINISTRATIVE_RATE" default:"0.15"`
	ThermosealRate      float64 `envconfig:"PRICING_THERMOSEAL_RATE" default:"0.25"`
	ThermosealCap       float64 `envconfig:"PRICING_THERMOSEAL_CAP" default:"2000"`
	TaxRate             float64 `envconfig:"PRICING_TAX_RATE" default:"0.21"`
	DefaultTransitHours int     `envconfig:"PRICING_DEFAULT_TRANSIT_HOURS" default:"48"`
	QuoteValidityDays   int     `envconfig:"PRICING_QUOTE_VALIDITY_DAYS" default:"7"`
}

type WebhookConfig struct {
	DeliveryTimeout time.Duration `envconfig:"WEBHOOK_DELIVERY_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	cfg := Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Webhook: WebhookConfig{
			DeliveryTimeout: 2 * time.Second,
		},
	}
	cfg.Pricing = DefaultTestPricing()
	return cfg
}

// DefaultTestPricing mirrors the envconfig defaults so pure pricing tests do
// not depend on the environment.
func DefaultTestPricing() PricingConfig {
	return PricingConfig{
		IntraProvinceBase:   3000,
		InterProvinceBase:   5000,
		WeightStepSurcharge: 750,
		DomicileLegBase:     800,
		AgencyLegBase:       400,
		InsuranceRate:       0.001,
		AdministrativeRate:  0.15,
		ThermosealRate:      0.25,
		ThermosealCap:       2000,
		TaxRate:             0.21,
		DefaultTransitHours: 48,
		QuoteValidityDays:   7,
	}
}
