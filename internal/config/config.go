// internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTP     `mapstructure:"http"`
	Database Database `mapstructure:"database"`
	Logging  Logging  `mapstructure:"logging"`
	SMTP     SMTP     `mapstructure:"smtp"`
	Reports  Reports  `mapstructure:"reports"`
	Security Security `mapstructure:"security"`
}

type HTTP struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type Database struct {
	URL string `mapstructure:"url"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SMTP struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	SSL       bool   `mapstructure:"ssl"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_name"`
}

type Reports struct {
	AdminEmail         string        `mapstructure:"admin_email"`
	Development        bool          `mapstructure:"development"`
	OpenOrdersInterval time.Duration `mapstructure:"open_orders_interval"`
	RetryInterval      time.Duration `mapstructure:"retry_interval"`
}

type Security struct {
	Session Session `mapstructure:"session"`
}

type Session struct {
	SweeperInterval time.Duration `mapstructure:"sweeper_interval"`
	CookieSecure    bool          `mapstructure:"cookie_secure"`
	SameSite        string        `mapstructure:"same_site"`
	TTL             time.Duration `mapstructure:"ttl"`
}

func Load() Config {
	viper.SetDefault("http.addr", "127.0.0.1:8080")
	viper.SetDefault("http.cors_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	// Sensible logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.ssl", true)
	viper.SetDefault("smtp.from_name", "Warsztat")
	viper.SetDefault("reports.development", false)
	viper.SetDefault("reports.open_orders_interval", "24h")
	viper.SetDefault("reports.retry_interval", "10m")
	viper.SetDefault("security.session.sweeper_interval", "5m")
	viper.SetDefault("security.session.cookie_secure", false)
	viper.SetDefault("security.session.same_site", "lax")
	viper.SetDefault("security.session.ttl", "8h")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// explicit bindings
	_ = viper.BindEnv("http.addr", "HTTP_ADDR")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")
	_ = viper.BindEnv("logging.format", "LOG_FORMAT")
	_ = viper.BindEnv("smtp.host", "SMTP_HOST")
	_ = viper.BindEnv("smtp.port", "SMTP_PORT")
	_ = viper.BindEnv("smtp.username", "SMTP_USERNAME")
	_ = viper.BindEnv("smtp.password", "SMTP_PASSWORD")
	_ = viper.BindEnv("smtp.ssl", "SMTP_SSL")
	_ = viper.BindEnv("smtp.from_email", "SMTP_FROM_EMAIL")
	_ = viper.BindEnv("smtp.from_name", "SMTP_FROM_NAME")
	_ = viper.BindEnv("reports.admin_email", "REPORTS_ADMIN_EMAIL")
	_ = viper.BindEnv("reports.development", "REPORTS_DEVELOPMENT")
	_ = viper.BindEnv("reports.open_orders_interval", "REPORTS_OPEN_ORDERS_INTERVAL")
	_ = viper.BindEnv("reports.retry_interval", "REPORTS_RETRY_INTERVAL")
	_ = viper.BindEnv("security.session.sweeper_interval", "SESSION_SWEEPER_INTERVAL")
	_ = viper.BindEnv("security.session.cookie_secure", "SESSION_COOKIE_SECURE")
	_ = viper.BindEnv("security.session.same_site", "SESSION_SAME_SITE")
	_ = viper.BindEnv("security.session.ttl", "SESSION_TTL")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		panic("config error: " + err.Error())
	}
	if c.Database.URL == "" {
		panic("config error: database.url/DATABASE_URL required")
	}
	return c
}

// DailyReportInterval is the cadence of the scheduled daily report:
// every two minutes in development, every 24 hours in production.
func (c Config) DailyReportInterval() time.Duration {
	if c.Reports.Development {
		return 2 * time.Minute
	}
	return 24 * time.Hour
}
