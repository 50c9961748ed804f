package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (work hours, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Session  SessionConfig
	Schedule ScheduleConfig
	Booking  BookingConfig
	Notifier NotifierConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Bratislava"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type SessionConfig struct {
	Secret         string        `envconfig:"SESSION_SECRET" required:"true"`
	TokenDuration  time.Duration `envconfig:"SESSION_TOKEN_DURATION" default:"12h"`
	CookieDomain   string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure   bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	CookieSameSite string        `envconfig:"SESSION_COOKIE_SAME_SITE" default:"Lax"`
}

// ScheduleConfig defines the bookable work-hours window and the slot step.
// The default window 06:00-20:00 with 30-minute steps yields 28 slots a day.
type ScheduleConfig struct {
	StartHour   int    `envconfig:"SCHEDULE_START_HOUR" default:"6"`
	EndHour     int    `envconfig:"SCHEDULE_END_HOUR" default:"20"`
	StepMinutes int    `envconfig:"SCHEDULE_STEP_MINUTES" default:"30"`
	TimeZone    string `envconfig:"SCHEDULE_TIMEZONE" default:"Europe/Bratislava"`
}

type BookingConfig struct {
	// Rooms is a JSON array of room definitions; empty means the built-in set.
	Rooms          string `envconfig:"ROOMS" default:""`
	AdminEmail     string `envconfig:"ADMIN_EMAIL" default:"branislav.hadzima@uniza.sk"`
	RequirePurpose bool   `envconfig:"REQUIRE_PURPOSE" default:"false"`
}

type NotifierConfig struct {
	Delay   time.Duration `envconfig:"NOTIFIER_DELAY" default:"1s"`
	Timeout time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"5s"`
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
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Bratislava",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Session: SessionConfig{
			Secret:         "test-session-secret",
			TokenDuration:  time.Hour,
			CookieSameSite: "Lax",
		},
		Schedule: ScheduleConfig{
			StartHour:   6,
			EndHour:     20,
			StepMinutes: 30,
			TimeZone:    "Europe/Bratislava",
		},
		Booking: BookingConfig{
			AdminEmail: "branislav.hadzima@uniza.sk",
		},
		Notifier: NotifierConfig{
			Delay:   0, // No simulated latency in tests
			Timeout: time.Second,
		},
	}
}
