package devcli

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

// Settings captures CLI-wide configuration. Values come from PBI_*
// environment variables and can be overridden with persistent flags.
type Settings struct {
	TenantID     string        `envconfig:"PBI_TENANT_ID"`
	ClientID     string        `envconfig:"PBI_CLIENT_ID"`
	ClientSecret string        `envconfig:"PBI_CLIENT_SECRET"`
	AccessToken  string        `envconfig:"PBI_ACCESS_TOKEN"`
	Timeout      time.Duration `envconfig:"PBI_TIMEOUT" default:"90s"`
	Retries      int           `envconfig:"PBI_RETRIES" default:"5"`
	BackoffMin   time.Duration `envconfig:"PBI_BACKOFF_MIN" default:"1s"`
	BackoffMax   time.Duration `envconfig:"PBI_BACKOFF_MAX" default:"8s"`
	LogLevel     string        `envconfig:"PBI_LOG_LEVEL" default:"warn"`
	MetricsFile  string        `envconfig:"PBI_METRICS_FILE"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// BindFlags registers flags whose defaults are the current values of s.
func (s *Settings) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.TenantID, "tenant", s.TenantID, "Azure AD tenant ID (env PBI_TENANT_ID)")
	fs.StringVar(&s.ClientID, "client-id", s.ClientID, "Service principal client ID (env PBI_CLIENT_ID)")
	fs.StringVar(&s.ClientSecret, "client-secret", s.ClientSecret, "Service principal secret (env PBI_CLIENT_SECRET)")
	fs.StringVar(&s.AccessToken, "token", s.AccessToken, "Pre-acquired bearer token (env PBI_ACCESS_TOKEN)")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "Overall command timeout (env PBI_TIMEOUT)")
	fs.IntVar(&s.Retries, "retries", s.Retries, "Max retries on connection errors, 429 and 5xx (env PBI_RETRIES)")
	fs.DurationVar(&s.BackoffMin, "backoff-min", s.BackoffMin, "Minimum retry wait (env PBI_BACKOFF_MIN)")
	fs.DurationVar(&s.BackoffMax, "backoff-max", s.BackoffMax, "Maximum retry wait (env PBI_BACKOFF_MAX)")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level: debug, info, warn, error (env PBI_LOG_LEVEL)")
	fs.StringVar(&s.MetricsFile, "metrics-file", s.MetricsFile, "Write request metrics in Prometheus text format (env PBI_METRICS_FILE)")
}

// Validate checks that exactly one way of authenticating is configured.
func (s Settings) Validate() error {
	hasSP := s.TenantID != "" || s.ClientID != "" || s.ClientSecret != ""
	switch {
	case s.AccessToken != "" && hasSP:
		return errors.New("use either --token or service principal credentials, not both")
	case s.AccessToken != "":
		return nil
	case s.TenantID == "" || s.ClientID == "" || s.ClientSecret == "":
		return errors.New("missing credentials: set --token, or --tenant, --client-id and --client-secret")
	}
	return nil
}
