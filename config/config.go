package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultEnvFiles are loaded, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.local"}

type GCSOptions struct {
	Bucket          string        `env:"GCS_BUCKET_NAME" envDefault:"bkpemp-data"`
	KeyPrefix       string        `env:"GCS_KEY_PREFIX" envDefault:"dummy_employees_"`
	KeyUTCOffset    time.Duration `env:"GCS_KEY_UTC_OFFSET" envDefault:"5h30m"`
	CredentialsFile string        `env:"GOOGLE_CREDENTIALS_FILE"`
	Endpoint        string        `env:"GCS_ENDPOINT"`
}

type Configuration struct {
	GCS GCSOptions

	EmployeeCount int    `env:"EMPLOYEE_COUNT" envDefault:"5"`
	LocalCSVPath  string `env:"LOCAL_CSV_PATH" envDefault:"dummy_employees.csv"`
	WorkbookPath  string `env:"WORKBOOK_PATH"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads envFiles that exist, then parses the process environment.
func Load(envFiles ...string) (*Configuration, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	c := &Configuration{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the values that would otherwise fail late.
func (c *Configuration) Validate() error {
	if c.EmployeeCount < 0 {
		return fmt.Errorf("EMPLOYEE_COUNT must be non-negative, got %d", c.EmployeeCount)
	}
	if c.LocalCSVPath == "" {
		return fmt.Errorf("LOCAL_CSV_PATH must not be empty")
	}
	if c.GCS.Bucket == "" {
		return fmt.Errorf("GCS_BUCKET_NAME must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Logger builds a text logger at the configured level.
func (c *Configuration) Logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return l
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}
