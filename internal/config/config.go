// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"go_student_management/internal/model"
)

// CourseConfig はコース1件分の受講月数
type CourseConfig struct {
	Name   string `mapstructure:"name"`
	Months int    `mapstructure:"months"`
}

type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Course struct {
		// viper はキーを小文字にするので、コース名はマップのキーではなくリストで持つ
		Courses       []CourseConfig `mapstructure:"courses"`
		DefaultMonths int            `mapstructure:"default_months"`
	} `mapstructure:"course"`

	// Env は APP_ENV (dev ならログを色付きにする)
	Env string `mapstructure:"env"`
}

// LoadConfig は path 配下 (と カレントディレクトリ) の config.yaml と APP_ 環境変数を読み込みます。
// 設定ファイルがなくてもデフォルト値で続行します。
func LoadConfig(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	v := viper.New()
	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix) // APP_LOG_LEVEL のように接頭辞をつける
	v.AutomaticEnv()
	v.BindEnv("env", "APP_ENV")
	v.BindEnv("log.level", "APP_LOG_LEVEL")
	v.BindEnv("log.format", "APP_LOG_FORMAT")
	v.BindEnv("course.default_months", "APP_COURSE_DEFAULT_MONTHS")

	// --- デフォルト値の設定 ---
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("course.default_months", model.DefaultCourseMonths)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debug("Config file not found, using defaults and environment variables")
		} else {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Config loaded",
		slog.String("config_file", v.ConfigFileUsed()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("courses", len(cfg.Course.Courses)),
	)
	return &cfg, nil
}

// Validate は設定値の整合性を確認します。
func (c *Config) Validate() error {
	if c.Course.DefaultMonths < 0 {
		return fmt.Errorf("config: course.default_months must not be negative: %w", model.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(c.Course.Courses))
	for _, course := range c.Course.Courses {
		if course.Name == "" {
			return fmt.Errorf("config: course name is empty: %w", model.ErrInvalidInput)
		}
		if course.Months <= 0 {
			return fmt.Errorf("config: course %q months must be positive: %w", course.Name, model.ErrInvalidInput)
		}
		if seen[course.Name] {
			return fmt.Errorf("config: course %q is duplicated: %w", course.Name, model.ErrInvalidInput)
		}
		seen[course.Name] = true
	}
	return nil
}

// CourseDurations は設定からコース表を作ります。コースの指定がなければ標準の表。
func (c *Config) CourseDurations() model.CourseDurations {
	if len(c.Course.Courses) == 0 {
		return model.NewCourseDurations(model.DefaultCourseTable(), c.Course.DefaultMonths)
	}
	months := make(map[string]int, len(c.Course.Courses))
	for _, course := range c.Course.Courses {
		months[course.Name] = course.Months
	}
	return model.NewCourseDurations(months, c.Course.DefaultMonths)
}
