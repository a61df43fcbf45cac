// cmd/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go_student_management/internal/config"
	"go_student_management/internal/logging"
	"go_student_management/internal/service"
	"go_student_management/internal/validation"
)

// app はサブコマンドが共有する依存関係
type app struct {
	configDir string
	logLevel  string

	cfg       *config.Config
	logger    *slog.Logger
	calc      *service.CourseScheduleCalculator
	validator *validation.Validator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Student form helper",
		Long:          "Normalizes student form input, calculates course end dates, detects form changes and validates student forms.",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", "./configs", "Directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	rootCmd.AddCommand(
		newNormalizeCmd(a),
		newEndDateCmd(a),
		newDiffCmd(a),
		newValidateCmd(a),
	)
	return rootCmd
}

// setup は設定を読み込み、ロガーと各サービスを組み立てます。
func (a *app) setup(cmd *cobra.Command) error {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.LoadConfig(a.configDir, tempLogger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Env:    cfg.Env,
	})
	logger = logger.With(slog.String("command", cmd.Name()))

	v, err := validation.New(nil)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.calc = service.NewCourseScheduleCalculator(cfg.CourseDurations(), logger)
	a.validator = v

	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

func main() {
	// .env があれば読み込む
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
