// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "studentform"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultConfigName = "config"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
	EnvPrefix         = "APP"
)
