package config

import (
	"github.com/DishankChauhan/ChainImpact/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Campaign CampaignConfig `mapstructure:"campaign"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// CampaignConfig carries the record storage budgets. These are resource
// limits, not business rules; the lifecycle engine enforces them only at
// append/create time.
type CampaignConfig struct {
	MaxMilestones     int `mapstructure:"max_milestones"`      // milestones per campaign
	MaxTitleLen       int `mapstructure:"max_title_len"`       // bytes
	MaxDescriptionLen int `mapstructure:"max_description_len"` // bytes
	MaxImageURLLen    int `mapstructure:"max_image_url_len"`   // bytes
}

// DispatchConfig controls the background event dispatcher.
type DispatchConfig struct {
	Interval  int      `mapstructure:"interval"`   // seconds between runs
	Workers   int      `mapstructure:"workers"`    // goroutine pool size
	Webhooks  []string `mapstructure:"webhooks"`   // delivery targets
	BatchSize int      `mapstructure:"batch_size"` // events per run
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // stdout, stderr, file
	File   string `mapstructure:"file"`   // log file path when output is file
}

// GetLevel implements the logger.LogConfig interface
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput implements the logger.LogConfig interface
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile implements the logger.LogConfig interface
func (l LogConfig) GetFile() string {
	return l.File
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/chainimpact")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "chainimpact")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("campaign.max_milestones", 16)
	viper.SetDefault("campaign.max_title_len", 64)
	viper.SetDefault("campaign.max_description_len", 256)
	viper.SetDefault("campaign.max_image_url_len", 128)
	viper.SetDefault("dispatch.interval", 30)
	viper.SetDefault("dispatch.workers", 8)
	viper.SetDefault("dispatch.batch_size", 100)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
