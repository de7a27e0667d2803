package config

import "github.com/spf13/viper"

// Config holds all application settings, loaded from configs/app.env with
// environment-variable overrides.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	YelpAPIKey       string `mapstructure:"YELP_API_KEY"`
	YelpBaseURL      string `mapstructure:"YELP_BASE_URL"`
	CacheTTLMinutes  int    `mapstructure:"CACHE_TTL_MINUTES"`
	MaxDetailLookups int    `mapstructure:"MAX_DETAIL_LOOKUPS"`
	DetailWorkers    int    `mapstructure:"DETAIL_WORKERS"`
}

// LoadConfig reads configuration from the given directory and the environment
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
