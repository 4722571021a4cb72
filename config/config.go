package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Gemini    Gemini
	Analytics Analytics
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Gemini struct {
	ApiKey string
	Model  string
}

// Analytics holds the tunable thresholds of the aggregation policy.
// MinLowScores is the number of sub-60% results that flags a slow learner;
// the source data disagreed between 1 and 2, so it is a named knob here.
type Analytics struct {
	LowScorePercent float64
	MinLowScores    int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LOW_SCORE_PERCENT", 60.0)
	viper.SetDefault("SLOW_LEARNER_MIN_LOW_SCORES", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	config.Analytics.LowScorePercent = viper.GetFloat64("LOW_SCORE_PERCENT")
	config.Analytics.MinLowScores = viper.GetInt("SLOW_LEARNER_MIN_LOW_SCORES")

	log.Info().Str("port", config.Server.Port).Str("gemini_model", config.Gemini.Model).Msg("Config loaded")
	return &config, nil
}
