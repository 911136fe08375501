package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func NewLogger(config *viper.Viper) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return log
}
