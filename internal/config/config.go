package config

import (
	"github.com/spf13/viper"
)

// Config holds the environment configuration shared by both adapters.
// None of it affects store semantics.
type Config struct {
	// DataFile is the path of the backing JSON document.
	DataFile string
	// Port is the web adapter's listen port.
	Port int
	// SecretKey signs the web adapter's flash cookies.
	SecretKey string
}

// Load reads configuration from the environment. Recognized variables:
// TASKS_JSON_PATH, PORT and SECRET_KEY, each with a development default.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("TASKS_JSON_PATH", "tasks.json")
	v.SetDefault("PORT", 5000)
	v.SetDefault("SECRET_KEY", "dev-secret-key")

	return &Config{
		DataFile:  v.GetString("TASKS_JSON_PATH"),
		Port:      v.GetInt("PORT"),
		SecretKey: v.GetString("SECRET_KEY"),
	}
}
