package config

import (
	"time"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timeout", 30*time.Second)

	v.SetDefault("storage.path", "lifequest.db")

	v.SetDefault("advice.base_url", "https://api.openai.com/v1")
	v.SetDefault("advice.model", "gpt-4o-mini")
	v.SetDefault("advice.timeout", 30*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})
	v.SetDefault("cors.allow_credentials", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("swagger.enabled", true)
	v.SetDefault("swagger.title", "LifeQuest API")
	v.SetDefault("swagger.description", "Personal productivity and habit tracking API")
	v.SetDefault("swagger.version", "1.0")
	v.SetDefault("swagger.base_path", "/api")
}
