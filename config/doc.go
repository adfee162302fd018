// Package config loads program configuration with Viper.
//
// The YAML file is resolved from an explicit path or the conventional
// locations (./cmd/<name>/config.yml, ./config/config.yml, ./config.yml).
// A .env file found next to it is loaded with godotenv, and environment
// variables carrying the program prefix override file values using
// underscore-separated paths (SEQDEMO_LOGGING_LEVEL sets logging.level).
//
// # Usage
//
//	var cfg DemoConfig
//	if err := config.Load("seqdemo", &cfg); err != nil {
//	    return err
//	}
package config
