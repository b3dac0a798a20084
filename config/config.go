// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"zealvibe/catalog-api/pkg/security"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	hashPassword   = pflag.String("hash-password", "", "Prints the argon2id hash for the given admin password and exits")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	if *hashPassword != "" {
		encoded, err := security.New().GenerateFromPassword(*hashPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password, %w", err)
		}

		fmt.Println("Put this into config.toml as admin.password_hash:\n\n" + encoded)
		os.Exit(0)
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("mongo.uri", "mongo_uri")
	v.BindEnv("mongo.database", "mongo_database")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("admin.email", "admin_email")
	v.BindEnv("admin.password_hash", "admin_password_hash")

	v.BindEnv("upload.max_size", "upload_max_size")

	v.BindEnv("aws.access_key", "aws_access_key")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.bucket", "aws_bucket")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "zeal")

	v.SetDefault("upload.max_size", 50)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("mongo.uri") == "" {
		return errors.New("mongo uri can't be empty")
	}

	if v.GetString("mongo.database") == "" {
		return errors.New("mongo database can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetString("admin.email") == "" {
		return errors.New("admin email can't be empty")
	}

	if v.GetString("admin.password_hash") == "" {
		return errors.New("admin password hash can't be empty")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if v.GetString("aws.access_key") == "" {
		return errors.New("access key can't be empty")
	}
	if v.GetString("aws.secret_access_key") == "" {
		return errors.New("secret access key can't be empty")
	}
	if v.GetString("aws.region") == "" {
		return errors.New("region can't be empty")
	}
	if v.GetString("aws.bucket") == "" {
		return errors.New("bucket can't be empty")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
