package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// AppConfig holds the process-wide application settings. It is constructed
// once in main and passed by reference into the components that need its
// secrets; nothing else reads the environment.
type AppConfig struct {
	JWTSecret        string
	JWTExpirationHrs int64
	ProductKeySecret string
	ServerPort       string
}

// LoadAppConfig loads application configuration from environment variables.
func LoadAppConfig() (*AppConfig, error) {
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	productKeySecret := os.Getenv("PRODUCT_KEY_SECRET")
	if productKeySecret == "" {
		return nil, fmt.Errorf("PRODUCT_KEY_SECRET not set in environment")
	}

	jwtExpHours, err := strconv.ParseInt(os.Getenv("JWT_EXPIRATION_HOURS"), 10, 64)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	return &AppConfig{
		JWTSecret:        jwtSecret,
		JWTExpirationHrs: jwtExpHours,
		ProductKeySecret: productKeySecret,
		ServerPort:       serverPort,
	}, nil
}
