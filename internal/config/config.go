package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	JWTSecret    string
	SnapshotPath string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "jackut-dev-secret"
		log.Println("JWT_SECRET not set, using development default")
	}

	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	if snapshotPath == "" {
		snapshotPath = "jackut.dat"
	}

	return &Config{
		ServerPort:   serverPort,
		JWTSecret:    jwtSecret,
		SnapshotPath: snapshotPath,
	}, nil
}
