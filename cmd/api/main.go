package main

import (
	"os"

	"github.com/joho/godotenv"

	"virtualbiblio-backend/pkg/logger"
)

func main() {
	// .env is optional outside development.
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	Serve()
}
