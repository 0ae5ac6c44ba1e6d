package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; deployments usually set the environment directly
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "expense_tracker",
		Port:          "9446",
	}

	envMongoURI := os.Getenv("MONGO_URI")
	envMongoDatabase := os.Getenv("MONGO_DATABASE")
	envPort := os.Getenv("PORT")

	if len(envMongoURI) != 0 {
		env.MongoURI = envMongoURI
	}

	if len(envMongoDatabase) != 0 {
		env.MongoDatabase = envMongoDatabase
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	return &env, nil
}
