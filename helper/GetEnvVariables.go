package helper

import (
	"log"
	"os"

	"sufra/model"

	"github.com/joho/godotenv"
)

var loaded bool

func GetEnvVariables() model.EnvVariables {

	//load the env file once, later calls read straight from the environment
	if !loaded {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, reading from the environment")
		}
		loaded = true
	}

	EnvVariables := model.EnvVariables{
		APIBaseURL: os.Getenv("APIBASEURL"),
		APIToken:   os.Getenv("APITOKEN"),
		JWTSecret:  os.Getenv("JWTSECRET"),
		Port:       os.Getenv("PORT"),
	}
	return EnvVariables
}
