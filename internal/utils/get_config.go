package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Upload storage
	StorageDriver string `yaml:"STORAGE_DRIVER"` // "local" or "s3"
	UploadDir     string `yaml:"UPLOAD_DIR"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Tesseract OCR configuration
	TessdataPrefix     string `yaml:"TESSDATA_PREFIX"`
	TesseractLanguages string `yaml:"TESSERACT_LANGUAGES"`

	// Telegram bot configuration
	TelegramBotEnabled bool   `yaml:"TELEGRAM_BOT_ENABLED"`
	TelegramBotToken   string `yaml:"TELEGRAM_BOT_TOKEN"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "STORAGE_DRIVER":
		return config.StorageDriver
	case "UPLOAD_DIR":
		return config.UploadDir
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "TESSDATA_PREFIX":
		return config.TessdataPrefix
	case "TESSERACT_LANGUAGES":
		return config.TesseractLanguages
	case "TELEGRAM_BOT_TOKEN":
		return config.TelegramBotToken
	case "TELEGRAM_BOT_ENABLED":
		if config.TelegramBotEnabled {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
