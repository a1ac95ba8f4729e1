package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	ServerPort  string `yaml:"SERVER_PORT"`
	FrontOrigin string `yaml:"FRONT_ORIGIN"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT keys
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	CodeTTLMinutes   string `yaml:"CODE_TTL_MINUTES"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// OpenAI API configuration
	OpenAIAPIKey string `yaml:"OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"OPENAI_MODEL"`

	// Recommendation engine knobs
	RecommendDedupWindow string `yaml:"RECOMMEND_DEDUP_WINDOW"` // e.g. "2m"
	RecommendGenTimeout  string `yaml:"RECOMMEND_GEN_TIMEOUT"`  // e.g. "8s"
	RecommendFirstGate   string `yaml:"RECOMMEND_FIRST_GATE"`   // "true"/"false"
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

	// Keys some packages read via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("OPENAI_API_KEY", config.OpenAIAPIKey)
	os.Setenv("OPENAI_MODEL", config.OpenAIModel)
}

func GetConfig(key string) string {
	switch key {
	case "SERVER_PORT":
		if config.ServerPort == "" {
			return "8000"
		}
		return config.ServerPort
	case "FRONT_ORIGIN":
		return config.FrontOrigin
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
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "CODE_TTL_MINUTES":
		if config.CodeTTLMinutes == "" {
			return "5"
		}
		return config.CodeTTLMinutes
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_MODEL":
		if config.OpenAIModel == "" {
			return "gpt-4o-mini"
		}
		return config.OpenAIModel
	case "RECOMMEND_DEDUP_WINDOW":
		if config.RecommendDedupWindow == "" {
			return "2m"
		}
		return config.RecommendDedupWindow
	case "RECOMMEND_GEN_TIMEOUT":
		if config.RecommendGenTimeout == "" {
			return "8s"
		}
		return config.RecommendGenTimeout
	case "RECOMMEND_FIRST_GATE":
		if config.RecommendFirstGate == "" {
			return "true"
		}
		return config.RecommendFirstGate
	default:
		return ""
	}
}
