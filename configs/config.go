package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	// Local uploads directory, used when no S3 endpoint is configured.
	UploadDir string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	MemcachedAddr string
}

// Load reads the .env file (values there win over the environment) and
// fails fast on anything the server cannot run without. There is no
// fallback signing secret on purpose.
func Load() Config {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8000"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        getEnv("DB_NAME", "ciaan"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Bucket:      getEnv("S3_BUCKET", "ciaan-media"),
		S3UseSSL:      os.Getenv("S3_USE_SSL") == "true",
		MemcachedAddr: os.Getenv("MEMCACHED_ADDR"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
