package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI               string
	Port                   string
	DBName                 string
	CasesCollection        string
	CaseDocsCollection     string
	PersonalDocsCollection string
	AuditLogsCollection    string
	UsersCollection        string
	LogLevel               string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	LedgerEnabled          bool
	LedgerRPCURL           string
	LedgerTimeout          time.Duration
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:               mongoURI,
		Port:                   port,
		DBName:                 getEnv("DB_NAME", "casevault_db"),
		CasesCollection:        getEnv("COLLECTION_CASES", "cases"),
		CaseDocsCollection:     getEnv("COLLECTION_CASE_DOCS", "case_documents"),
		PersonalDocsCollection: getEnv("COLLECTION_PERSONAL_DOCS", "personal_documents"),
		AuditLogsCollection:    getEnv("COLLECTION_AUDIT_LOGS", "access_audit_logs"),
		UsersCollection:        getEnv("COLLECTION_USERS", "users"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		ReadTimeout:            getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:           getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		LedgerEnabled:          getEnvBool("LEDGER_ENABLED", false),
		LedgerRPCURL:           os.Getenv("LEDGER_RPC_URL"),
		LedgerTimeout:          getEnvDuration("LEDGER_TIMEOUT", 5*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.LedgerEnabled && c.LedgerRPCURL == "" {
		return fmt.Errorf("LEDGER_RPC_URL is required when LEDGER_ENABLED is set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
