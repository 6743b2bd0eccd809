package config

import (
	"os"
)

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	Path string // Location of the SQLite database file
}

// Untuk Inventory Service
func LoadInventoryDBConfig() DBConfig {
	// File dibuat otomatis jika belum ada
	path := "./inventory.db"
	if envPath := os.Getenv("SQLITE_PATH"); envPath != "" {
		path = envPath
	}
	return DBConfig{Path: path}
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: port}
}

// Helper untuk mendapatkan Environment Variable jika ada, atau default
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
