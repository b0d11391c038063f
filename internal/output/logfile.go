package output

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"

	"sitekit.dev/sitekit/internal/config"
)

// GetLogFilePath returns the path to the log file.
// If SITEKIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.sitekit/logs/sitekit.log
func GetLogFilePath() string {
	if customPath := os.Getenv(config.EnvLogFile); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "sitekit.log"
	}

	return filepath.Join(homeDir, ".sitekit", "logs", "sitekit.log")
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if maxSize, ok := envInt(config.EnvLogMaxSize); ok && maxSize > 0 {
		logger.MaxSize = maxSize
	}
	if maxBackups, ok := envInt(config.EnvLogMaxBackups); ok && maxBackups >= 0 {
		logger.MaxBackups = maxBackups
	}
	if maxAge, ok := envInt(config.EnvLogMaxAge); ok && maxAge > 0 {
		logger.MaxAge = maxAge
	}

	return logger
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
