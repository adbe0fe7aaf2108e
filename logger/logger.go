// Package logger configures the process-wide logrus logger.
package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Init sets the global log level and format. level accepts the logrus level
// names; an empty or unknown value keeps the default (info). Set json for
// machine-collected logs.
func Init(level string, json bool) {
	if json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if l, err := log.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(l)
	}
}

// InitFromEnv reads G2P_LOG_LEVEL and G2P_LOG_JSON and applies them.
func InitFromEnv() {
	Init(os.Getenv("G2P_LOG_LEVEL"), os.Getenv("G2P_LOG_JSON") == "1")
}
