package main

import (
	"log"
	"os"
	"path/filepath"

	"minired-cli/api"
	"minired-cli/auth"
	"minired-cli/cmd"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injection to avoid circular imports
	auth.SetApiClient(api.Client)

	// log to a rotating file so terminal output stays clean for the UI
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(cacheDir, "minired", "minired.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}

func main() {
	cmd.Execute()
}
