package main

import (
	"flag"
	stlog "log"
	"os"

	"github.com/etchlab/etch/internal/app"
	"github.com/etchlab/etch/internal/config"
	"github.com/etchlab/etch/internal/logger"
)

var (
	logFilePath string
	logLevel    string
	configPath  string
	filePath    string
)

func main() {
	flag.StringVar(&logFilePath, "logfile", "etch.log", "Path to write log file")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&configPath, "config", "", "Path to TOML config file")
	flag.Parse()
	if flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}

	// Config may carry logger settings; anything it logs before Init goes to
	// the discarding fallback.
	cfg, err := config.Load(configPath)
	if err != nil {
		stlog.Fatalf("Error loading config: %v", err)
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	logLevel, logFilePath = effectiveLogSettings(cfg, explicit, logLevel, logFilePath)

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", logFilePath, err)
	}
	defer logFile.Close()
	logger.Init(logger.ParseLevel(logLevel), logFile)

	logger.Infof("Starting etch demo...")
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	}

	etchApp, err := app.NewApp(filePath, cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}
	if err := etchApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("etch demo finished.")
}

// effectiveLogSettings resolves the log level and file: flags given on the
// command line win, otherwise non-empty config file values fill in.
func effectiveLogSettings(cfg *config.Config, explicit map[string]bool, level, file string) (string, string) {
	if !explicit["loglevel"] && cfg.Logger.LogLevel != "" {
		level = cfg.Logger.LogLevel
	}
	if !explicit["logfile"] && cfg.Logger.LogFilePath != "" {
		file = cfg.Logger.LogFilePath
	}
	return level, file
}
