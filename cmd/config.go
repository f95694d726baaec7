package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"regmut.dev/pkg/regmut/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "regmut"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	levelFlagName       = "level"
	mutatorFlagName     = "mutator"
	fileFlagName        = "file"
	formatFlagName      = "format"
	parallelFlagName    = "parallel"
	saveFlagName        = "save"
	interactiveFlagName = "interactive"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	mutateLevelsKey   = "mutate.levels"
	mutateMutatorsKey = "mutate.mutators"
	mutateFormatKey   = "mutate.format"
	mutateParallelKey = "mutate.parallel"
	mutateSaveKey     = "mutate.save"
	interactiveKey    = "ui.interactive"

	defaultFormat      = "table"
	defaultParallel    = 0
	defaultSave        = ""
	defaultInteractive = true

	envPrefix = "REGMUT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".regmut.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(mutateLevelsKey, []int{})
	viper.SetDefault(mutateMutatorsKey, []string{})
	viper.SetDefault(mutateFormatKey, defaultFormat)
	viper.SetDefault(mutateParallelKey, defaultParallel)
	viper.SetDefault(mutateSaveKey, defaultSave)
	viper.SetDefault(interactiveKey, defaultInteractive)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Config file not loaded", "path", viper.ConfigFileUsed(), "error", err)
		}
	}
}

// selectionOptions turns configured names and levels into domain options.
// An empty list in the config means no restriction.
func selectionOptions(mutators []string, levels []int) domain.Options {
	var opts domain.Options

	if len(mutators) > 0 {
		opts.Mutators = mutators
	}

	if len(levels) > 0 {
		opts.Levels = levels
	}

	return opts
}

// parallelism returns the worker count; zero or less means one per CPU.
func parallelism(configured int) int {
	if configured <= 0 {
		return runtime.NumCPU()
	}

	return configured
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
