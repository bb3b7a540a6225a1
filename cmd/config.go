package cmd

import (
	"errors"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "linkdup"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dryRunFlagName             = "dry-run"
	normalizeFlagName          = "normalize"
	groupByRelativeFlagName    = "groupby-relative"
	minSizeFlagName            = "min-size"
	maxSizeFlagName            = "max-size"
	mergeFlagName              = "merge"
	mtimeFlagName              = "mtime"
	smartHashFlagName          = "smarthash"
	smartHashThresholdFlagName = "smarthash-threshold"
	digestFlagName             = "digest"
	parallelFlagName           = "parallel"
	reportFlagName             = "report"
	tuiFlagName                = "tui"
	csvFlagName                = "csv"
	hashFlagName               = "hash"
	logFileFlagName            = "log-file"
	verboseFlagName            = "verbose"

	runNormalizeKey          = "run.normalize"
	runGroupByRelativeKey    = "run.groupby_relative"
	runMinSizeKey            = "run.min_size"
	runMaxSizeKey            = "run.max_size"
	runMergeKey              = "run.merge"
	runMtimeKey              = "run.mtime"
	runSmartHashKey          = "run.smarthash"
	runSmartHashThresholdKey = "run.smarthash_threshold"
	runDigestKey             = "run.digest"
	runParallelKey           = "run.parallel"
	runTUIKey                = "run.tui"

	indexNormalizeKey = "index.normalize"
	indexMinSizeKey   = "index.min_size"
	indexMaxSizeKey   = "index.max_size"
	indexHashKey      = "index.hash"

	defaultMinSize      int64 = 4096
	defaultMaxSize      int64 = math.MaxInt64
	defaultIndexMinSize int64 = 0
	defaultMerge              = string(m.MergeMaxLinks)
	defaultMtime              = string(m.MtimeOrder)
	defaultDigest             = string(m.DigestBlake3)
	defaultIndexHash          = string(m.DigestNone)
	defaultParallel           = 1

	envPrefix = "LINKDUP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".linkdup.log"
	defaultLogLevel      = int(slog.LevelInfo)
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

	viper.SetDefault(runNormalizeKey, false)
	viper.SetDefault(runGroupByRelativeKey, false)
	viper.SetDefault(runMinSizeKey, defaultMinSize)
	viper.SetDefault(runMaxSizeKey, defaultMaxSize)
	viper.SetDefault(runMergeKey, defaultMerge)
	viper.SetDefault(runMtimeKey, defaultMtime)
	viper.SetDefault(runSmartHashKey, false)
	viper.SetDefault(runSmartHashThresholdKey, domain.DefaultSmartHashThreshold)
	viper.SetDefault(runDigestKey, defaultDigest)
	viper.SetDefault(runParallelKey, defaultParallel)
	viper.SetDefault(runTUIKey, false)

	viper.SetDefault(indexNormalizeKey, false)
	viper.SetDefault(indexMinSizeKey, defaultIndexMinSize)
	viper.SetDefault(indexMaxSizeKey, defaultMaxSize)
	viper.SetDefault(indexHashKey, defaultIndexHash)

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
		if errors.As(err, &notFound) {
			return
		}

		return
	}
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

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
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
