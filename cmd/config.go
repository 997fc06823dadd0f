package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/domain"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fsfsfixer"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	verboseFlagName   = "verbose"
	logFileFlagName   = "log"
	ledgerFlagName    = "ledger"
	timeoutFlagName   = "timeout"
	retriesFlagName   = "retries"
	maxFixesFlagName  = "max-fixes"
	svnadminFlagName  = "svnadmin"
	svnlookFlagName   = "svnlook"
	exceptionFlagName = "exception"

	svnadminConfigKey   = "tools.svnadmin"
	svnlookConfigKey    = "tools.svnlook"
	timeoutConfigKey    = "verify.timeout"
	retriesConfigKey    = "verify.retries"
	maxFixesConfigKey   = "repair.max_fixes"
	ledgerConfigKey     = "repair.ledger"
	exceptionsConfigKey = "repair.exceptions"

	defaultVerifyTimeout = 10 * time.Minute
	defaultVerifyRetries = 2
	defaultMaxFixes      = 0

	envPrefix = "FSFSFIXER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fsfsfixer.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr is reported once the logger is configured.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	configReadErr = readConfigFile()
}

// readConfigFile loads the config file. A missing file is not an error.
func readConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(svnadminConfigKey, domain.DefaultTools.SvnAdmin)
	viper.SetDefault(svnlookConfigKey, domain.DefaultTools.SvnLook)
	viper.SetDefault(timeoutConfigKey, defaultVerifyTimeout.String())
	viper.SetDefault(retriesConfigKey, defaultVerifyRetries)
	viper.SetDefault(maxFixesConfigKey, defaultMaxFixes)
	viper.SetDefault(ledgerConfigKey, "")
	viper.SetDefault(exceptionsConfigKey, []string{})

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// toolsFromConfig returns the configured verifier binaries. Empty values are
// resolved from PATH by the verifier.
func toolsFromConfig() domain.Tools {
	return domain.Tools{
		SvnAdmin: strings.TrimSpace(viper.GetString(svnadminConfigKey)),
		SvnLook:  strings.TrimSpace(viper.GetString(svnlookConfigKey)),
	}
}

func verifyTimeout() time.Duration {
	timeout := viper.GetDuration(timeoutConfigKey)
	if timeout <= 0 {
		return defaultVerifyTimeout
	}

	return timeout
}

// exceptionTable merges the built-in known bad IDs with BAD=GOOD entries from
// the configuration. Configured entries win.
func exceptionTable(entries []string) (map[string]string, error) {
	table := make(map[string]string, len(domain.KnownBadIDs)+len(entries))
	for bad, good := range domain.KnownBadIDs {
		table[bad] = good
	}

	for _, entry := range entries {
		bad, good, ok := strings.Cut(entry, "=")
		bad, good = strings.TrimSpace(bad), strings.TrimSpace(good)

		if !ok || bad == "" || good == "" {
			return nil, fmt.Errorf("invalid exception %q: want BAD=GOOD", entry)
		}

		if _, err := m.ParseNodeRevisionID(bad); err != nil {
			return nil, fmt.Errorf("invalid exception %q: %w", entry, err)
		}

		if _, err := m.ParseNodeRevisionID(good); err != nil {
			return nil, fmt.Errorf("invalid exception %q: %w", entry, err)
		}

		table[bad] = good
	}

	return table, nil
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at log.level; if verbose is true it logs at Debug.
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
