package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel int

type Logger struct {
	name     string
	logLevel LogLevel
	logDir   string
	logger   *log.Logger
	file     *os.File
}

const (
	DEBUG LogLevel = iota
	INFO
	ERROR
)

var (
	registryMu sync.RWMutex
	registry   = map[string]*Logger{}

	discard = &Logger{name: "discard", logLevel: ERROR + 1, logger: log.New(io.Discard, "", 0)}
)

func (lv LogLevel) String() string {
	switch lv {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case ERROR:
		return "ERROR"
	}
	return fmt.Sprintf("LogLevel(%d)", int(lv))
}

// ParseLevel maps a config value such as "debug" to its level.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Get returns the logger registered under name. Unknown names get a logger
// that discards everything, so callers never have to nil-check.
func Get(name string) (logger *Logger) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if ln, ok := registry[name]; ok {
		return ln
	}

	return discard
}

// New registers a file-backed logger. A name that is already registered
// returns the existing logger.
func New(name string, logDir string, logLevel LogLevel) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if logger, exists := registry[name]; exists {
		return logger, nil
	}

	logger, err := setupLogger(name, logLevel, logDir)
	if err != nil {
		return nil, err
	}

	registry[name] = logger
	return logger, nil
}

// NewWriter registers a logger writing to w, replacing any previous logger
// of the same name.
func NewWriter(name string, w io.Writer, logLevel LogLevel) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	logger := &Logger{
		name:     name,
		logLevel: logLevel,
		logger:   log.New(w, "", log.Ldate|log.Ltime),
	}
	registry[name] = logger
	return logger
}

func (l *Logger) init() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	timestamp := time.Now().Format("2006-01-02")

	logFile, err := os.OpenFile(
		filepath.Join(l.logDir, fmt.Sprintf("PrologFront-%s.log", timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	l.file = logFile
	l.logger = log.New(logFile, "", log.Ldate|log.Ltime)

	return nil
}

func setupLogger(name string, logLevel LogLevel, logDir string) (*Logger, error) {
	logger := &Logger{
		name:     name,
		logLevel: logLevel,
		logDir:   logDir,
		logger:   nil,
	}

	if err := logger.init(); err != nil {
		return nil, err
	}

	return logger, nil
}

func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) Level() LogLevel {
	return l.logLevel
}

func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.logLevel
}

func (l *Logger) Info(format string, v ...any) {
	l.output(INFO, format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	l.output(DEBUG, format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.output(ERROR, format, v...)
}

func (l *Logger) output(level LogLevel, format string, v ...any) {
	if !l.Enabled(level) {
		return
	}
	l.logger.Printf("%s [%s] "+format, append([]any{level, l.name}, v...)...)
}

// ResetRegistry closes every file-backed logger and empties the registry.
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, l := range registry {
		if l.file != nil {
			_ = l.file.Close()
		}
	}
	registry = map[string]*Logger{}
}
