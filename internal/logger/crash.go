package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// CrashLogDir is the directory for crash logs relative to the config dir
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10
)

// crashContext stores what was running when a panic happened.
type crashContext struct {
	mu          sync.RWMutex
	command     string
	args        string
	recordsPath string
	version     string
	basePath    string
}

var crash = &crashContext{}

// SetBasePath sets the directory crash logs are written under.
func SetBasePath(path string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.version = version
}

// SetCommand records the command being executed and its arguments.
func SetCommand(cmd string, args []string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.command = cmd
	crash.args = truncateForLog(strings.Join(args, " "), 500)
}

// SetRecordsPath records which record source was being read.
func SetRecordsPath(path string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.recordsPath = path
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Command     string    `json:"command"`
	Args        string    `json:"args,omitempty"`
	RecordsPath string    `json:"records_path,omitempty"`
	PanicValue  string    `json:"panic_value"`
	StackTrace  string    `json:"stack_trace"`
	GoVersion   string    `json:"go_version"`
	OS          string    `json:"os"`
	Arch        string    `json:"arch"`
}

// HandlePanic recovers from a panic, writes a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		log := createCrashLog(r)
		path, err := writeCrashLog(log)
		reportCrash(os.Stderr, log, path, err)
		os.Exit(1)
	}
}

func reportCrash(w io.Writer, log CrashLog, path string, writeErr error) {
	if writeErr != nil {
		fmt.Fprintf(w, "\n[CRASH] Failed to write crash log: %v\n", writeErr)
		fmt.Fprintf(w, "[CRASH] Panic: %s\n%s\n", log.PanicValue, log.StackTrace)
		return
	}
	fmt.Fprintf(w, "\ncosmos encountered an unexpected error.\n")
	fmt.Fprintf(w, "A crash log has been saved to:\n  %s\n\n", path)
}

func createCrashLog(panicValue any) CrashLog {
	crash.mu.RLock()
	defer crash.mu.RUnlock()

	return CrashLog{
		Timestamp:   time.Now(),
		Version:     crash.version,
		Command:     crash.command,
		Args:        crash.args,
		RecordsPath: crash.recordsPath,
		PanicValue:  fmt.Sprintf("%v", panicValue),
		StackTrace:  string(debug.Stack()),
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
}

// writeCrashLog writes a crash log to disk and returns its path.
func writeCrashLog(log CrashLog) (string, error) {
	dir := getCrashLogDir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	// Non-fatal, continue with writing
	if err := cleanOldCrashLogs(dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := getCrashLogPath(log.Timestamp)
	if err := os.WriteFile(path, []byte(formatCrashLog(log)), 0644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func getCrashLogDir() string {
	crash.mu.RLock()
	basePath := crash.basePath
	crash.mu.RUnlock()

	if basePath == "" {
		basePath = ".cosmos"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func getCrashLogPath(t time.Time) string {
	filename := fmt.Sprintf("crash_%s.log", t.Format("20060102_150405"))
	return filepath.Join(getCrashLogDir(), filename)
}

func formatCrashLog(log CrashLog) string {
	rule := strings.Repeat("-", 80) + "\n"
	double := strings.Repeat("=", 80) + "\n"

	var sb strings.Builder
	sb.WriteString(double)
	sb.WriteString("COSMOS CRASH LOG\n")
	sb.WriteString(double + "\n")

	fmt.Fprintf(&sb, "Timestamp: %s\n", log.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", log.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", log.Command)
	if log.Args != "" {
		fmt.Fprintf(&sb, "Args:      %s\n", log.Args)
	}
	if log.RecordsPath != "" {
		fmt.Fprintf(&sb, "Records:   %s\n", log.RecordsPath)
	}
	fmt.Fprintf(&sb, "Go:        %s\n", log.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:   %s/%s\n", log.OS, log.Arch)

	sb.WriteString("\n" + rule + "PANIC VALUE\n" + rule)
	sb.WriteString(log.PanicValue + "\n")

	sb.WriteString("\n" + rule + "STACK TRACE\n" + rule)
	sb.WriteString(log.StackTrace)

	sb.WriteString("\n" + double + "END OF CRASH LOG\n" + double)
	return sb.String()
}

// cleanOldCrashLogs removes the oldest crash logs so at most keep remain.
func cleanOldCrashLogs(dir string, keep int) error {
	logs, err := listCrashLogs(dir)
	if err != nil {
		return err
	}
	if len(logs) <= keep {
		return nil
	}
	// os.ReadDir sorts by name, and names embed the timestamp.
	for _, path := range logs[:len(logs)-keep] {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func listCrashLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	return logs, nil
}

// ListCrashLogs returns every crash log in the crash log directory, oldest first.
func ListCrashLogs() ([]string, error) {
	return listCrashLogs(getCrashLogDir())
}
