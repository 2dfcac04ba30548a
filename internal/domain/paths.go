package domain

import (
	"os"
	"path/filepath"
	"strconv"
)

// appDirName is the directory name used under XDG base directories.
const appDirName = "pomoplan"

// DataDir returns the data directory, honoring XDG_DATA_HOME.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// GlobalConfigDir returns the config directory, honoring XDG_CONFIG_HOME.
func GlobalConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// StorePath returns the task store file path under the data directory.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, "tasks.json")
}

// LogDir returns the log directory under the data directory.
func LogDir(dataDir string) string {
	return filepath.Join(dataDir, "logs")
}

// GlobalLogPath returns the path of the global log file.
func GlobalLogPath(logDir string) string {
	return filepath.Join(logDir, "pomoplan.log")
}

// TaskLogPath returns the path of a task-specific log file.
func TaskLogPath(logDir string, taskID int) string {
	return filepath.Join(logDir, "task-"+strconv.Itoa(taskID)+".log")
}
