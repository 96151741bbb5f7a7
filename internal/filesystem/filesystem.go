// Package filesystem manages the application directories and files under
// the user's home directory.
package filesystem

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nexent-labs/modelctl/internal/config"
)

type PathType string

const (
	settingsFileName = "settings.yaml"

	AppDirectory     PathType = "app"
	CacheDirectory   PathType = "cache"
	ConfigDirectory  PathType = "config"
	SettingsFilePath PathType = "settings_file"
	LogsDirectory    PathType = "logs"
	LogsFilePath     PathType = "log_file"
	DataDirectory    PathType = "data"
	HistoryDB        PathType = "history_db"
)

// Filesystem is a struct that contains the methods to interact with local storage.
type Filesystem struct {
	appCfg *config.AppConfig
}

// NewAppFilesystem creates a new Filesystem instance.
func NewAppFilesystem(appCfg *config.AppConfig) *Filesystem {
	return &Filesystem{
		appCfg: appCfg,
	}
}

// EnsureAllPaths creates all application directories and files if they do
// not exist and returns their locations.
func (s *Filesystem) EnsureAllPaths() (map[PathType]string, error) {
	paths := map[PathType]string{}

	appDirectory, err := s.EnsureAppDirectory()
	if err != nil {
		return paths, err
	}
	paths[AppDirectory] = appDirectory

	for _, dir := range []struct {
		pathType PathType
		name     string
	}{
		{CacheDirectory, "cache"},
		{ConfigDirectory, "config"},
		{LogsDirectory, "logs"},
		{DataDirectory, "data"},
	} {
		fullPath := filepath.Join(appDirectory, dir.name)
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				return paths, err
			}
		}
		paths[dir.pathType] = fullPath
	}

	// history database file under the data directory
	historyDBFilePath, err := s.CreateSQLiteDBFile(paths[DataDirectory], "history.db")
	if err != nil {
		return paths, err
	}
	paths[HistoryDB] = historyDBFilePath

	// settings file under the config directory
	settingsFilePath := filepath.Join(paths[ConfigDirectory], settingsFileName)
	if _, err := os.Stat(settingsFilePath); os.IsNotExist(err) {
		if _, err := os.Create(settingsFilePath); err != nil {
			return paths, err
		}
	}
	paths[SettingsFilePath] = settingsFilePath

	// one log file under the logs directory
	logFilePath := filepath.Join(paths[LogsDirectory], fmt.Sprintf("%s.log", strings.ToLower(s.appCfg.Name)))
	if _, err := os.Stat(logFilePath); os.IsNotExist(err) {
		if _, err := os.Create(logFilePath); err != nil {
			return paths, err
		}
	}
	paths[LogsFilePath] = logFilePath

	return paths, nil
}

// EnsureAppDirectory creates the hidden application directory in the user's
// home directory if needed.
func (s *Filesystem) EnsureAppDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(homeDir, fmt.Sprintf(".%s", strings.ToLower(s.appCfg.Name)))

	if _, err := os.Stat(appDir); os.IsNotExist(err) {
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return "", err
		}
	}

	return appDir, nil
}

// CreateSQLiteDBFile creates an empty SQLite database file and verifies it
// can be opened.
func (s *Filesystem) CreateSQLiteDBFile(dataDirectory, fileName string) (string, error) {
	dbFilePath := filepath.Join(dataDirectory, fileName)
	if _, err := os.Stat(dbFilePath); err == nil {
		return dbFilePath, nil
	}

	file, err := os.Create(dbFilePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	sqliteDB, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return "", err
	}
	defer sqliteDB.Close()

	if err := sqliteDB.Ping(); err != nil {
		return "", err
	}

	return dbFilePath, nil
}
