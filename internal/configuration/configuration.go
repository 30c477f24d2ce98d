// Package configuration implements reading of the program settings from
// Unix-type configuration files (KEY=value).
package configuration

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/desertwitch/gogadget/internal/gadget"
)

const (
	KeyConfigfsPath = "GOGADGET_CONFIGFS_PATH"
	KeyUDCPath      = "GOGADGET_UDC_PATH"
	KeyLogLevel     = "GOGADGET_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings are the program settings.
type Settings struct {
	ConfigfsPath string
	UDCPath      string
	LogLevel     slog.Level
}

// DefaultSettings returns the [Settings] used without configuration file.
func DefaultSettings() *Settings {
	return &Settings{
		ConfigfsPath: gadget.DefaultConfigfsPath,
		UDCPath:      gadget.DefaultUDCPath,
		LogLevel:     slog.LevelInfo,
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// LoadSettings returns the [Settings] from the given configuration files,
// with any key not present in them left at its default.
func (c *Handler) LoadSettings(filenames ...string) (*Settings, error) {
	settings := DefaultSettings()

	if len(filenames) == 0 {
		return settings, nil
	}

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	}

	if v := c.MapKeyToString(envMap, KeyConfigfsPath); v != "" {
		settings.ConfigfsPath = v
	}

	if v := c.MapKeyToString(envMap, KeyUDCPath); v != "" {
		settings.UDCPath = v
	}

	if v := c.MapKeyToString(envMap, KeyLogLevel); v != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("(config-load) %s: %w", KeyLogLevel, err)
		}
	}

	return settings, nil
}

func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}
