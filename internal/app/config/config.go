package config

// Config provides read-only access to application configuration.
// It abstracts the configuration source (settings file or defaults)
// so the CLI layer does not depend on infrastructure details.
type Config interface {
	// Home returns the base directory for settings (TODOTXT_HOME)
	Home() string

	// TodoFile returns the default todo.txt path
	TodoFile() string

	// StderrLevel returns the stderr log level (debug, info, warn, error)
	StderrLevel() string

	// ConfigSource returns where the configuration came from: "yaml" or "default"
	ConfigSource() string

	// SettingPath returns the path of the loaded settings file, or ""
	SettingPath() string
}

// AppConfig is the concrete implementation of Config
type AppConfig struct {
	home         string
	todoFile     string
	stderrLevel  string
	configSource string
	settingPath  string
}

// NewAppConfig creates an AppConfig with the given values
func NewAppConfig(home, todoFile, stderrLevel, configSource, settingPath string) *AppConfig {
	return &AppConfig{
		home:         home,
		todoFile:     todoFile,
		stderrLevel:  stderrLevel,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

func (c *AppConfig) Home() string         { return c.home }
func (c *AppConfig) TodoFile() string     { return c.todoFile }
func (c *AppConfig) StderrLevel() string  { return c.stderrLevel }
func (c *AppConfig) ConfigSource() string { return c.configSource }
func (c *AppConfig) SettingPath() string  { return c.settingPath }
