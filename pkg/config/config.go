package config

import (
	"time"
)

// Config is the complete bannerkit configuration
type Config struct {
	Game     Game              `koanf:"game"`
	Install  Install           `koanf:"install"`
	Notify   Notify            `koanf:"notify"`
	Watch    Watch             `koanf:"watch"`
	Output   Output            `koanf:"output"`
	Profiles map[string]string `koanf:"profiles"`
}

// Game selects the game id installers are tested against
type Game struct {
	ID string `koanf:"id"`
}

// Install holds installer tuning
type Install struct {
	// Concurrency bounds parallel SubModule.xml reads; 0 means unbounded
	Concurrency int `koanf:"concurrency"`
}

// Notify holds launcher notification settings
type Notify struct {
	Message string `koanf:"message"`
}

// Watch holds deployment watcher settings
type Watch struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format"`
}

// GameForProfile returns the game a profile manages. It lets a Config
// serve as the notifier's profile resolver.
func (c *Config) GameForProfile(profileID string) (string, bool) {
	gameID, ok := c.Profiles[profileID]
	return gameID, ok
}
