package conjecture

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joeycumines/go-conjecture/engine"
	"gopkg.in/yaml.v3"
)

// Settings re-exports engine.Settings, the configuration surface
// spec.md §6.4 describes. It's an alias, not a wrapper type, so every
// engine.Settings field and engine.DefaultSettings are usable without
// a conversion at the call site.
type Settings = engine.Settings

// DefaultSettings returns the engine's baseline configuration.
func DefaultSettings() Settings { return engine.DefaultSettings() }

var (
	profilesMu sync.Mutex
	profiles   = map[string]Settings{"default": DefaultSettings()}
)

// RegisterProfile names settings for later lookup via Profile, mirroring
// spec.md §6.4's "Settings may be attached ... or selected from named
// profiles."
func RegisterProfile(name string, s Settings) {
	profilesMu.Lock()
	defer profilesMu.Unlock()
	profiles[name] = s
}

// Profile returns the named settings profile, and whether it was found.
func Profile(name string) (Settings, bool) {
	profilesMu.Lock()
	defer profilesMu.Unlock()
	s, ok := profiles[name]
	return s, ok
}

// yamlProfile is the on-disk shape for one named profile: a plain
// subset of Settings that's meaningful to express outside of Go code
// (durations as strings, a database root path instead of a live
// engine.Database).
type yamlProfile struct {
	MaxExamples         int      `yaml:"max_examples"`
	MaxIterations       int      `yaml:"max_iterations"`
	DeadlineMS          int      `yaml:"deadline_ms"`
	TimeoutMS           int      `yaml:"timeout_ms"`
	Derandomize         bool     `yaml:"derandomize"`
	SuppressHealthCheck []string `yaml:"suppress_health_check"`
	ReportMultipleBugs  bool     `yaml:"report_multiple_bugs"`
	PrintBlob           bool     `yaml:"print_blob"`
}

// LoadProfiles reads a YAML document at path mapping profile name to
// settings (spec.md §6.4, §6.7: the embedding framework supplies
// settings overrides; this is one concrete, optional way to do it) and
// registers each one via RegisterProfile.
func LoadProfiles(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("conjecture: reading profiles: %w", err)
	}

	var doc map[string]yamlProfile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("conjecture: parsing profiles: %w", err)
	}

	for name, p := range doc {
		s := DefaultSettings()
		if p.MaxExamples > 0 {
			s.MaxExamples = p.MaxExamples
		}
		if p.MaxIterations > 0 {
			s.MaxIterations = p.MaxIterations
		}
		if p.DeadlineMS > 0 {
			s.Deadline = time.Duration(p.DeadlineMS) * time.Millisecond
		}
		if p.TimeoutMS > 0 {
			s.Timeout = time.Duration(p.TimeoutMS) * time.Millisecond
		}
		s.Derandomize = p.Derandomize
		s.ReportMultipleBugs = p.ReportMultipleBugs
		s.PrintBlob = p.PrintBlob
		if len(p.SuppressHealthCheck) > 0 {
			s.SuppressHealthCheck = make(map[string]bool, len(p.SuppressHealthCheck))
			for _, tag := range p.SuppressHealthCheck {
				s.SuppressHealthCheck[tag] = true
			}
		}
		RegisterProfile(name, s)
	}
	return nil
}
