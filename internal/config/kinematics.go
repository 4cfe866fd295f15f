package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/diffdrive/internal/monitoring"
)

// DefaultConfigPath is the path to the canonical kinematics defaults file.
const DefaultConfigPath = "config/kinematics.defaults.json"

// Degeneracy policy names accepted in degeneracy_policy.
const (
	PolicyExact     = "exact"
	PolicyThreshold = "threshold"
)

// KinematicsConfig is the JSON-facing configuration for the differential-drive
// model. Unset fields fall back to the defaults returned by the Get* methods.
type KinematicsConfig struct {
	// DegeneracyPolicy decides when motion is treated as a straight line:
	// "exact" only when v/w is not finite, "threshold" also when
	// |w| < MinAngularVelocity.
	DegeneracyPolicy   *string  `json:"degeneracy_policy,omitempty"`
	MinAngularVelocity *float64 `json:"min_angular_velocity,omitempty"` // rad/s
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// EmptyKinematicsConfig returns a KinematicsConfig with all fields set to nil.
func EmptyKinematicsConfig() *KinematicsConfig {
	return &KinematicsConfig{}
}

// DefaultKinematicsConfig returns a config with every field populated from
// the built-in defaults. It matches config/kinematics.defaults.json.
func DefaultKinematicsConfig() *KinematicsConfig {
	return &KinematicsConfig{
		DegeneracyPolicy:   ptrString(PolicyExact),
		MinAngularVelocity: ptrFloat64(1e-9),
	}
}

// LoadKinematicsConfig loads a KinematicsConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
// Fields omitted from the file keep their defaults via the Get* methods.
func LoadKinematicsConfig(path string) (*KinematicsConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyKinematicsConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	monitoring.Logf("kinematics config loaded from %s (policy=%s)", cleanPath, cfg.GetDegeneracyPolicy())
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath.
// It searches the current directory and a few parents so tests can run from
// any package directory. Panics if the file cannot be loaded.
func MustLoadDefaultConfig() *KinematicsConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,       // from diffdrive/
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadKinematicsConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *KinematicsConfig) Validate() error {
	if c.DegeneracyPolicy != nil {
		switch *c.DegeneracyPolicy {
		case PolicyExact, PolicyThreshold:
		default:
			return fmt.Errorf("degeneracy_policy must be %q or %q, got %q",
				PolicyExact, PolicyThreshold, *c.DegeneracyPolicy)
		}
	}

	if c.MinAngularVelocity != nil {
		if *c.MinAngularVelocity < 0 {
			return fmt.Errorf("min_angular_velocity must be non-negative, got %g", *c.MinAngularVelocity)
		}
	}

	return nil
}

// GetDegeneracyPolicy returns the degeneracy_policy value or the default.
func (c *KinematicsConfig) GetDegeneracyPolicy() string {
	if c.DegeneracyPolicy == nil || *c.DegeneracyPolicy == "" {
		return PolicyExact
	}
	return *c.DegeneracyPolicy
}

// GetMinAngularVelocity returns the min_angular_velocity value or the default.
func (c *KinematicsConfig) GetMinAngularVelocity() float64 {
	if c.MinAngularVelocity == nil {
		return 1e-9
	}
	return *c.MinAngularVelocity
}
