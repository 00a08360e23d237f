package pack

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Manifest describes the package being built. Every field is optional: a
// project without a manifest is packaged under its directory name.
type Manifest struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LoadManifest reads the project manifest (pack.yaml, pack.json or
// pack.toml) from root and fills in defaults for missing fields. A missing
// manifest is not an error; a present but unparsable one is.
func LoadManifest(root string, logger *zap.Logger) (Manifest, error) {
	v := viper.New()
	v.SetConfigName("pack")
	v.AddConfigPath(root)

	var m Manifest
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Manifest{}, fmt.Errorf("reading manifest: %w", err)
		}
		logger.Debug("no manifest found, using defaults", zap.String("root", root))
	} else {
		if err := v.Unmarshal(&m); err != nil {
			return Manifest{}, fmt.Errorf("parsing manifest %s: %w", v.ConfigFileUsed(), err)
		}
		logger.Debug("loaded manifest", zap.String("file", v.ConfigFileUsed()))
	}

	if m.Name == "" {
		m.Name = filepath.Base(root)
	}
	if m.Version == "" {
		m.Version = "0.0.0"
	}
	return m, nil
}

// ArchiveName returns the file name the archive is written under.
func (m Manifest) ArchiveName() string {
	return fmt.Sprintf("%s-%s.zip", m.Name, m.Version)
}
