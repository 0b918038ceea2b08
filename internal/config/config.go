package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config drives one build pass.
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Output  OutputConfig  `mapstructure:"output"`
	Targets []Target      `mapstructure:"targets"`
	Listing ListingConfig `mapstructure:"listing"`
	Log     LogConfig     `mapstructure:"log"`
}

// ScanConfig names the package directory to walk.
type ScanConfig struct {
	Root string `mapstructure:"root"`
}

// OutputConfig names the generated file, written into the scanned package.
type OutputConfig struct {
	File string `mapstructure:"file"`
}

// Target is one requested registration routine.
type Target struct {
	ModuleKey string `mapstructure:"module_key"`
	UseScope  bool   `mapstructure:"use_scope"`
	Func      string `mapstructure:"func"`
}

// ListingConfig controls the generated route listing routine.
type ListingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Func    string `mapstructure:"func"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path, or, when path is empty, from the first
// .routegen.yaml found in searchDirs and then the working directory. It then
// applies environment overrides (ROUTEGEN_ prefix). A missing default file is
// fine; a missing explicit file is not. Type errors in the file, such as a
// non-boolean use_scope, are fatal here rather than surfacing later in
// synthesis.
func Load(path string, searchDirs ...string) (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".routegen")
		v.SetConfigType("yaml")
		for _, dir := range searchDirs {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	// Default Values
	v.SetDefault("scan.root", ".")
	v.SetDefault("output.file", "routes.gen.go")
	v.SetDefault("listing.enabled", true)
	v.SetDefault("listing.func", "ListRoutes")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Environment Variables
	v.SetEnvPrefix("ROUTEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}
