package config

import (
	"github.com/spf13/viper"
)

// Default level, logrus.InfoLevel.
const defaultLevel = 4

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	level := defaultLevel
	if v.IsSet("logger.level") {
		level = v.GetInt("logger.level")
	}

	output := v.GetString("logger.output")
	if output == "" {
		output = "stderr"
	}

	return &Config{
		Level:           level,
		Format:          v.GetString("logger.format"),
		Output:          output,
		OutputFile:      v.GetString("logger.output_file"),
		Desensitization: getDesensitizationConfigs(v),
	}
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return GetConfig(viper.New())
}
