// Package config loads layered settings: defaults, an optional YAML file,
// PYQUIZ_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// EnvPrefix prefixes every environment override, e.g. PYQUIZ_QUIZ_COUNT.
const EnvPrefix = "PYQUIZ"

// Environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string          `mapstructure:"env"`
	Log       LogConfig       `mapstructure:"log"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Bank      BankConfig      `mapstructure:"bank"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type QuizConfig struct {
	Topic        string   `mapstructure:"topic"`
	Count        int      `mapstructure:"count"`
	AllCount     int      `mapstructure:"all_count"`
	AllSubtopics []string `mapstructure:"all_subtopics"`
}

type GeneratorConfig struct {
	RetryMultiplier int `mapstructure:"retry_multiplier"`
	// Seed fixes the random stream. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

type BankConfig struct {
	// Paths lists static bank files merged into every quiz.
	Paths []string `mapstructure:"paths"`
}

// New returns a viper instance with defaults and environment binding set
// up. Callers bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("quiz.topic", problemgen.DefaultTopic)
	v.SetDefault("quiz.count", 25)
	v.SetDefault("quiz.all_count", 50)
	v.SetDefault("quiz.all_subtopics", []string{"arithmetic", "conditionals", "loops", "lists", "conversion"})
	v.SetDefault("generator.retry_multiplier", problemgen.DefaultRetryMultiplier)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("bank.paths", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file, or pyquiz.yaml from the search path when file is
// empty, then decodes and validates the result. A missing default file is
// not an error; a missing explicit one is.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("pyquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "pyquiz"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	var errs []error
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Errorf("env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env))
	}
	if c.Quiz.Topic == "" {
		errs = append(errs, errors.New("quiz.topic is empty"))
	}
	if c.Quiz.Count <= 0 {
		errs = append(errs, fmt.Errorf("quiz.count must be positive, got %d", c.Quiz.Count))
	}
	if c.Quiz.AllCount <= 0 {
		errs = append(errs, fmt.Errorf("quiz.all_count must be positive, got %d", c.Quiz.AllCount))
	}
	if len(c.Quiz.AllSubtopics) == 0 {
		errs = append(errs, errors.New("quiz.all_subtopics is empty"))
	}
	for _, s := range c.Quiz.AllSubtopics {
		if !problemgen.Subtopic(s).Valid() {
			errs = append(errs, fmt.Errorf("quiz.all_subtopics: %w: %q", problemgen.ErrUnknownSubtopic, s))
		}
	}
	if c.Generator.RetryMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("generator.retry_multiplier must be positive, got %d", c.Generator.RetryMultiplier))
	}
	if c.Log.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Subtopics returns the "all" mix as typed subtopics.
func (c *Config) Subtopics() []problemgen.Subtopic {
	out := make([]problemgen.Subtopic, len(c.Quiz.AllSubtopics))
	for i, s := range c.Quiz.AllSubtopics {
		out[i] = problemgen.Subtopic(s)
	}
	return out
}

// QuestionCount is the quiz length for sub.
func (c *Config) QuestionCount(sub problemgen.Subtopic) int {
	if sub == problemgen.SubtopicAll {
		return c.Quiz.AllCount
	}
	return c.Quiz.Count
}

// EngineConfig applies the generator settings to the engine defaults.
func (c *Config) EngineConfig() problemgen.Config {
	ec := problemgen.DefaultConfig()
	ec.Topic = c.Quiz.Topic
	ec.RetryMultiplier = c.Generator.RetryMultiplier
	return ec
}
