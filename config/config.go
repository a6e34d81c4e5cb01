package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultLogValue = true

	defaultDataDir          = "."
	defaultBooksFile        = "books.txt"
	defaultMembersFile      = "members.txt"
	defaultTransactionsFile = "transactions.log"
	defaultLogFile          = "librarydesk.log"
)

type (
	Config struct {
		Store struct {
			Dir              string `env:"DATA_DIR"`
			BooksFile        string `env:"BOOKS_FILE"`
			MembersFile      string `env:"MEMBERS_FILE"`
			TransactionsFile string `env:"TRANSACTIONS_FILE"`
		}

		Log struct {
			File          string `env:"LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogRepo       bool   `env:"LOG_REPO_ENABLED"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.Store.Dir, err = parseEnvString(v, "data_dir", "DATA_DIR", defaultDataDir); err != nil {
		return nil, err
	}

	if cfg.Store.BooksFile, err = parseEnvString(v, "books_file", "BOOKS_FILE", defaultBooksFile); err != nil {
		return nil, err
	}

	if cfg.Store.MembersFile, err = parseEnvString(v, "members_file", "MEMBERS_FILE", defaultMembersFile); err != nil {
		return nil, err
	}

	if cfg.Store.TransactionsFile, err = parseEnvString(v, "transactions_file", "TRANSACTIONS_FILE", defaultTransactionsFile); err != nil {
		return nil, err
	}

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE", defaultLogFile); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogRepo, err = parseEnvBool(v, "log_repo", "LOG_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BooksPath is the book records file inside the data directory.
func (c *Config) BooksPath() string {
	return filepath.Join(c.Store.Dir, c.Store.BooksFile)
}

// MembersPath is the member records file inside the data directory.
func (c *Config) MembersPath() string {
	return filepath.Join(c.Store.Dir, c.Store.MembersFile)
}

// TransactionsPath is the transaction log file inside the data directory.
func (c *Config) TransactionsPath() string {
	return filepath.Join(c.Store.Dir, c.Store.TransactionsFile)
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
