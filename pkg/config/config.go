// Package config loads the machine's YAML configuration file and
// carries the defaults used when no file is given.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"atm-sim/pkg/admin"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/logging"
	"atm-sim/pkg/money"
)

// Config is the full machine configuration.
type Config struct {
	Logging   logging.Config  `yaml:"logging"`
	Admin     admin.Config    `yaml:"admin"`
	Dispenser DispenserConfig `yaml:"dispenser"`
	Journal   JournalConfig   `yaml:"journal"`
	Accounts  []AccountConfig `yaml:"accounts"`
}

// DispenserConfig describes the cash cassette loaded at start-up.
type DispenserConfig struct {
	// Bills is the number of $20 bills stocked.
	Bills int `yaml:"bills"`
}

// JournalConfig describes the audit journal. An empty path disables it.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// AccountConfig is one account seeded into the ledger. Balances are
// written as dollar amounts, e.g. "1000.00" or "$1,000.00".
type AccountConfig struct {
	Number    int    `yaml:"number"`
	PIN       int    `yaml:"pin"`
	Available string `yaml:"available"`
	Total     string `yaml:"total"`
}

// DefaultConfig returns the stock configuration: two demo accounts and
// a full cassette.
func DefaultConfig() Config {
	return Config{
		Logging: logging.DefaultConfig(),
		Admin:   admin.DefaultConfig(),
		Dispenser: DispenserConfig{
			Bills: 500,
		},
		Journal: JournalConfig{
			Path: "atm.journal",
		},
		Accounts: []AccountConfig{
			{Number: 12345, PIN: 54321, Available: "1000.00", Total: "1200.00"},
			{Number: 98765, PIN: 56789, Available: "200.00", Total: "200.00"},
		},
	}
}

// Load reads path into a Config layered over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.Dispenser.Bills <= 0 {
		return errors.New("config: dispenser bills must be positive")
	}
	if len(c.Accounts) == 0 {
		return errors.New("config: at least one account is required")
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	for _, a := range c.Accounts {
		if a.Number <= 0 {
			return fmt.Errorf("config: account number %d must be positive", a.Number)
		}
		if _, err := money.Parse(a.Available); err != nil {
			return fmt.Errorf("config: account %d available balance: %w", a.Number, err)
		}
		if _, err := money.Parse(a.Total); err != nil {
			return fmt.Errorf("config: account %d total balance: %w", a.Number, err)
		}
	}
	return nil
}

// SeedAccounts builds ledger accounts from the configured entries.
func (c Config) SeedAccounts() ([]*ledger.Account, error) {
	accounts := make([]*ledger.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		available, err := money.Parse(a.Available)
		if err != nil {
			return nil, fmt.Errorf("config: account %d available balance: %w", a.Number, err)
		}
		total, err := money.Parse(a.Total)
		if err != nil {
			return nil, fmt.Errorf("config: account %d total balance: %w", a.Number, err)
		}
		account, err := ledger.NewAccount(a.Number, a.PIN, available, total)
		if err != nil {
			return nil, fmt.Errorf("config: account %d: %w", a.Number, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
