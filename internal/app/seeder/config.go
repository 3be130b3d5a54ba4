package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ItemTypeSeed describes one item type to create when it does not exist.
type ItemTypeSeed struct {
	Name                     string `yaml:"name"`
	DefaultRenewalPeriod     int    `yaml:"default_renewal_period"`
	DefaultReminderIntervals []int  `yaml:"default_reminder_intervals"`
}

// Config holds seeder settings.
type Config struct {
	ItemTypes []ItemTypeSeed `yaml:"item_types"`
	DryRun    bool           `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// DefaultItemTypes is the catalog seeded when no file is given. Intervals
// left empty fall back to the store default.
func DefaultItemTypes() []ItemTypeSeed {
	return []ItemTypeSeed{
		{Name: "Domain", DefaultRenewalPeriod: 365},
		{Name: "SSL Certificate", DefaultRenewalPeriod: 365, DefaultReminderIntervals: []int{30, 14, 7, 1}},
		{Name: "Software License", DefaultRenewalPeriod: 365},
		{Name: "Hosting", DefaultRenewalPeriod: 30, DefaultReminderIntervals: []int{7, 3, 1}},
		{Name: "Support Contract", DefaultRenewalPeriod: 365, DefaultReminderIntervals: []int{60, 30, 15}},
	}
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. Without a file the default catalog is used.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if len(cfg.ItemTypes) == 0 {
		cfg.ItemTypes = DefaultItemTypes()
	}

	return &cfg, nil
}
