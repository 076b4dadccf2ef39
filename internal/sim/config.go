package sim

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultStartYear      = 2025
	defaultStartingBudget = 2_500_000
	defaultMaxYears       = 15
)

type Config struct {
	CompanyName    string
	Region         RegionID
	Seed           int64
	StartYear      int
	StartingBudget int
	MaxYears       int
}

// WithDefaults fills the zero-valued fields a caller left unset. A zero seed
// means "surprise me": it is replaced with the wall clock so unseeded runs
// differ from each other.
func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.CompanyName) == "" {
		c.CompanyName = "Northern Timber Co."
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.StartYear == 0 {
		c.StartYear = defaultStartYear
	}
	if c.StartingBudget == 0 {
		c.StartingBudget = defaultStartingBudget
	}
	if c.MaxYears == 0 {
		c.MaxYears = defaultMaxYears
	}
	return c
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CompanyName) == "" {
		return fmt.Errorf("company name must not be empty")
	}
	if _, ok := RegionByID(c.Region); !ok {
		return fmt.Errorf("region not found: %s", c.Region)
	}
	if c.StartYear < 1900 {
		return fmt.Errorf("start year out of range: %d", c.StartYear)
	}
	if c.StartingBudget <= 0 {
		return fmt.Errorf("starting budget must be positive, got %d", c.StartingBudget)
	}
	if c.MaxYears < 1 || c.MaxYears > 100 {
		return fmt.Errorf("max years must be between 1 and 100, got %d", c.MaxYears)
	}
	return nil
}
