package pocketfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

// Preferences are the flat user settings. There is no relational structure:
// the whole struct persists as a single JSON document.
type Preferences struct {
	Currency             string `json:"currency"`
	Theme                string `json:"theme"`
	Notifications        bool   `json:"notifications"`
	BudgetAlertThreshold int    `json:"budgetAlertThreshold"` // percent of budget that triggers an alert
	PriceRefreshSeconds  int    `json:"priceRefreshSeconds"`  // simulator tick interval
	NewsRetentionDays    int    `json:"newsRetentionDays"`    // articles older than this are pruned
}

// Themes a preference file may name.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// DefaultPreferences returns the settings used before the user changes
// anything, and the values out-of-range settings normalize back to.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency:             "USD",
		Theme:                ThemeSystem,
		Notifications:        true,
		BudgetAlertThreshold: 80,
		PriceRefreshSeconds:  30,
		NewsRetentionDays:    30,
	}
}

// Normalize folds invalid or out-of-range settings back to their defaults
// and returns the result. It never fails: a broken preference file degrades
// to defaults field by field.
func (p Preferences) Normalize() Preferences {
	def := DefaultPreferences()
	if money.GetCurrency(strings.ToUpper(p.Currency)) == nil {
		p.Currency = def.Currency
	} else {
		p.Currency = strings.ToUpper(p.Currency)
	}
	switch p.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		p.Theme = def.Theme
	}
	if p.BudgetAlertThreshold <= 0 || p.BudgetAlertThreshold > 100 {
		p.BudgetAlertThreshold = def.BudgetAlertThreshold
	}
	if p.PriceRefreshSeconds < 1 {
		p.PriceRefreshSeconds = def.PriceRefreshSeconds
	}
	if p.NewsRetentionDays < 1 {
		p.NewsRetentionDays = def.NewsRetentionDays
	}
	return p
}

// RefreshInterval returns the simulator tick interval.
func (p Preferences) RefreshInterval() time.Duration {
	return time.Duration(p.PriceRefreshSeconds) * time.Second
}

// NewsRetention returns the news retention window.
func (p Preferences) NewsRetention() time.Duration {
	return time.Duration(p.NewsRetentionDays) * 24 * time.Hour
}

// Set assigns a preference by key name, parsing the value. Known keys are
// currency, theme, notifications, budget-alert-threshold,
// price-refresh-seconds and news-retention-days.
func (p *Preferences) Set(key, value string) error {
	switch key {
	case "currency":
		cur := strings.ToUpper(strings.TrimSpace(value))
		if money.GetCurrency(cur) == nil {
			return fmt.Errorf("unknown currency code: %q", value)
		}
		p.Currency = cur
	case "theme":
		switch value {
		case ThemeLight, ThemeDark, ThemeSystem:
			p.Theme = value
		default:
			return fmt.Errorf("unknown theme: %q (want light, dark or system)", value)
		}
	case "notifications":
		switch value {
		case "on", "true", "yes":
			p.Notifications = true
		case "off", "false", "no":
			p.Notifications = false
		default:
			return fmt.Errorf("invalid notifications value: %q (want on or off)", value)
		}
	case "budget-alert-threshold":
		n, err := parsePositiveInt(value)
		if err != nil || n > 100 {
			return fmt.Errorf("invalid threshold %q: want a percent in 1..100", value)
		}
		p.BudgetAlertThreshold = n
	case "price-refresh-seconds":
		n, err := parsePositiveInt(value)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %v", value, err)
		}
		p.PriceRefreshSeconds = n
	case "news-retention-days":
		n, err := parsePositiveInt(value)
		if err != nil {
			return fmt.Errorf("invalid retention %q: %v", value, err)
		}
		p.NewsRetentionDays = n
	default:
		return fmt.Errorf("unknown preference key: %q", key)
	}
	return nil
}

func parsePositiveInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &n); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}
