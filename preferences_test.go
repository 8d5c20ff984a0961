package pocketfolio

import (
	"testing"
	"time"
)

func TestPreferences_Normalize(t *testing.T) {
	def := DefaultPreferences()
	testCases := []struct {
		name string
		in   Preferences
		want Preferences
	}{
		{
			name: "zero value folds to defaults",
			in:   Preferences{},
			want: Preferences{Currency: "USD", Theme: ThemeSystem, Notifications: false, BudgetAlertThreshold: 80, PriceRefreshSeconds: 30, NewsRetentionDays: 30},
		},
		{
			name: "valid settings untouched",
			in:   Preferences{Currency: "EUR", Theme: ThemeDark, Notifications: true, BudgetAlertThreshold: 90, PriceRefreshSeconds: 5, NewsRetentionDays: 7},
			want: Preferences{Currency: "EUR", Theme: ThemeDark, Notifications: true, BudgetAlertThreshold: 90, PriceRefreshSeconds: 5, NewsRetentionDays: 7},
		},
		{
			name: "lowercase currency uppercased",
			in:   Preferences{Currency: "eur", Theme: ThemeLight, BudgetAlertThreshold: 50, PriceRefreshSeconds: 10, NewsRetentionDays: 14},
			want: Preferences{Currency: "EUR", Theme: ThemeLight, BudgetAlertThreshold: 50, PriceRefreshSeconds: 10, NewsRetentionDays: 14},
		},
		{
			name: "bad fields fold individually",
			in:   Preferences{Currency: "DOGE", Theme: "neon", BudgetAlertThreshold: 250, PriceRefreshSeconds: -1, NewsRetentionDays: 0, Notifications: true},
			want: Preferences{Currency: def.Currency, Theme: def.Theme, BudgetAlertThreshold: def.BudgetAlertThreshold, PriceRefreshSeconds: def.PriceRefreshSeconds, NewsRetentionDays: def.NewsRetentionDays, Notifications: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPreferences_Set(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(Preferences) bool
	}{
		{name: "currency", key: "currency", value: "gbp", check: func(p Preferences) bool { return p.Currency == "GBP" }},
		{name: "bad currency", key: "currency", value: "XXXX", wantErr: true},
		{name: "theme", key: "theme", value: "dark", check: func(p Preferences) bool { return p.Theme == ThemeDark }},
		{name: "bad theme", key: "theme", value: "neon", wantErr: true},
		{name: "notifications off", key: "notifications", value: "off", check: func(p Preferences) bool { return !p.Notifications }},
		{name: "notifications yes", key: "notifications", value: "yes", check: func(p Preferences) bool { return p.Notifications }},
		{name: "bad notifications", key: "notifications", value: "maybe", wantErr: true},
		{name: "threshold", key: "budget-alert-threshold", value: "95", check: func(p Preferences) bool { return p.BudgetAlertThreshold == 95 }},
		{name: "threshold over 100", key: "budget-alert-threshold", value: "120", wantErr: true},
		{name: "threshold zero", key: "budget-alert-threshold", value: "0", wantErr: true},
		{name: "refresh", key: "price-refresh-seconds", value: "10", check: func(p Preferences) bool { return p.PriceRefreshSeconds == 10 }},
		{name: "bad refresh", key: "price-refresh-seconds", value: "soon", wantErr: true},
		{name: "retention", key: "news-retention-days", value: "14", check: func(p Preferences) bool { return p.NewsRetentionDays == 14 }},
		{name: "unknown key", key: "font-size", value: "12", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultPreferences()
			err := p.Set(tc.key, tc.value)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Set(%q, %q) accepted, want error", tc.key, tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) failed: %v", tc.key, tc.value, err)
			}
			if !tc.check(p) {
				t.Errorf("Set(%q, %q) did not apply: %+v", tc.key, tc.value, p)
			}
		})
	}
}

func TestPreferences_Durations(t *testing.T) {
	p := DefaultPreferences()
	if got, want := p.RefreshInterval(), 30*time.Second; got != want {
		t.Errorf("RefreshInterval = %s, want %s", got, want)
	}
	if got, want := p.NewsRetention(), 30*24*time.Hour; got != want {
		t.Errorf("NewsRetention = %s, want %s", got, want)
	}
}
