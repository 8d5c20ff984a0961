package pocketfolio

import "time"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// D is a helper for tests to create a date from const
func D(y int, m time.Month, d int) Date { return NewDate(y, m, d) }
