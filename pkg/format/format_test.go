package format

import (
	"testing"
	"time"
)

func TestEUR(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Simple amount", amount: 250, expected: "€250.00"},
		{name: "Thousands separator", amount: 1234.56, expected: "€1,234.56"},
		{name: "Negative amount", amount: -1234.56, expected: "-€1,234.56"},
		{name: "Zero", amount: 0, expected: "€0.00"},
		{name: "Micro fee", amount: 0.02, expected: "€0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EUR(tt.amount); got != tt.expected {
				t.Errorf("EUR(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "Seconds", d: 38 * time.Second, expected: "38s"},
		{name: "Minutes", d: 90 * time.Second, expected: "1 min 30s"},
		{name: "Hours", d: 26 * time.Hour, expected: "26h 0m"},
		{name: "Days", d: 50 * time.Hour, expected: "2d 2h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.d); got != tt.expected {
				t.Errorf("Duration(%v) = %q, expected %q", tt.d, got, tt.expected)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		pct      float64
		expected string
	}{
		{0, "0.0%"},
		{7.25, "7.2%"},
		{42.4, "42%"},
		{100, "100%"},
		{104, "100%"},
	}

	for _, tt := range tests {
		if got := Progress(tt.pct); got != tt.expected {
			t.Errorf("Progress(%v) = %q, expected %q", tt.pct, got, tt.expected)
		}
	}
}
