package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRevenue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{input: "1500", expected: 1500, ok: true},
		{input: "1234.56", expected: 1234.56, ok: true},
		{input: "1.234,56", expected: 1234.56, ok: true},
		{input: "1,234.56", expected: 1234.56, ok: true},
		{input: "R$ 1.234.567,89", expected: 1234567.89, ok: true},
		{input: "1.234.567", expected: 1234567, ok: true},
		{input: "980,5", expected: 980.5, ok: true},
		{input: "1.2E+5", expected: 120000, ok: true},
		{input: "0", ok: false},
		{input: "-100", ok: false},
		{input: "R$ -100,00", ok: false},
		{input: "abc", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseRevenue(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, value, 1e-9)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{input: "2024-01-15", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{input: "2024-01-15T10:30:00-03:00", expected: time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC), ok: true},
		{input: "15/01/2024", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{input: "15/01/2024 08:45", expected: time.Date(2024, 1, 15, 8, 45, 0, 0, time.UTC), ok: true},
		{input: "2024-03", expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{input: "03/2024", expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{input: "45306", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{input: "31/02/2024", ok: false},
		{input: "ontem", ok: false},
		{input: "-5", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseDate(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(value), "got %s", value)
				assert.Equal(t, time.UTC, value.Location())
			}
		})
	}
}
