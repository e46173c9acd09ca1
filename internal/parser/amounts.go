package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

var (
	// thousands-grouped or plain number with optional two decimals and a
	// trailing sign marker
	amountTokenPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{2})?[+-]?|\d+(?:\.\d{2})?[+-]?`)
	// a line that is nothing but one such number
	amountLinePattern = regexp.MustCompile(`^(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d{2})?[+-]?$`)

	nonAmountChars  = regexp.MustCompile(`[^\d.,+-]`)
	nonNumericChars = regexp.MustCompile(`[^\d.]`)
)

// cleanAmount strips everything but digits, separators and sign markers.
// Returns "" when nothing numeric remains.
func cleanAmount(s string) string {
	return nonAmountChars.ReplaceAllString(s, "")
}

// parseAmount converts a captured numeric string to a float, dropping
// thousands separators and trailing sign markers. A leading minus sign
// is preserved. ok is false when no number remains.
func parseAmount(s string) (f float64, ok bool) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = nonNumericChars.ReplaceAllString(s, "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

// parseAmountPtr is parseAmount for nullable output cells.
func parseAmountPtr(s string) any {
	if f, ok := parseAmount(s); ok {
		return f
	}
	return nil
}

// isAmountLine reports whether a trimmed line consists of one numeric
// token, optionally signed.
func isAmountLine(line string) bool {
	return amountLinePattern.MatchString(line)
}

// flowFromSuffix maps a trailing sign marker on a cleaned amount string
// to its flow classification.
func flowFromSuffix(amount string) models.Flow {
	switch {
	case strings.HasSuffix(amount, "+"):
		return models.FlowDeposit
	case strings.HasSuffix(amount, "-"):
		return models.FlowWithdrawal
	default:
		return models.FlowUnknown
	}
}
