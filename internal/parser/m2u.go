package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// M2U current-account debit statements. Entry dates carry no year, so
// the statement year is resolved up front and appended before parsing.
// An amount is only accepted into the transaction-amount slot when the
// line carries a +/- marker; the balance slot takes the next numeric
// token unconditionally.

var m2uAnchor = regexp.MustCompile(`^\d{2}/\d{2}`)

var m2uSections = []sectionMarkers{
	{"Malayan Banking Berhad (3813-K)", "denoted by DR"},
	{"FCN", "PLEASE BE INFORMED TO CHECK YOUR BANK ACCOUNT BALANCES REGULARLY"},
	{"ENTRY DATE", "STATEMENT BALANCE"},
	{"ENDING BALANCE :", "TOTAL CREDIT :"},
}

var m2uColumns = []string{
	"Entry Date",
	"Transaction Description",
	"Transaction Amount",
	"Statement Balance",
	"flow",
}

func parseM2UDebitLines(lines []string, filename string) (*models.Table, error) {
	lines = compactLines(lines)

	year, err := resolveStatementYear(lines, filename)
	if err != nil {
		return nil, err
	}

	lines = removeSections(lines, m2uSections)
	lines = dropNoise(lines, m2uNoise)

	groups := groupByAnchor(lines, lineStartAnchor(m2uAnchor), nil)

	table := &models.Table{Columns: m2uColumns}
	for _, g := range groups {
		var amountRaw, balanceRaw string
		var desc []string
		for _, line := range g.body {
			if tok, ok := firstAmountToken(line); ok {
				if amountRaw == "" && (strings.Contains(line, "+") || strings.Contains(line, "-")) {
					amountRaw = tok
					continue
				}
				if amountRaw != "" && balanceRaw == "" {
					balanceRaw = tok
					continue
				}
			}
			desc = append(desc, line)
		}

		// a record with no description text is never sealed
		if len(desc) == 0 {
			continue
		}

		entryDate, err := time.Parse("02/01/06", strings.TrimSpace(g.anchor[0])+"/"+year)
		if err != nil {
			return nil, fmt.Errorf("m2u debit: bad entry date %q: %w", g.anchor[0], err)
		}

		cleaned := cleanAmount(amountRaw)
		amount, ok := parseAmount(amountRaw)
		if !ok {
			continue
		}
		flow := models.FlowOutflow
		if strings.Contains(cleaned, "+") {
			flow = models.FlowInflow
		}

		table.Append(models.Record{
			"Entry Date":              entryDate,
			"Transaction Description": strings.Join(desc, " "),
			"Transaction Amount":      amount,
			"Statement Balance":       parseAmountPtr(balanceRaw),
			"flow":                    flow,
		})
	}

	if table.Len() == 0 {
		return nil, models.ErrNoTransactions
	}
	return table, nil
}

// firstAmountToken returns the first numeric token on the line, provided
// at least one candidate still contains digits once separators and sign
// markers are stripped — spurious numeric fragments in descriptions fail
// this check.
func firstAmountToken(line string) (string, bool) {
	tokens := amountTokenPattern.FindAllString(line, -1)
	if len(tokens) == 0 {
		return "", false
	}
	for _, tok := range tokens {
		bare := strings.NewReplacer(",", "", ".", "", "+", "", "-", "").Replace(tok)
		if bare != "" && isDigits(bare) {
			return tokens[0], true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
