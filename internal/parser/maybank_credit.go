package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// Maybank credit-card statements. A transaction opens with two adjacent
// five-character date tokens (transaction date then posting date, both
// DD/MM). Description lines follow until a strict amount line; a CR
// suffix marks a credit/refund and negates the amount.

// strict amount line, optionally suffixed CR (case-insensitive)
var creditAmountPattern = regexp.MustCompile(`(?i)^(\d{1,3}(?:,\d{3})*(\.\d{2})?)(CR)?$`)

var fourDigitRun = regexp.MustCompile(`\d{4}`)

var maybankCreditColumns = []string{
	"Year",
	"Posting Date",
	"Transaction Date",
	"Transaction Description",
	"Amount",
}

// isShortDate matches the five-character DD/MM tokens used as anchors.
func isShortDate(line string) bool {
	return len(line) == 5 && strings.Contains(line, "/")
}

// creditStatementYear takes the first plausible four-digit year embedded
// in the filename, defaulting to the current processing year.
func creditStatementYear(filename string) int {
	for _, m := range fourDigitRun.FindAllString(filename, -1) {
		y, err := strconv.Atoi(m)
		if err == nil && y > 2010 && y < 2050 {
			return y
		}
	}
	return time.Now().Year()
}

func parseMaybankCreditLines(lines []string, filename string) (*models.Table, error) {
	year := creditStatementYear(filename)
	lines = dropNoise(lines, commonNoise)

	anchor := func(ls []string, i int) (int, bool) {
		if i+1 < len(ls) && isShortDate(ls[i]) && isShortDate(ls[i+1]) {
			return 2, true
		}
		return 0, false
	}
	// a single stray date token ends the body even without a full pair
	boundary := func(ls []string, i int) bool {
		return isShortDate(ls[i])
	}
	groups := groupByAnchor(lines, anchor, boundary)

	table := &models.Table{Columns: maybankCreditColumns}
	for _, g := range groups {
		transactionDate, postingDate := g.anchor[0], g.anchor[1]

		var desc []string
		amountRaw := ""
		for _, line := range g.body {
			clean := strings.TrimSpace(line)
			if m := creditAmountPattern.FindStringSubmatch(clean); m != nil {
				amountRaw = m[1]
				if m[3] != "" {
					amountRaw = "-" + amountRaw
				}
				break
			}
			desc = append(desc, clean)
		}

		amount, ok := parseAmount(amountRaw)
		if !ok {
			continue
		}

		table.Append(models.Record{
			"Year":                    year,
			"Posting Date":            postingDate,
			"Transaction Date":        transactionDate,
			"Transaction Description": strings.Join(desc, ", "),
			"Amount":                  amount,
		})
	}

	if table.Len() == 0 {
		return nil, models.ErrNoTransactions
	}
	return table, nil
}
