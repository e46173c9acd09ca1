package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// Maybank Islamic debit statements. Each transaction starts with a
// DD/MM/YY line, followed by the transaction amount (with a trailing
// +/- marker), the running balance, and free-text description lines.

var maybankDebitAnchor = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`)

// boilerplate blocks that vary per statement page
var maybankDebitSections = []sectionMarkers{
	{"Maybank Islamic Berhad", "Please notify us of any change of address in writing."},
	{"15th Floor, Tower A, Dataran Maybank, 1, Jalan Maarof, 59000 Kuala Lumpur", "請通知本行在何地址更换。"},
	{"ENTRY DATE", "STATEMENT BALANCE"},
	{"ENDING BALANCE :", "TOTAL DEBIT :"},
}

// transaction-type literals that replace the free-text description with
// a fixed human-readable label; first match wins
var maybankTypeLabels = []struct {
	literal string
	label   string
}{
	{"CASH WITHDRAWAL", "CASH WITHDRAWAL"},
	{"DEBIT ADVICE", "Card Annual Fee"},
	{"PROFIT PAID", "PROFIT PAID"},
}

var (
	// balance figure leaked into the description text
	descEmbeddedBalance = regexp.MustCompile(`\d+,\d+\.\d+`)
	descBalanceWithSep  = regexp.MustCompile(`\d+,\d+\.\d+, `)
	// standalone amount left dangling at the end of the description
	descTrailingAmount = regexp.MustCompile(`, (\d{1,3}(?:,\d{3})*(?:\.\d{2}))$`)
)

var maybankDebitColumns = []string{
	"Entry Date",
	"Transaction Type",
	"Transaction Description",
	"Transaction Amount",
	"Statement Balance",
	"Statement Balance 2",
	"flow",
}

func parseMaybankDebitLines(lines []string, _ string) (*models.Table, error) {
	lines = removeSections(lines, maybankDebitSections)
	lines = dropNoise(lines, commonNoise)

	groups := groupByAnchor(lines, lineStartAnchor(maybankDebitAnchor), nil)

	table := &models.Table{Columns: maybankDebitColumns}
	for _, g := range groups {
		entryDate, err := time.Parse("02/01/06", strings.TrimSpace(g.anchor[0]))
		if err != nil {
			return nil, fmt.Errorf("maybank debit: bad entry date %q: %w", g.anchor[0], err)
		}

		var amountRaw, balanceRaw string
		var desc []string
		state := awaitingAmount
		for _, line := range g.body {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if state != slotsFilled && isAmountLine(line) {
				if state == awaitingAmount {
					amountRaw = line
					state = awaitingBalance
				} else {
					balanceRaw = line
					state = slotsFilled
				}
				continue
			}
			desc = append(desc, line)
		}

		amount, ok := parseAmount(amountRaw)
		if !ok {
			continue
		}

		description := strings.Join(desc, ", ")

		// second statement-balance figure, distinct from the captured slot
		var balance2 any
		if m := descEmbeddedBalance.FindString(description); m != "" {
			balance2 = parseAmountPtr(m)
		}
		description = descBalanceWithSep.ReplaceAllString(description, "")
		description = descTrailingAmount.ReplaceAllString(description, "")

		txType := ""
	labels:
		for _, dl := range desc {
			for _, t := range maybankTypeLabels {
				if dl == t.literal {
					txType = t.literal
					description = t.label
					break labels
				}
			}
		}

		table.Append(models.Record{
			"Entry Date":              entryDate,
			"Transaction Type":        txType,
			"Transaction Description": description,
			"Transaction Amount":      amount,
			"Statement Balance":       parseAmountPtr(balanceRaw),
			"Statement Balance 2":     balance2,
			"flow":                    flowFromSuffix(cleanAmount(amountRaw)),
		})
	}

	if table.Len() == 0 {
		return nil, models.ErrNoTransactions
	}
	return table, nil
}
