package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// CIMB debit statements. Anchors are DD/MM/YYYY lines (the line also
// carries the transaction type) or the literal OPENING BALANCE line.
// Flow is not sign-based: each record's balance is compared numerically
// against the previous record's balance.

var (
	cimbDatePattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
	cimbAmountStart  = regexp.MustCompile(`^-?\d`)
	cimbPageSections = []sectionMarkers{{"Page / Halaman", "ISLAMIC BBB-PPPP"}}
)

var cimbColumns = []string{
	"Date",
	"Transaction Type",
	"Transaction Description",
	"Transaction Description2",
	"Amount",
	"Balance After Transaction",
	"output",
}

// removeCloseDates keeps a date line only when it starts a fresh
// four-line window: after keeping one the walk jumps four indices, and
// any date line landed inside that window is dropped. Ported behavior
// whose upstream intent is unclear; kept literal on purpose.
func removeCloseDates(lines []string) []string {
	valid := make([]bool, len(lines))
	for i := 0; i < len(lines); {
		if cimbDatePattern.MatchString(lines[i]) {
			valid[i] = true
			i += 4
		} else {
			i++
		}
	}
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if valid[i] || !cimbDatePattern.MatchString(line) {
			out = append(out, line)
		}
	}
	return out
}

// isPureNumber reports digit-only noise lines (no decimal point or
// thousands separator, spaces ignored).
func isPureNumber(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	return isDigits(s)
}

func parseCIMBDebitLines(lines []string, _ string) (*models.Table, error) {
	lines = removeSections(lines, cimbPageSections)
	lines = dropNoise(lines, commonNoise)
	lines = removeCloseDates(lines)

	data := make([]string, 0, len(lines))
	for _, line := range lines {
		if isPureNumber(line) {
			continue
		}
		// canonical merchant-name replacement
		if line == "99 SPEEDMART-2133" {
			line = "ninetynine speed mart"
		}
		data = append(data, line)
	}

	anchor := func(ls []string, i int) (int, bool) {
		if ls[i] == "OPENING BALANCE" || cimbDatePattern.MatchString(ls[i]) {
			return 1, true
		}
		return 0, false
	}
	groups := groupByAnchor(data, anchor, nil)

	type cimbRow struct {
		date, txType, desc, desc2 string
		amountRaw, balanceRaw     string
	}

	rows := make([]cimbRow, 0, len(groups))
	for gi, g := range groups {
		if g.anchor[0] == "OPENING BALANCE" {
			row := cimbRow{
				date:       "-",
				desc:       "Opening Balance",
				desc2:      "Opening Balance",
				balanceRaw: "-",
			}
			if len(g.body) > 0 {
				row.amountRaw = strings.TrimSpace(g.body[0])
			}
			rows = append(rows, row)
			continue
		}

		var desc []string
		amountRaw, balanceRaw := "", ""
		j := 0
		for ; j < len(g.body); j++ {
			s := strings.TrimSpace(g.body[j])
			if cimbAmountStart.MatchString(s) {
				break
			}
			if s != "" {
				desc = append(desc, s)
			}
		}
		if j < len(g.body) {
			amountRaw = strings.TrimSpace(g.body[j])
			j++
		}
		for ; j < len(g.body); j++ {
			if s := strings.TrimSpace(g.body[j]); s != "" {
				balanceRaw = s
				break
			}
		}
		// the original scan ran past the group and picked up the next
		// anchor line as the balance when the body held nothing usable
		if balanceRaw == "" && gi+1 < len(groups) {
			balanceRaw = groups[gi+1].anchor[0]
		}

		date, txType := g.anchor[0], ""
		if idx := strings.IndexAny(date, " \t"); idx > 0 {
			date, txType = date[:idx], strings.TrimSpace(g.anchor[0][idx+1:])
		}

		joined := strings.Join(desc, ", ")
		// the first word of the description block is the channel code;
		// the remainder plus the beneficiary line form the description
		desc2 := ""
		if words := strings.Fields(joined); len(words) > 1 {
			desc2 = strings.Join(words[1:], " ")
		}
		beneficiary := "-"
		if len(desc) > 0 {
			beneficiary = desc[0]
		}

		rows = append(rows, cimbRow{
			date:       date,
			txType:     txType,
			desc:       desc2 + ", " + beneficiary,
			desc2:      desc2,
			amountRaw:  amountRaw,
			balanceRaw: balanceRaw,
		})
	}

	table := &models.Table{Columns: cimbColumns}
	prevBalance, prevOK := 0.0, false
	for i, row := range rows {
		// balance-delta flow classification; the first record has none
		var flow any
		if i > 0 {
			balance, ok := parseAmount(row.balanceRaw)
			if ok && prevOK && balance > prevBalance {
				flow = models.FlowDeposit
			} else {
				flow = models.FlowWithdrawal
			}
		}
		prevBalance, prevOK = parseAmount(row.balanceRaw)

		desc := row.desc
		if desc == "Balance, -" {
			desc = "Opening Balance"
		}

		amount, ok := parseAmount(row.amountRaw)
		if !ok {
			continue
		}

		table.Append(models.Record{
			"Date":                      row.date,
			"Transaction Type":          row.txType,
			"Transaction Description":   desc,
			"Transaction Description2":  row.desc2,
			"Amount":                    amount,
			"Balance After Transaction": row.balanceRaw,
			"output":                    flow,
		})
	}

	if table.Len() == 0 {
		return nil, models.ErrNoTransactions
	}
	return table, nil
}
