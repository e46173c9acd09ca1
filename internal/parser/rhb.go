package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// RHB Reflex business-account statements. A transaction starts at a
// DD-MM-YYYY or DD-MM-YY line; everything up to the next anchor is
// joined into one string and picked apart from the tail: amount with
// DR/CR routing, then a known transaction-type label, then the
// sender/beneficiary remainder. The reference and amount fields carry a
// deliberate one-row shift (see design notes).

var (
	rhbAnchor = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4}|\d{2}-\d{2}-\d{2})`)
	// trailing <amount><DR|CR|+|-> on the joined transaction text
	rhbTailAmount = regexp.MustCompile(`([\d,]+\.\d{2})\s*(DR|CR|\+|-)?$`)
	// leading balance artifact carried over from the previous row
	rhbLeadingBalance = regexp.MustCompile(`^([\d,]+\.\d{2}\+)\s*(.*)`)

	rhbRefCode   = regexp.MustCompile(`[A-Za-z]`)
	rhbRefDigit  = regexp.MustCompile(`\d`)
	rhbThreeNum  = regexp.MustCompile(`^\d{3}$`)
	rhbLongDigit = regexp.MustCompile(`^\d{8,}$`)
)

// transaction-type labels, ordered; the first substring match is
// extracted as the description
var rhbTransactionTypes = []string{
	"DUITNOW QR POS CR",
	"INWARD IBG",
	"RFLX",
	"DUITNOW",
	"RPP INWARD INST TRF",
	"LOCAL CHQ",
	"REFLEX-FUNDS TFR DR",
	"MB FUND",
	"CASH DEPOSIT",
	"RPP INWARD",
	"REFLEX-FUNDS TFR",
	"REFLEX- FUNDS TFR DR",
	"RFLX INSTANT TRF DR",
	"RFLX INSTANT TRF SC",
}

// boilerplate that leaks from page footers and column headers into the
// reference text
var rhbUnwantedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)06/\s*\d+\s*/\s*-\s*`),
	regexp.MustCompile(`(?i)/\s*\d{3,}\s*/\s*-\s*`),
	regexp.MustCompile(`(?i)www\.rhbgroup\.com.*`),
	regexp.MustCompile(`(?i)For Any Enquiries.*`),
	regexp.MustCompile(`(?i)Date Branch Description.*`),
	regexp.MustCompile(`(?i)Reference 1 / Recipient's Reference.*`),
	regexp.MustCompile(`(?i)Reference 2 / Other Payment Details.*`),
	regexp.MustCompile(`(?i)RefNum.*`),
	regexp.MustCompile(`(?i)Amount \(DR\).*`),
	regexp.MustCompile(`(?i)Amount \(CR\).*`),
	regexp.MustCompile(`(?i)Balance Sender's / Beneficiary's Name.*`),
	regexp.MustCompile(`(?i)Sender's / Beneficiary's Name.*`),
}

var rhbColumns = []string{
	"Date",
	"Description",
	"Sender/Beneficiary",
	"Amount (DR)",
	"Amount (CR)",
	"Balance",
	"Recipient Reference",
}

func parseRHBFlexLines(lines []string, _ string) (*models.Table, error) {
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed = append(trimmed, strings.TrimSpace(line))
	}

	anchor := func(ls []string, i int) (int, bool) {
		if rhbAnchor.MatchString(ls[i]) {
			return 1, true
		}
		return 0, false
	}
	groups := groupByAnchor(trimmed, anchor, nil)
	if len(groups) == 0 {
		return nil, models.ErrNoTransactions
	}

	type rhbRow struct {
		date, description, sender string
		amountDR, amountCR        any
		balance                   string
		reference                 string
	}

	rows := make([]rhbRow, 0, len(groups))
	for _, g := range groups {
		date, err := formatRHBDate(rhbAnchor.FindString(g.anchor[0]))
		if err != nil {
			return nil, err
		}

		combined := strings.TrimSpace(strings.Join(g.body, " "))

		var amountDR, amountCR any
		if m := rhbTailAmount.FindStringSubmatchIndex(combined); m != nil {
			amount := strings.ReplaceAll(combined[m[2]:m[3]], ",", "")
			sign := ""
			if m[4] >= 0 {
				sign = combined[m[4]:m[5]]
			}
			if sign == "DR" || sign == "-" {
				amountDR = parseAmountPtr(amount)
			} else {
				amountCR = parseAmountPtr(amount)
			}
			combined = strings.TrimSpace(combined[:m[0]])
		}

		description := ""
		for _, t := range rhbTransactionTypes {
			if strings.Contains(combined, t) {
				description = t
				combined = strings.TrimSpace(strings.ReplaceAll(combined, t, ""))
				break
			}
		}

		balance, sender, reference := splitSenderBeneficiary(combined)

		rows = append(rows, rhbRow{
			date:        date,
			description: description,
			sender:      sender,
			amountDR:    amountDR,
			amountCR:    amountCR,
			balance:     balance,
			reference:   reference,
		})
	}

	// the reference and both amount fields belong to the line group that
	// trails the previous row, so they are emitted one row down; row 0
	// gets nulls
	table := &models.Table{Columns: rhbColumns}
	for i, row := range rows {
		var amountDR, amountCR, reference any
		if i > 0 {
			amountDR = rows[i-1].amountDR
			amountCR = rows[i-1].amountCR
			reference = rows[i-1].reference
		}
		table.Append(models.Record{
			"Date":                row.date,
			"Description":         row.description,
			"Sender/Beneficiary":  row.sender,
			"Amount (DR)":         amountDR,
			"Amount (CR)":         amountCR,
			"Balance":             row.balance,
			"Recipient Reference": reference,
		})
	}
	return table, nil
}

// formatRHBDate normalizes both anchor layouts to DD-MM-YY.
func formatRHBDate(s string) (string, error) {
	for _, layout := range []string{"02-01-2006", "02-01-06"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("02-01-06"), nil
		}
	}
	return "", fmt.Errorf("rhb flex: bad transaction date %q", s)
}

// splitSenderBeneficiary handles the prior transaction's trailing
// balance artifact at the head of the remainder text. When present, the
// next three words are the beneficiary name and the rest becomes the
// recipient reference, cleaned of reference codes and boilerplate.
func splitSenderBeneficiary(s string) (balance, sender, reference string) {
	s = strings.TrimSpace(s)
	m := rhbLeadingBalance.FindStringSubmatch(s)
	if m == nil {
		return "", s, ""
	}

	balance = m[1]
	words := strings.Fields(m[2])
	if len(words) > 3 {
		sender = strings.Join(words[:3], " ")
		reference = cleanRecipientReference(strings.Join(words[3:], " "))
	} else {
		sender = strings.Join(words, " ")
	}
	return balance, sender, reference
}

// cleanRecipientReference discards tokens that look like reference
// codes (mixed alphanumerics of length >= 8, bare 3-digit codes, digit
// runs of 8 or more) and strips known footer/header leakage.
func cleanRecipientReference(s string) string {
	var kept []string
	for _, tok := range strings.Fields(s) {
		if len(tok) >= 8 && rhbRefCode.MatchString(tok) && rhbRefDigit.MatchString(tok) {
			continue
		}
		if rhbThreeNum.MatchString(tok) {
			continue
		}
		if rhbLongDigit.MatchString(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	out := strings.Join(kept, " ")
	for _, p := range rhbUnwantedPatterns {
		out = p.ReplaceAllString(out, "")
	}
	return strings.Join(strings.Fields(out), " ")
}
