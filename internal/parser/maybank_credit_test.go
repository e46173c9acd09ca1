package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

func TestParseMaybankCreditLines(t *testing.T) {
	lines := []string{
		"01/03",
		"03/03",
		"SHOPEE PAYMENT",
		"KUALA LUMPUR",
		"150.00",
		"05/03",
		"06/03",
		"PAYMENT RECEIVED",
		"1,234.56CR",
	}

	table, err := parseMaybankCreditLines(lines, "statement-2023-04.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("rows: got %d, want 2", table.Len())
	}

	first := table.Rows[0]
	if got := first["Year"].(int); got != 2023 {
		t.Errorf("year: got %d, want 2023", got)
	}
	if got := first["Transaction Date"].(string); got != "01/03" {
		t.Errorf("transaction date: got %q, want %q", got, "01/03")
	}
	if got := first["Posting Date"].(string); got != "03/03" {
		t.Errorf("posting date: got %q, want %q", got, "03/03")
	}
	if got := first["Transaction Description"].(string); got != "SHOPEE PAYMENT, KUALA LUMPUR" {
		t.Errorf("description: got %q", got)
	}
	if got := first["Amount"].(float64); got != 150.00 {
		t.Errorf("amount: got %v, want 150.00", got)
	}

	// CR suffix negates the amount
	if got := table.Rows[1]["Amount"].(float64); got != -1234.56 {
		t.Errorf("credit amount: got %v, want -1234.56", got)
	}
}

func TestParseMaybankCreditLines_PairAnchorRequired(t *testing.T) {
	// a lone date token never opens a transaction
	lines := []string{
		"01/03",
		"SOME TEXT",
		"150.00",
	}

	_, err := parseMaybankCreditLines(lines, "statement-2023-04.pdf")
	if !errors.Is(err, models.ErrNoTransactions) {
		t.Errorf("error: got %v, want ErrNoTransactions", err)
	}
}

func TestParseMaybankCreditLines_MissingAmountSkipsRecord(t *testing.T) {
	lines := []string{
		"01/03",
		"03/03",
		"NO AMOUNT HERE",
		"05/03",
		"06/03",
		"GROCERIES",
		"42.00",
	}

	table, err := parseMaybankCreditLines(lines, "statement-2023-04.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("rows: got %d, want 1", table.Len())
	}
	if got := table.Rows[0]["Transaction Description"].(string); got != "GROCERIES" {
		t.Errorf("description: got %q, want %q", got, "GROCERIES")
	}
}

func TestCreditStatementYear(t *testing.T) {
	if got := creditStatementYear("maybank-202306-card.pdf"); got != 2023 {
		t.Errorf("year from filename: got %d, want 2023", got)
	}
	// implausible four-digit runs are ignored
	if got := creditStatementYear("card-9999.pdf"); got != time.Now().Year() {
		t.Errorf("fallback year: got %d, want current year", got)
	}
	if got := creditStatementYear("card.pdf"); got != time.Now().Year() {
		t.Errorf("fallback year: got %d, want current year", got)
	}
}
