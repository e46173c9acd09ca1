package parser

import (
	"errors"
	"testing"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

func TestParseRHBFlexLines_ShiftInvariant(t *testing.T) {
	lines := []string{
		"01-03-2024",
		"RFLX",
		"1,000.00+ ALI BIN ABU INV12345678 123 99999999 hello world",
		"250.00 DR",
		"02-03-2024",
		"DUITNOW OTHER",
		"500.00 CR",
	}

	table, err := parseRHBFlexLines(lines, "rhb.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("rows: got %d, want 2", table.Len())
	}

	// row 0: shiftable fields are null
	first := table.Rows[0]
	if first["Amount (DR)"] != nil || first["Amount (CR)"] != nil || first["Recipient Reference"] != nil {
		t.Errorf("row 0 shiftable fields: got %v/%v/%v, want all nil",
			first["Amount (DR)"], first["Amount (CR)"], first["Recipient Reference"])
	}
	if got := first["Date"].(string); got != "01-03-24" {
		t.Errorf("date: got %q, want %q", got, "01-03-24")
	}
	if got := first["Description"].(string); got != "RFLX" {
		t.Errorf("description: got %q, want %q", got, "RFLX")
	}
	if got := first["Balance"].(string); got != "1,000.00+" {
		t.Errorf("balance: got %q, want %q", got, "1,000.00+")
	}
	if got := first["Sender/Beneficiary"].(string); got != "ALI BIN ABU" {
		t.Errorf("sender: got %q, want %q", got, "ALI BIN ABU")
	}

	// row 1 carries the values computed from row 0's trailing text
	second := table.Rows[1]
	if got := second["Amount (DR)"].(float64); got != 250.00 {
		t.Errorf("shifted DR amount: got %v, want 250.00", got)
	}
	if second["Amount (CR)"] != nil {
		t.Errorf("shifted CR amount: got %v, want nil", second["Amount (CR)"])
	}
	if got := second["Recipient Reference"].(string); got != "hello world" {
		t.Errorf("shifted reference: got %q, want %q", got, "hello world")
	}
	if got := second["Description"].(string); got != "DUITNOW" {
		t.Errorf("description: got %q, want %q", got, "DUITNOW")
	}
}

func TestParseRHBFlexLines_CreditRouting(t *testing.T) {
	// an unsigned trailing amount routes to the credit side
	lines := []string{
		"05-06-23",
		"CASH DEPOSIT AT BRANCH",
		"750.00",
		"06-06-23",
		"INWARD IBG SALARY",
		"1,200.00 CR",
	}

	table, err := parseRHBFlexLines(lines, "rhb.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("rows: got %d, want 2", table.Len())
	}

	if got := table.Rows[0]["Date"].(string); got != "05-06-23" {
		t.Errorf("two-digit-year date: got %q, want %q", got, "05-06-23")
	}
	if got := table.Rows[1]["Amount (CR)"].(float64); got != 750.00 {
		t.Errorf("shifted CR amount: got %v, want 750.00", got)
	}
	if got := table.Rows[0]["Description"].(string); got != "CASH DEPOSIT" {
		t.Errorf("description: got %q, want %q", got, "CASH DEPOSIT")
	}
}

func TestCleanRecipientReference(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"INV12345678 123 99999999 keep this", "keep this"},
		{"ok www.rhbgroup.com footer text", "ok"},
		{"For Any Enquiries call us", ""},
		{"plain reference", "plain reference"},
	}

	for _, tt := range tests {
		if got := cleanRecipientReference(tt.in); got != tt.want {
			t.Errorf("cleanRecipientReference(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRHBFlexLines_NoAnchors(t *testing.T) {
	_, err := parseRHBFlexLines([]string{"no transactions"}, "rhb.pdf")
	if !errors.Is(err, models.ErrNoTransactions) {
		t.Errorf("error: got %v, want ErrNoTransactions", err)
	}
}
