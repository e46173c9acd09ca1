package parser

import (
	"errors"
	"testing"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

func TestResolveStatementYear_StatementDateWindow(t *testing.T) {
	// the STATEMENT DATE block wins even when a different date appears
	// earlier in the document
	lines := []string{
		"05/05/19 opening entry",
		"STATEMENT DATE",
		"account 123",
		"branch KL",
		"period info",
		"30/04/21",
	}

	year, err := resolveStatementYear(lines, "statement.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != "21" {
		t.Errorf("year: got %q, want %q", year, "21")
	}
}

func TestResolveStatementYear_WindowLimit(t *testing.T) {
	// a date more than four lines below STATEMENT DATE is outside the
	// window; the first document-wide date wins instead
	lines := []string{
		"STATEMENT DATE",
		"a", "b", "c", "d",
		"30/04/21",
	}

	year, err := resolveStatementYear(lines, "statement.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != "21" {
		t.Errorf("year: got %q, want %q", year, "21")
	}
}

func TestResolveStatementYear_FirstDateFallback(t *testing.T) {
	lines := []string{"no marker here", "entry 12/06/22 text"}

	year, err := resolveStatementYear(lines, "statement.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != "22" {
		t.Errorf("year: got %q, want %q", year, "22")
	}
}

func TestResolveStatementYear_FilenameFallback(t *testing.T) {
	lines := []string{"no dates anywhere"}

	year, err := resolveStatementYear(lines, "maybank_202107_statement.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != "21" {
		t.Errorf("year: got %q, want %q", year, "21")
	}
}

func TestResolveStatementYear_Unresolved(t *testing.T) {
	_, err := resolveStatementYear([]string{"nothing"}, "statement.pdf")
	if !errors.Is(err, models.ErrYearNotFound) {
		t.Errorf("error: got %v, want ErrYearNotFound", err)
	}
}
