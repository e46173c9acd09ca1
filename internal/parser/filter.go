package parser

import "strings"

// commonNoise lists the trilingual column headers and labels shared by
// Maybank-family statement layouts. Matching is substring-based, so a
// token embedded inside a genuine description line also removes that
// line — a precision/recall trade-off tuned per format.
var commonNoise = []string{
	"URUSNIAGA AKAUN/ 戶口進支項 /ACCOUNT TRANSACTIONS",
	"TARIKH MASUK",
	"BUTIR URUSNIAGA",
	"JUMLAH URUSNIAGA",
	"BAKI PENYATA",
	"進支日期",
	"進支項說明",
	"银碼",
	"結單存餘",
	"URUSNIAGA AKAUN/ 戶口進支項/ACCOUNT TRANSACTIONS",
	"TARIKH NILAI",
	"仄過賬日期",
	"戶號",
}

// m2uNoise is the M2U current-account variant: the same headers broken
// into smaller fragments, plus the beginning-balance label.
var m2uNoise = []string{
	"URUSNIAGA AKAUN/",
	"戶口進支項",
	"/ACCOUNT TRANSACTIONS",
	"TARIKH MASUK",
	"TARIKH NILAI",
	"BUTIR URUSNIAGA",
	"JUMLAH URUSNIAGA",
	"BAKI PENYATA",
	"進支日期",
	"仄過賬日期",
	"進支項說明",
	"银碼",
	"結單存餘",
	"BEGINNING BALANCE",
}

// sectionMarkers is a (start, end) substring pair delimiting a run of
// boilerplate lines to discard.
type sectionMarkers struct {
	start, end string
}

// removeSection drops every line from one containing the start marker
// through the next line containing the end marker, inclusive. A start
// marker with no later end marker drops everything through end-of-input.
// A line containing the end marker is dropped even outside a section.
func removeSection(lines []string, m sectionMarkers) []string {
	out := make([]string, 0, len(lines))
	inSection := false
	for _, line := range lines {
		if strings.Contains(line, m.start) {
			inSection = true
			continue
		}
		if strings.Contains(line, m.end) {
			inSection = false
			continue
		}
		if !inSection {
			out = append(out, line)
		}
	}
	return out
}

// removeSections applies marker pairs in order, each pass scanning the
// already-filtered output of the previous one.
func removeSections(lines []string, pairs []sectionMarkers) []string {
	for _, m := range pairs {
		lines = removeSection(lines, m)
	}
	return lines
}

// dropNoise removes lines containing any entry of the vocabulary.
func dropNoise(lines []string, vocab []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !containsAny(line, vocab) {
			out = append(out, line)
		}
	}
	return out
}

func containsAny(line string, vocab []string) bool {
	for _, v := range vocab {
		if strings.Contains(line, v) {
			return true
		}
	}
	return false
}

// compactLines trims every line and drops the blank ones.
func compactLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
