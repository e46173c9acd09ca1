package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

var (
	// DD/MM/YY anywhere in a line
	fullDatePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{2}`)
	// six-digit date run in a filename; the statement year is the last
	// two digits of the four-digit group
	filenameYearPattern = regexp.MustCompile(`(\d{4})\d{2}`)
)

// resolveStatementYear finds the two-digit year for formats whose entry
// dates omit it. Three tiers: the DD/MM/YY inside the "STATEMENT DATE"
// block (that line plus the next four), then the first DD/MM/YY anywhere
// in the document, then a date run embedded in the filename. Only the
// first STATEMENT DATE line is considered; if its window holds no date
// the search falls through to tier two.
func resolveStatementYear(lines []string, filename string) (string, error) {
	for i, line := range lines {
		if !strings.Contains(line, "STATEMENT DATE") {
			continue
		}
		for j := i; j < i+5 && j < len(lines); j++ {
			if m := fullDatePattern.FindString(lines[j]); m != "" {
				return m[strings.LastIndex(m, "/")+1:], nil
			}
		}
		break
	}

	for _, line := range lines {
		if m := fullDatePattern.FindString(line); m != "" {
			return m[strings.LastIndex(m, "/")+1:], nil
		}
	}

	if m := filenameYearPattern.FindStringSubmatch(filename); m != nil {
		return m[1][2:], nil
	}

	return "", models.ErrYearNotFound
}
