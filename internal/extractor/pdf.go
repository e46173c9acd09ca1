package extractor

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Lines extracts the text of every page from an in-memory PDF and
// returns it as one ordered sequence of trimmed lines, pages
// concatenated in document order. It tries multiple extraction methods
// to handle different PDF encodings and refuses to hand garbage to the
// parsers.
func Lines(data []byte) ([]string, error) {
	text, err := extract(data)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines, nil
}

func extract(data []byte) (text string, err error) {
	// the pdf library panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("PDF open failed: %w", err)
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	// Method 1: row-based extraction (best layout preservation)
	if text := extractByRow(r, numPages); isReadableText(text) {
		return text, nil
	}

	// Method 2: coordinate-based row reconstruction from text objects
	if text := extractByContent(r, numPages); isReadableText(text) {
		return text, nil
	}

	// Method 3: plain-text extraction with per-page font maps
	if text := extractByPlainText(r, numPages); isReadableText(text) {
		return text, nil
	}

	return "", fmt.Errorf("no readable text could be extracted from PDF; the file may be image-based/scanned or use custom font encodings")
}

// extractByRow uses GetTextByRow per page.
func extractByRow(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractByContent groups text objects by Y coordinate to reconstruct
// rows, then sorts each row by X.
func extractByContent(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type textItem struct {
			x float64
			s string
		}
		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		// PDF Y runs bottom-to-top
		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		var lines []string
		for _, y := range yKeys {
			items := rowMap[y]
			sort.Slice(items, func(a, b int) bool {
				return items[a].x < items[b].x
			})
			var parts []string
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					parts = append(parts, " ")
				}
				parts = append(parts, item.s)
				prevX = item.x
			}
			if line := strings.TrimSpace(strings.Join(parts, "")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractByPlainText uses GetPlainText with a font map per page.
func extractByPlainText(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		if reader, err := r.GetPlainText(); err == nil {
			if data, err := io.ReadAll(reader); err == nil {
				return strings.TrimSpace(string(data))
			}
		}
	}
	return strings.Join(pages, "\n")
}

// commonWords that appear in virtually all Malaysian bank statements,
// across their English and Malay faces. If the extracted text contains
// none of these, it's likely garbage.
var commonWords = []string{
	"bank", "account", "balance", "date", "statement", "amount",
	"transaction", "urusniaga", "baki", "tarikh", "penyata", "entry",
	"deposit", "withdrawal", "total", "page", "maybank", "cimb", "rhb",
}

func containsCommonWords(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range commonWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of readable characters to total.
// Malaysian statements are trilingual, so Han ideographs count as
// readable alongside basic ASCII — a plain unicode.IsLetter check is
// still too broad, it matches the accented garbage that identity-encoded
// fonts produce.
func textQuality(text string) float64 {
	total, readable := 0, 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) || unicode.Is(unicode.Han, r) ||
			strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// isReadableText requires enough text, a high readable-character ratio,
// and at least one recognizable statement word.
func isReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	return containsCommonWords(text)
}
