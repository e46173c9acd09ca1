package extractor

import "testing"

func TestIsReadableText(t *testing.T) {
	readable := `MALAYAN BANKING BERHAD
ACCOUNT STATEMENT / PENYATA AKAUN
URUSNIAGA AKAUN 戶口進支項 ACCOUNT TRANSACTIONS
ENTRY DATE 01/03/21 BALANCE 1,200.00`

	if !isReadableText(readable) {
		t.Error("expected trilingual statement text to be readable")
	}
}

func TestIsReadableText_Garbage(t *testing.T) {
	// identity-encoded fonts decode to accented noise
	garbage := "ÝÞßàáâ ãäåæçè éêëìíî ïðñòóô õö÷øùú ûüýþÿÀ ÁÂÃÄÅÆ ÇÈÉÊËÌ ÍÎÏÐÑÒ ÓÔÕÖ×ØÙ"
	if isReadableText(garbage) {
		t.Error("expected font-garbage text to be rejected")
	}
}

func TestIsReadableText_TooShort(t *testing.T) {
	if isReadableText("bank") {
		t.Error("expected short text to be rejected")
	}
}

func TestIsReadableText_NoCommonWords(t *testing.T) {
	text := "lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod"
	if isReadableText(text) {
		t.Error("expected text without statement vocabulary to be rejected")
	}
}

func TestLines_InvalidPDF(t *testing.T) {
	if _, err := Lines([]byte("not a pdf")); err == nil {
		t.Error("expected error for non-PDF bytes")
	}
}
