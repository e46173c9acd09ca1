package parser

import (
	"reflect"
	"testing"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

func TestRegistryModes(t *testing.T) {
	r := NewRegistry()

	want := []string{
		"cimb_debit",
		"m2u_current_account_debit",
		"maybank_credit",
		"maybank_debit",
		"rhb_flex",
	}
	if got := r.Modes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Modes(): got %v, want %v", got, want)
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Get(models.ModeMaybankDebit); !ok {
		t.Error("expected handler for maybank_debit")
	}
	if _, ok := r.Get(models.Mode("hsbc")); ok {
		t.Error("unexpected handler for unknown mode")
	}
}
