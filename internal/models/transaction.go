package models

import "errors"

// Mode identifies a supported bank statement format.
type Mode string

const (
	ModeMaybankDebit  Mode = "maybank_debit"
	ModeMaybankCredit Mode = "maybank_credit"
	ModeCIMBDebit     Mode = "cimb_debit"
	ModeM2UDebit      Mode = "m2u_current_account_debit"
	ModeRHBFlex       Mode = "rhb_flex"
)

// Flow classifies the direction of money movement for a transaction.
// Maybank formats use deposit/withdrawal, M2U uses inflow/outflow.
type Flow string

const (
	FlowDeposit    Flow = "deposit"
	FlowWithdrawal Flow = "withdrawal"
	FlowInflow     Flow = "inflow"
	FlowOutflow    Flow = "outflow"
	FlowUnknown    Flow = "unknown"
)

// Per-document extraction failures. Both are fatal for the document
// they occur in, never for the rest of a batch.
var (
	ErrYearNotFound   = errors.New("could not find statement year")
	ErrNoTransactions = errors.New("no transactions were extracted from the PDF")
)

// Record is one output row, keyed by column name. Values are string,
// float64, int, time.Time, Flow or nil.
type Record map[string]any

// Table is an ordered set of records sharing one column layout.
// Each statement format produces its own layout.
type Table struct {
	Columns []string
	Rows    []Record
}

func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Concat merges tables row-wise, preserving per-table row order and the
// order of the tables themselves. Callers guarantee a shared column
// layout: tables from the same mode always have one.
func Concat(tables []*Table) *Table {
	if len(tables) == 0 {
		return &Table{}
	}
	out := &Table{Columns: tables[0].Columns}
	for _, t := range tables {
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}
