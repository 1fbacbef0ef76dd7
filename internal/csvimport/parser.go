// Package csvimport parses transaction batches uploaded as CSV.
//
// The expected layout is five columns per row:
//
//	date,type,amount,category,description
//
// Dates use DD-MM-YYYY. Rows that fail validation are collected as row
// errors and skipped; they never reach storage or the analytics engine.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"finadvisor/internal/models"
)

const dateLayout = "02-01-2006"

// Row is a single validated CSV transaction.
type Row struct {
	Date        time.Time
	Type        models.TransactionType
	Amount      float64
	Category    string
	Description string
}

// RowError describes why one CSV line was rejected.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Result holds the validated rows and the per-row rejections of one upload.
type Result struct {
	Rows   []Row
	Errors []RowError
}

// Parse reads and validates an uploaded CSV stream. A header row is detected
// by its first cell and skipped. Only a stream that cannot be read as CSV at
// all returns an error; individual bad rows are reported in the result.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &Result{Rows: []Row{}, Errors: []RowError{}}
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		row, rowErr := parseRecord(record)
		if rowErr != "" {
			result.Errors = append(result.Errors, RowError{Line: line, Message: rowErr})
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date")
}

func parseRecord(record []string) (Row, string) {
	if len(record) != 5 {
		return Row{}, fmt.Sprintf("expected 5 columns, got %d", len(record))
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(record[0]))
	if err != nil {
		return Row{}, fmt.Sprintf("invalid date %q, expected DD-MM-YYYY", record[0])
	}

	typ := models.TransactionType(strings.ToLower(strings.TrimSpace(record[1])))
	if typ != models.TransactionTypeIncome && typ != models.TransactionTypeExpense {
		return Row{}, fmt.Sprintf("invalid type %q, expected income or expense", record[1])
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return Row{}, fmt.Sprintf("invalid amount %q", record[2])
	}
	if amount <= 0 {
		return Row{}, fmt.Sprintf("amount must be positive, got %s", record[2])
	}

	category := strings.ToLower(strings.TrimSpace(record[3]))
	if category == "" {
		return Row{}, "category is required"
	}

	description := strings.TrimSpace(record[4])
	if description == "" {
		return Row{}, "description is required"
	}

	return Row{
		Date:        date,
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
	}, ""
}

// Transactions converts validated rows into transaction models, tagging each
// with the given import batch ID.
func Transactions(rows []Row, batchID string) []models.Transaction {
	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx := models.Transaction{
			Type:        row.Type,
			Amount:      row.Amount,
			Category:    row.Category,
			Description: row.Description,
			Date:        row.Date,
		}
		if batchID != "" {
			id := batchID
			tx.BatchID = &id
		}
		txs = append(txs, tx)
	}
	return txs
}
