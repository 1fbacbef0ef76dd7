package services

import (
	"io"

	"gorm.io/gorm"

	"finadvisor/internal/csvimport"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/logger"
	"finadvisor/internal/uuid"
)

// importService commits CSV batches to the store.
type importService struct {
	db      *gorm.DB
	summary SummaryServicer
}

// NewImportService creates a new ImportServicer.
func NewImportService(db *gorm.DB, summary SummaryServicer) ImportServicer {
	return &importService{db: db, summary: summary}
}

// ImportCSV parses an upload, stores the valid rows under a fresh batch ID,
// and recomputes every monthly rollup the batch touches. Invalid rows are
// skipped and reported; an upload with no valid rows is rejected.
func (s *importService) ImportCSV(r io.Reader) (*ImportResult, error) {
	parsed, err := csvimport.Parse(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedUpload, err)
	}
	if len(parsed.Rows) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}

	batchID := uuid.New()
	transactions := csvimport.Transactions(parsed.Rows, batchID)

	months := make(map[string]struct{})
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			if err := tx.Create(&transactions[i]).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			months[transactions[i].MonthKey()] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(months))
	for month := range months {
		keys = append(keys, month)
	}
	if err := s.summary.Recompute(keys); err != nil {
		return nil, err
	}

	logger.Get().Infow("csv batch imported",
		"batch_id", batchID,
		"imported", len(transactions),
		"skipped", len(parsed.Errors),
	)

	return &ImportResult{
		BatchID:  batchID,
		Imported: len(transactions),
		Skipped:  len(parsed.Errors),
		Errors:   parsed.Errors,
	}, nil
}
