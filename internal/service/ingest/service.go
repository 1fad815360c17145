package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

// Service parses raw time-clock exports into punch records and hands them to
// storage. Parsing fails fast: one malformed row aborts the whole upload.
type Service interface {
	// ParseCSV reads a full export. Expected header:
	// name,department,badge_no,timestamp,kind,op
	ParseCSV(r io.Reader) ([]punch.Record, error)

	// ImportCSV parses the export, replaces the stored punch set with it
	// and returns the upload summary.
	ImportCSV(ctx context.Context, r io.Reader) (punch.UploadResponse, error)

	// DeleteAll removes every stored punch record.
	DeleteAll(ctx context.Context) error
}

// Transactor runs fn with every repository call inside one database
// transaction; the context passed to fn carries it. fn returning an error
// rolls the transaction back.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type IngestServiceImpl struct {
	punchRepo punch.Repository
	tx        Transactor
}

func NewIngestService(punchRepo punch.Repository, tx Transactor) Service {
	return &IngestServiceImpl{
		punchRepo: punchRepo,
		tx:        tx,
	}
}

const expectedColumns = 6

// ParseCSV implements Service.
func (s *IngestServiceImpl) ParseCSV(r io.Reader) ([]punch.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = expectedColumns
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, punch.ErrEmptyUpload
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if !strings.EqualFold(header[0], "name") {
		return nil, fmt.Errorf("unexpected csv header %q, want \"name,department,badge_no,timestamp,kind,op\"", strings.Join(header, ","))
	}

	var records []punch.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		ts, err := punch.ParseTimestamp(row[3])
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		kind := punch.Kind(strings.ToLower(row[4]))
		if !punch.ValidKind(kind) {
			return nil, fmt.Errorf("csv line %d: %w: %q", line, punch.ErrUnknownKind, row[4])
		}
		op := punch.Op(strings.ToLower(row[5]))
		if !punch.ValidOp(op) {
			return nil, fmt.Errorf("csv line %d: %w: %q", line, punch.ErrUnknownOp, row[5])
		}

		records = append(records, punch.Record{
			EmployeeName: row[0],
			Department:   row[1],
			BadgeNo:      row[2],
			Timestamp:    ts,
			Kind:         kind,
			Op:           op,
		})
	}

	if len(records) == 0 {
		return nil, punch.ErrEmptyUpload
	}
	return records, nil
}

// ImportCSV implements Service.
func (s *IngestServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (punch.UploadResponse, error) {
	records, err := s.ParseCSV(r)
	if err != nil {
		return punch.UploadResponse{}, err
	}

	// A new export replaces the previous one; analysis always runs against
	// a single upload. Delete and insert commit together, so a failed
	// insert leaves the previous upload intact.
	batchID := uuid.NewString()
	var count int
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.punchRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear previous upload: %w", err)
		}
		saved, err := s.punchRepo.SaveBatch(ctx, batchID, records)
		if err != nil {
			return fmt.Errorf("failed to store punches: %w", err)
		}
		count = saved
		return nil
	})
	if err != nil {
		return punch.UploadResponse{}, err
	}

	employees := make(map[string]struct{})
	for _, rec := range records {
		employees[rec.EmployeeName] = struct{}{}
	}

	return punch.UploadResponse{
		BatchID:   batchID,
		RowCount:  count,
		Employees: len(employees),
	}, nil
}

// DeleteAll implements Service.
func (s *IngestServiceImpl) DeleteAll(ctx context.Context) error {
	return s.punchRepo.DeleteAll(ctx)
}
