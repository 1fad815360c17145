package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.Repository {
	return &punchRepositoryImpl{db: db}
}

// SaveBatch implements punch.Repository. Rows are streamed with COPY since
// uploads regularly carry thousands of punches. The querier comes from the
// context, so a batch written inside a transaction rolls back with it.
func (r *punchRepositoryImpl) SaveBatch(ctx context.Context, batchID string, records []punch.Record) (int, error) {
	q := GetQuerier(ctx, r.db)

	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			batchID,
			rec.EmployeeName,
			rec.Department,
			rec.BadgeNo,
			rec.Timestamp,
			string(rec.Kind),
			string(rec.Op),
		})
	}

	copied, err := q.CopyFrom(
		ctx,
		pgx.Identifier{"punches"},
		[]string{"batch_id", "employee_name", "department", "badge_no", "punched_at", "kind", "op"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, err
	}

	return int(copied), nil
}

// ListByRange implements punch.Repository.
func (r *punchRepositoryImpl) ListByRange(ctx context.Context, start time.Time, end time.Time) ([]punch.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_name, department, badge_no, punched_at, kind, op
		FROM punches
		WHERE punched_at >= $1 AND punched_at < $2
		ORDER BY employee_name ASC, punched_at ASC
	`

	// The range is inclusive at day granularity, so the upper bound is the
	// start of the day after end.
	upper := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, start, upper)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []punch.Record
	for rows.Next() {
		var rec punch.Record
		var kind, op string
		if err := rows.Scan(
			&rec.EmployeeName,
			&rec.Department,
			&rec.BadgeNo,
			&rec.Timestamp,
			&kind,
			&op,
		); err != nil {
			return nil, err
		}
		rec.Kind = punch.Kind(kind)
		rec.Op = punch.Op(op)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteAll implements punch.Repository.
func (r *punchRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM punches`)
	return err
}
