package punch

// ========================================
// PUNCH DTOs
// ========================================

type UploadResponse struct {
	BatchID   string `json:"batch_id"`
	RowCount  int    `json:"row_count"`
	Employees int    `json:"employees"`
}

// RecordDTO is the JSON shape of a punch as exchanged with the UI layer.
// Timestamp uses the TimestampLayout wire format.
type RecordDTO struct {
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department,omitempty"`
	BadgeNo      string `json:"badge_no,omitempty"`
	Timestamp    string `json:"timestamp"`
	Kind         string `json:"kind"`
	Op           string `json:"op"`
}

// ToRecord parses the DTO into a domain Record. A malformed timestamp or an
// unknown kind/op aborts the whole request (fail fast, no per-record recovery).
func (d RecordDTO) ToRecord() (Record, error) {
	ts, err := ParseTimestamp(d.Timestamp)
	if err != nil {
		return Record{}, err
	}
	kind := Kind(d.Kind)
	if !ValidKind(kind) {
		return Record{}, ErrUnknownKind
	}
	op := Op(d.Op)
	if !ValidOp(op) {
		return Record{}, ErrUnknownOp
	}
	return Record{
		EmployeeName: d.EmployeeName,
		Department:   d.Department,
		BadgeNo:      d.BadgeNo,
		Timestamp:    ts,
		Kind:         kind,
		Op:           op,
	}, nil
}

// FromRecord converts a domain Record back to its wire shape.
func FromRecord(r Record) RecordDTO {
	return RecordDTO{
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		BadgeNo:      r.BadgeNo,
		Timestamp:    r.Timestamp.Format(TimestampLayout),
		Kind:         string(r.Kind),
		Op:           string(r.Op),
	}
}
