package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
)

// SQLiteReportRepo stores reports with their attribute list and summary as
// JSON columns.
type SQLiteReportRepo struct {
	db db.DBTX
}

func NewSQLiteReportRepo(conn db.DBTX) *SQLiteReportRepo {
	return &SQLiteReportRepo{db: conn}
}

const reportColumns = `id, student_id, grade, term, attributes_json, summary_json, source_file, created_at`

func (r *SQLiteReportRepo) Create(ctx context.Context, rep *domain.Report) error {
	attrs := rep.LearnerProfileAttributes
	if attrs == nil {
		attrs = []domain.ProfileAttribute{}
	}
	attrJSON, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("encoding report attributes: %w", err)
	}
	var summary any
	if rep.Summary != nil {
		b, err := json.Marshal(rep.Summary)
		if err != nil {
			return fmt.Errorf("encoding report summary: %w", err)
		}
		summary = string(b)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO reports (`+reportColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.StudentID, rep.Grade, rep.Term, string(attrJSON), summary, rep.SourceFile, formatTime(rep.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}
	return nil
}

func (r *SQLiteReportRepo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)
	return scanReport(row)
}

func (r *SQLiteReportRepo) Latest(ctx context.Context, studentID string) (*domain.Report, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE student_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, studentID)
	return scanReport(row)
}

func (r *SQLiteReportRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.Report, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE student_id = ? ORDER BY created_at DESC, rowid DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var out []*domain.Report
	for rows.Next() {
		rep, err := scanReportRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *SQLiteReportRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return expectOneRow(res, "report")
}

func scanReportRow(sc rowScanner) (*domain.Report, error) {
	var rep domain.Report
	var attrJSON, createdAt string
	var summaryJSON sql.NullString
	if err := sc.Scan(&rep.ID, &rep.StudentID, &rep.Grade, &rep.Term, &attrJSON, &summaryJSON, &rep.SourceFile, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(attrJSON), &rep.LearnerProfileAttributes); err != nil {
		return nil, fmt.Errorf("decoding report attributes: %w", err)
	}
	if summaryJSON.Valid && summaryJSON.String != "" {
		rep.Summary = &domain.ReportSummary{}
		if err := json.Unmarshal([]byte(summaryJSON.String), rep.Summary); err != nil {
			return nil, fmt.Errorf("decoding report summary: %w", err)
		}
	}
	rep.CreatedAt = parseTime(createdAt)
	return &rep, nil
}

func scanReport(row *sql.Row) (*domain.Report, error) {
	rep, err := scanReportRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}
	return rep, nil
}
