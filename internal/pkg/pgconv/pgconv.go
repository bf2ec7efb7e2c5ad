// Package pgconv converts between pgtype values produced by sqlc and the
// plain Go types used above the infra layer. Calendar dates are always
// normalised to UTC midnight.
package pgconv

import (
	"database/sql"
	"time"

	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// IsNoRows covers both pgx and database/sql sentinels.
func IsNoRows(err error) bool {
	return errs.Is(err, pgx.ErrNoRows) || errs.Is(err, sql.ErrNoRows)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: midnightUTC(t), Valid: true}
}

func DateFromPgtype(d pgtype.Date) time.Time {
	return midnightUTC(d.Time)
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func StringPtrFromPgtype(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func Float64PtrToPgtype(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

// Float64PtrFromNumeric maps SQL NULL to nil.
func Float64PtrFromNumeric(n pgtype.Numeric) (*float64, error) {
	if !n.Valid {
		return nil, nil
	}
	v, err := n.Float64Value()
	if err != nil {
		return nil, errs.Wrap(err, "numeric to float64")
	}
	return &v.Float64, nil
}
