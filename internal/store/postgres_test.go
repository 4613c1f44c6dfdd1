package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	id        int64
	createdAt time.Time
	err       error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	*dest[1].(*time.Time) = r.createdAt
	return nil
}

type fakeDB struct {
	execSQL  []string
	execErr  error
	queryArg []any
	row      fakeRow
	pingErr  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	return pgconn.NewCommandTag("CREATE TABLE"), f.execErr
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	f.queryArg = args
	return f.row
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }

func TestPostgresStoreAppend(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{id: 7, createdAt: created}}
	s := &PostgresStore{db: db}

	rec := &PatientRecord{PatientID: "p1", Age: 40, Gender: "Female", HeightCm: 170, WeightKg: 70, BMI: 24.22, Smoking: true}
	if err := s.Append(context.Background(), rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	if rec.ID != 7 || !rec.CreatedAt.Equal(created) {
		t.Fatalf("expected id/created_at from RETURNING, got %+v", rec)
	}
	if len(db.queryArg) != 14 {
		t.Fatalf("expected 14 insert args, got %d", len(db.queryArg))
	}
	if db.queryArg[0] != "p1" || db.queryArg[5] != 24.22 || db.queryArg[12] != true {
		t.Fatalf("unexpected insert args: %v", db.queryArg)
	}
}

func TestPostgresStoreAppendWrapsError(t *testing.T) {
	boom := errors.New("boom")
	s := &PostgresStore{db: &fakeDB{row: fakeRow{err: boom}}}

	err := s.Append(context.Background(), &PatientRecord{PatientID: "p1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	s := &PostgresStore{db: db}
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if len(db.execSQL) != 1 || !strings.Contains(db.execSQL[0], "CREATE TABLE IF NOT EXISTS patient_data") {
		t.Fatalf("unexpected statements: %v", db.execSQL)
	}

	db.execErr = errors.New("permission denied")
	if err := s.EnsureSchema(context.Background()); err == nil {
		t.Fatal("expected error from failing exec")
	}
}

func TestPostgresStorePing(t *testing.T) {
	s := &PostgresStore{db: &fakeDB{pingErr: errors.New("down")}}
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestOpenPostgresRejectsBadURL(t *testing.T) {
	if _, err := OpenPostgres(context.Background(), "postgres://user@localhost:notaport/db", 2, 1); err == nil {
		t.Fatal("expected parse error")
	}
}
