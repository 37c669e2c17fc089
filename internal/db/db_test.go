package db_test

import (
	"context"
	"testing"

	"github.com/nightset/nightset/internal/db"
)

func TestNewOpensAndPings(t *testing.T) {
	ctx := context.Background()
	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("exec error: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO t (id, name) VALUES (1, 'a')`); err != nil {
		t.Fatalf("insert error: %v", err)
	}

	var name string
	if err := d.QueryRow(ctx, `SELECT name FROM t WHERE id = 1`).Scan(&name); err != nil {
		t.Fatalf("query error: %v", err)
	}
	if name != "a" {
		t.Fatalf("unexpected name: %q", name)
	}
}

func TestSingleConnectionKeepsMemoryDBCoherent(t *testing.T) {
	// with a pooled driver a second connection would see a different
	// ":memory:" database; the capped pool keeps one
	ctx := context.Background()
	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatalf("exec error: %v", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := d.Exec(ctx, `INSERT INTO t (id) VALUES (?)`, i+1); err != nil {
			t.Fatalf("insert %d error: %v", i, err)
		}
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM t`).Scan(&count); err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 10 {
		t.Fatalf("expected 10 rows got %d", count)
	}
}
