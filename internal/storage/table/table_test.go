package table

import (
	"testing"

	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/types"
)

func newPeopleTable(t *testing.T, chunkSize uint32) *Table {
	t.Helper()
	tbl := New(chunkSize)
	if err := tbl.AddColumn("id", types.Int32); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := tbl.AddColumn("name", types.String); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	return tbl
}

func appendRow(t *testing.T, tbl *Table, id int32, name string) {
	t.Helper()
	if err := tbl.Append([]types.Value{types.NewInt32(id), types.NewString(name)}); err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestTableAppendUnbounded(t *testing.T) {
	tbl := newPeopleTable(t, 0)
	appendRow(t, tbl, 1, "Bill")
	appendRow(t, tbl, 2, "Steve")

	if tbl.ChunkCount() != 1 {
		t.Fatalf("ChunkCount() = %d, want 1", tbl.ChunkCount())
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", tbl.RowCount())
	}
}

func TestTableRollsOnChunkSize(t *testing.T) {
	tbl := newPeopleTable(t, 2)
	appendRow(t, tbl, 1, "Bill")
	appendRow(t, tbl, 2, "Steve")
	appendRow(t, tbl, 3, "Alexander")

	if tbl.ChunkCount() != 2 {
		t.Fatalf("ChunkCount() = %d, want 2", tbl.ChunkCount())
	}
	c0, err := tbl.Chunk(0)
	if err != nil {
		t.Fatalf("Chunk(0): %v", err)
	}
	c1, err := tbl.Chunk(1)
	if err != nil {
		t.Fatalf("Chunk(1): %v", err)
	}
	if c0.Length() != 2 || c1.Length() != 1 {
		t.Fatalf("chunk lengths = %d, %d, want 2, 1", c0.Length(), c1.Length())
	}
}

func TestTableRollsAfterCompression(t *testing.T) {
	tbl := newPeopleTable(t, 0)
	appendRow(t, tbl, 1, "Bill")
	if err := tbl.CompressChunk(0); err != nil {
		t.Fatalf("CompressChunk: %v", err)
	}
	appendRow(t, tbl, 2, "Steve")

	if tbl.ChunkCount() != 2 {
		t.Fatalf("ChunkCount() = %d, want 2", tbl.ChunkCount())
	}
}

func TestTableAppendArityMismatch(t *testing.T) {
	tbl := newPeopleTable(t, 0)
	if err := tbl.Append([]types.Value{types.NewInt32(1)}); err == nil {
		t.Fatal("expected arity mismatch error")
	}
}

func TestAddColumnDefinitionAfterRowsFails(t *testing.T) {
	tbl := newPeopleTable(t, 0)
	appendRow(t, tbl, 1, "Bill")
	if err := tbl.AddColumnDefinition("extra", types.Int64); err == nil {
		t.Fatal("expected error adding a column definition after rows exist")
	}
}

func TestColumnAtImplementsReferencedTable(t *testing.T) {
	tbl := newPeopleTable(t, 0)
	appendRow(t, tbl, 1, "Bill")

	col, err := tbl.ColumnAt(rowid.ChunkID(0), rowid.ColumnID(1))
	if err != nil {
		t.Fatalf("ColumnAt: %v", err)
	}
	v, err := col.ElementAt(0)
	if err != nil {
		t.Fatalf("ElementAt: %v", err)
	}
	if got, _ := types.CastString(v); got != "Bill" {
		t.Errorf("ElementAt(0) = %q, want %q", got, "Bill")
	}
}
