package registry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/halvorsen/colscan/internal/storage/table"
	"github.com/halvorsen/colscan/internal/types"
)

func TestAddAndGetTable(t *testing.T) {
	reg := New()
	tbl := table.New(0)
	if err := reg.AddTable("customers", tbl); err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	got, err := reg.GetTable("customers")
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if got != tbl {
		t.Fatal("GetTable returned a different table instance")
	}
}

func TestAddDuplicateTableFails(t *testing.T) {
	reg := New()
	if err := reg.AddTable("customers", table.New(0)); err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	if err := reg.AddTable("customers", table.New(0)); err == nil {
		t.Fatal("expected duplicate table name to fail")
	}
}

func TestDropAndGetMissingTable(t *testing.T) {
	reg := New()
	if err := reg.DropTable("missing"); err == nil {
		t.Fatal("expected DropTable on a missing table to fail")
	}
	if err := reg.AddTable("customers", table.New(0)); err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	if err := reg.DropTable("customers"); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	if reg.HasTable("customers") {
		t.Fatal("HasTable should be false after DropTable")
	}
	if _, err := reg.GetTable("customers"); err == nil {
		t.Fatal("expected GetTable on a dropped table to fail")
	}
}

func TestResetClearsAllTables(t *testing.T) {
	reg := New()
	_ = reg.AddTable("a", table.New(0))
	_ = reg.AddTable("b", table.New(0))
	reg.Reset()
	if len(reg.TableNames()) != 0 {
		t.Fatal("expected no tables after Reset")
	}
}

func TestPrintListsTablesSorted(t *testing.T) {
	reg := New()
	orders := table.New(0)
	if err := orders.AddColumn("id", types.Int32); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	_ = reg.AddTable("orders", orders)
	_ = reg.AddTable("customers", table.New(0))

	var buf bytes.Buffer
	if err := reg.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "customers") > strings.Index(out, "orders") {
		t.Errorf("Print() did not list tables in sorted order: %q", out)
	}
}
