package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/halvorsen/colscan/internal/logging"
	"github.com/halvorsen/colscan/internal/operator"
	"github.com/halvorsen/colscan/internal/registry"
	"github.com/halvorsen/colscan/internal/scan"
	"github.com/halvorsen/colscan/internal/storage/rowid"
	"github.com/halvorsen/colscan/internal/storage/table"
	"github.com/halvorsen/colscan/internal/types"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	slog.SetDefault(logger)
	time.Sleep(1 * time.Second)
	slog.Info("starting colscan demo")

	reg := registry.New()
	if err := seedCustomers(reg); err != nil {
		slog.Error("failed to seed customers table", "error", err)
		closeFn()
		os.Exit(1)
	}

	customers, err := reg.GetTable("customers")
	if err != nil {
		slog.Error("table 'customers' not found", "error", err)
		closeFn()
		os.Exit(1)
	}
	if err := customers.CompressChunk(0); err != nil {
		slog.Error("compression failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	get := operator.NewGetTable(reg, "customers")
	nameColumn, err := customers.ColumnIDByName("name")
	if err != nil {
		slog.Error("column lookup failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	scanOp := scan.New(get, nameColumn, scan.NotEquals, types.NewString("Steve"))
	result, err := scanOp.Output()
	if err != nil {
		slog.Error("scan failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	printTable(result)

	if err := reg.Print(os.Stdout); err != nil {
		slog.Error("registry print failed", "error", err)
	}

	slog.Info("colscan demo finished", "result_rows", result.RowCount())
}

func seedCustomers(reg *registry.Registry) error {
	t := table.New(0)
	if err := t.AddColumn("id", types.Int32); err != nil {
		return err
	}
	if err := t.AddColumn("name", types.String); err != nil {
		return err
	}

	rows := [][2]any{
		{int32(1), "Bill"},
		{int32(2), "Steve"},
		{int32(3), "Alexander"},
		{int32(4), "Hasso"},
	}
	for _, row := range rows {
		values := []types.Value{
			types.NewInt32(row[0].(int32)),
			types.NewString(row[1].(string)),
		}
		if err := t.Append(values); err != nil {
			return err
		}
	}

	return reg.AddTable("customers", t)
}

func printTable(t *table.Table) {
	for chunkIdx := 0; chunkIdx < t.ChunkCount(); chunkIdx++ {
		chunkID := rowid.ChunkID(chunkIdx)
		c, err := t.Chunk(chunkID)
		if err != nil {
			slog.Error("print failed", "error", err)
			return
		}
		for row := 0; row < c.Length(); row++ {
			for col := 0; col < c.ColumnCount(); col++ {
				column, err := c.ColumnAt(rowid.ColumnID(col))
				if err != nil {
					slog.Error("print failed", "error", err)
					return
				}
				v, err := column.ElementAt(row)
				if err != nil {
					slog.Error("print failed", "error", err)
					return
				}
				if col > 0 {
					os.Stdout.WriteString("\t")
				}
				os.Stdout.WriteString(v.String())
			}
			os.Stdout.WriteString("\n")
		}
	}
}
