package adapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// InventoryColumns is the CSV header written by the index command. The hash
// column is appended only when a digest is requested.
var InventoryColumns = []string{"path", "st_ino", "st_dev", "st_nlink", "st_size", "st_mtime_ns"}

const inventoryHashColumn = "hash"

// InventoryRow is one line of an inventory.
type InventoryRow struct {
	Record m.FileRecord
	Hash   string
}

// InventoryWriter writes file inventories.
type InventoryWriter interface {
	WriteInventory(path m.Path, rows []InventoryRow, withHash bool) error
}

type csvInventoryWriter struct {
	fs afero.Fs
}

// NewInventoryWriter returns an InventoryWriter creating CSV files on the OS
// filesystem.
func NewInventoryWriter() InventoryWriter {
	return NewInventoryWriterFs(afero.NewOsFs())
}

// NewInventoryWriterFs returns an InventoryWriter creating CSV files on fs.
func NewInventoryWriterFs(fs afero.Fs) InventoryWriter {
	return &csvInventoryWriter{fs: fs}
}

func (w *csvInventoryWriter) WriteInventory(path m.Path, rows []InventoryRow, withHash bool) error {
	f, err := w.fs.Create(string(path))
	if err != nil {
		return fmt.Errorf("create inventory %s: %w", path, err)
	}

	if err := EncodeInventory(f, rows, withHash); err != nil {
		_ = f.Close()
		return fmt.Errorf("write inventory %s: %w", path, err)
	}

	return f.Close()
}

// EncodeInventory writes rows as CSV to out.
func EncodeInventory(out io.Writer, rows []InventoryRow, withHash bool) error {
	writer := csv.NewWriter(out)

	header := append([]string{}, InventoryColumns...)
	if withHash {
		header = append(header, inventoryHashColumn)
	}

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		rec := row.Record
		line := []string{
			string(rec.Path),
			strconv.FormatUint(rec.ID.Ino, 10),
			strconv.FormatUint(rec.ID.Dev, 10),
			strconv.FormatUint(rec.Nlink, 10),
			strconv.FormatInt(rec.Size, 10),
			strconv.FormatInt(rec.ModTime.UnixNano(), 10),
		}

		if withHash {
			line = append(line, row.Hash)
		}

		if err := writer.Write(line); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}
