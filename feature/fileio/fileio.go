package fileio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dispute-reconciler/core/reconcile"

	"go.uber.org/zap"
)

// Decode parses disputes in format f from r.
func Decode(f Format, r io.Reader) ([]reconcile.Dispute, error) {
	switch f {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatXML:
		return decodeXML(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Encode serializes result in format f to w.
func Encode(f Format, w io.Writer, result *reconcile.Result) error {
	switch f {
	case FormatCSV:
		return encodeCSV(w, result)
	case FormatJSON:
		return encodeJSON(w, result)
	case FormatYAML:
		return encodeYAML(w, result)
	default:
		return fmt.Errorf("%w: cannot write %s output", ErrUnsupportedFormat, f)
	}
}

// Files reads dispute files and writes result reports on the local filesystem.
type Files struct {
	logger *zap.Logger
}

// NewFiles creates a file reader/writer.
func NewFiles(logger *zap.Logger) *Files {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Files{logger: logger}
}

// ReadDisputes reads all disputes from path, selecting the parser by extension.
func (f *Files) ReadDisputes(path string) ([]reconcile.Dispute, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Reading dispute file", zap.String("path", path), zap.Stringer("format", format))

	file, err := os.Open(path)
	if err != nil {
		return nil, f.fail("read", path, format, err)
	}
	defer file.Close()

	disputes, err := Decode(format, bufio.NewReader(file))
	if err != nil {
		return nil, f.fail("read", path, format, err)
	}

	f.logger.Info("Read disputes", zap.String("path", path), zap.Int("count", len(disputes)))
	return disputes, nil
}

// WriteResult serializes result to path. The file is written to a temporary
// sibling and renamed into place, so path holds either the full report or
// whatever it held before. It returns the encoded bytes for publishing.
func (f *Files) WriteResult(result *reconcile.Result, path string) ([]byte, error) {
	format, err := DetectOutputFormat(path)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Writing reconciliation result", zap.String("path", path), zap.Stringer("format", format))

	var buf bytes.Buffer
	if err := Encode(format, &buf, result); err != nil {
		return nil, f.fail("write", path, format, err)
	}
	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return nil, f.fail("write", path, format, err)
	}

	f.logger.Info("Wrote reconciliation result", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (f *Files) fail(op, path string, format Format, err error) error {
	ferr := &FileError{Op: op, Path: path, Format: format, Err: err}
	f.logger.Error("File processing failed", zap.Error(ferr))
	return ferr
}

// writeAtomic writes data to a temp file in path's directory and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
