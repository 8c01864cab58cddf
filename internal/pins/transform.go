package pins

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

var (
	// ErrReadInput wraps failures to open, read or parse the input file.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput wraps failures to write the output document.
	ErrWriteOutput = errors.New("write output")
)

// Options tune the output document.
type Options struct {
	Format Format
	Minify bool
}

// Result describes a finished transform.
type Result struct {
	Output  string
	Format  Format
	Written int
	Skipped int
}

// Summary is the one-line confirmation printed after a successful run.
func (r Result) Summary() string {
	return fmt.Sprintf("%s saved to %s with %d valid pins.", r.Format.Label(), r.Output, r.Written)
}

// Transform reads the CSV at inputPath, keeps the valid pins and writes them
// to outputPath. The output is fully encoded in memory and then moved into
// place, so a failed run never leaves a truncated file behind and never
// touches the output when the input cannot be read.
func Transform(inputPath, outputPath string, opts Options) (Result, error) {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}

	data, err := readInput(inputPath)
	if err != nil {
		return Result{}, err
	}

	pins, skipped, err := ReadPins(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w %s: %w", ErrReadInput, inputPath, err)
	}

	doc, err := Encode(pins, opts.Format, opts.Minify)
	if err != nil {
		return Result{}, err
	}

	if err := writeFile(outputPath, doc); err != nil {
		return Result{}, err
	}

	return Result{
		Output:  outputPath,
		Format:  opts.Format,
		Written: len(pins),
		Skipped: skipped,
	}, nil
}

func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadInput, path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w %s: input is not valid UTF-8", ErrReadInput, path)
	}

	return data, nil
}

// writeFile writes data to a temporary file next to path and renames it
// over path once everything has been flushed and closed.
func writeFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
			err = fmt.Errorf("%w %s: %w", ErrWriteOutput, path, err)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
