package texture

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	blockOpen  = "vec![\n"
	blockClose = "\n],\n"
)

// WriteTo writes every row as a vec![ ... ], block. Tokens are written as is,
// each already carrying its own newline.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(s string) error {
		n, err := io.WriteString(w, s)
		total += int64(n)
		return err
	}

	for i, row := range t {
		if err := write(blockOpen); err != nil {
			return total, fmt.Errorf("could not open block %d: %w", i, err)
		}
		for _, tok := range row {
			if err := write(tok); err != nil {
				return total, fmt.Errorf("could not write block %d: %w", i, err)
			}
		}
		if err := write(blockClose); err != nil {
			return total, fmt.Errorf("could not close block %d: %w", i, err)
		}
	}
	return total, nil
}

// Write truncates or creates the file at path and serializes t into it. The
// file is closed on every path; a failed write leaves it incomplete.
func Write(path string, t Table) (err error) {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", path, err)
	}
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close destination file %q: %w", path, defErr)
		}
	}()

	wr := bufio.NewWriter(outFile)
	if _, err = t.WriteTo(wr); err != nil {
		return fmt.Errorf("could not write destination file %q: %w", path, err)
	}
	if err = wr.Flush(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", path, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not sync destination file %q: %w", path, err)
	}
	return nil
}

// Preview prints the first row of t, quoted, as a quick sanity check of what
// was written.
func Preview(w io.Writer, t Table) error {
	var first Row
	if len(t) > 0 {
		first = t[0]
	}
	_, err := fmt.Fprintf(w, "%q\n", []string(first))
	return err
}
