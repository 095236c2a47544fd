// Package report prints rank distributions as aligned tables.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/rodaine/table"
	"golang.org/x/xerrors"
)

// Section is one titled distribution of a report.
type Section struct {
	Title string
	Ranks pagerank.Distribution
}

// Print writes the title followed by one "page rank" row per page, sorted by
// page, with ranks rounded to precision decimal places.
func Print(w io.Writer, s Section, precision int) error {
	if _, err := fmt.Fprintln(w, s.Title); err != nil {
		return err
	}
	// table.Print reports no errors, so render into memory first
	var buf bytes.Buffer
	tbl := table.New("Page", "Rank").WithWriter(&buf).WithPadding(2)
	for _, page := range s.Ranks.Pages() {
		tbl.AddRow(page, fmt.Sprintf("%.*f", precision, s.Ranks[page]))
	}
	tbl.Print()
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line == "" {
			continue
		}
		// The last column is padded too
		if _, err := io.WriteString(w, strings.TrimRight(line, " \n")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// PrintAll prints every section separated by a blank line.
func PrintAll(w io.Writer, sections []Section, precision int) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Print(w, s, precision); err != nil {
			return err
		}
	}
	return nil
}

// Write stores the report in the file output, replacing it.
func Write(output string, sections []Section, precision int) error {
	file, err := os.Create(output)
	if err != nil {
		return xerrors.Errorf("could not create %s: %w", output, err)
	}
	defer file.Close()
	if err := PrintAll(file, sections, precision); err != nil {
		return xerrors.Errorf("could not write %s: %w", output, err)
	}
	return file.Close()
}
