/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package gtracks

/* -------------------------------------------------------------------------- */

import "bufio"
import "bytes"
import "fmt"
import "io"
import "sort"

/* -------------------------------------------------------------------------- */

// Rows of all chromosomes are numbered consecutively, cumulative sizes
// map a row back to its chromosome.
type prettyRows struct {
  offsets []int
}

func newPrettyRows(sizes []int) prettyRows {
  offsets := make([]int, len(sizes)+1)
  for i, n := range sizes {
    offsets[i+1] = offsets[i] + n
  }
  return prettyRows{offsets}
}

func (r prettyRows) Length() int {
  return r.offsets[len(r.offsets)-1]
}

func (r prettyRows) Locate(k int) (int, int) {
  chrom := sort.Search(len(r.offsets)-1, func(i int) bool { return r.offsets[i+1] > k })
  return chrom, k - r.offsets[chrom]
}

/* -------------------------------------------------------------------------- */

// Print a table of rows, showing the first and last n/2 rows if there are
// more than n+1.
func writePrettyTable(writer io.Writer, header []string, nrows int, row func(i int) []string, n int) error {
  applyRows := func(f1 func(i int) error, f2 func() error) error {
    if nrows <= n+1 {
      // apply to all entries
      for i := 0; i < nrows; i++ {
        if err := f1(i); err != nil {
          return err
        }
      }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ {
        if err := f1(i); err != nil {
          return err
        }
      }
      // between first and last n/2 rows
      if err := f2(); err != nil {
        return err
      }
      // apply to last n/2 rows
      for i := nrows - n/2; i < nrows; i++ {
        if err := f1(i); err != nil {
          return err
        }
      }
    }
    return nil
  }
  // maximum column widths
  widths := make([]int, len(header)+1)
  widths[0] = len(fmt.Sprint(nrows))
  for j, h := range header {
    widths[j+1] = len(h)
  }
  applyRows(func(i int) error {
    for j, cell := range row(i) {
      widths[j+1] = iMax(widths[j+1], len(cell))
    }
    return nil
  }, func() error { return nil })

  printCells := func(first string, cells []string) error {
    if _, err := fmt.Fprintf(writer, "%*s", widths[0], first); err != nil {
      return err
    }
    for j, cell := range cells {
      if _, err := fmt.Fprintf(writer, " %*s", widths[j+1], cell); err != nil {
        return err
      }
    }
    _, err := fmt.Fprintf(writer, "\n")
    return err
  }
  // pring header
  if err := printCells("", header); err != nil {
    return err
  }
  ellipsis := make([]string, len(header))
  for j := range ellipsis {
    ellipsis[j] = "..."
  }
  return applyRows(
    func(i int) error {
      return printCells(fmt.Sprint(i+1), row(i))
    },
    func() error {
      return printCells("", ellipsis)
    })
}

/* -------------------------------------------------------------------------- */

func writePrettyWindows(writer io.Writer, genome Genome, data []*WindowList, n int) error {
  sizes := make([]int, len(data))
  for i, l := range data {
    if l != nil {
      sizes[i] = l.Len()
    }
  }
  rows := newPrettyRows(sizes)
  return writePrettyTable(writer, []string{"seqnames", "ranges", "scores"}, rows.Length(), func(k int) []string {
    chrom, i := rows.Locate(k)
    w := data[chrom].At(i)
    return []string{genome.Seqnames[chrom], w.Range.String(), fmt.Sprintf("%g", w.Score)}
  }, n)
}

func writePrettyGenes(writer io.Writer, genome Genome, data []*GeneList, n int) error {
  sizes := make([]int, len(data))
  for i, l := range data {
    if l != nil {
      sizes[i] = l.Len()
    }
  }
  rows := newPrettyRows(sizes)
  return writePrettyTable(writer, []string{"names", "seqnames", "ranges", "strand", "scores", "exons"}, rows.Length(), func(k int) []string {
    chrom, i := rows.Locate(k)
    g := data[chrom].At(i)
    return []string{
      g.Name,
      genome.Seqnames[chrom],
      g.Range.String(),
      string(g.Strand),
      fmt.Sprintf("%g", g.Score),
      fmt.Sprint(g.Exons.Len()) }
  }, n)
}

/* -------------------------------------------------------------------------- */

type prettyWriter interface {
  WritePretty(writer io.Writer, n int) error
}

func prettyString(c prettyWriter, n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  if err := c.WritePretty(writer, n); err != nil {
    return ""
  }
  writer.Flush()

  return buffer.String()
}
