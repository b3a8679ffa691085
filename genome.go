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
import "os"
import "strconv"
import "strings"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Structure containing chromosome sizes. The position of a chromosome in
// Seqnames is its ordinal, which is used as slot index by all containers.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): Invalid parameters!")
  }
  return Genome{seqnames, lengths}
}

func (genome Genome) Clone() Genome {
  seqnames := make([]string, len(genome.Seqnames))
  lengths  := make([]int,    len(genome.Lengths))
  copy(seqnames, genome.Seqnames)
  copy(lengths,  genome.Lengths)
  return Genome{seqnames, lengths}
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given chromosome. Returns an error if the chromosome
// is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  if i, err := genome.GetIdx(seqname); err != nil {
    return 0, err
  } else {
    return genome.Lengths[i], nil
  }
}

// Ordinal of the given chromosome.
func (genome Genome) GetIdx(seqname string) (int, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return i, nil
    }
  }
  return -1, fmt.Errorf("sequence `%s' not found", seqname)
}

func (genome Genome) Equals(g Genome) bool {
  if genome.Length() != g.Length() {
    return false
  }
  for i := 0; i < genome.Length(); i++ {
    if genome.Seqnames[i] != g.Seqnames[i] || genome.Lengths[i] != g.Lengths[i] {
      return false
    }
  }
  return true
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10s %10d",
        genome.Seqnames[i],
        genome.Lengths [i]))
  }

  // pring header
  buffer.WriteString(
    fmt.Sprintf("%10s %10s\n", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    printRow(i)
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read chromosome sizes from a UCSC text table. The format is a whitespace
// separated table where the first column is the name of the chromosome and
// the second column the chromosome length.
func ReadGenome(reader io.Reader) (Genome, error) {
  seqnames := []string{}
  lengths  := []int{}

  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return Genome{}, fmt.Errorf("invalid genome table at line `%d'", i)
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return Genome{}, errors.Wrapf(err, "invalid genome table at line `%d'", i)
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t))
  }
  if err := scanner.Err(); err != nil {
    return Genome{}, err
  }
  return NewGenome(seqnames, lengths), nil
}

func ImportGenome(filename string) (Genome, error) {
  f, err := os.Open(filename)
  if err != nil {
    return Genome{}, err
  }
  defer f.Close()
  return ReadGenome(f)
}
