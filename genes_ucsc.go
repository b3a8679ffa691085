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

import "context"
import "database/sql"
import "fmt"
import "math"
import "regexp"
import "sort"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"
import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

const UCSCHost = "genome-mysql.cse.ucsc.edu:3306"

// Rows of a gene table query, satisfied by *sql.Rows.
type RowScanner interface {
  Next() bool
  Scan(dest ...interface{}) error
  Err() error
}

type ucscGene struct {
  name   string
  strand byte
  from   int
  to     int
  exons  []ScoredWindow
}

var ucscTableRegexp = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

/* -------------------------------------------------------------------------- */

// Parse a comma separated list of positions, UCSC tables terminate these
// lists with a comma.
func parseUCSCPositions(str string) ([]int, error) {
  r := []int{}
  for _, field := range strings.Split(str, ",") {
    if field = strings.TrimSpace(field); field == "" {
      continue
    }
    if v, err := strconv.Atoi(field); err != nil {
      return nil, err
    } else {
      r = append(r, v)
    }
  }
  return r, nil
}

func scanUCSCGene(rows RowScanner) (string, ucscGene, error) {
  var name, seqname, strand string
  var from, to int
  var exonStarts, exonEnds []byte
  if err := rows.Scan(&name, &seqname, &strand, &from, &to, &exonStarts, &exonEnds); err != nil {
    return "", ucscGene{}, err
  }
  if len(strand) != 1 {
    return "", ucscGene{}, fmt.Errorf("gene `%s' has invalid strand `%s'", name, strand)
  }
  starts, err := parseUCSCPositions(string(exonStarts))
  if err != nil {
    return "", ucscGene{}, errors.Wrapf(err, "gene `%s' has invalid exon starts", name)
  }
  ends, err := parseUCSCPositions(string(exonEnds))
  if err != nil {
    return "", ucscGene{}, errors.Wrapf(err, "gene `%s' has invalid exon ends", name)
  }
  if len(starts) != len(ends) {
    return "", ucscGene{}, fmt.Errorf("gene `%s' has `%d' exon starts but `%d' exon ends", name, len(starts), len(ends))
  }
  exons := make([]ScoredWindow, len(starts))
  for i := range starts {
    exons[i] = ScoredWindow{Range{starts[i], ends[i]}, math.NaN()}
  }
  return seqname, ucscGene{name, strand[0], from, to, exons}, nil
}

/* -------------------------------------------------------------------------- */

// Decode gene rows with columns name, chrom, strand, txStart, txEnd,
// exonStarts and exonEnds into a gene container. Rows may be in any order,
// genes on chromosomes missing from the genome are skipped. Genes and exons
// carry no scores.
func GenesFromRows(ctx context.Context, pool *WorkPool, genome Genome, rows RowScanner, searchURL string) (*GeneContainer, error) {
  genes   := make([][]ucscGene, genome.Length())
  skipped := 0
  for rows.Next() {
    seqname, gene, err := scanUCSCGene(rows)
    if err != nil {
      return nil, err
    }
    if chrom, err := genome.GetIdx(seqname); err != nil {
      skipped++
    } else {
      genes[chrom] = append(genes[chrom], gene)
    }
  }
  if err := rows.Err(); err != nil {
    return nil, err
  }
  if skipped > 0 && pool != nil {
    pool.printStderr(1, "skipped %d gene(s) on unknown chromosomes\n", skipped)
  }
  return BuildGeneContainer(ctx, pool, genome, Precision32Bit, searchURL, func(chrom int, builder *GeneListBuilder) error {
    sort.SliceStable(genes[chrom], func(i, j int) bool {
      return genes[chrom][i].from < genes[chrom][j].from
    })
    for _, g := range genes[chrom] {
      if err := builder.Add(g.name, g.strand, g.from, g.to, math.NaN(), g.exons); err != nil {
        return err
      }
    }
    return nil
  })
}

// Import a gene table (e.g. knownGene or refGene) of the given assembly from
// the public UCSC MySQL server.
func ImportGenesFromUCSC(ctx context.Context, pool *WorkPool, genome Genome, assembly, table string) (*GeneContainer, error) {
  if !ucscTableRegexp.MatchString(assembly) {
    return nil, errors.Wrapf(ErrInvalidParameter, "invalid assembly name `%s'", assembly)
  }
  if !ucscTableRegexp.MatchString(table) {
    return nil, errors.Wrapf(ErrInvalidParameter, "invalid table name `%s'", table)
  }
  /* open connection */
  db, err := sql.Open("mysql", fmt.Sprintf("genome@tcp(%s)/%s", UCSCHost, assembly))
  if err != nil {
    return nil, err
  }
  defer db.Close()

  if err := db.PingContext(ctx); err != nil {
    return nil, errors.Wrapf(err, "connecting to `%s' failed", UCSCHost)
  }
  /* receive data */
  rows, err := db.QueryContext(ctx,
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd, exonStarts, exonEnds FROM %s", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()

  searchURL := fmt.Sprintf("https://genome.ucsc.edu/cgi-bin/hgGene?db=%s&hgg_gene=", assembly)

  return GenesFromRows(ctx, pool, genome, rows, searchURL)
}
