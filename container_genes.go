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
import "fmt"
import "io"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

/* -------------------------------------------------------------------------- */

// Precision of stored gene scores. The tag is carried for collaborators,
// scores are always kept as float64.
type ScorePrecision int

const (
  Precision32Bit ScorePrecision = iota
  Precision16Bit
)

func ParseScorePrecision(str string) (ScorePrecision, error) {
  switch str {
  case "32bit", "32":
    return Precision32Bit, nil
  case "16bit", "16":
    return Precision16Bit, nil
  }
  return 0, errors.Wrapf(ErrInvalidParameter, "invalid score precision `%s'", str)
}

func (p ScorePrecision) String() string {
  switch p {
  case Precision16Bit:
    return "16bit"
  default:
    return "32bit"
  }
}

func (p *ScorePrecision) UnmarshalYAML(value *yaml.Node) error {
  var str string
  if err := value.Decode(&str); err != nil {
    return err
  }
  if r, err := ParseScorePrecision(str); err != nil {
    return err
  } else {
    *p = r
  }
  return nil
}

func (p ScorePrecision) MarshalYAML() (interface{}, error) {
  return p.String(), nil
}

/* -------------------------------------------------------------------------- */

type geneLocation struct {
  chrom int
  i     int
}

// Container of gene models.
type GeneContainer struct {
  genome    Genome
  data      []*GeneList
  precision ScorePrecision
  searchURL string
  index     map[string]geneLocation
}

/* constructors
 * -------------------------------------------------------------------------- */

func newGeneContainer(genome Genome, lists []*GeneList, precision ScorePrecision, searchURL string) *GeneContainer {
  index := map[string]geneLocation{}
  for chrom, l := range lists {
    if l == nil {
      continue
    }
    for i, g := range l.All() {
      index[g.Name] = geneLocation{chrom, i}
    }
  }
  return &GeneContainer{genome, lists, precision, searchURL, index}
}

// Assemble a gene container from per-chromosome gene lists, nil marks an
// absent chromosome. The search URL is an optional address of an external
// gene database.
func NewGeneContainer(genome Genome, lists []*GeneList, precision ScorePrecision, searchURL string) (*GeneContainer, error) {
  if err := checkSlots(genome, len(lists)); err != nil {
    return nil, err
  }
  return newGeneContainer(genome, lists, precision, searchURL), nil
}

// Build a gene container in parallel. The function f receives a fresh
// builder for each chromosome.
func BuildGeneContainer(ctx context.Context, pool *WorkPool, genome Genome, precision ScorePrecision, searchURL string, f func(chrom int, builder *GeneListBuilder) error) (*GeneContainer, error) {
  lists, err := BuildParallel(ctx, pool, "building genes", genome, func(chrom int) (*GeneList, error) {
    builder := NewGeneListBuilder()
    if err := f(chrom, builder); err != nil {
      return nil, err
    }
    if builder.Len() == 0 {
      return nil, nil
    }
    if r, err := builder.Build(); err != nil {
      return nil, err
    } else {
      return &r, nil
    }
  })
  if err != nil {
    return nil, err
  }
  return newGeneContainer(genome, lists, precision, searchURL), nil
}

/* access methods
 * -------------------------------------------------------------------------- */

func (c *GeneContainer) GetShape() Shape {
  return ShapeGenes
}

func (c *GeneContainer) GetGenome() Genome {
  return c.genome
}

func (c *GeneContainer) GetPrecision() ScorePrecision {
  return c.precision
}

func (c *GeneContainer) GetSearchURL() string {
  return c.searchURL
}

func (c *GeneContainer) Len() int {
  return len(c.data)
}

func (c *GeneContainer) Has(chrom int) bool {
  return c.data[chrom] != nil
}

func (c *GeneContainer) Size(chrom int) int {
  if l := c.data[chrom]; l != nil {
    return l.Len()
  }
  return 0
}

func (c *GeneContainer) Get(chrom int) (GeneList, bool) {
  if l := c.data[chrom]; l != nil {
    return *l, true
  }
  return GeneList{}, false
}

func (c *GeneContainer) At(chrom, i int) Gene {
  if l := c.data[chrom]; l == nil {
    panic(fmt.Sprintf("At(): chromosome `%d' is absent", chrom))
  } else {
    return l.At(i)
  }
}

// Returns the chromosome and index of a gene.
func (c *GeneContainer) FindGene(name string) (int, int, bool) {
  r, ok := c.index[name]
  return r.chrom, r.i, ok
}

// Indices of all genes on a chromosome whose body overlaps [from, to).
func (c *GeneContainer) Overlapping(chrom, from, to int) []int {
  if l := c.data[chrom]; l != nil {
    return l.Overlapping(from, to)
  }
  return []int{}
}

/* -------------------------------------------------------------------------- */

func (c *GeneContainer) WritePretty(writer io.Writer, n int) error {
  return writePrettyGenes(writer, c.genome, c.data, n)
}

func (c *GeneContainer) String() string {
  return prettyString(c, 10)
}
