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

/* -------------------------------------------------------------------------- */

// Default re-aggregation factors of the pyramid levels.
var DefaultPyramidFactors = []int{10, 100, 1000}

/* -------------------------------------------------------------------------- */

// A BinContainer covers each chromosome with bins of a single size. Coarser
// pyramid levels are computed at construction by re-aggregating every k
// consecutive base bins with the aggregation method of the container.
type BinContainer struct {
  genome   Genome
  binSize  int
  method   AggregationMethod
  data     []*BinList
  factors  []int
  // pyramid[level][chrom]
  pyramid  [][]*BinList
}

/* -------------------------------------------------------------------------- */

func checkPyramidFactors(factors []int) error {
  for i, k := range factors {
    if k <= 1 {
      return errors.Wrapf(ErrInvalidParameter, "invalid pyramid factor `%d'", k)
    }
    if i > 0 && factors[i-1] >= k {
      return errors.Wrap(ErrInvalidParameter, "pyramid factors must be strictly increasing")
    }
  }
  return nil
}

// Pyramid levels of a single base list.
func buildPyramid(base *BinList, method AggregationMethod, factors []int) []*BinList {
  r := make([]*BinList, len(factors))
  if base == nil {
    return r
  }
  for i, k := range factors {
    r[i]  = new(BinList)
    *r[i] = base.aggregate(k, method)
  }
  return r
}

func newBinContainer(genome Genome, binSize int, method AggregationMethod, data []*BinList, factors []int, levels [][]*BinList) *BinContainer {
  // transpose [chrom][level] to [level][chrom]
  pyramid := make([][]*BinList, len(factors))
  for l := range factors {
    pyramid[l] = make([]*BinList, len(data))
    for c := range data {
      pyramid[l][c] = levels[c][l]
    }
  }
  f := make([]int, len(factors))
  copy(f, factors)
  return &BinContainer{genome, binSize, method, data, f, pyramid}
}

/* constructors
 * -------------------------------------------------------------------------- */

// Assemble a bin container from per-chromosome bin lists, nil marks an
// absent chromosome. All lists must have the given bin size. Pyramid
// levels are built for the given factors, nil selects
// DefaultPyramidFactors.
func NewBinContainer(genome Genome, binSize int, method AggregationMethod, lists []*BinList, factors []int) (*BinContainer, error) {
  if factors == nil {
    factors = DefaultPyramidFactors
  }
  if err := checkBinParameters(binSize, method, factors); err != nil {
    return nil, err
  }
  if err := checkSlots(genome, len(lists)); err != nil {
    return nil, err
  }
  levels := make([][]*BinList, len(lists))
  for i, l := range lists {
    if l != nil && l.GetBinSize() != binSize {
      return nil, errors.Wrapf(ErrInconsistentBinSize, "chromosome `%s' has bin size `%d' instead of `%d'", genome.Seqnames[i], l.GetBinSize(), binSize)
    }
    levels[i] = buildPyramid(l, method, factors)
  }
  return newBinContainer(genome, binSize, method, lists, factors, levels), nil
}

// Build a bin container in parallel. The function f receives a fresh bin
// builder for each chromosome, which covers the chromosome length given by
// the genome. Pyramid levels are computed within the chromosome tasks.
func BuildBinContainer(ctx context.Context, pool *WorkPool, genome Genome, binSize int, method AggregationMethod, factors []int, f func(chrom int, builder *BinListBuilder) error) (*BinContainer, error) {
  return buildBinContainer(ctx, pool, genome, binSize, method, factors, nil, f)
}

// Chromosomes for which has returns false are left absent.
func buildBinContainer(ctx context.Context, pool *WorkPool, genome Genome, binSize int, method AggregationMethod, factors []int, has func(chrom int) bool, f func(chrom int, builder *BinListBuilder) error) (*BinContainer, error) {
  if factors == nil {
    factors = DefaultPyramidFactors
  }
  if err := checkBinParameters(binSize, method, factors); err != nil {
    return nil, err
  }
  type slot struct {
    base   *BinList
    levels []*BinList
  }
  slots, err := BuildParallel(ctx, pool, "building bins", genome, func(chrom int) (slot, error) {
    if has != nil && !has(chrom) {
      return slot{nil, buildPyramid(nil, method, factors)}, nil
    }
    builder, err := NewBinListBuilder(binSize, method, genome.Lengths[chrom])
    if err != nil {
      return slot{}, err
    }
    if err := f(chrom, builder); err != nil {
      return slot{}, err
    }
    base, err := builder.Build()
    if err != nil {
      return slot{}, err
    }
    return slot{&base, buildPyramid(&base, method, factors)}, nil
  })
  if err != nil {
    return nil, err
  }
  data   := make([]*BinList,   len(slots))
  levels := make([][]*BinList, len(slots))
  for i, s := range slots {
    data  [i] = s.base
    levels[i] = s.levels
  }
  return newBinContainer(genome, binSize, method, data, factors, levels), nil
}

func checkBinParameters(binSize int, method AggregationMethod, factors []int) error {
  if binSize <= 0 {
    return errors.Wrapf(ErrInvalidParameter, "invalid bin size `%d'", binSize)
  }
  if !method.Valid() {
    return errors.Wrap(ErrInvalidParameter, "aggregation method is missing")
  }
  return checkPyramidFactors(factors)
}

/* access methods
 * -------------------------------------------------------------------------- */

func (c *BinContainer) GetShape() Shape {
  return ShapeBins
}

func (c *BinContainer) GetGenome() Genome {
  return c.genome
}

func (c *BinContainer) GetBinSize() int {
  return c.binSize
}

func (c *BinContainer) GetMethod() AggregationMethod {
  return c.method
}

func (c *BinContainer) Len() int {
  return len(c.data)
}

func (c *BinContainer) Has(chrom int) bool {
  return c.data[chrom] != nil
}

func (c *BinContainer) Size(chrom int) int {
  if l := c.data[chrom]; l != nil {
    return l.Len()
  }
  return 0
}

func (c *BinContainer) Get(chrom int) (BinList, bool) {
  if l := c.data[chrom]; l != nil {
    return *l, true
  }
  return BinList{}, false
}

func (c *BinContainer) At(chrom, i int) ScoredWindow {
  if l := c.data[chrom]; l == nil {
    panic(fmt.Sprintf("At(): chromosome `%d' is absent", chrom))
  } else {
    return l.At(i)
  }
}

// Score at a genomic position, zero for absent chromosomes.
func (c *BinContainer) ScoreAt(chrom, position int) float64 {
  if l := c.data[chrom]; l != nil {
    return l.ScoreAt(position)
  }
  return 0.0
}

/* pyramid
 * -------------------------------------------------------------------------- */

func (c *BinContainer) Levels() int {
  return len(c.pyramid)
}

func (c *BinContainer) GetPyramidFactors() []int {
  r := make([]int, len(c.factors))
  copy(r, c.factors)
  return r
}

// Pyramid level as a bin container without further levels.
func (c *BinContainer) Pyramid(level int) (*BinContainer, error) {
  if level < 0 || level >= len(c.pyramid) {
    return nil, errors.Wrapf(ErrInvalidParameter, "invalid pyramid level `%d'", level)
  }
  return &BinContainer{
    genome : c.genome,
    binSize: c.binSize*c.factors[level],
    method : c.method,
    data   : c.pyramid[level] }, nil
}

// Select the coarsest level whose bin size does not exceed the given
// number of bases per pixel. The base level is returned if no pyramid
// level qualifies.
func (c *BinContainer) Resolution(basesPerPixel int) *BinContainer {
  r := c
  for level, k := range c.factors {
    if c.binSize*k > basesPerPixel {
      break
    }
    r, _ = c.Pyramid(level)
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (c *BinContainer) WritePretty(writer io.Writer, n int) error {
  if _, err := fmt.Fprintf(writer, "bin size: %d, method: %s, pyramid factors: %v\n", c.binSize, c.method, c.factors); err != nil {
    return err
  }
  data := make([]*WindowList, len(c.data))
  for i, l := range c.data {
    if l != nil {
      data[i] = &l.WindowList
    }
  }
  return writePrettyWindows(writer, c.genome, data, n)
}

func (c *BinContainer) String() string {
  return prettyString(c, 10)
}
