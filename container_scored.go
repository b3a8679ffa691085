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

// Sparse container of scored windows. Windows with zero score are not
// stored.
type WindowContainer struct {
  genome Genome
  data   []*WindowList
}

/* constructors
 * -------------------------------------------------------------------------- */

// Assemble a container from per-chromosome lists, nil marks an absent
// chromosome.
func NewWindowContainer(genome Genome, lists []*WindowList) (*WindowContainer, error) {
  if err := checkSlots(genome, len(lists)); err != nil {
    return nil, err
  }
  return &WindowContainer{genome, lists}, nil
}

// Build a container in parallel. The function f receives a fresh builder
// for each chromosome. Chromosomes for which no window is stored are
// absent.
func BuildWindowContainer(ctx context.Context, pool *WorkPool, genome Genome, f func(chrom int, builder *WindowListBuilder) error) (*WindowContainer, error) {
  lists, err := BuildParallel(ctx, pool, "building windows", genome, func(chrom int) (*WindowList, error) {
    return buildWindowList(chrom, NewWindowListBuilder(), f)
  })
  if err != nil {
    return nil, err
  }
  return NewWindowContainer(genome, lists)
}

func buildWindowList(chrom int, builder *WindowListBuilder, f func(int, *WindowListBuilder) error) (*WindowList, error) {
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
}

/* access methods
 * -------------------------------------------------------------------------- */

func (c *WindowContainer) GetShape() Shape {
  return ShapeWindows
}

func (c *WindowContainer) GetGenome() Genome {
  return c.genome
}

func (c *WindowContainer) Len() int {
  return len(c.data)
}

func (c *WindowContainer) Has(chrom int) bool {
  return c.data[chrom] != nil
}

func (c *WindowContainer) Size(chrom int) int {
  if l := c.data[chrom]; l != nil {
    return l.Len()
  }
  return 0
}

// Window list of a chromosome, false if the chromosome is absent.
func (c *WindowContainer) Get(chrom int) (WindowList, bool) {
  if l := c.data[chrom]; l != nil {
    return *l, true
  }
  return WindowList{}, false
}

func (c *WindowContainer) GetBySeqname(seqname string) (WindowList, error) {
  i, err := c.genome.GetIdx(seqname)
  if err != nil {
    return WindowList{}, err
  }
  if l, ok := c.Get(i); !ok {
    return WindowList{}, fmt.Errorf("sequence `%s' has no data", seqname)
  } else {
    return l, nil
  }
}

func (c *WindowContainer) At(chrom, i int) ScoredWindow {
  if l := c.data[chrom]; l == nil {
    panic(fmt.Sprintf("At(): chromosome `%d' is absent", chrom))
  } else {
    return l.At(i)
  }
}

// Score at a genomic position, zero where no window is stored.
func (c *WindowContainer) ScoreAt(chrom, position int) float64 {
  if l := c.data[chrom]; l != nil {
    if i := l.Search(position); i < l.Len() {
      if w := l.At(i); w.From <= position {
        return w.Score
      }
    }
  }
  return 0.0
}

/* -------------------------------------------------------------------------- */

func (c *WindowContainer) WritePretty(writer io.Writer, n int) error {
  return writePrettyWindows(writer, c.genome, c.data, n)
}

func (c *WindowContainer) String() string {
  return prettyString(c, 10)
}

/* mask
 * -------------------------------------------------------------------------- */

// Score of every window in a mask.
const MaskScore = 1.0

// A MaskContainer marks presence of genomic intervals. It is stored like a
// window container where every score equals MaskScore.
type MaskContainer struct {
  WindowContainer
}

func NewMaskContainer(genome Genome, lists []*WindowList) (*MaskContainer, error) {
  for chrom, l := range lists {
    if l == nil {
      continue
    }
    for _, w := range l.All() {
      if w.Score != MaskScore {
        return nil, errors.Wrapf(ErrInvalidParameter, "mask window %v on chromosome `%d' has invalid score", w, chrom)
      }
    }
  }
  if c, err := NewWindowContainer(genome, lists); err != nil {
    return nil, err
  } else {
    return &MaskContainer{*c}, nil
  }
}

// Build a mask in parallel. The function f adds present intervals to the
// builder, scores are fixed to MaskScore.
func BuildMaskContainer(ctx context.Context, pool *WorkPool, genome Genome, f func(chrom int, builder *MaskBuilder) error) (*MaskContainer, error) {
  lists, err := BuildParallel(ctx, pool, "building mask", genome, func(chrom int) (*WindowList, error) {
    return buildWindowList(chrom, NewWindowListBuilder(), func(chrom int, builder *WindowListBuilder) error {
      return f(chrom, &MaskBuilder{builder})
    })
  })
  if err != nil {
    return nil, err
  }
  return &MaskContainer{WindowContainer{genome, lists}}, nil
}

func (c *MaskContainer) GetShape() Shape {
  return ShapeMask
}

// True if position is covered by the mask.
func (c *MaskContainer) Contains(chrom, position int) bool {
  return c.ScoreAt(chrom, position) == MaskScore
}

func (c *MaskContainer) String() string {
  return prettyString(c, 10)
}

/* -------------------------------------------------------------------------- */

type MaskBuilder struct {
  builder *WindowListBuilder
}

func (b *MaskBuilder) Add(from, to int) error {
  return b.builder.Add(from, to, MaskScore)
}
