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

import "math"
import "sort"

import "github.com/biogo/store/interval"
import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A gene model. The body spans the transcribed region, exons are sorted,
// non-overlapping and contained in the body. A gene without score has a
// NaN score.
type Gene struct {
  Name   string
  Strand byte
  Range
  Score  float64
  Exons  WindowList
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGene(name string, strand byte, from, to int, score float64, exons []ScoredWindow) (Gene, error) {
  if from >= to {
    return Gene{}, errors.Wrapf(ErrInvalidInterval, "gene `%s' has invalid body [%d %d)", name, from, to)
  }
  if strand != '+' && strand != '-' && strand != '*' {
    return Gene{}, errors.Wrapf(ErrInvalidParameter, "gene `%s' has invalid strand `%c'", name, strand)
  }
  body    := Range{from, to}
  builder := NewExonListBuilder()
  for _, e := range exons {
    if !body.Contains(e.Range) {
      return Gene{}, errors.Wrapf(ErrInvalidInterval, "exon %v is not contained in gene `%s' %v", e.Range, name, body)
    }
    if err := builder.AddWindow(e); err != nil {
      return Gene{}, errors.Wrapf(err, "gene `%s'", name)
    }
  }
  list, err := builder.Build()
  if err != nil {
    return Gene{}, err
  }
  return Gene{name, strand, body, score, list}, nil
}

/* -------------------------------------------------------------------------- */

func (g Gene) HasScore() bool {
  return !math.IsNaN(g.Score)
}

// Gene score, or the exon-length weighted mean exon score if the gene has
// no score. Genes without scored exons have score MaskScore.
func (g Gene) DerivedScore() float64 {
  if g.HasScore() {
    return g.Score
  }
  s := 0.0
  n := 0
  for _, e := range g.Exons.All() {
    if math.IsNaN(e.Score) {
      continue
    }
    s += e.Score*float64(e.Length())
    n += e.Length()
  }
  if n == 0 {
    return MaskScore
  }
  return s/float64(n)
}

/* -------------------------------------------------------------------------- */

type geneArena struct {
  genes []Gene
}

func (a *geneArena) at(i int) Gene {
  return a.genes[i]
}

func (a *geneArena) len() int {
  return len(a.genes)
}

/* -------------------------------------------------------------------------- */

// Element of the overlap index, the ID is the position in the arena.
type geneInterval struct {
  from, to int
  id       uintptr
}

func (i geneInterval) Overlap(b interval.IntRange) bool {
  // half-open interval indexing
  return i.to > b.Start && i.from < b.End
}

func (i geneInterval) ID() uintptr {
  return i.id
}

func (i geneInterval) Range() interval.IntRange {
  return interval.IntRange{Start: i.from, End: i.to}
}

/* -------------------------------------------------------------------------- */

// Genes of a single chromosome ordered by start position. Gene bodies may
// overlap, overlap queries are answered by an interval tree.
type GeneList struct {
  IntervalList[Gene]
  tree *interval.IntTree
  // maxTo[i] is the largest end position of genes 0..i
  maxTo []int
}

// Index of the first gene that ends after position.
func (l GeneList) Search(position int) int {
  return sort.Search(len(l.maxTo), func(i int) bool {
    return l.maxTo[i] > position
  })
}

// All genes whose body overlaps [from, to). Since bodies may overlap, the
// result is in general not a contiguous slice of the list.
func (l GeneList) Window(from, to int) IntervalList[Gene] {
  r, err := l.Subset(l.Overlapping(from, to))
  if err != nil {
    return IntervalList[Gene]{}
  }
  return r
}

// Positions of all genes whose body overlaps [from, to), in increasing
// order.
func (l GeneList) Overlapping(from, to int) []int {
  r := []int{}
  if l.tree == nil || from >= to {
    return r
  }
  l.tree.DoMatching(func(e interval.IntInterface) bool {
    r = append(r, int(e.ID()))
    return false
  }, geneInterval{from: from, to: to})
  sort.Ints(r)
  return r
}

/* builder
 * -------------------------------------------------------------------------- */

// GeneListBuilder constructs the gene list of a single chromosome. Genes
// must be added in order of their start positions.
type GeneListBuilder struct {
  genes []Gene
  built bool
}

func NewGeneListBuilder() *GeneListBuilder {
  return &GeneListBuilder{}
}

func (b *GeneListBuilder) AddGene(g Gene) error {
  if b.built {
    return ErrAlreadyBuilt
  }
  if k := len(b.genes); k > 0 && g.From < b.genes[k-1].From {
    return errors.Wrapf(ErrOutOfOrder, "gene `%s' starts before gene `%s'", g.Name, b.genes[k-1].Name)
  }
  b.genes = append(b.genes, g)
  return nil
}

func (b *GeneListBuilder) Add(name string, strand byte, from, to int, score float64, exons []ScoredWindow) error {
  if b.built {
    return ErrAlreadyBuilt
  }
  if g, err := NewGene(name, strand, from, to, score, exons); err != nil {
    return err
  } else {
    return b.AddGene(g)
  }
}

func (b *GeneListBuilder) Len() int {
  return len(b.genes)
}

func (b *GeneListBuilder) Build() (GeneList, error) {
  if b.built {
    return GeneList{}, ErrAlreadyBuilt
  }
  b.built = true
  genes  := b.genes
  b.genes = nil

  tree := &interval.IntTree{}
  for i, g := range genes {
    if err := tree.Insert(geneInterval{g.From, g.To, uintptr(i)}, true); err != nil {
      return GeneList{}, err
    }
  }
  tree.AdjustRanges()

  maxTo := make([]int, len(genes))
  for i, g := range genes {
    maxTo[i] = g.To
    if i > 0 {
      maxTo[i] = iMax(maxTo[i], maxTo[i-1])
    }
  }
  return GeneList{newIntervalList[Gene](&geneArena{genes}), tree, maxTo}, nil
}
