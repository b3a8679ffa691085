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

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

type binArena struct {
  binSize int
  scores  []float64
}

func (a *binArena) at(i int) ScoredWindow {
  return ScoredWindow{Range{i*a.binSize, (i+1)*a.binSize}, a.scores[i]}
}

func (a *binArena) len() int {
  return len(a.scores)
}

/* -------------------------------------------------------------------------- */

// A BinList is a fixed-stride list where element i covers
// [i*binSize, (i+1)*binSize).
type BinList struct {
  WindowList
  arena *binArena
}

func newBinList(binSize int, scores []float64) BinList {
  a := &binArena{binSize, scores}
  return BinList{newIntervalList[ScoredWindow](a), a}
}

// Construct a bin list from a slice of bin scores. The slice is owned by
// the list afterwards.
func NewBinList(binSize int, scores []float64) (BinList, error) {
  if binSize <= 0 {
    return BinList{}, errors.Wrapf(ErrInvalidParameter, "invalid bin size `%d'", binSize)
  }
  return newBinList(binSize, scores), nil
}

/* access methods
 * -------------------------------------------------------------------------- */

func (l BinList) GetBinSize() int {
  return l.arena.binSize
}

// Index of the bin containing position.
func (l BinList) Index(position int) int {
  if position < 0 {
    panic("negative position")
  }
  return position/l.arena.binSize
}

func (l BinList) Score(i int) float64 {
  return l.arena.scores[i]
}

// Score at a genomic position, zero beyond the last bin.
func (l BinList) ScoreAt(position int) float64 {
  if i := l.Index(position); i < len(l.arena.scores) {
    return l.arena.scores[i]
  }
  return 0.0
}

func (l BinList) Search(position int) int {
  if position < 0 {
    return 0
  }
  return iMin(l.Index(position), l.Len())
}

func (l BinList) Window(from, to int) WindowList {
  ifrom := iMax(0, iMin(from/l.arena.binSize, l.Len()))
  ito   := iMax(ifrom, iMin(divIntUp(iMax(to, 0), l.arena.binSize), l.Len()))
  r, _  := l.Slice(ifrom, ito)
  return r
}

/* pyramid
 * -------------------------------------------------------------------------- */

// Re-aggregate every k consecutive bins into a single one. Average cells
// take the plain mean of their bins, which matches binning at k*binSize
// only for fully covered input.
func (l BinList) aggregate(k int, method AggregationMethod) BinList {
  n      := divIntUp(l.Len(), k)
  scores := make([]float64, n)
  for j := 0; j < n; j++ {
    scores[j] = method.reduce(l.arena.scores[j*k:iMin((j+1)*k, l.Len())])
  }
  return newBinList(k*l.arena.binSize, scores)
}

/* builder
 * -------------------------------------------------------------------------- */

// BinListBuilder aggregates scored intervals into the bins of a single
// chromosome. Intervals may be added in any order and may overlap.
//
// Per bin, averages are weighted by the number of covered positions and
// maxima take the largest contributing score. Sums add score times the
// number of covered positions, so that the sum over k adjacent bins equals
// the sum of a single bin k times as wide. Bins without any contribution
// have score zero.
type BinListBuilder struct {
  binSize   int
  method    AggregationMethod
  seqLength int
  acc       []float64
  cover     []int
  built     bool
}

// A positive sequence length fixes the number of bins to cover the whole
// chromosome, intervals beyond the end are clipped. With a sequence length
// of zero the list ends with the last contributing bin.
func NewBinListBuilder(binSize int, method AggregationMethod, seqLength int) (*BinListBuilder, error) {
  if binSize <= 0 {
    return nil, errors.Wrapf(ErrInvalidParameter, "invalid bin size `%d'", binSize)
  }
  if !method.Valid() {
    return nil, errors.Wrap(ErrInvalidParameter, "aggregation method is missing")
  }
  if seqLength < 0 {
    return nil, errors.Wrapf(ErrInvalidParameter, "invalid sequence length `%d'", seqLength)
  }
  n := divIntUp(seqLength, binSize)
  b := BinListBuilder{
    binSize  : binSize,
    method   : method,
    seqLength: seqLength,
    acc      : make([]float64, n),
    cover    : make([]int,     n) }
  return &b, nil
}

/* -------------------------------------------------------------------------- */

func (b *BinListBuilder) grow(n int) {
  for len(b.acc) < n {
    b.acc   = append(b.acc,   0.0)
    b.cover = append(b.cover, 0)
  }
}

func (b *BinListBuilder) Add(from, to int, score float64) error {
  if b.built {
    return ErrAlreadyBuilt
  }
  if from >= to || from < 0 {
    return errors.Wrapf(ErrInvalidInterval, "window [%d %d)", from, to)
  }
  if math.IsNaN(score) {
    return nil
  }
  if b.seqLength > 0 {
    if from >= b.seqLength {
      return nil
    }
    to = iMin(to, b.seqLength)
  } else {
    b.grow(divIntUp(to, b.binSize))
  }
  for j := from/b.binSize; j*b.binSize < to; j++ {
    jfrom := iMax(from, (j+0)*b.binSize)
    jto   := iMin(to  , (j+1)*b.binSize)
    switch b.method {
    case Average:
      b.acc[j] += score*float64(jto-jfrom)
    case Sum:
      b.acc[j] += score*float64(jto-jfrom)
    case Maximum:
      if b.cover[j] == 0 || score > b.acc[j] {
        b.acc[j] = score
      }
    }
    b.cover[j] += jto-jfrom
  }
  return nil
}

func (b *BinListBuilder) AddWindow(w ScoredWindow) error {
  return b.Add(w.From, w.To, w.Score)
}

func (b *BinListBuilder) Build() (BinList, error) {
  if b.built {
    return BinList{}, ErrAlreadyBuilt
  }
  b.built = true
  scores := b.acc
  for j := range scores {
    if b.cover[j] == 0 {
      scores[j] = 0.0
    } else if b.method == Average {
      scores[j] /= float64(b.cover[j])
    }
  }
  b.acc   = nil
  b.cover = nil
  return newBinList(b.binSize, scores), nil
}
