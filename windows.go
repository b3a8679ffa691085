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

import "fmt"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A half-open genomic interval [From, To) with a single score.
type ScoredWindow struct {
  Range
  Score float64
}

func NewScoredWindow(from, to int, score float64) ScoredWindow {
  return ScoredWindow{NewRange(from, to), score}
}

func (w ScoredWindow) String() string {
  return fmt.Sprintf("[%d %d):%g", w.From, w.To, w.Score)
}

/* -------------------------------------------------------------------------- */

type windowArena struct {
  from  []int
  to    []int
  score []float64
}

func (a *windowArena) at(i int) ScoredWindow {
  return ScoredWindow{Range{a.from[i], a.to[i]}, a.score[i]}
}

func (a *windowArena) len() int {
  return len(a.from)
}

/* -------------------------------------------------------------------------- */

type WindowList = IntervalList[ScoredWindow]

/* builder
 * -------------------------------------------------------------------------- */

// WindowListBuilder constructs the window list of a single chromosome.
// Windows must be added in order of their start positions and must not
// overlap. A window that starts where the previous one stops and carries
// the identical score extends the previous window instead of being stored.
type WindowListBuilder struct {
  arena     *windowArena
  keepZeros bool
  // last window added, including dropped ones
  n         int
  lastFrom  int
  lastTo    int
}

// Builder for sparse window lists, windows with zero score are dropped.
func NewWindowListBuilder() *WindowListBuilder {
  return &WindowListBuilder{arena: &windowArena{}}
}

// Builder for exon lists, zero scores are kept.
func NewExonListBuilder() *WindowListBuilder {
  return &WindowListBuilder{arena: &windowArena{}, keepZeros: true}
}

/* -------------------------------------------------------------------------- */

func (b *WindowListBuilder) Add(from, to int, score float64) error {
  if b.arena == nil {
    return ErrAlreadyBuilt
  }
  if from >= to {
    return errors.Wrapf(ErrInvalidInterval, "window [%d %d)", from, to)
  }
  if b.n > 0 {
    if from < b.lastFrom {
      return errors.Wrapf(ErrOutOfOrder, "window [%d %d) starts before [%d %d)", from, to, b.lastFrom, b.lastTo)
    }
    if from < b.lastTo {
      return errors.Wrapf(ErrOverlap, "window [%d %d) overlaps [%d %d)", from, to, b.lastFrom, b.lastTo)
    }
  }
  b.n++
  b.lastFrom = from
  b.lastTo   = to

  if score == 0.0 && !b.keepZeros {
    return nil
  }
  a := b.arena
  if k := len(a.from)-1; k >= 0 && a.to[k] == from && a.score[k] == score {
    a.to[k] = to
    return nil
  }
  a.from  = append(a.from,  from)
  a.to    = append(a.to,    to)
  a.score = append(a.score, score)
  return nil
}

func (b *WindowListBuilder) AddWindow(w ScoredWindow) error {
  return b.Add(w.From, w.To, w.Score)
}

// Number of windows stored so far.
func (b *WindowListBuilder) Len() int {
  if b.arena == nil {
    return 0
  }
  return b.arena.len()
}

// Return the list and invalidate the builder.
func (b *WindowListBuilder) Build() (WindowList, error) {
  if b.arena == nil {
    return WindowList{}, ErrAlreadyBuilt
  }
  a := b.arena
  b.arena = nil
  if cap(a.from) > len(a.from) + len(a.from)/4 {
    // release unused capacity
    a.from  = append(make([]int,     0, len(a.from)),  a.from...)
    a.to    = append(make([]int,     0, len(a.to)),    a.to...)
    a.score = append(make([]float64, 0, len(a.score)), a.score...)
  }
  return newIntervalList[ScoredWindow](a), nil
}

/* -------------------------------------------------------------------------- */

// Construct a window list from a slice of windows.
func NewWindowList(windows []ScoredWindow) (WindowList, error) {
  b := NewWindowListBuilder()
  for _, w := range windows {
    if err := b.AddWindow(w); err != nil {
      return WindowList{}, err
    }
  }
  return b.Build()
}
