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
import "iter"
import "sort"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

type Interval interface {
  GetRange() Range
}

// The arena holds the flat backing storage of a list. Elements are
// materialized on access, they never point back to their list.
type intervalArena[T Interval] interface {
  at(i int) T
  len()     int
}

/* -------------------------------------------------------------------------- */

// An IntervalList is an immutable view on the elements of a single
// chromosome ordered by start position. Sub-lists share the backing
// arena of their parent, no data is copied.
type IntervalList[T Interval] struct {
  arena   intervalArena[T]
  offset  int
  length  int
  // explicit arena positions, nil for contiguous views
  indices []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func newIntervalList[T Interval](arena intervalArena[T]) IntervalList[T] {
  return IntervalList[T]{arena: arena, length: arena.len()}
}

/* access methods
 * -------------------------------------------------------------------------- */

func (l IntervalList[T]) Len() int {
  return l.length
}

func (l IntervalList[T]) position(i int) int {
  if l.indices != nil {
    return l.indices[i]
  }
  return l.offset + i
}

func (l IntervalList[T]) At(i int) T {
  if i < 0 || i >= l.length {
    panic(fmt.Sprintf("At(): index `%d' out of range [0, %d)", i, l.length))
  }
  return l.arena.at(l.position(i))
}

// Iterate over all elements in order.
func (l IntervalList[T]) All() iter.Seq2[int, T] {
  return func(yield func(int, T) bool) {
    for i := 0; i < l.length; i++ {
      if !yield(i, l.arena.at(l.position(i))) {
        return
      }
    }
  }
}

/* sub-lists
 * -------------------------------------------------------------------------- */

// Contiguous sub-list of elements [ifrom, ito).
func (l IntervalList[T]) Slice(ifrom, ito int) (IntervalList[T], error) {
  if ifrom < 0 || ito > l.length || ifrom > ito {
    return IntervalList[T]{}, errors.Wrapf(ErrInvalidParameter, "slice [%d, %d) out of range [0, %d)", ifrom, ito, l.length)
  }
  r := IntervalList[T]{arena: l.arena, length: ito-ifrom}
  if l.indices != nil {
    r.indices = l.indices[ifrom:ito:ito]
  } else {
    r.offset  = l.offset + ifrom
  }
  return r, nil
}

// Sub-list of the elements at the given positions, which must be strictly
// increasing.
func (l IntervalList[T]) Subset(indices []int) (IntervalList[T], error) {
  r := make([]int, len(indices))
  for k, i := range indices {
    if i < 0 || i >= l.length {
      return IntervalList[T]{}, errors.Wrapf(ErrInvalidParameter, "index `%d' out of range [0, %d)", i, l.length)
    }
    if k > 0 && indices[k-1] >= i {
      return IntervalList[T]{}, errors.Wrapf(ErrInvalidParameter, "indices are not strictly increasing at position `%d'", k)
    }
    r[k] = l.position(i)
  }
  return IntervalList[T]{arena: l.arena, length: len(r), indices: r}, nil
}

/* range queries
 * -------------------------------------------------------------------------- */

// Index of the first element that ends after position. Requires
// non-overlapping elements, i.e. end positions must be ordered.
func (l IntervalList[T]) Search(position int) int {
  return sort.Search(l.length, func(i int) bool {
    return l.At(i).GetRange().To > position
  })
}

// Contiguous sub-list of all elements overlapping [from, to). Requires
// non-overlapping elements.
func (l IntervalList[T]) Window(from, to int) IntervalList[T] {
  i := l.Search(from)
  j := i + sort.Search(l.length-i, func(k int) bool {
    return l.At(i+k).GetRange().From >= to
  })
  r, _ := l.Slice(i, j)
  return r
}
