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

import   "errors"
import   "testing"

/* -------------------------------------------------------------------------- */

func newTestWindowList(t *testing.T) WindowList {
  b := NewWindowListBuilder()
  for i := 0; i < 10; i++ {
    if err := b.Add(i*100, i*100+50, float64(i+1)); err != nil {
      t.Fatal(err)
    }
  }
  l, err := b.Build()
  if err != nil {
    t.Fatal(err)
  }
  return l
}

/* -------------------------------------------------------------------------- */

func TestIntervalList1(t *testing.T) {
  l := newTestWindowList(t)

  s, err := l.Slice(2, 5)
  if err != nil {
    t.Error(err)
    return
  }
  if s.Len() != 3 || s.At(0).From != 200 || s.At(2).From != 400 {
    t.Error("TestIntervalList1 failed!")
  }
  // slice of a slice
  if r, _ := s.Slice(1, 2); r.Len() != 1 || r.At(0).Score != 4.0 {
    t.Error("TestIntervalList1 failed!")
  }
  if _, err := l.Slice(5, 11); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestIntervalList1 failed!")
  }
  if _, err := l.Slice(5, 4); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestIntervalList1 failed!")
  }
}

func TestIntervalList2(t *testing.T) {
  l := newTestWindowList(t)

  s, err := l.Subset([]int{1, 3, 8})
  if err != nil {
    t.Error(err)
    return
  }
  if s.Len() != 3 || s.At(0).From != 100 || s.At(1).From != 300 || s.At(2).From != 800 {
    t.Error("TestIntervalList2 failed!")
  }
  // subset of a subset refers to the parent arena
  if r, _ := s.Subset([]int{0, 2}); r.Len() != 2 || r.At(1).Score != 9.0 {
    t.Error("TestIntervalList2 failed!")
  }
  // slices of subsets
  if r, _ := s.Slice(1, 3); r.Len() != 2 || r.At(0).From != 300 {
    t.Error("TestIntervalList2 failed!")
  }
  if _, err := l.Subset([]int{3, 3}); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestIntervalList2 failed!")
  }
  if _, err := l.Subset([]int{4, 2}); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestIntervalList2 failed!")
  }
  if _, err := l.Subset([]int{10}); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestIntervalList2 failed!")
  }
}

func TestIntervalList3(t *testing.T) {
  l := newTestWindowList(t)

  if i := l.Search(0); i != 0 {
    t.Error("TestIntervalList3 failed!")
  }
  // position 50 is behind the first window
  if i := l.Search(50); i != 1 {
    t.Error("TestIntervalList3 failed!")
  }
  if i := l.Search(5000); i != l.Len() {
    t.Error("TestIntervalList3 failed!")
  }
  w := l.Window(120, 320)
  if w.Len() != 3 || w.At(0).From != 100 || w.At(2).From != 300 {
    t.Error("TestIntervalList3 failed!")
  }
  // gap between two windows
  if w := l.Window(60, 90); w.Len() != 0 {
    t.Error("TestIntervalList3 failed!")
  }
}

func TestIntervalList4(t *testing.T) {
  l := newTestWindowList(t)
  n := 0
  for i := range l.All() {
    if i == 3 {
      break
    }
    n++
  }
  if n != 3 {
    t.Error("TestIntervalList4 failed!")
  }
  defer func() {
    if recover() == nil {
      t.Error("TestIntervalList4 failed!")
    }
  }()
  l.At(l.Len())
}
