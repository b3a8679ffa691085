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

func TestWindowListBuilder1(t *testing.T) {
  b := NewWindowListBuilder()
  b.Add(  0, 100, 5.0)
  b.Add(100, 200, 5.0)
  b.Add(300, 400, 2.0)

  l, err := b.Build()
  if err != nil {
    t.Error(err)
    return
  }
  if l.Len() != 2 {
    t.Error("TestWindowListBuilder1 failed!")
    return
  }
  if l.At(0) != NewScoredWindow(0, 200, 5.0) || l.At(1) != NewScoredWindow(300, 400, 2.0) {
    t.Error("TestWindowListBuilder1 failed!")
  }
}

func TestWindowListBuilder2(t *testing.T) {
  b := NewWindowListBuilder()
  if err := b.Add(100, 200, 1.0); err != nil {
    t.Error(err)
  }
  if err := b.Add(150, 300, 1.0); !errors.Is(err, ErrOverlap) {
    t.Error("TestWindowListBuilder2 failed!")
  }
  if err := b.Add(50, 60, 1.0); !errors.Is(err, ErrOutOfOrder) {
    t.Error("TestWindowListBuilder2 failed!")
  }
  if err := b.Add(300, 300, 1.0); !errors.Is(err, ErrInvalidInterval) {
    t.Error("TestWindowListBuilder2 failed!")
  }
  if _, err := b.Build(); err != nil {
    t.Error(err)
  }
  if err := b.Add(400, 500, 1.0); !errors.Is(err, ErrAlreadyBuilt) {
    t.Error("TestWindowListBuilder2 failed!")
  }
  if _, err := b.Build(); !errors.Is(err, ErrAlreadyBuilt) {
    t.Error("TestWindowListBuilder2 failed!")
  }
}

func TestWindowListBuilder3(t *testing.T) {
  // zero scores are dropped but still take part in order checks
  b := NewWindowListBuilder()
  b.Add(  0, 100, 0.0)
  b.Add(100, 200, 3.0)
  if err := b.Add(50, 150, 3.0); !errors.Is(err, ErrOutOfOrder) {
    t.Error("TestWindowListBuilder3 failed!")
  }
  if l, _ := b.Build(); l.Len() != 1 || l.At(0).From != 100 {
    t.Error("TestWindowListBuilder3 failed!")
  }
  // exon lists keep zeros
  e := NewExonListBuilder()
  e.Add(  0, 100, 0.0)
  e.Add(200, 300, 1.0)
  if l, _ := e.Build(); l.Len() != 2 {
    t.Error("TestWindowListBuilder3 failed!")
  }
}

func TestWindowListBuilder4(t *testing.T) {
  // adjacent windows with different scores are kept, gaps prevent merging
  l, err := NewWindowList([]ScoredWindow{
    NewScoredWindow(  0, 10, 1.0),
    NewScoredWindow( 10, 20, 2.0),
    NewScoredWindow( 30, 40, 2.0),
    NewScoredWindow( 40, 50, 2.0) })
  if err != nil {
    t.Error(err)
    return
  }
  r := []ScoredWindow{
    NewScoredWindow(  0, 10, 1.0),
    NewScoredWindow( 10, 20, 2.0),
    NewScoredWindow( 30, 50, 2.0) }
  if l.Len() != len(r) {
    t.Error("TestWindowListBuilder4 failed!")
    return
  }
  for i, w := range l.All() {
    if w != r[i] {
      t.Error("TestWindowListBuilder4 failed!")
    }
  }
}
