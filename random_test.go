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

import   "context"
import   "errors"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestRandomWindows1(t *testing.T) {
  genome := NewGenome([]string{"chr1", "chr2", "chr3"}, []int{100000, 50000, 1000})
  pool   := NewWorkPool(2)
  defer pool.Close()
  c1, err := RandomWindows(context.Background(), pool, genome, 1000, 100, 13)
  if err != nil {
    t.Error(err)
    return
  }
  c2, _ := RandomWindows(context.Background(), pool, genome, 1000, 100, 13)

  n := 0
  for chrom := 0; chrom < genome.Length(); chrom++ {
    l, ok := c1.Get(chrom)
    if !ok {
      continue
    }
    n += l.Len()
    for i, w := range l.All() {
      if w.From < 0 || w.To > genome.Lengths[chrom] || w.Score < 1 || w.Score > 10 {
        t.Error("TestRandomWindows1 failed!")
      }
      if i > 0 && l.At(i-1).To > w.From {
        t.Error("TestRandomWindows1 failed!")
      }
      if w != c2.At(chrom, i) {
        t.Error("TestRandomWindows1 failed!")
      }
    }
  }
  if n == 0 || n > 1000 {
    t.Error("TestRandomWindows1 failed!")
  }
}

func TestRandomWindows2(t *testing.T) {
  genome := NewGenome([]string{"chr1"}, []int{10})
  pool   := NewWorkPool(1)
  defer pool.Close()
  if _, err := RandomWindows(context.Background(), pool, genome, 10, 100, 1); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestRandomWindows2 failed!")
  }
}
