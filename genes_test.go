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
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGene1(t *testing.T) {
  exons := []ScoredWindow{
    NewScoredWindow(100, 200, 2.0),
    NewScoredWindow(300, 400, 4.0) }
  g, err := NewGene("gene1", '+', 100, 500, math.NaN(), exons)
  if err != nil {
    t.Error(err)
    return
  }
  if g.HasScore() || g.Exons.Len() != 2 {
    t.Error("TestGene1 failed!")
  }
  if g.DerivedScore() != 3.0 {
    t.Error("TestGene1 failed!")
  }
  // exon-length weighted
  g, _ = NewGene("gene2", '-', 0, 1000, math.NaN(), []ScoredWindow{
    NewScoredWindow(  0, 300, 1.0),
    NewScoredWindow(500, 600, 5.0),
    NewScoredWindow(700, 800, math.NaN()) })
  if g.DerivedScore() != 2.0 {
    t.Error("TestGene1 failed!")
  }
  g, _ = NewGene("gene3", '*', 0, 10, 7.0, nil)
  if !g.HasScore() || g.DerivedScore() != 7.0 {
    t.Error("TestGene1 failed!")
  }
  g, _ = NewGene("gene4", '*', 0, 10, math.NaN(), nil)
  if g.DerivedScore() != MaskScore {
    t.Error("TestGene1 failed!")
  }
}

func TestGene2(t *testing.T) {
  if _, err := NewGene("gene", '+', 100, 100, 1.0, nil); !errors.Is(err, ErrInvalidInterval) {
    t.Error("TestGene2 failed!")
  }
  if _, err := NewGene("gene", 'x', 100, 200, 1.0, nil); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestGene2 failed!")
  }
  if _, err := NewGene("gene", '+', 100, 200, 1.0, []ScoredWindow{NewScoredWindow(50, 150, 1.0)}); !errors.Is(err, ErrInvalidInterval) {
    t.Error("TestGene2 failed!")
  }
  if _, err := NewGene("gene", '+', 100, 200, 1.0, []ScoredWindow{
    NewScoredWindow(100, 150, 1.0),
    NewScoredWindow(140, 160, 1.0) }); !errors.Is(err, ErrOverlap) {
    t.Error("TestGene2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestGeneList1(t *testing.T) {
  b := NewGeneListBuilder()
  b.Add("a", '+',   0, 1000, 1.0, nil)
  b.Add("b", '+', 100,  200, 1.0, nil)
  b.Add("c", '-', 150,  500, 1.0, nil)
  b.Add("d", '+', 600,  700, 1.0, nil)
  if err := b.Add("e", '+', 50, 60, 1.0, nil); !errors.Is(err, ErrOutOfOrder) {
    t.Error("TestGeneList1 failed!")
  }
  l, err := b.Build()
  if err != nil {
    t.Error(err)
    return
  }
  if _, err := b.Build(); !errors.Is(err, ErrAlreadyBuilt) {
    t.Error("TestGeneList1 failed!")
  }
  check := func(from, to int, r []int) {
    s := l.Overlapping(from, to)
    if len(s) != len(r) {
      t.Errorf("TestGeneList1 failed for [%d %d): %v", from, to, s)
      return
    }
    for i := range r {
      if s[i] != r[i] {
        t.Errorf("TestGeneList1 failed for [%d %d): %v", from, to, s)
      }
    }
  }
  check(180,  190, []int{0, 1, 2})
  check(200,  300, []int{0, 2})
  check(500,  600, []int{0})
  check(650, 2000, []int{0, 3})
  check(1000, 2000, []int{})
}

func TestGeneList2(t *testing.T) {
  // range queries on overlapping gene bodies
  b := NewGeneListBuilder()
  b.Add("a", '+',   0,  100, 1.0, nil)
  b.Add("b", '+',  50,  500, 1.0, nil)
  b.Add("c", '-', 120,  130, 1.0, nil)
  b.Add("d", '+', 200,  300, 1.0, nil)
  l, err := b.Build()
  if err != nil {
    t.Error(err)
    return
  }
  for position, r := range map[int]int{0: 0, 99: 0, 100: 1, 140: 1, 499: 1, 500: 4} {
    if i := l.Search(position); i != r {
      t.Errorf("TestGeneList2 failed for position %d: %d", position, i)
    }
  }
  check := func(from, to int, r []string) {
    w := l.Window(from, to)
    if w.Len() != len(r) {
      t.Errorf("TestGeneList2 failed for [%d %d): %d genes", from, to, w.Len())
      return
    }
    for i := range r {
      if w.At(i).Name != r[i] {
        t.Errorf("TestGeneList2 failed for [%d %d)", from, to)
      }
    }
  }
  check(140,  150, []string{"b"})
  check(125,  250, []string{"b", "c", "d"})
  check( 90,  125, []string{"a", "b", "c"})
  check(350, 1000, []string{"b"})
  check(500, 1000, []string{})
}

func TestGeneContainer1(t *testing.T) {
  genome := NewGenome([]string{"chr1", "chr2", "chr3"}, []int{1000, 1000, 1000})
  pool   := NewWorkPool(2)
  defer pool.Close()
  c, err := BuildGeneContainer(context.Background(), pool, genome, Precision16Bit, "https://example.org/?q=",
    func(chrom int, b *GeneListBuilder) error {
      if chrom == 1 {
        return nil
      }
      for i := 0; i < 3; i++ {
        name := genome.Seqnames[chrom] + "-" + string(rune('a'+i))
        if err := b.Add(name, '+', 100*i, 100*i+150, float64(i), nil); err != nil {
          return err
        }
      }
      return nil
    })
  if err != nil {
    t.Error(err)
    return
  }
  if c.GetPrecision() != Precision16Bit || c.GetSearchURL() != "https://example.org/?q=" {
    t.Error("TestGeneContainer1 failed!")
  }
  if c.Has(1) || c.Size(0) != 3 || c.Size(2) != 3 {
    t.Error("TestGeneContainer1 failed!")
  }
  if chrom, i, ok := c.FindGene("chr3-b"); !ok || chrom != 2 || i != 1 {
    t.Error("TestGeneContainer1 failed!")
  }
  if _, _, ok := c.FindGene("chr2-a"); ok {
    t.Error("TestGeneContainer1 failed!")
  }
  if r := c.Overlapping(0, 120, 130); len(r) != 2 || r[0] != 0 || r[1] != 1 {
    t.Error("TestGeneContainer1 failed!")
  }
  if r := c.Overlapping(1, 0, 1000); len(r) != 0 {
    t.Error("TestGeneContainer1 failed!")
  }
  if c.At(2, 2).Name != "chr3-c" {
    t.Error("TestGeneContainer1 failed!")
  }
}
