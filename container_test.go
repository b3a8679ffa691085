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
import   "math"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestRange1(t *testing.T) {
  r := NewRange(10, 20)
  if !r.Overlaps(NewRange(19, 30)) || r.Overlaps(NewRange(20, 30)) {
    t.Error("TestRange1 failed!")
  }
  if !r.Contains(NewRange(10, 20)) || r.Contains(NewRange(5, 15)) {
    t.Error("TestRange1 failed!")
  }
  if s := r.Intersection(NewRange(15, 40)); s != NewRange(15, 20) {
    t.Error("TestRange1 failed!")
  }
  if s := r.Intersection(NewRange(30, 40)); s.Length() != 0 {
    t.Error("TestRange1 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestWindowContainer1(t *testing.T) {
  genome := NewGenome([]string{"chr1", "chr2"}, []int{1000, 1000})
  l, _   := NewWindowList([]ScoredWindow{
    NewScoredWindow( 10,  20, 1.5),
    NewScoredWindow(100, 200, 2.5) })

  if _, err := NewWindowContainer(genome, []*WindowList{&l}); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestWindowContainer1 failed!")
  }
  c, err := NewWindowContainer(genome, []*WindowList{nil, &l})
  if err != nil {
    t.Error(err)
    return
  }
  if c.ScoreAt(1, 150) != 2.5 || c.ScoreAt(1, 50) != 0 || c.ScoreAt(0, 150) != 0 {
    t.Error("TestWindowContainer1 failed!")
  }
  if r, err := c.GetBySeqname("chr2"); err != nil || r.Len() != 2 {
    t.Error("TestWindowContainer1 failed!")
  }
  if _, err := c.GetBySeqname("chr1"); err == nil {
    t.Error("TestWindowContainer1 failed!")
  }
  s := c.String()
  if !strings.Contains(s, "seqnames") || !strings.Contains(s, "[100 200)") || !strings.Contains(s, "2.5") {
    t.Error("TestWindowContainer1 failed!")
  }
}

func TestMaskContainer1(t *testing.T) {
  genome := NewGenome([]string{"chr1"}, []int{1000})
  l1, _  := NewWindowList([]ScoredWindow{NewScoredWindow(10, 20, MaskScore)})
  l2, _  := NewWindowList([]ScoredWindow{NewScoredWindow(10, 20, 2.0)})

  if _, err := NewMaskContainer(genome, []*WindowList{&l2}); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestMaskContainer1 failed!")
  }
  c, err := NewMaskContainer(genome, []*WindowList{&l1})
  if err != nil {
    t.Error(err)
    return
  }
  if c.GetShape() != ShapeMask || !c.Contains(0, 15) || c.Contains(0, 20) {
    t.Error("TestMaskContainer1 failed!")
  }
}

func TestGeneContainer2(t *testing.T) {
  genome := NewGenome([]string{"chr1"}, []int{1000})
  b := NewGeneListBuilder()
  b.Add("a", '+', 10, 20, math.NaN(), nil)
  b.Add("a", '-', 30, 40, 1.0, nil)
  l, _ := b.Build()

  if _, err := NewGeneContainer(genome, []*GeneList{}, Precision32Bit, ""); !errors.Is(err, ErrInvalidParameter) {
    t.Error("TestGeneContainer2 failed!")
  }
  c, err := NewGeneContainer(genome, []*GeneList{&l}, Precision32Bit, "")
  if err != nil {
    t.Error(err)
    return
  }
  // the last gene wins for duplicate names
  if _, i, ok := c.FindGene("a"); !ok || i != 1 {
    t.Error("TestGeneContainer2 failed!")
  }
  if s := c.String(); !strings.Contains(s, "names") || !strings.Contains(s, "[30 40)") {
    t.Error("TestGeneContainer2 failed!")
  }
}

func TestPretty1(t *testing.T) {
  genome := NewGenome([]string{"chr1", "chr2"}, []int{100000, 100000})
  l1, _  := NewBinList(10, make([]float64, 30))
  l2, _  := NewBinList(10, make([]float64, 30))
  c,  _  := NewBinContainer(genome, 10, Sum, []*BinList{&l1, &l2}, nil)

  s     := c.String()
  lines := strings.Split(strings.TrimSpace(s), "\n")
  // parameters, header, 5 + 5 rows and the ellipsis
  if len(lines) != 13 || !strings.Contains(lines[7], "...") {
    t.Errorf("TestPretty1 failed: %s", s)
  }
  if !strings.Contains(lines[len(lines)-1], "chr2") || !strings.Contains(lines[len(lines)-1], "60") {
    t.Errorf("TestPretty1 failed: %s", s)
  }
}
