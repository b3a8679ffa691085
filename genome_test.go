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

import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {
  genome, err := ReadGenome(strings.NewReader("chr1\t1000\n\nchr2 500\nchrX\t250\textra\n"))
  if err != nil {
    t.Error(err)
    return
  }
  if genome.Length() != 3 || genome.Seqnames[2] != "chrX" || genome.Lengths[1] != 500 {
    t.Error("TestGenome1 failed!")
  }
  if i, err := genome.GetIdx("chr2"); err != nil || i != 1 {
    t.Error("TestGenome1 failed!")
  }
  if _, err := genome.GetIdx("chr3"); err == nil {
    t.Error("TestGenome1 failed!")
  }
  if n, _ := genome.SeqLength("chrX"); n != 250 {
    t.Error("TestGenome1 failed!")
  }
  if !genome.Equals(genome.Clone()) {
    t.Error("TestGenome1 failed!")
  }
}

func TestGenome2(t *testing.T) {
  if _, err := ReadGenome(strings.NewReader("chr1\n")); err == nil {
    t.Error("TestGenome2 failed!")
  }
  if _, err := ReadGenome(strings.NewReader("chr1 x\n")); err == nil {
    t.Error("TestGenome2 failed!")
  }
}
