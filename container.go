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

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

type Shape int

const (
  ShapeWindows Shape = iota+1
  ShapeBins
  ShapeGenes
  ShapeMask
)

func (s Shape) String() string {
  switch s {
  case ShapeWindows:
    return "windows"
  case ShapeBins:
    return "bins"
  case ShapeGenes:
    return "genes"
  case ShapeMask:
    return "mask"
  }
  return "unknown"
}

func ParseShape(str string) (Shape, error) {
  switch str {
  case "windows":
    return ShapeWindows, nil
  case "bins":
    return ShapeBins, nil
  case "genes":
    return ShapeGenes, nil
  case "mask":
    return ShapeMask, nil
  }
  return 0, errors.Wrapf(ErrInvalidParameter, "invalid container shape `%s'", str)
}

/* -------------------------------------------------------------------------- */

// A Container holds one immutable interval list per chromosome, indexed
// by the chromosome ordinal of its genome. Slots of chromosomes without
// data are absent. Containers are never modified after construction and
// may be shared by concurrent readers.
type Container interface {
  GetShape () Shape
  GetGenome() Genome
  // number of chromosome slots
  Len()                 int
  Has (chrom int)      bool
  Size(chrom int)       int
}

/* -------------------------------------------------------------------------- */

func checkSlots(genome Genome, n int) error {
  if genome.Length() != n {
    return errors.Wrapf(ErrInvalidParameter, "number of chromosome slots `%d' does not match genome with `%d' chromosome(s)", n, genome.Length())
  }
  return nil
}
