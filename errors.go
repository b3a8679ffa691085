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

// Construction errors, raised by list builders for a single chromosome.
var (
  ErrOutOfOrder      = errors.New("interval is out of order")
  ErrOverlap         = errors.New("interval overlaps its predecessor")
  ErrAlreadyBuilt    = errors.New("builder has already been built")
  ErrInvalidInterval = errors.New("invalid interval")
)

// Consistency errors, raised while assembling containers.
var (
  ErrInconsistentBinSize = errors.New("inconsistent bin size")
)

// Conversion errors, raised before any conversion work starts.
var (
  ErrUnsupportedConversion = errors.New("unsupported conversion")
  ErrInvalidParameter      = errors.New("invalid parameter")
)

/* -------------------------------------------------------------------------- */

// ChromosomeError reports the chromosome whose task failed while a
// container was built in parallel.
type ChromosomeError struct {
  Index   int
  Seqname string
  Err     error
}

func (err *ChromosomeError) Error() string {
  return fmt.Sprintf("chromosome `%s' (%d): %v", err.Seqname, err.Index, err.Err)
}

func (err *ChromosomeError) Unwrap() error {
  return err.Err
}
