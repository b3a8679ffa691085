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

import "math"
import "strings"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

/* -------------------------------------------------------------------------- */

// Policy for combining several scores into a single bin or pyramid cell.
// The zero value means that no method was selected.
type AggregationMethod int

const (
  Average AggregationMethod = iota+1
  Sum
  Maximum
)

/* -------------------------------------------------------------------------- */

func ParseAggregationMethod(str string) (AggregationMethod, error) {
  switch strings.ToLower(str) {
  case "average", "mean":
    return Average, nil
  case "sum":
    return Sum, nil
  case "maximum", "max":
    return Maximum, nil
  }
  return 0, errors.Wrapf(ErrInvalidParameter, "invalid aggregation method `%s'", str)
}

func (m AggregationMethod) Valid() bool {
  return m == Average || m == Sum || m == Maximum
}

func (m AggregationMethod) String() string {
  switch m {
  case Average:
    return "average"
  case Sum:
    return "sum"
  case Maximum:
    return "maximum"
  }
  return "none"
}

func (m *AggregationMethod) UnmarshalYAML(value *yaml.Node) error {
  var str string
  if err := value.Decode(&str); err != nil {
    return err
  }
  if r, err := ParseAggregationMethod(str); err != nil {
    return err
  } else {
    *m = r
  }
  return nil
}

func (m AggregationMethod) MarshalYAML() (interface{}, error) {
  return m.String(), nil
}

/* -------------------------------------------------------------------------- */

// Combine equally weighted values, used to build pyramid levels from base
// bins.
func (m AggregationMethod) reduce(x []float64) float64 {
  if len(x) == 0 {
    return 0.0
  }
  switch m {
  case Average:
    s := 0.0
    for _, v := range x {
      s += v
    }
    return s/float64(len(x))
  case Sum:
    s := 0.0
    for _, v := range x {
      s += v
    }
    return s
  case Maximum:
    r := math.Inf(-1)
    for _, v := range x {
      r = math.Max(r, v)
    }
    return r
  }
  panic("reduce(): invalid aggregation method")
}
