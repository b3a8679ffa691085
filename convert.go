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

import "context"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

type ConversionParameters struct {
  // bin targets only
  BinSize        int
  // bin targets; genes to windows or mask conversions use it to combine
  // overlapping gene bodies (maximum if not set)
  Method         AggregationMethod
  // pyramid factors of bin targets, nil selects DefaultPyramidFactors
  PyramidFactors []int
  // gene targets only
  Precision      ScorePrecision
  SearchURL      string
}

/* -------------------------------------------------------------------------- */

type conversionKey struct {
  source Shape
  target Shape
}

type converter func(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error)

var converters = map[conversionKey]converter{
  {ShapeWindows, ShapeBins   }: convertWindowsToBins,
  {ShapeWindows, ShapeGenes  }: convertWindowsToGenes,
  {ShapeWindows, ShapeMask   }: convertWindowsToMask,
  {ShapeBins,    ShapeBins   }: convertBinsToBins,
  {ShapeBins,    ShapeWindows}: convertBinsToWindows,
  {ShapeBins,    ShapeGenes  }: convertBinsToGenes,
  {ShapeBins,    ShapeMask   }: convertBinsToMask,
  {ShapeGenes,   ShapeWindows}: convertGenesToWindows,
  {ShapeGenes,   ShapeBins   }: convertGenesToBins,
  {ShapeGenes,   ShapeMask   }: convertGenesToMask,
  {ShapeMask,    ShapeWindows}: convertMaskToWindows,
  {ShapeMask,    ShapeBins   }: convertMaskToBins,
  {ShapeMask,    ShapeGenes  }: convertMaskToGenes,
}

/* -------------------------------------------------------------------------- */

func checkConversionParameters(key conversionKey, parameters ConversionParameters) error {
  switch key.target {
  case ShapeBins:
    factors := parameters.PyramidFactors
    if factors == nil {
      factors = DefaultPyramidFactors
    }
    return checkBinParameters(parameters.BinSize, parameters.Method, factors)
  default:
    if parameters.Method != 0 && !parameters.Method.Valid() {
      return errors.Wrapf(ErrInvalidParameter, "invalid aggregation method `%d'", parameters.Method)
    }
  }
  return nil
}

// Convert a container into a new container of the target shape. The source
// is not modified. Parameters are validated before any work is started,
// chromosomes are converted in parallel on the given pool.
func Convert(ctx context.Context, pool *WorkPool, src Container, target Shape, parameters ConversionParameters) (Container, error) {
  if src == nil {
    return nil, errors.Wrap(ErrInvalidParameter, "source container is missing")
  }
  key := conversionKey{src.GetShape(), target}
  f, ok := converters[key]
  if !ok {
    return nil, errors.Wrapf(ErrUnsupportedConversion, "cannot convert %s to %s", key.source, key.target)
  }
  if err := checkConversionParameters(key, parameters); err != nil {
    return nil, err
  }
  if r, err := f(ctx, pool, src, parameters); err != nil {
    return nil, err
  } else {
    return r, nil
  }
}

// Conversions supported by Convert for a given source shape.
func ConversionTargets(source Shape) []Shape {
  r := []Shape{}
  for _, target := range []Shape{ShapeWindows, ShapeBins, ShapeGenes, ShapeMask} {
    if _, ok := converters[conversionKey{source, target}]; ok {
      r = append(r, target)
    }
  }
  return r
}
