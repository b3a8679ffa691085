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
import "fmt"
import "math"

import "github.com/pkg/errors"

/* targets
 * -------------------------------------------------------------------------- */

func toBins(ctx context.Context, pool *WorkPool, genome Genome, src intervalSource, parameters ConversionParameters) (*BinContainer, error) {
  return buildBinContainer(ctx, pool, genome, parameters.BinSize, parameters.Method, parameters.PyramidFactors, src.has,
    func(chrom int, builder *BinListBuilder) error {
      return src.yield(chrom, builder.Add)
    })
}

func toWindows(ctx context.Context, pool *WorkPool, genome Genome, src intervalSource) (*WindowContainer, error) {
  return BuildWindowContainer(ctx, pool, genome, func(chrom int, builder *WindowListBuilder) error {
    return src.yield(chrom, func(from, to int, score float64) error {
      if math.IsNaN(score) {
        return nil
      }
      return builder.Add(from, to, score)
    })
  })
}

func toMask(ctx context.Context, pool *WorkPool, genome Genome, src intervalSource) (*MaskContainer, error) {
  return BuildMaskContainer(ctx, pool, genome, func(chrom int, builder *MaskBuilder) error {
    return src.yield(chrom, func(from, to int, score float64) error {
      if isEmptyScore(score) {
        return nil
      }
      return builder.Add(from, to)
    })
  })
}

// One gene per source interval with a single exon spanning the body.
func toGenes(ctx context.Context, pool *WorkPool, genome Genome, src intervalSource, parameters ConversionParameters) (*GeneContainer, error) {
  return BuildGeneContainer(ctx, pool, genome, parameters.Precision, parameters.SearchURL, func(chrom int, builder *GeneListBuilder) error {
    seqname := genome.Seqnames[chrom]
    return src.yield(chrom, func(from, to int, score float64) error {
      name := fmt.Sprintf("%s:%d-%d", seqname, from, to)
      return builder.Add(name, '+', from, to, score, []ScoredWindow{{Range{from, to}, score}})
    })
  })
}

/* -------------------------------------------------------------------------- */

func overlapCombiner(method AggregationMethod) func([]float64) float64 {
  if method == 0 {
    method = Maximum
  }
  return method.reduce
}

func maskCombiner([]float64) float64 {
  return MaskScore
}

func unsupportedSource(src Container) error {
  return errors.Wrapf(ErrUnsupportedConversion, "source of shape %s has unknown type %T", src.GetShape(), src)
}

/* windows
 * -------------------------------------------------------------------------- */

func convertWindowsToBins(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*WindowContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toBins(ctx, pool, c.GetGenome(), windowsSource(c), parameters)
}

func convertWindowsToGenes(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*WindowContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toGenes(ctx, pool, c.GetGenome(), windowsSource(c), parameters)
}

func convertWindowsToMask(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*WindowContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toMask(ctx, pool, c.GetGenome(), windowsSource(c))
}

/* bins
 * -------------------------------------------------------------------------- */

func convertBinsToBins(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*BinContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  if parameters.BinSize == c.GetBinSize() && parameters.Method == c.GetMethod() {
    // each source bin maps onto exactly one target bin
    if err := ctx.Err(); err != nil {
      return nil, err
    }
    genome := c.GetGenome()
    data   := make([]*BinList, len(c.data))
    for i, l := range c.data {
      if l != nil {
        r := resizeBinList(*l, genome.Lengths[i])
        data[i] = &r
      }
    }
    return NewBinContainer(genome, c.GetBinSize(), parameters.Method, data, parameters.PyramidFactors)
  }
  return toBins(ctx, pool, c.GetGenome(), binsSignalSource(c), parameters)
}

// Copy of a bin list sized the way BinListBuilder sizes lists, i.e. to
// cover seqLength or, if seqLength is zero, up to the last non-empty bin.
// NaN bins become zero.
func resizeBinList(l BinList, seqLength int) BinList {
  n := l.Len()
  if seqLength > 0 {
    n = divIntUp(seqLength, l.GetBinSize())
  } else {
    for n > 0 && isEmptyScore(l.Score(n-1)) {
      n--
    }
  }
  scores := make([]float64, n)
  for i := 0; i < n && i < l.Len(); i++ {
    if s := l.Score(i); !math.IsNaN(s) {
      scores[i] = s
    }
  }
  return newBinList(l.GetBinSize(), scores)
}

func convertBinsToWindows(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*BinContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toWindows(ctx, pool, c.GetGenome(), binsSource(c))
}

func convertBinsToGenes(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*BinContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toGenes(ctx, pool, c.GetGenome(), binsSource(c), parameters)
}

func convertBinsToMask(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*BinContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toMask(ctx, pool, c.GetGenome(), binsSource(c))
}

/* genes
 * -------------------------------------------------------------------------- */

func convertGenesToWindows(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*GeneContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toWindows(ctx, pool, c.GetGenome(), flatten(genesSource(c), overlapCombiner(parameters.Method)))
}

// Gene bodies are binned directly, the bin builder accepts overlapping
// intervals.
func convertGenesToBins(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*GeneContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toBins(ctx, pool, c.GetGenome(), genesSource(c), parameters)
}

func convertGenesToMask(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*GeneContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toMask(ctx, pool, c.GetGenome(), flatten(genesSource(c), maskCombiner))
}

/* mask
 * -------------------------------------------------------------------------- */

func convertMaskToWindows(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*MaskContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toWindows(ctx, pool, c.GetGenome(), maskSource(c))
}

func convertMaskToBins(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*MaskContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toBins(ctx, pool, c.GetGenome(), maskSource(c), parameters)
}

func convertMaskToGenes(ctx context.Context, pool *WorkPool, src Container, parameters ConversionParameters) (Container, error) {
  c, ok := src.(*MaskContainer)
  if !ok {
    return nil, unsupportedSource(src)
  }
  return toGenes(ctx, pool, c.GetGenome(), maskSource(c), parameters)
}
