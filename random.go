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
import "math/rand"
import "sort"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Draws random positions on a genome, each chromosome is weighted by its
// length.
type GenomeRng struct {
  Weights []float64
  Genome  Genome
  rng     *rand.Rand
}

func NewGenomeRng(genome Genome, seed int64) GenomeRng {
  weights := make([]float64, genome.Length())
  sum     := 0.0
  for i := 0; i < genome.Length(); i++ {
    weights[i] = float64(genome.Lengths[i])
    sum       += weights[i]
  }
  // compute cumulative probabilities
  for i := 1; i < genome.Length(); i++ {
    weights[i] += weights[i-1]
  }
  for i := range weights {
    weights[i] /= sum
  }
  return GenomeRng{weights, genome, rand.New(rand.NewSource(seed))}
}

// Draw a chromosome and a start position such that a window of size wsize
// fits on the chromosome.
func (rng GenomeRng) Draw(wsize int) (int, int, error) {
  p := rng.rng.Float64()
  k := sort.Search(len(rng.Weights), func(i int) bool { return p < rng.Weights[i] })
  if k == len(rng.Weights) {
    k = len(rng.Weights)-1
  }
  if rng.Genome.Lengths[k] - wsize < 0 {
    return 0, 0, errors.Wrapf(ErrInvalidParameter, "window size `%d' is too large for chromosome `%s'", wsize, rng.Genome.Seqnames[k])
  }
  return k, rng.rng.Intn(rng.Genome.Lengths[k] - wsize + 1), nil
}

/* -------------------------------------------------------------------------- */

// Generate up to n random windows of size wsize with integer scores
// between 1 and 10. Windows overlapping an earlier drawn window on the same
// chromosome are dropped. The result only depends on the seed.
func RandomWindows(ctx context.Context, pool *WorkPool, genome Genome, n, wsize int, seed int64) (*WindowContainer, error) {
  if wsize <= 0 || n < 0 {
    return nil, errors.Wrapf(ErrInvalidParameter, "invalid window parameters n=%d wsize=%d", n, wsize)
  }
  if genome.Length() == 0 {
    return nil, errors.Wrap(ErrInvalidParameter, "genome is empty")
  }
  rng     := NewGenomeRng(genome, seed)
  windows := make([][]ScoredWindow, genome.Length())
  for i := 0; i < n; i++ {
    chrom, position, err := rng.Draw(wsize)
    if err != nil {
      return nil, err
    }
    score := float64(1 + rng.rng.Intn(10))
    windows[chrom] = append(windows[chrom], ScoredWindow{Range{position, position+wsize}, score})
  }
  return BuildWindowContainer(ctx, pool, genome, func(chrom int, builder *WindowListBuilder) error {
    w := windows[chrom]
    sort.SliceStable(w, func(i, j int) bool { return w[i].From < w[j].From })
    last := -1
    for _, r := range w {
      if r.From < last {
        continue
      }
      if err := builder.AddWindow(r); err != nil {
        return err
      }
      last = r.To
    }
    return nil
  })
}
