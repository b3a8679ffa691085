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

import "sort"

/* -------------------------------------------------------------------------- */

// An intervalSource enumerates the scored intervals of one chromosome of a
// source container in order of their start positions.
type intervalSource struct {
  has   func(chrom int) bool
  yield func(chrom int, f func(from, to int, score float64) error) error
  // true if intervals may overlap
  overlapping bool
}

/* -------------------------------------------------------------------------- */

func windowsSource(c *WindowContainer) intervalSource {
  return intervalSource{
    has  : c.Has,
    yield: func(chrom int, f func(int, int, float64) error) error {
      l, ok := c.Get(chrom)
      if !ok {
        return nil
      }
      for _, w := range l.All() {
        if err := f(w.From, w.To, w.Score); err != nil {
          return err
        }
      }
      return nil
    } }
}

// Bins with zero or NaN score are skipped. With a known sequence length
// the last bin is clipped to the end of the chromosome.
func binsSource(c *BinContainer) intervalSource {
  return intervalSource{
    has  : c.Has,
    yield: func(chrom int, f func(int, int, float64) error) error {
      l, ok := c.Get(chrom)
      if !ok {
        return nil
      }
      seqLength := c.GetGenome().Lengths[chrom]
      for i := 0; i < l.Len(); i++ {
        from := (i+0)*l.GetBinSize()
        to   := (i+1)*l.GetBinSize()
        if seqLength > 0 {
          if from >= seqLength {
            break
          }
          to = iMin(to, seqLength)
        }
        if s := l.Score(i); !isEmptyScore(s) {
          if err := f(from, to, s); err != nil {
            return err
          }
        }
      }
      return nil
    } }
}

// Bins as a per-position signal for re-binning. Sum bins hold the mass of
// the whole bin and are spread evenly over its positions.
func binsSignalSource(c *BinContainer) intervalSource {
  src := binsSource(c)
  if c.GetMethod() != Sum {
    return src
  }
  yield := src.yield
  src.yield = func(chrom int, f func(int, int, float64) error) error {
    return yield(chrom, func(from, to int, score float64) error {
      return f(from, to, score/float64(to-from))
    })
  }
  return src
}

func maskSource(c *MaskContainer) intervalSource {
  return windowsSource(&c.WindowContainer)
}

// Gene bodies with their derived scores, bodies may overlap.
func genesSource(c *GeneContainer) intervalSource {
  return intervalSource{
    has  : c.Has,
    yield: func(chrom int, f func(int, int, float64) error) error {
      l, ok := c.Get(chrom)
      if !ok {
        return nil
      }
      for _, g := range l.All() {
        if err := f(g.From, g.To, g.DerivedScore()); err != nil {
          return err
        }
      }
      return nil
    },
    overlapping: true }
}

/* flattening
 * -------------------------------------------------------------------------- */

type sweepEvent struct {
  position int
  score    float64
  open     bool
}

// Resolve overlapping intervals into disjoint segments. Each maximal
// segment covered by the same set of intervals is reported once with the
// scores of the covering intervals combined by f. Intervals with zero or
// NaN score are ignored.
func flatten(src intervalSource, combine func([]float64) float64) intervalSource {
  if !src.overlapping {
    return src
  }
  return intervalSource{
    has  : src.has,
    yield: func(chrom int, f func(int, int, float64) error) error {
      events := []sweepEvent{}
      if err := src.yield(chrom, func(from, to int, score float64) error {
        if !isEmptyScore(score) {
          events = append(events, sweepEvent{from, score, true}, sweepEvent{to, score, false})
        }
        return nil
      }); err != nil {
        return err
      }
      sort.SliceStable(events, func(i, j int) bool {
        return events[i].position < events[j].position
      })
      active := []float64{}
      for k := 0; k < len(events); {
        p := events[k].position
        for ; k < len(events) && events[k].position == p; k++ {
          if events[k].open {
            active = append(active, events[k].score)
          } else {
            active = removeScore(active, events[k].score)
          }
        }
        if len(active) > 0 && k < len(events) {
          if err := f(p, events[k].position, combine(active)); err != nil {
            return err
          }
        }
      }
      return nil
    } }
}

func removeScore(x []float64, score float64) []float64 {
  for i := range x {
    if x[i] == score {
      x[i] = x[len(x)-1]
      return x[:len(x)-1]
    }
  }
  return x
}
