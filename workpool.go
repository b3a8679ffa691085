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
import "io"
import "os"
import "runtime"
import "sync"

import "github.com/pbenner/threadpool"
import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Receives completion events of parallel container builds. Step is
// called once per finished chromosome with the number of finished
// chromosomes so far.
type ProgressListener interface {
  Start(task string, n int)
  Step (task string, k, n int)
  Done (task string)
}

/* -------------------------------------------------------------------------- */

// A WorkPool runs one job per chromosome on a bounded number of threads.
// The pool is created by the caller and passed to every build or
// conversion.
type WorkPool struct {
  // verbose level, messages are printed to Log
  Verbose  int
  Log      io.Writer
  Progress ProgressListener
  threads  int
  pool     threadpool.ThreadPool
  closed   bool
}

/* constructor
 * -------------------------------------------------------------------------- */

func DefaultPoolSize() int {
  return 2*runtime.NumCPU()
}

// Create a new pool with the given number of threads. A non-positive
// number selects DefaultPoolSize().
func NewWorkPool(threads int) *WorkPool {
  if threads <= 0 {
    threads = DefaultPoolSize()
  }
  return &WorkPool{
    Log    : os.Stderr,
    threads: threads,
    pool   : threadpool.New(threads, 100*threads) }
}

/* -------------------------------------------------------------------------- */

func (p *WorkPool) Threads() int {
  return p.threads
}

// Stop the worker threads. The pool cannot be used afterwards, Close must
// not be called while a build is running.
func (p *WorkPool) Close() {
  if p.closed {
    return
  }
  p.closed = true
  p.pool.Stop()
}

func (p *WorkPool) printStderr(level int, format string, args ...interface{}) {
  if p.Verbose >= level && p.Log != nil {
    fmt.Fprintf(p.Log, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Run f once for every chromosome of the genome and collect the results by
// chromosome ordinal. The first failing chromosome fails the whole
// operation and no partial result is returned. If the context is cancelled,
// chromosomes that have not started are skipped, running ones finish, and
// the result is discarded.
func BuildParallel[T any](ctx context.Context, p *WorkPool, task string, genome Genome, f func(chrom int) (T, error)) ([]T, error) {
  if p == nil {
    return nil, errors.Wrap(ErrInvalidParameter, "work pool is missing")
  }
  if p.closed {
    return nil, errors.Wrap(ErrInvalidParameter, "work pool is closed")
  }
  n      := genome.Length()
  result := make([]T, n)
  // completion counter, guarded by mtx
  mtx    := sync.Mutex{}
  done   := 0

  if p.Progress != nil {
    p.Progress.Start(task, n)
  }
  p.printStderr(1, "%s: processing %d chromosome(s) using %d thread(s)\n", task, n, p.threads)

  g := p.pool.NewJobGroup()
  if err := p.pool.AddRangeJob(0, n, g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    // another chromosome already failed
    if erf() != nil {
      return nil
    }
    if err := ctx.Err(); err != nil {
      return err
    }
    r, err := f(i)
    if err != nil {
      return &ChromosomeError{i, genome.Seqnames[i], err}
    }
    mtx.Lock()
    defer mtx.Unlock()
    result[i] = r
    done++
    p.printStderr(2, "%s: chromosome `%s' done (%d/%d)\n", task, genome.Seqnames[i], done, n)
    if p.Progress != nil {
      p.Progress.Step(task, done, n)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  if err := p.pool.Wait(g); err != nil {
    return nil, err
  }
  if err := ctx.Err(); err != nil {
    return nil, errors.Wrapf(err, "%s", task)
  }
  if p.Progress != nil {
    p.Progress.Done(task)
  }
  return result, nil
}
