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

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "bufio"
import "fmt"
import "io"
import "sync"

/* -------------------------------------------------------------------------- */

type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

// A progress line for n steps that is updated every n/k steps.
func New(n, k int) Progress {
  progress := Progress{n, 1, 40}
  if k > 0 && k <= n {
    progress.K = n/k
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  // carriage return
  fmt.Fprintf(writer, "%s|", __line_del__)

  for i := 1; i < progress.LineWidth-1; i++ {
    if float64(i)/float64(progress.LineWidth) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%%", p*100)
  // add newline if finished
  if p == 1.0 {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (progress Progress) Print(writer io.Writer, i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(writer, progress.Exec(i))
  }
}

/* -------------------------------------------------------------------------- */

// Bar prints one progress line per task. It receives start, step and done
// events of parallel container builds.
type Bar struct {
  Writer   io.Writer
  // number of updates per task
  Updates  int
  mtx      sync.Mutex
  progress Progress
}

func NewBar(writer io.Writer) *Bar {
  return &Bar{Writer: writer, Updates: 100}
}

func (bar *Bar) Start(task string, n int) {
  bar.mtx.Lock()
  defer bar.mtx.Unlock()
  bar.progress = New(n, bar.Updates)
  fmt.Fprintf(bar.Writer, "%s\n", task)
  if n > 0 {
    bar.progress.Print(bar.Writer, 0)
  }
}

func (bar *Bar) Step(task string, k, n int) {
  bar.mtx.Lock()
  defer bar.mtx.Unlock()
  bar.progress.Print(bar.Writer, k)
}

func (bar *Bar) Done(task string) {
}
