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

package main

/* -------------------------------------------------------------------------- */

import   "context"
import   "fmt"
import   "log"
import   "os"
import   "os/signal"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gtracks"
import   "github.com/pbenner/gtracks/lib/progress"

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func parseShapes(str string) ([]Shape, error) {
  r := []Shape{}
  for _, s := range strings.Split(str, ",") {
    if shape, err := ParseShape(strings.TrimSpace(s)); err != nil {
      return nil, err
    } else {
      r = append(r, shape)
    }
  }
  return r, nil
}

func printSummary(config Config, c Container) {
  genome := c.GetGenome()
  n      := 0
  for i := 0; i < c.Len(); i++ {
    if c.Has(i) {
      PrintStderr(config, 2, "  %-10s %10d element(s)\n", genome.Seqnames[i], c.Size(i))
    }
    n += c.Size(i)
  }
  PrintStderr(config, 1, "%s: %d element(s) on %d chromosome(s)\n", c.GetShape(), n, c.Len())
}

/* -------------------------------------------------------------------------- */

func trackConvert(config Config, filenameGenome string, shapes []Shape, n, wsize int, seed int64, showProgress bool) {
  ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
  defer cancel()

  genome, err := ImportGenome(filenameGenome)
  if err != nil {
    log.Fatal(err)
  }
  pool := config.NewWorkPool()
  defer pool.Close()
  if showProgress {
    pool.Progress = progress.NewBar(os.Stderr)
  }
  PrintStderr(config, 1, "Generating %d random windows of size %d... ", n, wsize)
  var c Container
  if r, err := RandomWindows(ctx, pool, genome, n, wsize, seed); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  } else {
    PrintStderr(config, 1, "done\n")
    c = r
  }
  printSummary(config, c)

  for _, shape := range shapes {
    PrintStderr(config, 1, "Converting %s to %s...\n", c.GetShape(), shape)
    if r, err := Convert(ctx, pool, c, shape, config.ConversionParameters()); err != nil {
      log.Fatal(err)
    } else {
      c = r
    }
    printSummary(config, c)
  }
  fmt.Println(c)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optConfig     := options. StringLong("config",      'c', "",     "read configuration from a YAML file")
  optThreads    := options.    IntLong("threads",     't',  0,     "number of threads")
  optBinSize    := options.    IntLong("bin-size",      0,  0,     "bin size of bin targets")
  optMethod     := options. StringLong("method",        0, "",     "aggregation method (average, sum or maximum)")
  optWindows    := options.    IntLong("windows",     'n', 10000,  "number of random windows")
  optWSize      := options.    IntLong("window-size",   0, 100,    "size of random windows")
  optSeed       := options.    IntLong("seed",          0,  1,     "random seed")
  optProgress   := options.   BoolLong("progress",      0,         "show progress bars")
  optVerbose    := options.CounterLong("verbose",     'v',         "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",        'h',         "print help")

  options.SetParameters("<genome.txt> <SHAPE1,SHAPE2,...>")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config := DefaultConfig()
  if *optConfig != "" {
    if c, err := ImportConfig(*optConfig); err != nil {
      log.Fatal(err)
    } else {
      config = c
    }
  }
  if *optVerbose != 0 {
    config.Verbose = *optVerbose
  }
  if *optThreads != 0 {
    config.Threads = *optThreads
  }
  if *optBinSize != 0 {
    config.BinSize = *optBinSize
  }
  if *optMethod != "" {
    if m, err := ParseAggregationMethod(*optMethod); err != nil {
      log.Fatal(err)
    } else {
      config.Method = m
    }
  }
  if err := config.Validate(); err != nil {
    log.Fatal(err)
  }
  shapes, err := parseShapes(options.Args()[1])
  if err != nil {
    log.Fatal(err)
  }
  trackConvert(config, options.Args()[0], shapes, *optWindows, *optWSize, int64(*optSeed), *optProgress)
}
