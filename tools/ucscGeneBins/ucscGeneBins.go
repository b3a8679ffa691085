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

func ucscGeneBins(config Config, filenameGenome, assembly, table string, resolution int, showProgress bool) {
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
  PrintStderr(config, 1, "Importing table `%s' of assembly `%s'... ", table, assembly)
  genes, err := ImportGenesFromUCSC(ctx, pool, genome, assembly, table)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  if config.Verbose >= 2 {
    fmt.Fprintln(os.Stderr, genes)
  }
  r, err := Convert(ctx, pool, genes, ShapeBins, config.ConversionParameters())
  if err != nil {
    log.Fatal(err)
  }
  bins := r.(*BinContainer)

  for level := 0; level < bins.Levels(); level++ {
    if p, err := bins.Pyramid(level); err != nil {
      log.Fatal(err)
    } else {
      PrintStderr(config, 1, "pyramid level %d: bin size %d\n", level, p.GetBinSize())
    }
  }
  if resolution > 0 {
    fmt.Println(bins.Resolution(resolution))
  } else {
    fmt.Println(bins)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optConfig     := options. StringLong("config",      'c', "",  "read configuration from a YAML file")
  optThreads    := options.    IntLong("threads",     't',  0,  "number of threads")
  optBinSize    := options.    IntLong("bin-size",      0,  0,  "bin size")
  optMethod     := options. StringLong("method",        0, "",  "aggregation method (average, sum [default] or maximum)")
  optResolution := options.    IntLong("resolution",    0,  0,  "print bins at the given number of bases per pixel")
  optProgress   := options.   BoolLong("progress",      0,      "show progress bars")
  optVerbose    := options.CounterLong("verbose",     'v',      "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",        'h',      "print help")

  options.SetParameters("<genome.txt> <assembly> <table>")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config := DefaultConfig()
  config.Method = Sum
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
  ucscGeneBins(config, options.Args()[0], options.Args()[1], options.Args()[2], *optResolution, *optProgress)
}
