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

import "io"
import "os"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

/* -------------------------------------------------------------------------- */

// Settings shared by tools and collaborators that build or convert
// containers. Zero values of a configuration file keep the defaults.
type Config struct {
  Threads        int               `yaml:"threads"`
  Verbose        int               `yaml:"verbose"`
  BinSize        int               `yaml:"bin-size"`
  Method         AggregationMethod `yaml:"method"`
  PyramidFactors []int             `yaml:"pyramid-factors"`
  Precision      ScorePrecision    `yaml:"precision"`
  SearchURL      string            `yaml:"search-url"`
}

/* -------------------------------------------------------------------------- */

func DefaultConfig() Config {
  factors := make([]int, len(DefaultPyramidFactors))
  copy(factors, DefaultPyramidFactors)
  return Config{
    Threads       : DefaultPoolSize(),
    BinSize       : 100,
    Method        : Average,
    PyramidFactors: factors,
    Precision     : Precision32Bit }
}

// Read a YAML configuration. Fields that are not present keep their
// default values, an empty input yields DefaultConfig().
func ReadConfig(reader io.Reader) (Config, error) {
  config  := DefaultConfig()
  decoder := yaml.NewDecoder(reader)
  decoder.KnownFields(true)
  if err := decoder.Decode(&config); err != nil && err != io.EOF {
    return Config{}, errors.Wrap(err, "reading configuration failed")
  }
  if err := config.Validate(); err != nil {
    return Config{}, err
  }
  return config, nil
}

func ImportConfig(filename string) (Config, error) {
  f, err := os.Open(filename)
  if err != nil {
    return Config{}, err
  }
  defer f.Close()
  if config, err := ReadConfig(f); err != nil {
    return Config{}, errors.Wrapf(err, "invalid configuration file `%s'", filename)
  } else {
    return config, nil
  }
}

/* -------------------------------------------------------------------------- */

func (config Config) Validate() error {
  if config.Threads < 0 {
    return errors.Wrapf(ErrInvalidParameter, "invalid number of threads `%d'", config.Threads)
  }
  if config.Verbose < 0 {
    return errors.Wrapf(ErrInvalidParameter, "invalid verbose level `%d'", config.Verbose)
  }
  return checkBinParameters(config.BinSize, config.Method, config.PyramidFactors)
}

// Create a work pool with the configured number of threads and verbose
// level.
func (config Config) NewWorkPool() *WorkPool {
  pool := NewWorkPool(config.Threads)
  pool.Verbose = config.Verbose
  return pool
}

func (config Config) ConversionParameters() ConversionParameters {
  return ConversionParameters{
    BinSize       : config.BinSize,
    Method        : config.Method,
    PyramidFactors: config.PyramidFactors,
    Precision     : config.Precision,
    SearchURL     : config.SearchURL }
}
