// Copyright 2025 go-transpose Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command transposegen writes the per-format entry points of package
// transpose: one Transpose and one Rotate180 function per pixel format and
// element type, the dispatchers behind them and the generic router.
//
// Usage, via go:generate in package transpose:
//
//	//go:generate go run ../cmd/transposegen -output z_formats.go
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	output  = flag.String("output", "z_formats.go", "Output file")
	pkg     = flag.String("pkg", "transpose", "Package name of the output file")
	dryRun  = flag.Bool("n", false, "Print the generated source to stdout instead of writing it")
	verbose = flag.Bool("v", false, "Log every generated entry point")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	gen := &Generator{
		Package:  *pkg,
		Filename: filepath.Base(*output),
		Formats:  DefaultFormats,
		Types:    DefaultTypes,
	}
	for _, e := range gen.Entries() {
		log.Debug().Str("func", e.Func).Int("channels", e.Channels).Str("type", e.Go).Msg("entry point")
	}

	src, err := gen.Render()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render")
	}

	if *dryRun {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatal().Err(err).Msg("Failed to write stdout")
		}
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *output).Msg("Failed to write output")
	}
	log.Info().Str("path", *output).Int("entries", len(gen.Entries())).Msg("Generated")
}
