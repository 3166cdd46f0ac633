// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"flag"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goxafs/config"
	"github.com/cpmech/goxafs/spectrum"
	"github.com/cpmech/goxafs/xaslog"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nGoXAFS -- EXAFS data reduction\n\n")
	io.Pf("Copyright 2024 The GoXAFS Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	cfgPath := flag.String("config", "", "path to a JSON pipeline config file (optional; defaults used otherwise)")
	flag.Parse()
	if len(flag.Args()) < 1 {
		io.PfRed("usage: goxafs [-config file.json] energy_mu.csv\n")
		os.Exit(1)
	}
	csvPath := flag.Arg(0)

	cfg := config.Data{}
	cfg.SetDefault()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg.PostProcess()
	}

	energy, mu, err := readEnergyMu(csvPath)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}

	g := spectrum.NewGroup()
	s, err := spectrum.New(io.FnKey(csvPath), energy, mu)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	g.Add(s)

	stages := []struct {
		name string
		errs []error
	}{
		{"find_e0", spectrum.FindE0Batch(g, cfg.Workers)},
		{"normalize", spectrum.NormalizeBatch(g, cfg.Normalize, cfg.Workers)},
		{"autobk", spectrum.CalcBackgroundBatch(g, cfg.Autobk, cfg.Workers)},
		{"xftf", spectrum.FFTBatch(g, cfg.Xftf, cfg.Workers)},
	}
	for _, st := range stages {
		failed := 0
		for _, e := range st.errs {
			if e != nil {
				failed++
			}
		}
		xaslog.BatchSummary(st.name, len(st.errs), failed)
	}

	if s.Err != nil {
		io.PfRed("ERROR: %v\n", s.Err)
		os.Exit(1)
	}
	io.Pf("\ne0       = %.4f eV\n", s.E0)
	io.Pf("edgeStep = %.6f\n", s.Norm.EdgeStep)
	io.Pf("background fit: %s after %d iterations (cost=%.3e)\n", s.Background.Status, s.Background.Iterations, s.Background.FinalCost)
	io.Pf("chi(R) points: %d\n", len(s.Forward.R))
}

// readEnergyMu reads a two-column (energy, mu) CSV file, skipping a header
// row if present.
func readEnergyMu(path string) (energy, mu []float64, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return nil, nil, ferr
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, rerr := r.ReadAll()
	if rerr != nil {
		return nil, nil, rerr
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		e, eerr := strconv.ParseFloat(row[0], 64)
		m, merr := strconv.ParseFloat(row[1], 64)
		if eerr != nil || merr != nil {
			continue // header row or malformed line
		}
		energy = append(energy, e)
		mu = append(mu, m)
	}
	return energy, mu, nil
}
