// Command wgsim simulates a straight slab waveguide, reports the power
// accounting, and renders |Hz| as a heatmap PNG.
//
// Usage:
//
//	wgsim -nx 120 -ny 80 -omega 0.2 -tpml 10 -out hz.png
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/cmplx"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fdfd/grid"
	"github.com/katalvlaran/fdfd/mode"
	"github.com/katalvlaran/fdfd/sim"
)

func main() {
	var (
		nx        = flag.Int("nx", 120, "grid width in cells")
		ny        = flag.Int("ny", 80, "grid height in cells")
		omega     = flag.Float64("omega", 0.2, "angular frequency")
		tPML      = flag.Int("tpml", 10, "absorbing-layer depth in cells")
		coreEps   = flag.Float64("core-eps", 12, "core relative permittivity")
		coreWidth = flag.Int("core-width", 8, "core width in cells")
		outPNG    = flag.String("out", "hz.png", "heatmap output path")
		outCSV    = flag.String("csv", "", "optional per-section power CSV path")
	)
	flag.Parse()

	d := grid.Dims{Nx: *nx, Ny: *ny}
	line := make([]float64, d.Ny)
	lo := (d.Ny - *coreWidth) / 2
	for y := range line {
		line[y] = 1
		if y >= lo && y < lo+*coreWidth {
			line[y] = *coreEps
		}
	}
	eps := mat.NewDense(d.Ny, d.Nx, nil)
	for y := 0; y < d.Ny; y++ {
		for x := 0; x < d.Nx; x++ {
			eps.Set(y, x, line[y])
		}
	}

	m, err := mode.Solve(line, *omega)
	if err != nil {
		log.Fatalf("mode solve: %v", err)
	}
	log.Printf("fundamental mode: beta=%.4f rad/cell, effective index %.3f", m.Beta, m.Beta / *omega)

	res, err := sim.Solve(sim.Spec{
		Dims:  d,
		Omega: *omega,
		TPML:  *tPML,
		Eps:   eps,
		In:    m.Normalized(),
	})
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	log.Printf("input power  %.4f", res.InPower)
	log.Printf("output power %.4f (transmission %.1f%%)", res.Power, 100*res.Power/res.InPower)
	log.Printf("box flux: left %.4f right %.4f top %.4f bottom %.4f (net %.4f)",
		res.Flux.Left, res.Flux.Right, res.Flux.Top, res.Flux.Bottom, res.Flux.Total())

	if err := renderHz(res, *outPNG); err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("wrote %s", *outPNG)

	if *outCSV != "" {
		if err := writeSections(res, *outCSV); err != nil {
			log.Fatalf("csv: %v", err)
		}
		log.Printf("wrote %s", *outCSV)
	}
}

// hzGrid adapts the solved Hz magnitude to plotter.GridXYZ.
type hzGrid struct {
	m *mat.CDense
}

func (g hzGrid) Dims() (c, r int)   { r, c = g.m.Dims(); return c, r }
func (g hzGrid) Z(c, r int) float64 { return cmplx.Abs(g.m.At(r, c)) }
func (g hzGrid) X(c int) float64    { return float64(c) }
func (g hzGrid) Y(r int) float64    { return float64(r) }

func renderHz(res *sim.Result, path string) error {
	p := plot.New()
	p.Title.Text = "|Hz|"
	p.X.Label.Text = "x (cells)"
	p.Y.Label.Text = "y (cells)"

	hm := plotter.NewHeatMap(hzGrid{m: res.Field.Hz}, moreland.Kindlmann().Palette(255))
	p.Add(hm)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

func writeSections(res *sim.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"section", "power"}); err != nil {
		return err
	}
	for i, s := range res.Samples {
		rec := []string{strconv.Itoa(i), fmt.Sprintf("%.6f", s)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
