// Package census generates many creatures in parallel and tallies how their
// traits are distributed.
package census

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"fonsters/pkg/core"
	"fonsters/pkg/fonster"
	"fonsters/pkg/traits"

	"golang.org/x/sync/errgroup"
)

const tiers = 5

// Options controls a census run.
type Options struct {
	Prefix  string
	Count   int
	Workers int
	// Progress, when set, is called after every Every seeds.
	Progress func(done int)
	Every    int
}

// Report summarizes a census.
type Report struct {
	Seeds    int
	Unique   int
	Tiers    [tiers]int
	Modes    map[traits.AvatarMode]int
	Palettes map[int]int
	Features map[string]int
}

// Feature is one boolean trait counted by a census.
type Feature struct {
	Key   string
	Label string
}

// Features lists the counted traits in display order.
func Features() []Feature {
	var out []Feature
	for _, g := range (traits.CreatureConfig{}).Parameters().Groups {
		for _, p := range g.Params {
			if p.Type == core.ParamTypeBool {
				out = append(out, Feature{Key: p.Key, Label: p.Label})
			}
		}
	}
	return out
}

// SeedName returns the i-th seed of a census over prefix.
func SeedName(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// Run generates Count creatures named SeedName(Prefix, i). It stops early with
// the context's error when ctx is cancelled.
func Run(ctx context.Context, opts Options) (Report, error) {
	r := Report{
		Modes:    make(map[traits.AvatarMode]int),
		Palettes: make(map[int]int),
		Features: make(map[string]int),
	}
	if opts.Count <= 0 {
		return r, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu   sync.Mutex
		seen = make(map[core.Grid]struct{}, opts.Count)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Count; i++ {
		if gctx.Err() != nil {
			break
		}
		seed := SeedName(opts.Prefix, i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := fonster.New(seed)
			if c.Config.Tier < 1 || c.Config.Tier > tiers {
				return fmt.Errorf("seed %q: tier %d out of range", seed, c.Config.Tier)
			}
			snap := c.Config.Parameters()

			mu.Lock()
			defer mu.Unlock()
			r.Seeds++
			r.Tiers[c.Config.Tier-1]++
			r.Modes[c.Config.Mode]++
			r.Palettes[c.Config.PaletteIndex]++
			for _, grp := range snap.Groups {
				for _, p := range grp.Params {
					if p.Type == core.ParamTypeBool && p.Value == "true" {
						r.Features[p.Key]++
					}
				}
			}
			seen[c.Grid] = struct{}{}
			if opts.Progress != nil && opts.Every > 0 && r.Seeds%opts.Every == 0 {
				opts.Progress(r.Seeds)
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	r.Unique = len(seen)
	return r, err
}

// Rate returns n as a fraction of the seeds counted.
func (r Report) Rate(n int) float64 {
	if r.Seeds == 0 {
		return 0
	}
	return float64(n) / float64(r.Seeds)
}

// Rows flattens the report into metric/value/rate rows for tabular output.
func (r Report) Rows() [][]string {
	pct := func(n int) string { return strconv.FormatFloat(100*r.Rate(n), 'f', 2, 64) + "%" }
	rows := [][]string{
		{"seeds", strconv.Itoa(r.Seeds), ""},
		{"unique grids", strconv.Itoa(r.Unique), pct(r.Unique)},
	}
	for i, n := range r.Tiers {
		rows = append(rows, []string{"tier " + strconv.Itoa(i+1), strconv.Itoa(n), pct(n)})
	}
	for m := traits.ModeCreature; m <= traits.ModeSpace; m++ {
		n := r.Modes[m]
		rows = append(rows, []string{"mode " + m.String(), strconv.Itoa(n), pct(n)})
	}
	for i := 0; i < traits.PaletteCount; i++ {
		n := r.Palettes[i]
		rows = append(rows, []string{"palette " + strconv.Itoa(i), strconv.Itoa(n), pct(n)})
	}
	for _, f := range Features() {
		n := r.Features[f.Key]
		rows = append(rows, []string{f.Label, strconv.Itoa(n), pct(n)})
	}
	return rows
}
