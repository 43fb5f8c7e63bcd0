package census

import (
	"context"
	"errors"
	"testing"

	"fonsters/pkg/fonster"
)

func TestRunCountsEverySeed(t *testing.T) {
	r, err := Run(context.Background(), Options{Prefix: "c-", Count: 250, Workers: 4})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Seeds != 250 {
		t.Fatalf("counted %d seeds", r.Seeds)
	}
	sum := 0
	for _, n := range r.Tiers {
		sum += n
	}
	if sum != 250 {
		t.Fatalf("tier histogram sums to %d", sum)
	}
	modes := 0
	for _, n := range r.Modes {
		modes += n
	}
	if modes != 250 {
		t.Fatalf("mode histogram sums to %d", modes)
	}
	if r.Unique < 1 || r.Unique > 250 {
		t.Fatalf("unique grid count %d", r.Unique)
	}
}

func TestRunMatchesSequential(t *testing.T) {
	r, err := Run(context.Background(), Options{Prefix: "seq-", Count: 60, Workers: 8})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var want [tiers]int
	eyes := 0
	for i := 0; i < 60; i++ {
		cfg := fonster.ResolveConfig(SeedName("seq-", i))
		want[cfg.Tier-1]++
		if cfg.HasEyes {
			eyes++
		}
	}
	if want != r.Tiers {
		t.Fatalf("parallel tiers %v, sequential %v", r.Tiers, want)
	}
	if r.Features["eyes"] != eyes {
		t.Fatalf("parallel eyes %d, sequential %d", r.Features["eyes"], eyes)
	}
}

func TestRunProgress(t *testing.T) {
	var calls []int
	_, err := Run(context.Background(), Options{Prefix: "p-", Count: 40, Workers: 3, Every: 10, Progress: func(done int) {
		calls = append(calls, done)
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 4 || calls[3] != 40 {
		t.Fatalf("progress calls %v", calls)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := Run(ctx, Options{Prefix: "x-", Count: 1000, Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if r.Seeds == 1000 {
		t.Fatal("cancelled census still generated every seed")
	}
}

func TestRowsAndFeatures(t *testing.T) {
	feats := Features()
	if len(feats) == 0 || feats[0].Key == "" {
		t.Fatalf("features = %v", feats)
	}
	r, err := Run(context.Background(), Options{Prefix: "rows-", Count: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows := r.Rows()
	if rows[0][0] != "seeds" || rows[0][1] != "10" {
		t.Fatalf("first row %v", rows[0])
	}
	if (Report{}).Rate(3) != 0 {
		t.Fatal("empty report rate should be zero")
	}
}
