// Command growth-sweep runs every registered automaton headless over a
// range of seeds and reports how far each one spread from its origin.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"planar/internal/core"
	_ "planar/internal/sims/briansbrain"
	_ "planar/internal/sims/elementary"
	_ "planar/internal/sims/life"
)

type scenario struct {
	sim  string
	seed int64
}

type scenarioResult struct {
	scenario
	steps      int
	xs, xe     int
	ys, ye     int
	peakPop    int
	finalPop   int
	capX, capY int
	err        error
}

func (r scenarioResult) area() int { return (r.xe - r.xs + 1) * (r.ye - r.ys + 1) }

func (r scenarioResult) String() string {
	return fmt.Sprintf("%-12s seed=%-4d x[%d,%d] y[%d,%d] area=%s pop=%s peak=%s cap=%dx%d",
		r.sim, r.seed, r.xs, r.xe, r.ys, r.ye,
		humanize.Comma(int64(r.area())), humanize.Comma(int64(r.finalPop)), humanize.Comma(int64(r.peakPop)),
		r.capX, r.capY)
}

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per automaton, starting at 1")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	only := flag.String("sims", "", "comma separated automata to run; all when empty")
	top := flag.Int("top", 5, "results to print per automaton")
	failFast := flag.Bool("failfast", false, "stop at the first failing scenario")
	flag.Parse()

	names := core.Names()
	if *only != "" {
		names = strings.Split(*only, ",")
	}

	var sets []scenario
	for _, name := range names {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{sim: name, seed: int64(s)})
		}
	}

	fmt.Printf("Sweeping %s scenarios (%d workers, %s steps)\n",
		humanize.Comma(int64(len(sets))), *workers, humanize.Comma(int64(*steps)))

	start := time.Now()
	all := make([]scenarioResult, len(sets))
	var eg errgroup.Group
	eg.SetLimit(max(*workers, 1))
	for i, sc := range sets {
		eg.Go(func() error {
			all[i] = runScenario(sc, *steps)
			if *failFast {
				return all[i].err
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	bySim := make(map[string][]scenarioResult)
	failed := 0
	for _, res := range all {
		if res.err != nil {
			log.Printf("%s seed %d: %v", res.sim, res.seed, res.err)
			failed++
			continue
		}
		bySim[res.sim] = append(bySim[res.sim], res)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nElapsed %s, %d failed\n", elapsed.Round(time.Millisecond), failed)
	for _, name := range names {
		rs := bySim[name]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].area() != rs[j].area() {
				return rs[i].area() > rs[j].area()
			}
			return rs[i].seed < rs[j].seed
		})
		fmt.Printf("\n%s: widest %d of %d\n", name, min(*top, len(rs)), len(rs))
		for i := 0; i < len(rs) && i < *top; i++ {
			fmt.Printf("%2d) %s\n", i+1, rs[i])
		}
	}
}

// runScenario owns its simulation; planes are never shared between workers.
func runScenario(sc scenario, steps int) scenarioResult {
	res := scenarioResult{scenario: sc}
	sim, err := core.New(sc.sim, nil)
	if err != nil {
		res.err = err
		return res
	}
	if err := sim.Reset(sc.seed); err != nil {
		res.err = errors.Wrapf(err, "reset %s", sc.sim)
		return res
	}
	p := sim.Plane()
	for res.steps < steps {
		if err := sim.Step(); err != nil {
			res.err = errors.Wrapf(err, "%s step %d", sc.sim, res.steps)
			return res
		}
		res.steps++
		res.peakPop = max(res.peakPop, core.Population(p))
	}
	res.xs, res.xe = p.XStart(), p.XEnd()
	res.ys, res.ye = p.YStart(), p.YEnd()
	res.finalPop = core.Population(p)
	res.capX, res.capY = p.XCapacity(), p.YCapacity()
	return res
}
