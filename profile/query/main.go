// Profiling:
// go build ./profile/query
// ./query -config profile.toml
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edwinsyarief/synco"
	"github.com/edwinsyarief/synco/internal/config"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	path := flag.String("config", "", "TOML or YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := cfg.Logging.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if p := startProfile(cfg.Profile); p != nil {
		defer p.Stop()
	}
	log.Info("query workload",
		zap.Int("rounds", cfg.Workload.Rounds),
		zap.Int("iters", cfg.Workload.Iters),
		zap.Int("entities", cfg.Workload.Entities),
		zap.String("profile", cfg.Profile.Mode),
	)
	run(log, cfg.Workload)
}

func startProfile(c config.ProfileConfig) interface{ Stop() } {
	var mode func(*profile.Profile)
	switch c.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "allocs":
		mode = profile.MemProfileAllocs
	default:
		return nil
	}
	return profile.Start(mode, profile.ProfilePath(c.Path), profile.NoShutdownHook, profile.Quiet)
}

func run(log *zap.Logger, wl config.WorkloadConfig) {
	for range wl.Rounds {
		w := synco.NewWorld(synco.WithLogger(log), synco.WithEntityCapacity(wl.Entities))
		synco.RegisterComponent[comp1](w)
		synco.RegisterComponent[comp2](w)
		synco.RegisterComponent[comp3](w)
		synco.RegisterComponent[comp4](w)
		synco.RegisterComponent[comp5](w)
		synco.RegisterComponent[comp6](w)
		for range wl.Entities {
			w.Create().
				With(comp1{}).With(comp2{V: 1, W: 2}).With(comp3{}).
				With(comp4{}).With(comp5{}).With(comp6{})
		}

		pattern := synco.Tuple6(
			synco.Write[comp1](), synco.Read[comp2](), synco.Read[comp3](),
			synco.Read[comp4](), synco.Read[comp5](), synco.Read[comp6](),
		)
		query := synco.NewQuery(w, pattern)
		it := query.Iter()
		for range wl.Iters {
			it.Reset()
			for it.Next() {
				c1, c2, _, _, _, _ := it.Get().Unpack()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
		query.Close()
	}
}
