// Profiling:
// go build ./profile/entities
// ./entities -config profile.yaml
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

	var mode func(*profile.Profile)
	switch cfg.Profile.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "allocs":
		mode = profile.MemProfileAllocs
	}
	if mode != nil {
		p := profile.Start(mode, profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook, profile.Quiet)
		defer p.Stop()
	}

	log.Info("entity churn workload",
		zap.Int("rounds", cfg.Workload.Rounds),
		zap.Int("iters", cfg.Workload.Iters),
		zap.Int("entities", cfg.Workload.Entities),
	)
	run(cfg.Workload)
}

func run(wl config.WorkloadConfig) {
	for range wl.Rounds {
		w := synco.NewWorld(synco.WithEntityCapacity(wl.Entities))
		synco.RegisterComponent[comp1](w)
		synco.RegisterComponent[comp2](w)
		pattern := synco.Tuple3(synco.Identity(), synco.Write[comp1](), synco.Read[comp2]())

		entities := make([]synco.Entity, 0, wl.Entities)
		for range wl.Iters {
			for range wl.Entities {
				w.Create().With(comp1{}).With(comp2{V: 1, W: 1})
			}
			entities = entities[:0]
			synco.Run(w, pattern, func(q *synco.Query[synco.Row3[synco.Entity, *comp1, *comp2]]) struct{} {
				for _, row := range q.All() {
					e, c1, c2 := row.Unpack()
					entities = append(entities, e)
					c1.V += c2.V
					c1.W += c2.W
				}
				return struct{}{}
			})
			for _, e := range entities {
				w.Delete(e)
			}
		}
	}
}
