// Command trajlab runs the trajectory pipeline end to end on a synthetic
// data set: build bundles of noisy trajectories, simplify them, measure a
// few alignments, cluster them, and find sample hubs.
//
// Settings come from TRAJLAB_* environment variables or from the file named
// by TRAJLAB_CONFIG (any format viper reads). Logging is configured with
// LOG_LEVEL and LOG_TIME_FORMAT.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtraj/align"
	"github.com/katalvlaran/lvtraj/builder"
	"github.com/katalvlaran/lvtraj/centroid"
	"github.com/katalvlaran/lvtraj/cluster"
	"github.com/katalvlaran/lvtraj/dtw"
	"github.com/katalvlaran/lvtraj/geom"
	"github.com/katalvlaran/lvtraj/hubs"
	"github.com/katalvlaran/lvtraj/internal/logger"
	"github.com/katalvlaran/lvtraj/simplify"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if err := run(cfg, log); err != nil {
		log.Fatal("trajlab", zap.Error(err))
	}
}

type config struct {
	Members   int
	Samples   int
	Noise     float64
	Seed      int64
	Epsilon   float64
	K         int
	MaxIter   int
	Seeding   string
	Centroid  string
	Workers   int
	HubK      int
	HubRadius float64
}

func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRAJLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("members", 30)
	v.SetDefault("samples", 40)
	v.SetDefault("noise", 0.15)
	v.SetDefault("seed", 1)
	v.SetDefault("epsilon", 0.05)
	v.SetDefault("k", 3)
	v.SetDefault("max_iter", 50)
	v.SetDefault("seeding", "weighted")
	v.SetDefault("centroid", centroid.TimeScaled.String())
	v.SetDefault("workers", 4)
	v.SetDefault("hub_k", 5)
	v.SetDefault("hub_radius", 3.0)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return config{
		Members:   v.GetInt("members"),
		Samples:   v.GetInt("samples"),
		Noise:     v.GetFloat64("noise"),
		Seed:      v.GetInt64("seed"),
		Epsilon:   v.GetFloat64("epsilon"),
		K:         v.GetInt("k"),
		MaxIter:   v.GetInt("max_iter"),
		Seeding:   v.GetString("seeding"),
		Centroid:  v.GetString("centroid"),
		Workers:   v.GetInt("workers"),
		HubK:      v.GetInt("hub_k"),
		HubRadius: v.GetFloat64("hub_radius"),
	}, nil
}

func run(cfg config, log *zap.Logger) error {
	set, err := synthesize(cfg)
	if err != nil {
		return err
	}
	log.Info("synthesized", zap.Int("members", len(set)), zap.Int("samples", cfg.Samples))

	simple, err := simplify.Set(set, cfg.Epsilon)
	if err != nil {
		return err
	}
	log.Info("simplified",
		zap.Float64("epsilon", cfg.Epsilon),
		zap.Int("points_before", totalPoints(set)),
		zap.Int("points_after", totalPoints(simple)),
	)

	if err := compareFirstPair(simple, log); err != nil {
		return err
	}

	strategy, err := centroid.ParseStrategy(cfg.Centroid)
	if err != nil {
		return err
	}
	seeding, err := seedFunc(cfg.Seeding)
	if err != nil {
		return err
	}
	opts := cluster.DefaultOptions(cfg.K)
	opts.MaxIter = cfg.MaxIter
	opts.Seeding = seeding
	opts.Centroid = strategy
	opts.Seed = cfg.Seed
	opts.Workers = cfg.Workers
	opts.Logger = log

	res, err := cluster.Lloyd(simple, opts)
	if err != nil {
		return err
	}
	for c, center := range res.Centers {
		log.Info("center",
			zap.Int("index", c),
			zap.Int("members", len(res.Members(c))),
			zap.String("polyline", geom.EncodePolyline(center)),
		)
	}

	var points []geom.Point
	for _, id := range set.Keys() {
		points = append(points, set[id]...)
	}
	hopts := hubs.DefaultOptions()
	hopts.K = cfg.HubK
	hopts.Radius = cfg.HubRadius
	found, err := hubs.Find(points, hopts)
	if err != nil {
		return err
	}
	log.Info("hubs", zap.Int("count", len(found)), zap.Any("points", found))

	return nil
}

// synthesize builds cfg.Members noisy copies of three prototype shapes.
func synthesize(cfg config) (geom.Set, error) {
	line, err := builder.Line(geom.Point{X: 0, Y: 0}, geom.Point{X: 20, Y: 0}, cfg.Samples)
	if err != nil {
		return nil, err
	}
	arc, err := builder.Arc(geom.Point{X: 10, Y: 10}, 8, math.Pi, -math.Pi, cfg.Samples)
	if err != nil {
		return nil, err
	}
	zig, err := builder.ZigZag(cfg.Samples, 0.5, 1)
	if err != nil {
		return nil, err
	}
	for i := range zig {
		zig[i].Y += 25
	}

	return builder.BuildSet(cfg.Members,
		builder.Bundles([]geom.Trajectory{line, arc, zig}, cfg.Noise),
		builder.WithSeed(cfg.Seed),
		builder.WithSymbNumb("traj-"),
	)
}

func compareFirstPair(s geom.Set, log *zap.Logger) error {
	keys := s.Keys()
	if len(keys) < 2 {
		return nil
	}
	p, q := s[keys[0]], s[keys[1]]

	avg, path, err := align.DTW(p, q)
	if err != nil {
		return err
	}
	fr, _, err := align.Frechet(p, q)
	if err != nil {
		return err
	}
	d, err := dtw.Distance(p, q)
	if err != nil {
		return err
	}
	log.Info("alignment",
		zap.String("p", keys[0]),
		zap.String("q", keys[1]),
		zap.Float64("dtw_avg", avg),
		zap.Int("path_len", len(path)),
		zap.Float64("frechet", fr),
		zap.Float64("dtw_distance", d),
	)
	return nil
}

func totalPoints(s geom.Set) int {
	n := 0
	for _, t := range s {
		n += len(t)
	}
	return n
}

func seedFunc(name string) (cluster.SeedFunc, error) {
	switch name {
	case "random":
		return cluster.RandomSeed, nil
	case "weighted":
		return cluster.WeightedSeed, nil
	default:
		return nil, fmt.Errorf("unknown seeding %q", name)
	}
}
