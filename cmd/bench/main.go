// Bench is a benchmarking tool for measuring hash table insert, lookup and
// remove throughput, probe lengths and memory use under each built-in hasher.
//
// Usage:
//
//	go run ./cmd/bench -keys 1000000 -keygen uuid -hasher all
//
// Flags:
//
//	-keys      Number of keys to generate, or the cap on keys read from -keyfile (default: 1,000,000)
//	-keygen    Key generator: seq, random or uuid (default: seq)
//	-keyfile   Read newline-separated keys from this file instead of generating them
//	-hasher    Hasher: all, djb2, xxhash, xxh3 or murmur3 (default: all)
//	-remove    Fraction of keys to remove after the lookup phase (default: 0.5)
//	-load      Load factor that triggers growth (default: 0.7)
//	-workers   Hashers benchmarked concurrently, one table each (default: 1)
//	-v         Verbose logging, including every rehash
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/hashtable"
)

// contextCheckInterval is how often a run checks for cancellation.
const contextCheckInterval = 10000

type namedHasher struct {
	name string
	h    hashtable.Hasher
}

var hashers = []namedHasher{
	{"djb2", hashtable.DJB2{}},
	{"xxhash", hashtable.XXHash64{}},
	{"xxh3", hashtable.XXH3{}},
	{"murmur3", hashtable.Murmur3{}},
}

func selectHashers(name string) ([]namedHasher, error) {
	if name == "all" {
		return hashers, nil
	}
	for _, nh := range hashers {
		if nh.name == name {
			return []namedHasher{nh}, nil
		}
	}
	return nil, fmt.Errorf("unknown hasher %q (use all, djb2, xxhash, xxh3 or murmur3)", name)
}

type runConfig struct {
	keys       []string
	order      []int // lookup order, a permutation of keys
	removeFrac float64
	loadFactor float64
	logger     *zap.Logger
}

type result struct {
	hasher     string
	size       int
	stats      hashtable.Stats
	insert     time.Duration
	lookup     time.Duration
	remove     time.Duration
	removed    int
	heapGrowth uint64
}

var errMissingKey = errors.New("inserted key not found")

// run builds one table with h and times each phase. Tables are never shared
// between runs.
func run(ctx context.Context, nh namedHasher, cfg runConfig) (result, error) {
	res := result{hasher: nh.name}
	logger := cfg.logger.With(zap.String("hasher", nh.name))

	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	tbl, err := hashtable.New[int](nil,
		hashtable.WithHasher(nh.h),
		hashtable.WithLoadFactor(cfg.loadFactor),
		hashtable.WithLogger(logger))
	if err != nil {
		return res, err
	}
	defer tbl.Destroy()

	start := time.Now()
	for i, k := range cfg.keys {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if err := tbl.Insert(k, i); err != nil {
			return res, fmt.Errorf("insert %q: %w", k, err)
		}
	}
	res.insert = time.Since(start)
	res.size = tbl.Size()
	res.stats = tbl.Stats()

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	if after.HeapAlloc > before.HeapAlloc {
		res.heapGrowth = after.HeapAlloc - before.HeapAlloc
	}

	start = time.Now()
	for n, i := range cfg.order {
		if n%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if !tbl.Contains(cfg.keys[i]) {
			return res, fmt.Errorf("%w: %q", errMissingKey, cfg.keys[i])
		}
	}
	res.lookup = time.Since(start)

	toRemove := int(float64(len(cfg.order)) * cfg.removeFrac)
	start = time.Now()
	for _, i := range cfg.order[:toRemove] {
		if _, ok := tbl.Remove(cfg.keys[i]); ok {
			res.removed++
		}
	}
	res.remove = time.Since(start)

	logger.Info("run complete",
		zap.Int("size", res.size),
		zap.Int("capacity", res.stats.Capacity),
		zap.Int("resizes", res.stats.Resizes),
		zap.Duration("insert", res.insert),
		zap.Duration("lookup", res.lookup))
	return res, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of keys (cap when reading -keyfile)")
	keygenFlag := flag.String("keygen", "seq", "key generator: seq, random or uuid")
	keyfileFlag := flag.String("keyfile", "", "read newline-separated keys from this file")
	hasherFlag := flag.String("hasher", "all", "hasher: all, djb2, xxhash, xxh3 or murmur3")
	removeFlag := flag.Float64("remove", 0.5, "fraction of keys to remove after lookups")
	loadFlag := flag.Float64("load", 0.7, "load factor that triggers growth")
	workersFlag := flag.Int("workers", 1, "hashers benchmarked concurrently")
	verboseFlag := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger, err := newLogger(*verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := bench(logger, *keysFlag, *keygenFlag, *keyfileFlag, *hasherFlag,
		*removeFlag, *loadFlag, *workersFlag); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func bench(logger *zap.Logger, numKeys int, keygen, keyfile, hasherName string,
	removeFrac, loadFactor float64, workers int) error {
	if removeFrac < 0 || removeFrac > 1 {
		return fmt.Errorf("-remove must be in [0, 1], got %v", removeFrac)
	}
	selected, err := selectHashers(hasherName)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(0x1234, 0x5678))

	var keys []string
	if keyfile != "" {
		fmt.Printf("Reading keys from %s...\n", keyfile)
		keys, err = readKeyFile(keyfile, numKeys)
	} else {
		fmt.Printf("Generating %s %s keys...\n", humanize.Comma(int64(numKeys)), keygen)
		keys, err = generateKeys(keygen, numKeys, rng)
	}
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return errors.New("no keys to benchmark")
	}

	cfg := runConfig{
		keys:       keys,
		order:      rng.Perm(len(keys)),
		removeFrac: removeFrac,
		loadFactor: loadFactor,
		logger:     logger,
	}

	baselineRSS := getMaxRSS()
	results := make([]result, len(selected))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(workers, 1))
	for i, nh := range selected {
		g.Go(func() error {
			res, err := run(ctx, nh, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", nh.name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	peakRSS := getMaxRSS()

	printResults(len(keys), results)
	if peakRSS > baselineRSS {
		fmt.Printf("Peak RSS growth: %s\n", humanize.Bytes(peakRSS-baselineRSS))
	}
	return nil
}

func mops(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds() / 1_000_000
}

func printResults(numKeys int, results []result) {
	fmt.Printf("\nKeys: %s\n\n", humanize.Comma(int64(numKeys)))
	fmt.Printf("%-8s %10s %10s %8s %9s %9s %10s %10s %10s %10s\n",
		"hasher", "size", "capacity", "resizes", "maxprobe", "meanprobe",
		"insert M/s", "lookup M/s", "remove M/s", "heap")
	for _, r := range results {
		fmt.Printf("%-8s %10s %10s %8d %9d %9.3f %10.2f %10.2f %10.2f %10s\n",
			r.hasher,
			humanize.Comma(int64(r.size)),
			humanize.Comma(int64(r.stats.Capacity)),
			r.stats.Resizes,
			r.stats.MaxProbe,
			r.stats.MeanProbe,
			mops(numKeys, r.insert),
			mops(numKeys, r.lookup),
			mops(r.removed, r.remove),
			humanize.Bytes(r.heapGrowth))
	}
}
