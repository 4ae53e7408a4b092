package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/tuannh982/probe-table/utils/collections"
	"github.com/tuannh982/probe-table/utils/hashing"
	"github.com/tuannh982/probe-table/utils/math"

	log "github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage")

var hashFuncs = map[string]collections.HashFunc[string]{
	"xxhash": hashing.String,
	"fnv":    hashing.Fnv32[string],
	"length": hashing.Length,
}

type config struct {
	capacity int
	expected int
	maxLoad  int
	hash     string
	logLevel string
	lookups  []string
	pairs    []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("probe-table", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&cfg.capacity, "capacity", "n", 0, "number of slots (overrides --expected)")
	fs.IntVar(&cfg.expected, "expected", 0, "expected number of entries, used to size the table")
	fs.IntVar(&cfg.maxLoad, "max-load", 70, "maximum load in percent when sizing from --expected")
	fs.StringVar(&cfg.hash, "hash", "xxhash", "hash function: xxhash, fnv or length")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level")
	fs.StringArrayVarP(&cfg.lookups, "get", "g", nil, "key to look up after inserting (repeatable)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: probe-table [flags] key=value...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.pairs = fs.Args()
	if _, ok := hashFuncs[cfg.hash]; !ok {
		return nil, fmt.Errorf("%w: unknown hash function %q", errUsage, cfg.hash)
	}
	if cfg.capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", errUsage, cfg.capacity)
	}
	if cfg.capacity == 0 {
		expected := cfg.expected
		if expected == 0 {
			expected = len(cfg.pairs)
		}
		cfg.capacity = math.CapacityFor(expected, cfg.maxLoad)
	}
	return cfg, nil
}

func newLogger(level string, out io.Writer) (*log.Entry, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(lvl)
	return logger.WithFields(log.Fields{"component": "probe-table"}), nil
}

func validKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, " \t\r\n")
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		return err
	}
	hash := collections.HashFunc[string](hashing.Validate(validKey, hashFuncs[cfg.hash]))
	table := collections.NewProbeTable[string, string](cfg.capacity)
	rejected := collections.NewHashSet[string](len(cfg.pairs)+1, hashing.Fnv32[string])
	logger = logger.WithFields(log.Fields{"capacity": table.Capacity(), "hash": cfg.hash})

	for _, pair := range cfg.pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("%w: argument %q is not key=value", errUsage, pair)
		}
		if !table.Insert(key, value, hash) {
			logger.WithField("key", key).Warn("key rejected by hash function")
			_ = rejected.Add(key)
			continue
		}
		if !table.Contains(key, hash) {
			logger.WithField("key", key).Warn("table full, entry not stored")
			continue
		}
		logger.WithFields(log.Fields{"key": key, "value": value}).Debug("inserted")
	}
	logger.WithFields(log.Fields{
		"entries":  table.Len(),
		"load":     fmt.Sprintf("%.2f", table.Load()),
		"rejected": rejected.Size(),
	}).Info("table built")
	logger.Debug(table.String())

	for _, key := range cfg.lookups {
		value, found := table.Search(key, hash)
		if !found {
			logger.WithField("key", key).Debug("not found")
			fmt.Fprintf(stdout, "%s: not found\n", key)
			continue
		}
		fmt.Fprintf(stdout, "%s=%s\n", key, value)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
