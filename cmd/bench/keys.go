package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/google/uuid"
)

// generateKeys returns n keys of the given kind: "seq" (zero-padded
// counters), "random" (16 hex chars) or "uuid" (random version 4 UUIDs).
func generateKeys(kind string, n int, rng *rand.Rand) ([]string, error) {
	keys := make([]string, n)
	switch kind {
	case "seq":
		for i := range keys {
			keys[i] = fmt.Sprintf("%010d", i)
		}
	case "random":
		for i := range keys {
			keys[i] = fmt.Sprintf("%016x", rng.Uint64())
		}
	case "uuid":
		for i := range keys {
			keys[i] = uuid.NewString()
		}
	default:
		return nil, fmt.Errorf("unknown key generator %q (use seq, random or uuid)", kind)
	}
	return keys, nil
}

// readKeyFile memory-maps path and returns one key per line. Blank lines are
// skipped and a trailing '\r' is trimmed. At most limit keys are returned
// when limit > 0.
func readKeyFile(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat key file: %w", err)
	}
	if info.Size() == 0 {
		return nil, nil
	}
	fadviseSequential(int(f.Fd()), info.Size())

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap key file: %w", err)
	}
	// Keys are copied out of the mapping, so it can go as soon as we return.
	defer func() { _ = mm.Unmap() }()

	return splitKeys(mm, limit), nil
}

// splitKeys copies every non-blank line of data into its own string.
func splitKeys(data []byte, limit int) []string {
	var keys []string
	for len(data) > 0 {
		if limit > 0 && len(keys) == limit {
			break
		}
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		keys = append(keys, string(line))
	}
	return keys
}
