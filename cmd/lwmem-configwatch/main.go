// Command lwmem-configwatch watches an allocator options file and
// rebuilds an *allocator.Arena's construction options whenever it
// changes. A region allocator's geometry is fixed for the life of the
// Arena (spec.md §3's Lifecycle), so this intentionally builds a fresh
// Arena per change rather than mutating one already handed out to
// callers — the file only ever affects the *next* DefineRegion.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/lwmem/internal/allocator"
)

// fileConfig mirrors the subset of allocator.Config that is reasonable
// to source from a file: alignment and the two boolean switches. No
// Mutex option is built from the file, since a file cannot describe an
// arbitrary platform primitive; with threadSafe set, NewArena installs
// its default *allocator.StdMutex.
type fileConfig struct {
	Alignment    uintptr `json:"alignment"`
	ThreadSafe   bool    `json:"threadSafe"`
	VerifyRegion bool    `json:"verifyRegion"`
}

func loadOptions(path string) ([]allocator.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	if fc.Alignment == 0 {
		fc.Alignment = 4
	}

	return []allocator.Option{
		allocator.WithAlignment(fc.Alignment),
		allocator.WithThreadSafety(fc.ThreadSafe),
		allocator.WithRegionVerification(fc.VerifyRegion),
	}, nil
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <config.json>", os.Args[0])
	}

	path := os.Args[1]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("fsnotify: %v", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		log.Fatalf("watch %s: %v", path, err)
	}

	build := func() {
		opts, err := loadOptions(path)
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}

		arena := allocator.NewArena(opts...)
		fmt.Printf("rebuilt arena from %s (layout version %s): %+v\n", path, allocator.BlockLayoutVersion, arena)
	}

	build()

	for event := range watcher.Events {
		if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
			build()
		}
	}
}
