// Package manager keeps a parsed document tree up to date with its
// source files.
//
// Manager owns the current tree and re-parses on demand. FileWatcher
// watches the source path with fsnotify and triggers debounced reloads.
// Scheduler triggers periodic reloads on a cron schedule, for sources
// on filesystems without change notification (network mounts, shared
// volumes).
//
// Typical wiring:
//
//	p := parser.NewParser().WithLoader(source.NewFileSource(dir, nil))
//	m := manager.New(p, "main.cfg")
//	if err := m.Load(); err != nil {
//	    log.Fatal(err)
//	}
//	fw, _ := manager.NewFileWatcher(&manager.FileWatcherConfig{Path: dir}, nil)
//	go fw.Watch(ctx, m.Reload)
//	doc := m.Current()
package manager
