// Package project persists the newsletter being edited.
//
// A [Store] keeps two things: the current snapshot, restored when the editor
// starts, and a short list of recently saved projects. Saving the current
// snapshot also records it in the recent list (see [Remember]): entries are
// keyed by the issue number, the newest comes first and at most [MaxRecent]
// are kept.
//
// Three backends are provided. [MemoryStore] lives in the process, [RedisStore]
// keeps JSON documents under a key prefix and [PostgresStore] uses two tables
// created by embedded goose migrations.
//
// [Autosaver] debounces saves so that a burst of edits results in one write:
//
//	saver := project.NewAutosaver(store, project.WithDelay(800*time.Millisecond))
//	defer saver.Close(ctx)
//
//	saver.Touch(n) // after every edit
//	saver.Status() // idle, saving or saved
package project
