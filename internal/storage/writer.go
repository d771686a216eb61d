package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

type write struct {
	key   string
	value []byte
}

// Writer performs fire-and-forget write-through saves. Callers mutate
// in-memory state first and then hand the snapshot here; a failed save is
// logged and dropped, never retried, and never rolls the caller back.
//
// A single dispatcher goroutine drains the queue in Save order, so for
// any key the last snapshot handed in is the last one written. Save
// itself never blocks on the store.
type Writer struct {
	store Store
	log   *slog.Logger

	mu    sync.Mutex
	queue []write
	wake  chan struct{}
	wg    sync.WaitGroup
}

func NewWriter(store Store, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	w := &Writer{
		store: store,
		log:   log,
		wake:  make(chan struct{}, 1),
	}
	go w.run()
	return w
}

// Save marshals v synchronously (so the snapshot is stable) and enqueues
// the store write for the dispatcher.
func (w *Writer) Save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		w.log.Error("marshal state", "key", key, "err", err)
		return
	}

	w.wg.Add(1)
	w.mu.Lock()
	w.queue = append(w.queue, write{key: key, value: raw})
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) run() {
	for range w.wake {
		for {
			w.mu.Lock()
			if len(w.queue) == 0 {
				w.mu.Unlock()
				break
			}
			next := w.queue[0]
			w.queue = w.queue[1:]
			w.mu.Unlock()

			if err := w.store.Set(context.Background(), next.key, next.value); err != nil {
				w.log.Error("persist state", "key", next.key, "err", err)
			}
			w.wg.Done()
		}
	}
}

// Flush blocks until every save handed in so far has completed. Used on
// shutdown and by tests that assert on stored bytes.
func (w *Writer) Flush() {
	w.wg.Wait()
}
