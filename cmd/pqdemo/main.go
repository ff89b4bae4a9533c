// Command pqdemo builds a priority queue from a set of entries, prints it and then drains it in priority order.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/couchbase/tools-pqtree/log"
	"github.com/couchbase/tools-pqtree/pqtree"
)

func main() {
	cfg, err := configFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log.SetLogger(log.NewStdoutLogger(cfg.level))

	if err := run(os.Stdout, cfg); err != nil {
		log.Errorf("(Demo) %v", err)
		os.Exit(1)
	}
}

// run executes the demo writing its output to the given writer.
func run(out io.Writer, cfg config) error {
	queue := pqtree.NewQueueWithCapacity[int](len(cfg.entries))

	for _, entry := range cfg.entries {
		queue.Enqueue(entry.Payload, entry.Priority)
	}

	log.Infof("(Demo) Enqueued %d entries", queue.Len())

	if err := display(out, queue, cfg.json); err != nil {
		return err
	}

	for i := 0; i < cfg.repeat; i++ {
		if clone := queue.Clone(); !pqtree.Equal(queue, clone) {
			return fmt.Errorf("copy %d of the queue is not equal to the original", i)
		}
	}

	if cfg.repeat > 0 {
		log.Infof("(Demo) Verified %d copies of the queue", cfg.repeat)
	}

	for queue.Len() > 0 {
		peeked, _ := queue.Peek()
		dequeued, _ := queue.Dequeue()

		if _, err := fmt.Fprintf(out, "%d %d\n", peeked, dequeued); err != nil {
			return fmt.Errorf("failed to write dequeued entry: %w", err)
		}
	}

	return nil
}

// display writes the contents of the queue followed by a blank line.
func display(out io.Writer, queue *pqtree.Queue[int], asJSON bool) error {
	rendered := queue.String()

	if asJSON {
		data, err := queue.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal queue: %w", err)
		}

		rendered = string(data) + "\n"
	}

	if _, err := fmt.Fprint(out, rendered+"\n"); err != nil {
		return fmt.Errorf("failed to write queue: %w", err)
	}

	return nil
}
