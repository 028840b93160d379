package service

import (
	"context"
	"log/slog"

	"phonebookd/internal/phonebook/merge"
	"phonebookd/internal/phonebook/metrics"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/internal/phonebook/vcard"
)

// aggregator walks the storages in order and feeds every entry through one
// merge engine, so grouping spans all backends of the pass.
type aggregator struct {
	backend  ports.Phonebook
	storages []string
	modemID  string
	logger   *slog.Logger
	metrics  *metrics.Metrics
	// cursor is told which storage is about to be enumerated.
	cursor func(storage string)
}

type aggregateResult struct {
	vcard   string
	entries int
	persons int
	failed  []string
}

// run never fails: a storage that reports an error is logged and skipped
// and whatever it delivered before failing is kept. It stops early only when
// ctx is cancelled.
func (a *aggregator) run(ctx context.Context) aggregateResult {
	enc := vcard.NewEncoder()
	engine := merge.New(enc)

	var res aggregateResult
	for _, storage := range a.storages {
		if ctx.Err() != nil {
			break
		}
		if a.cursor != nil {
			a.cursor(storage)
		}

		delivered := 0
		err := a.backend.ExportEntries(ctx, storage, func(entry models.RawEntry) {
			delivered++
			engine.Observe(entry)
		})
		res.entries += delivered
		if err != nil {
			res.failed = append(res.failed, storage)
			if a.metrics != nil {
				a.metrics.IncrementBackendFailures(storage)
			}
			a.logger.WarnContext(ctx, "phonebook storage export failed",
				"modem_id", a.modemID,
				"storage", storage,
				"delivered", delivered,
				"error", err,
			)
			continue
		}
		a.logger.DebugContext(ctx, "phonebook storage exported",
			"modem_id", a.modemID,
			"storage", storage,
			"entries", delivered,
		)
	}

	res.persons = len(engine.Flush())
	res.vcard = enc.String()
	return res
}
