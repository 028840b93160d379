// Package redissim keeps simulated SIM cards in Redis so several phonebookd
// processes (or a test harness) can share them.
//
// Key layout per modem:
//
//	phonebookd:sim:{modem}:meta             hash  pin2, capacity, pin2_failures, storages, fail_storages
//	phonebookd:sim:{modem}:storage:{name}   list  JSON RawEntry in record order
//	phonebookd:sim:{modem}:fdn              hash  index -> JSON FdnEntry
package redissim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"phonebookd/internal/phonebook/drivers/seed"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/pkg/platform/sentinel"
)

const (
	Name = "redis"

	keyPrefix = "phonebookd:sim:"

	fieldPIN2         = "pin2"
	fieldCapacity     = "capacity"
	fieldPIN2Failures = "pin2_failures"
	fieldStorages     = "storages"
	fieldFailStorages = "fail_storages"

	// maxTxRetries bounds optimistic retries when a watched key changes.
	maxTxRetries = 5
)

func metaKey(modemID string) string { return keyPrefix + modemID + ":meta" }
func fdnKey(modemID string) string { return keyPrefix + modemID + ":fdn" }
func storagePattern(modemID string) string {
	return keyPrefix + modemID + ":storage:*"
}
func storageKey(modemID, storage string) string {
	return keyPrefix + modemID + ":storage:" + storage
}

// Driver probes modems whose SIM has been provisioned in Redis.
type Driver struct {
	client *redis.Client
}

func New(client *redis.Client) *Driver {
	return &Driver{client: client}
}

func (d *Driver) Name() string { return Name }

func (d *Driver) Probe(ctx context.Context, modem ports.ModemInfo) (ports.Phonebook, error) {
	n, err := d.client.Exists(ctx, metaKey(modem.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("probe SIM for %s: %w", modem.ID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("no SIM provisioned for %s: %w", modem.ID, sentinel.ErrNotFound)
	}
	return &SIM{client: d.client, modemID: modem.ID}, nil
}

// Provision replaces whatever is stored for sim.ID with the seed contents.
func (d *Driver) Provision(ctx context.Context, sim seed.SIM) error {
	var stale []string
	iter := d.client.Scan(ctx, 0, storagePattern(sim.ID), 0).Iterator()
	for iter.Next(ctx) {
		stale = append(stale, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan storages: %w", err)
	}

	names := make([]string, 0, len(sim.Storages))
	for storage := range sim.Storages {
		names = append(names, storage)
	}
	sort.Strings(names)

	pipe := d.client.TxPipeline()
	pipe.Del(ctx, append(stale, metaKey(sim.ID), fdnKey(sim.ID))...)
	pipe.HSet(ctx, metaKey(sim.ID),
		fieldPIN2, sim.PIN2,
		fieldCapacity, sim.FdnCapacity,
		fieldPIN2Failures, 0,
		fieldStorages, strings.Join(names, ","),
		fieldFailStorages, strings.Join(sim.FailStorages, ","),
	)
	for storage, entries := range sim.Storages {
		if len(entries) == 0 {
			continue
		}
		values := make([]any, 0, len(entries))
		for _, e := range entries {
			raw, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
			values = append(values, raw)
		}
		pipe.RPush(ctx, storageKey(sim.ID, storage), values...)
	}
	for _, e := range sim.Fdn {
		raw, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode fdn entry: %w", err)
		}
		pipe.HSet(ctx, fdnKey(sim.ID), strconv.Itoa(e.Index), raw)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("provision SIM %s: %w", sim.ID, err)
	}
	return nil
}

// SIM is a Redis-backed card. It implements ports.FdnDriver.
type SIM struct {
	client  *redis.Client
	modemID string
}

// ExportEntries fails with sentinel.ErrClosed once the SIM has been
// deprovisioned and with sentinel.ErrNotFound for a storage the card lacks.
func (s *SIM) ExportEntries(ctx context.Context, storage string, emit func(models.RawEntry)) error {
	meta, err := s.client.HGetAll(ctx, metaKey(s.modemID)).Result()
	if err != nil {
		return err
	}
	if len(meta) == 0 {
		return fmt.Errorf("SIM %s: %w", s.modemID, sentinel.ErrClosed)
	}
	if slices.Contains(splitField(meta[fieldFailStorages]), storage) {
		return fmt.Errorf("storage %s: %w", storage, sentinel.ErrUnavailable)
	}
	if !slices.Contains(splitField(meta[fieldStorages]), storage) {
		return fmt.Errorf("storage %s: %w", storage, sentinel.ErrNotFound)
	}

	raw, err := s.client.LRange(ctx, storageKey(s.modemID, storage), 0, -1).Result()
	if err != nil {
		return err
	}
	entries := make([]models.RawEntry, 0, len(raw))
	for _, item := range raw {
		var e models.RawEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return fmt.Errorf("decode %s entry: %w", storage, err)
		}
		entries = append(entries, e)
	}
	for _, e := range entries {
		emit(e)
	}
	return nil
}

func splitField(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func (s *SIM) ReadFdnEntries(ctx context.Context) ([]models.FdnEntry, error) {
	n, err := s.client.Exists(ctx, metaKey(s.modemID)).Result()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("SIM %s: %w", s.modemID, sentinel.ErrClosed)
	}
	raw, err := s.client.HGetAll(ctx, fdnKey(s.modemID)).Result()
	if err != nil {
		return nil, err
	}
	return decodeFdn(raw)
}

// InsertFdnEntry stores the record in the lowest free slot. The slot search
// and the write run under WATCH so concurrent writers cannot collide.
func (s *SIM) InsertFdnEntry(ctx context.Context, name, number, pin2 string) (int, error) {
	var index int
	err := s.withTx(ctx, func(tx *redis.Tx) error {
		capacity, err := s.verify(ctx, tx, pin2)
		if err != nil {
			return err
		}
		used, err := tx.HKeys(ctx, fdnKey(s.modemID)).Result()
		if err != nil {
			return err
		}
		index = lowestFree(used, capacity)
		if index == 0 {
			return fmt.Errorf("FDN full (%d records): %w", capacity, sentinel.ErrConflict)
		}
		return s.writeFdn(ctx, tx, models.FdnEntry{Index: index, Name: name, Number: number})
	})
	if err != nil {
		return 0, err
	}
	return index, nil
}

func (s *SIM) UpdateFdnEntry(ctx context.Context, index int, name, number, pin2 string) error {
	return s.withTx(ctx, func(tx *redis.Tx) error {
		capacity, err := s.verify(ctx, tx, pin2)
		if err != nil {
			return err
		}
		if index < 1 || index > capacity {
			return fmt.Errorf("FDN index %d outside 1..%d: %w", index, capacity, sentinel.ErrNotFound)
		}
		return s.writeFdn(ctx, tx, models.FdnEntry{Index: index, Name: name, Number: number})
	})
}

func (s *SIM) DeleteFdnEntry(ctx context.Context, index int, pin2 string) error {
	return s.withTx(ctx, func(tx *redis.Tx) error {
		capacity, err := s.verify(ctx, tx, pin2)
		if err != nil {
			return err
		}
		if index < 1 || index > capacity {
			return fmt.Errorf("FDN index %d outside 1..%d: %w", index, capacity, sentinel.ErrNotFound)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, fdnKey(s.modemID), strconv.Itoa(index))
			pipe.HSet(ctx, metaKey(s.modemID), fieldPIN2Failures, 0)
			return nil
		})
		return err
	})
}

func (s *SIM) writeFdn(ctx context.Context, tx *redis.Tx, e models.FdnEntry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, fdnKey(s.modemID), strconv.Itoa(e.Index), raw)
		pipe.HSet(ctx, metaKey(s.modemID), fieldPIN2Failures, 0)
		return nil
	})
	return err
}

// verify checks pin2 against the card and returns the FDN capacity. A
// mismatch is counted outside the watched transaction so it survives the
// rejected write.
func (s *SIM) verify(ctx context.Context, tx *redis.Tx, pin2 string) (int, error) {
	meta, err := tx.HGetAll(ctx, metaKey(s.modemID)).Result()
	if err != nil {
		return 0, err
	}
	if len(meta) == 0 {
		return 0, fmt.Errorf("SIM %s: %w", s.modemID, sentinel.ErrClosed)
	}
	failures, _ := strconv.Atoi(meta[fieldPIN2Failures])
	if failures >= seed.MaxPIN2Attempts {
		return 0, fmt.Errorf("PIN2 blocked: %w", sentinel.ErrRejected)
	}
	if pin2 != meta[fieldPIN2] {
		n, err := s.client.HIncrBy(ctx, metaKey(s.modemID), fieldPIN2Failures, 1).Result()
		if err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("incorrect PIN2 (%d attempts left): %w",
			max(seed.MaxPIN2Attempts-int(n), 0), sentinel.ErrRejected)
	}
	capacity, err := strconv.Atoi(meta[fieldCapacity])
	if err != nil || capacity <= 0 {
		capacity = seed.DefaultFdnCapacity
	}
	return capacity, nil
}

func (s *SIM) withTx(ctx context.Context, fn func(tx *redis.Tx) error) error {
	for range maxTxRetries {
		err := s.client.Watch(ctx, fn, fdnKey(s.modemID))
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("FDN write on %s kept conflicting: %w", s.modemID, sentinel.ErrUnavailable)
}

func lowestFree(used []string, capacity int) int {
	taken := make(map[int]bool, len(used))
	for _, k := range used {
		if i, err := strconv.Atoi(k); err == nil {
			taken[i] = true
		}
	}
	for i := 1; i <= capacity; i++ {
		if !taken[i] {
			return i
		}
	}
	return 0
}

func decodeFdn(raw map[string]string) ([]models.FdnEntry, error) {
	out := make([]models.FdnEntry, 0, len(raw))
	for _, v := range raw {
		var e models.FdnEntry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			return nil, fmt.Errorf("decode fdn entry: %w", err)
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}
