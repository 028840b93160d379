// Package gate admits at most one outstanding caller request per phonebook
// instance. A request that finds the gate held is rejected at once; nothing
// is queued and duplicate requests are not coalesced.
package gate

import (
	"sync"
	"sync/atomic"

	dErrors "phonebookd/pkg/domain-errors"
)

// Kind names the operation holding the gate.
type Kind string

const (
	KindExport    Kind = "export"
	KindFdnRead   Kind = "fdn_read"
	KindFdnInsert Kind = "fdn_insert"
	KindFdnUpdate Kind = "fdn_update"
	KindFdnDelete Kind = "fdn_delete"
)

// Gate is a single-slot admission token.
type Gate struct {
	slot   chan struct{}
	holder atomic.Pointer[Kind]
}

func New() *Gate {
	return &Gate{slot: make(chan struct{}, 1)}
}

// Acquire takes the gate for kind or fails with CodeBusy.
func (g *Gate) Acquire(kind Kind) (*Token, error) {
	select {
	case g.slot <- struct{}{}:
		g.holder.Store(&kind)
		return &Token{gate: g, kind: kind}, nil
	default:
		return nil, dErrors.New(dErrors.CodeBusy, "another phonebook operation is in progress")
	}
}

// Holder reports the kind currently holding the gate.
func (g *Gate) Holder() (Kind, bool) {
	k := g.holder.Load()
	if k == nil {
		return "", false
	}
	return *k, true
}

// Token is proof of admission. Release is idempotent.
type Token struct {
	gate *Gate
	kind Kind
	once sync.Once
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) Release() {
	t.once.Do(func() {
		t.gate.holder.Store(nil)
		<-t.gate.slot
	})
}
