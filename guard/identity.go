package guard

import (
	"sync"

	authgate "github.com/placelist/authgate"
	"github.com/placelist/authgate/jwt"
)

// Snapshot is the observed identity state consumed by guards. Loading is
// true from construction until the first Resolve or Reset; guards must
// stay pending for as long as it holds.
type Snapshot struct {
	Loading         bool
	User            *jwt.Claims
	IsAuthenticated bool
	IsAdmin         bool
}

// Identity owns the process-wide identity snapshot. It is the single
// writer: login, refresh, and logout flows call Resolve and Reset, and
// those writes are serialized internally. Any number of guards may read
// and subscribe concurrently.
type Identity struct {
	mu   sync.Mutex
	snap Snapshot
	subs map[uint64]func(Snapshot)
	next uint64
}

// NewIdentity returns an Identity in the loading state.
func NewIdentity() *Identity {
	return &Identity{
		snap: Snapshot{Loading: true},
		subs: make(map[uint64]func(Snapshot)),
	}
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (id *Identity) Snapshot() Snapshot {
	id.mu.Lock()
	defer id.mu.Unlock()
	return id.snap
}

// Resolve publishes the outcome of credential verification against the
// backend. A nil user resolves to an unauthenticated snapshot.
func (id *Identity) Resolve(user *jwt.Claims) {
	next := Snapshot{User: user}
	if user != nil {
		next.IsAuthenticated = true
		next.IsAdmin = authgate.Privileged(user.IsStaff, user.IsSuperuser)
	}
	id.publish(next)
}

// Reset clears the snapshot on logout. The result is a resolved,
// unauthenticated state, not a return to loading.
func (id *Identity) Reset() {
	id.publish(Snapshot{})
}

// Subscribe registers fn for future snapshot changes and returns a cancel
// that releases the registration. fn fires only when the snapshot actually
// changes, never once per read. Cancel is idempotent and must be called on
// guard teardown.
func (id *Identity) Subscribe(fn func(Snapshot)) (cancel func()) {
	id.mu.Lock()
	key := id.next
	id.next++
	id.subs[key] = fn
	id.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			id.mu.Lock()
			delete(id.subs, key)
			id.mu.Unlock()
		})
	}
}

func (id *Identity) publish(next Snapshot) {
	id.mu.Lock()
	if next == id.snap {
		id.mu.Unlock()
		return
	}
	id.snap = next
	fns := make([]func(Snapshot), 0, len(id.subs))
	for _, fn := range id.subs {
		fns = append(fns, fn)
	}
	id.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
