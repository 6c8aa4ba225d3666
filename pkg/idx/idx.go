package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in its canonical 26 character form. IDs generated by this
// package sort lexically in creation order, which is what lets us use them
// as resumption cursors for event streams.
type ID string

// Zero is the empty ID. Cursors use it to mean "from the beginning".
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *generator
)

// generator hands out ULIDs from a shared monotonic source. The monotonic
// entropy is not safe for concurrent use so every call goes through mu.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	last    ulid.ULID
}

func (g *generator) next(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(t)
	if ms < g.last.Time() {
		// Clock went backwards, stay on the last timestamp so ordering holds.
		ms = g.last.Time()
	}

	u, err := ulid.New(ms, g.entropy)
	if err != nil {
		// Entropy within this millisecond is exhausted, roll to the next one.
		u = ulid.MustNew(ms+1, g.entropy)
	}
	g.last = u
	return ID(u.String())
}

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a new ID for the current time. IDs returned by successive
// calls are strictly increasing.
func New() ID {
	globalOnce.Do(initGlobal)
	return global.next(time.Now().UTC())
}

// NewAt generates an ID at the provided time. It does not take part in the
// monotonic sequence of New. Mostly useful in tests.
func NewAt(t time.Time) ID {
	return ID(ulid.MustNew(ulid.Timestamp(t.UTC()), rand.Reader).String())
}

// Parse validates s as a ULID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}

	return ID(strings.ToUpper(s)), nil
}

// MustParse parses or panics. Useful for hard-coded IDs in tests.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseCursor is like Parse but treats an empty string as Zero instead of
// an error, matching how clients send "no last event".
func ParseCursor(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return Zero, nil
	}
	return Parse(s)
}

func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }

// Time extracts the embedded timestamp. Zero or invalid IDs return the zero
// time.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}

// After reports whether id was generated after cursor. Every ID is after
// the Zero cursor.
func (id ID) After(cursor ID) bool {
	if cursor.IsZero() {
		return !id.IsZero()
	}
	return Compare(id, cursor) > 0
}

// Compare reports the ordering between a and b: -1 if a<b, 0 if equal and
// +1 if a>b.
func Compare(a, b ID) int {
	return strings.Compare(a.String(), b.String())
}
