package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
)

var ErrInvalidInterval = errors.New("invalid interval")

// Interval is the half-open range [start, end).
type Interval struct {
	start uint64
	end   uint64
}

// New returns the interval [start, end). An end below start is rejected.
func New(start, end uint64) (Interval, error) {
	if end < start {
		return Interval{}, fmt.Errorf("%w: end %d is before start %d", ErrInvalidInterval, end, start)
	}
	return Interval{start: start, end: end}, nil
}

func MustNew(start, end uint64) Interval {
	i, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

func Parse(s string) (Interval, error) {
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return Interval{}, fmt.Errorf("no hyphen in interval %q", s)
	}
	from, to := s[:h], s[h+1:]
	start, err := strconv.ParseUint(from, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start %q in interval %q", from, s)
	}
	end, err := strconv.ParseUint(to, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid end %q in interval %q", to, s)
	}
	return New(start, end)
}

// Start returns the inclusive lower bound of r.
func (r Interval) Start() uint64 { return r.start }

// End returns the exclusive upper bound of r.
func (r Interval) End() uint64 { return r.end }

func (r Interval) Length() uint64 { return r.end - r.start }

func (r Interval) String() string {
	return fmt.Sprintf("%d-%d", r.start, r.end)
}

func (r Interval) IsValid() bool { return r.start <= r.end }

func (r Interval) IsZero() bool { return r == Interval{} }

func (r Interval) Equal(other Interval) bool {
	return r.start == other.start && r.end == other.end
}

// Compare returns an integer comparing two intervals.
// The result will be 0 if r == other, -1 if r < other, and +1 if r > other.
// Intervals sort first by length, then by start.
func (r Interval) Compare(other Interval) int {
	l1, l2 := r.Length(), other.Length()
	if l1 < l2 {
		return -1
	}
	if l1 > l2 {
		return 1
	}
	if r.start < other.start {
		return -1
	}
	if r.start > other.start {
		return 1
	}
	return 0
}

// Less reports whether r sorts before other.
func (r Interval) Less(other Interval) bool { return r.Compare(other) == -1 }

// Compare is the comparator for a max-first queue. Both levels compare b to a,
// so the shortest interval, and on equal length the one starting first, ranks
// greatest.
func Compare(a, b Interval) int {
	return b.Compare(a)
}

// LoggingCompare behaves like Compare and logs every comparison at V(4).
func LoggingCompare(log logr.Logger) func(a, b Interval) int {
	return func(a, b Interval) int {
		c := Compare(a, b)
		log.V(4).Info("compare", "a", a.String(), "b", b.String(), "result", c)
		return c
	}
}
