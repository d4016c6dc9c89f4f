package fixture

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/henderiw/intervalheap/pkg/interval"
	"github.com/henderiw/intervalheap/pkg/pqueue"
	"k8s.io/apimachinery/pkg/labels"
)

// Fixture1 holds two intervals of length 5 and one of length 30.
func Fixture1() []interval.Interval {
	return []interval.Interval{
		interval.MustNew(15, 20),
		interval.MustNew(0, 30),
		interval.MustNew(5, 10),
	}
}

func ParseIntervals(ss []string) ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(ss))
	var errm error
	for _, s := range ss {
		i, err := interval.Parse(s)
		if err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		out = append(out, i)
	}
	if errm != nil {
		return nil, errm
	}
	return out, nil
}

type options struct {
	log logr.Logger
}

type Option func(*options)

// WithLogger logs every comparison the queue performs at V(4).
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

func newOptions(opts []Option) *options {
	o := &options{log: logr.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ExtractInOrder returns the intervals in ascending length, ties in ascending
// start. The input slice is left untouched.
func ExtractInOrder(intervals []interval.Interval, opts ...Option) []interval.Interval {
	o := newOptions(opts)
	q := pqueue.New[interval.Interval](interval.LoggingCompare(o.log))
	for _, i := range intervals {
		q.Push(i)
	}
	return q.Drain()
}

// ExtractEntries orders the entries like ExtractInOrder, keeping only those
// whose labels match selector. A nil selector matches everything.
func ExtractEntries(entries []interval.Entry, selector labels.Selector, opts ...Option) []interval.Entry {
	o := newOptions(opts)
	if selector == nil {
		selector = labels.Everything()
	}
	cmp := interval.LoggingCompare(o.log)
	q := pqueue.New[interval.Entry](func(a, b interval.Entry) int {
		return cmp(a.Interval(), b.Interval())
	})
	for _, e := range entries {
		if selector.Matches(e.Labels()) {
			q.Push(e)
		}
	}
	return q.Drain()
}
