package interval

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Interval() Interval
	Labels() labels.Set
	String() string
	Equal(e2 Entry) bool
}

type entry struct {
	interval Interval
	labels   labels.Set
}

func (r entry) Interval() Interval { return r.interval }
func (r entry) Labels() labels.Set { return r.labels }
func (r entry) String() string {
	return fmt.Sprintf("interval: %s, labels: %s", r.interval.String(), r.labels.String())
}
func (r entry) Equal(e2 Entry) bool {
	return r.interval.Equal(e2.Interval()) &&
		r.labels.String() == e2.Labels().String()
}

func NewEntry(i Interval, l labels.Set) Entry {
	return entry{
		interval: i,
		labels:   l,
	}
}
