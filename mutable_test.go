package classes

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMutableChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	m := FromMutable("a bb ccc dddd eeeee ffffff").
		With("x", "yy", "zzz").
		Without("a").
		Filter(func(class string) bool { return len(class)%2 == 0 })
	if m.String() != "bb dddd ffffff yy" {
		t.Errorf("expected 'bb dddd ffffff yy', got %q", m)
	}
}

func TestMutableReturnsReceiver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	m := FromMutable("a b c")
	if r := m.With("d"); r != m || m.String() != "a b c d" {
		t.Errorf("With: expected receiver to be returned and modified, is %q", m)
	}
	if r := m.With("a", "e"); r != m || m.String() != "a b c d e" {
		t.Errorf("With: expected present classes to keep their position, is %q", m)
	}
	if r := m.Without("b"); r != m || m.String() != "a c d e" {
		t.Errorf("Without: expected receiver to be returned and modified, is %q", m)
	}
	if r := m.Filter(func(c string) bool { return c != "c" }); r != m || m.String() != "a d e" {
		t.Errorf("Filter: expected receiver to be returned and modified, is %q", m)
	}
	if r := m.Clear(); r != m || m.Count() != 0 || m.String() != "" {
		t.Errorf("Clear: expected receiver to be returned and emptied, is %q", m)
	}
	if r := m.With("z"); r != m || !reflect.DeepEqual(m.Values(), []string{"z"}) {
		t.Errorf("expected cleared list to be usable, is %q", m)
	}
}

func TestMutableCopyOnConstruct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	src := FromMutable("a b c")
	dst := FromMutable(src)
	if dst == src {
		t.Fatalf("expected a new list")
	}
	dst.With("d").Without("a")
	if src.String() != "a b c" {
		t.Errorf("modifying the copy changed the source: %q", src)
	}
	src.Clear()
	if dst.String() != "b c d" {
		t.Errorf("modifying the source changed the copy: %q", dst)
	}
}

func TestMutableFromImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	c := From("a b")
	m := FromMutable(c).With("c")
	if c.String() != "a b" || m.String() != "a b c" {
		t.Errorf("expected independent lists, got %q and %q", c, m)
	}
	d := From(m)
	m.Without("a")
	if d.String() != "a b c" {
		t.Errorf("immutable list changed with its mutable source: %q", d)
	}
}

func TestMutableZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	var m MutableClasses
	if m.Count() != 0 || m.Has("a") {
		t.Errorf("expected zero value to be empty")
	}
	m.With("a b").Without("b")
	if m.String() != "a" {
		t.Errorf("expected zero value to be usable, got %q", m.String())
	}
	var nilList *MutableClasses
	if nilList.Count() != 0 || nilList.String() != "" {
		t.Errorf("expected nil list to be empty")
	}
}

func TestMutableNilReceiver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	var m *MutableClasses
	if r := m.With("a").Without("b").Filter(func(string) bool { return true }).Clear(); r != nil {
		t.Errorf("expected modifying a nil list to return nil, got %q", r)
	}
	if m.Count() != 0 || m.Has("a") {
		t.Errorf("expected nil list to stay empty")
	}
}

func TestMutableFilterPanicPropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	m := FromMutable("a b")
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected predicate panic to propagate unchanged, got %v", r)
		}
		if m.String() != "a b" {
			t.Errorf("receiver changed by failing filter: %q", m)
		}
	}()
	m.Filter(func(string) bool { panic("boom") })
}

func TestMutableIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	m := FromMutable("a b c")
	it := m.Iterator()
	m.Without("b")
	var got []string
	for it.Next() {
		got = append(got, it.Token())
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected iterator to work on a snapshot, got %v", got)
	}
	var seen []string
	m.Each(func(_ int, class string) {
		seen = append(seen, class)
		m.Without(class)
	})
	if !reflect.DeepEqual(seen, []string{"a", "c"}) || m.Count() != 0 {
		t.Errorf("expected Each to visit a snapshot, saw %v, left %q", seen, m)
	}
}

func TestMutableInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	m := FromMutable("a b", []string{"b", "c"}).With("d a", []interface{}{"e"})
	values := m.Values()
	if m.Count() != len(values) {
		t.Errorf("count %d differs from number of values %d", m.Count(), len(values))
	}
	seen := map[string]bool{}
	for _, v := range values {
		if seen[v] {
			t.Errorf("duplicate class %q", v)
		}
		seen[v] = true
		if !m.Has(v) {
			t.Errorf("class %q not reported by Has", v)
		}
	}
}
