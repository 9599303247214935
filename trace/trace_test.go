package trace

import (
	"testing"

	"github.com/dyntext/dyntext/template"
	"github.com/dyntext/dyntext/value"
)

func TestRecorder_CountsLifecycle(t *testing.T) {
	rec := NewRecorder()
	rec.Install()
	defer rec.Uninstall()

	v := value.Str("counted")
	v.Release()
	v.Release() // idempotent: must not count twice

	s := rec.Stats()
	if s.Creates[value.KindString] != 1 {
		t.Errorf("string creates = %d, want 1", s.Creates[value.KindString])
	}
	if s.Releases[value.KindString] != 1 {
		t.Errorf("string releases = %d, want 1", s.Releases[value.KindString])
	}
	if len(rec.Leaks()) != 0 {
		t.Errorf("Leaks() = %v, want none", rec.Leaks())
	}
}

func TestRecorder_DetectsLeak(t *testing.T) {
	rec := NewRecorder()
	rec.Install()
	defer rec.Uninstall()

	_ = value.Str("never released")

	leaks := rec.Leaks()
	if leaks[value.KindString] != 1 {
		t.Errorf("Leaks() = %v, want one outstanding string", leaks)
	}
}

func TestRecorder_ArrayBalance(t *testing.T) {
	rec := NewRecorder()
	rec.Install()
	defer rec.Uninstall()

	a, _ := value.NewArray(0)
	a.Append(value.Int(1))
	a.Free()

	if out := rec.OutstandingArrays(); out != 0 {
		t.Errorf("OutstandingArrays = %d, want 0", out)
	}
	s := rec.Stats()
	if s.ArrayCreates != 1 || s.ArrayFrees != 1 {
		t.Errorf("array counters = %d/%d, want 1/1", s.ArrayCreates, s.ArrayFrees)
	}
}

func TestRecorder_RenderReleasesEverything(t *testing.T) {
	rec := NewRecorder()
	rec.Install()
	defer rec.Uninstall()

	inner, _ := value.NewArray(0)
	inner.Append(value.Str("x"))

	_, err := template.RenderString("{} {}", []value.Value{
		value.Int(1),
		value.Arr(inner),
	})
	if err != nil {
		t.Fatal(err)
	}

	if leaks := rec.Leaks(); len(leaks) != 0 {
		t.Errorf("render leaked values: %v", leaks)
	}
	if out := rec.OutstandingArrays(); out != 0 {
		t.Errorf("render leaked %d arrays", out)
	}
}
