package fpds_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/result"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](f, g) // works, but type-inference helps
	h := fpds.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := fpds.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := fpds.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestUnfold(t *testing.T) {
	halve := func(n int) result.Result[int] {
		if n%2 != 0 {
			return result.Empty[int]()
		}
		return result.Success(n / 2)
	}
	if odd := fpds.Unfold(48, halve); odd != 3 {
		t.Errorf("expected unfold of 48 to halve down to 3, is %d", odd)
	}
	if same := fpds.Unfold(7, halve); same != 7 {
		t.Errorf("expected unfold to return its seed if the first step fails, is %d", same)
	}
	failing := func(n int) result.Result[int] {
		if n >= 10 {
			return result.Failuref[int]("%d is large enough", n)
		}
		return result.Success(n + 4)
	}
	if n := fpds.Unfold(1, failing); n != 13 {
		t.Errorf("expected unfold to stop at 13, is %d", n)
	}
}

func TestPair(t *testing.T) {
	p := fpds.P(1, "one")
	if p.String() != "(1, one)" {
		t.Errorf("expected (1, one), is %s", p)
	}
	s, n := p.Swap().Decompose()
	if s != "one" || n != 1 {
		t.Errorf("expected swapped pair (one, 1), is (%s, %d)", s, n)
	}
}
