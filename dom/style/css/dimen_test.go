package css_test

import (
	"testing"

	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(80)
	var p float64
	switch m := pcnt.Match(); m {
	case m.IsKind(css.EM(1)):
		t.Errorf("expected percentage to not match kind em")
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if p != 80 {
		t.Errorf("expected 80%%, have %v", p)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	// now use it
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	d := css.JustDimen(dimen.PT * 10)
	// now use it
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 10*dimen.PT, distance)
	}

	rel := css.DimenPattern[string](css.REM(2))
	if kind := rel.OneOf(css.DimenPatterns[string]{FontRelative: "font", Default: "?"}); kind != "font" {
		t.Errorf("expected rem to be font-relative, is %q", kind)
	}
}

func TestParseDimen(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12px", "12px"},
		{"12pt", "16px"},
		{"1.5em", "1.5em"},
		{"2rem", "2rem"},
		{"50%", "50%"},
		{"auto", "auto"},
		{"0", "0px"},
		{"", "none"},
		{"1in", "96px"},
	}
	for _, test := range tests {
		d, err := css.ParseDimen(style.Property(test.in))
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.in, err)
			continue
		}
		if d.String() != test.want {
			t.Errorf("expected %q to parse as %s, is %s", test.in, test.want, d)
		}
	}
	for _, illegal := range []string{"px", "12furlongs", "abc", "1.2.3px"} {
		if _, err := css.ParseDimen(style.Property(illegal)); err == nil {
			t.Errorf("expected %q to be rejected", illegal)
		}
	}
}

func TestDimenResolve(t *testing.T) {
	fontSize := css.FromPx(20)
	root := css.FromPx(16)
	width := css.FromPx(400)
	tests := []struct {
		d    css.DimenT
		want float32
	}{
		{css.JustDimen(css.FromPx(3)), 3},
		{css.EM(1.5), 30},
		{css.REM(2), 32},
		{css.Percentage(25), 100},
	}
	for _, test := range tests {
		du, ok := test.d.Resolve(fontSize, root, width)
		if !ok || css.ToPx(du) != test.want {
			t.Errorf("expected %s to resolve to %vpx, is %vpx", test.d, test.want, css.ToPx(du))
		}
	}
	if _, ok := css.Auto().Resolve(fontSize, root, width); ok {
		t.Errorf("expected auto to not resolve to a fixed value")
	}
}
