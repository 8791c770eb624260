package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyGroupSetGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	pg := NewPropertyGroup(PGColor)
	pg.Set("color", " Red ")
	p, ok := pg.Get("color")
	assert.True(t, ok)
	assert.Equal(t, Property("red"), p)
	pg.Add("color", "blue") // must not overwrite
	p, _ = pg.Get("color")
	assert.Equal(t, Property("red"), p)
	assert.True(t, pg.IsSet("color"))
	assert.False(t, pg.IsSet("background-color"))
}

func TestPropertyGroupCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	parent := NewPropertyGroup(PGColor)
	parent.Set("color", "green")
	child, forked := parent.ForkOnProperty("background-color", "white", true)
	require.True(t, forked)
	// ForkOnProperty with cascade links to the ancestor holding the key;
	// there is none for background-color.
	assert.Nil(t, child.Parent)
	child.Parent = parent
	assert.Equal(t, parent, child.Cascade("color"))
	assert.Nil(t, child.Cascade("font-size"))
}

func TestSplitCompoundProperty(t *testing.T) {
	kv, err := SplitCompoundProperty("margin", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"margin-top", "1px"},
		{"margin-right", "2px"},
		{"margin-bottom", "1px"},
		{"margin-left", "2px"},
	}, kv)
	kv, err = SplitCompoundProperty("border-radius", "3px")
	require.NoError(t, err)
	assert.Equal(t, "border-top-left-radius", kv[0].Key)
	_, err = SplitCompoundProperty("color", "red")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("padding", "1 2 3 4 5")
	assert.Error(t, err)
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("color", "red")
	pmap.AddCompound("padding", "4px")
	pmap.Add("funny-margin", "big")
	assert.Equal(t, []string{PGColor, PGPadding, PGX}, pmap.GroupNames())
	p, ok := pmap.Property("padding-left")
	assert.True(t, ok)
	assert.Equal(t, Property("4px"), p)
	p, _ = pmap.Property("funny-margin")
	assert.Equal(t, Property("big"), p)
	//
	other := NewPropertyMap()
	other.Add("color", "blue")
	pmap.Merge(other)
	p, _ = pmap.Property("color")
	assert.Equal(t, Property("blue"), p)
	var nilmap *PropertyMap
	assert.Equal(t, 0, nilmap.Size())
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	assert.Equal(t, Property("none"), GetUserAgentDefaultProperty("head", "display"))
	assert.Equal(t, Property("block"), GetUserAgentDefaultProperty("div", "display"))
	assert.Equal(t, Property("inline"), GetUserAgentDefaultProperty("span", "display"))
	assert.Equal(t, Property("static"), GetUserAgentDefaultProperty("div", "position"))
	assert.Equal(t, Property("16px"), GetUserAgentDefaultProperty("div", "font-size"))
	assert.Equal(t, Property("serif"), GetUserAgentDefaultProperty("div", "font-family"))
	assert.Equal(t, NullStyle, GetUserAgentDefaultProperty("div", "no-such-property"))
	assert.True(t, IsCascading("font-family"))
	assert.False(t, IsCascading("position"))
}

func TestColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	tests := []struct {
		in  string
		out color.RGBA
	}{
		{"black", color.RGBA{0, 0, 0, 255}},
		{"LightBlue", color.RGBA{0xad, 0xd8, 0xe6, 255}},
		{"#f00", color.RGBA{255, 0, 0, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"rgb(0, 0, 255)", color.RGBA{0, 0, 255, 255}},
		{"rgb(100%, 0%, 0%)", color.RGBA{255, 0, 0, 255}},
		{"hsl(120, 100%, 50%)", color.RGBA{0, 255, 0, 255}},
		{"transparent", color.RGBA{}},
	}
	for _, test := range tests {
		c, ok := Property(test.in).Color().Get()
		if !ok {
			t.Errorf("expected %q to be a color", test.in)
			continue
		}
		if c != test.out {
			t.Errorf("expected %q to be %v, is %v", test.in, test.out, c)
		}
	}
	for _, illegal := range []string{"", "DfTextColor", "#12", "rgb(1,2)", "hsl(a, b, c)"} {
		if !Property(illegal).Color().IsNothing() {
			t.Errorf("expected %q to not be a color", illegal)
		}
	}
	half, ok := Property("rgba(255, 0, 0, 0.5)").Color().Get()
	require.True(t, ok)
	assert.Equal(t, uint8(128), half.A)
	assert.Equal(t, "#ff0000", ColorString(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, "transparent", ColorString(color.RGBA{}))
}

func TestFontFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	assert.Equal(t, GenericFontFamily(Serif), Property("").FontFamily())
	assert.Equal(t, GenericFontFamily(SansSerif), Property("sans-serif").FontFamily())
	assert.Equal(t, GenericFontFamily(UIMonospace), ParseFontFamily("ui-monospace, monospace"))
	ff := ParseFontFamily(`"Open Sans", Arial, sans-serif`)
	assert.True(t, ff.IsCustom())
	assert.Equal(t, "Open Sans", ff.Name)
	assert.Equal(t, CustomFontFamily("serif"), ParseFontFamily(`'serif'`))
	assert.Equal(t, "fangsong", ParseFontFamily("fangsong").String())
}
