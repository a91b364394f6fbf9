package frames

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/textutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCycles(t *testing.T) {
	for _, n := range []int{1, 2, 4, 10, 97} {
		frames := make([]string, n)
		for i := range frames {
			frames[i] = strings.Repeat("x", i+1)
		}
		set, err := Custom(frames, 0)
		require.NoError(t, err)

		idx := 0
		for i := 0; i < n; i++ {
			idx = Next(idx, set.Len())
		}
		assert.Equal(t, 0, idx, "length %d should wrap back to frame 0", n)
		assert.Equal(t, frames[0], set.Frame(idx))
	}
}

func TestNextSingleFrameNeverChanges(t *testing.T) {
	set, err := Custom([]string{"*"}, 0)
	require.NoError(t, err)

	idx := 0
	for i := 0; i < 5; i++ {
		idx = Next(idx, set.Len())
		assert.Equal(t, "*", set.Frame(idx))
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 0, Wrap(0, 0))
	assert.Equal(t, 2, Wrap(7, 5))
	assert.Equal(t, 4, Wrap(-1, 5))
	assert.Equal(t, 0, Next(3, 0))
}

func TestLookup(t *testing.T) {
	set, err := Lookup("dots")
	require.NoError(t, err)
	assert.Equal(t, "dots", set.Name)
	assert.Equal(t, 80*time.Millisecond, set.Interval)
	assert.Len(t, set.Frames, 10)

	// Callers get a copy.
	set.Frames[0] = "changed"
	again, _ := Lookup("dots")
	assert.Equal(t, "⠋", again.Frames[0])
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("dotz")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "dotz")
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			set, err := Lookup(name)
			require.NoError(t, err)
			assert.NotEmpty(t, set.Frames)
			assert.Greater(t, set.Interval, time.Duration(0))
			for _, f := range set.Frames {
				assert.NotContains(t, f, "\n")
			}
		})
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "dots")
	assert.Contains(t, names, "line")
	assert.IsNonDecreasing(t, names)
}

func TestDefaultAndResolve(t *testing.T) {
	assert.Equal(t, "dots", Default(true).Name)
	assert.Equal(t, "line", Default(false).Name)

	set, err := Resolve("", false)
	require.NoError(t, err)
	assert.Equal(t, "line", set.Name)

	set, err = Resolve("arc", false)
	require.NoError(t, err)
	assert.Equal(t, "arc", set.Name)
}

func TestCustom(t *testing.T) {
	tests := []struct {
		name     string
		frames   []string
		interval time.Duration
		wantErr  bool
		wantIvl  time.Duration
	}{
		{name: "empty", frames: nil, wantErr: true},
		{name: "empty slice", frames: []string{}, wantErr: true},
		{name: "multi-line frame", frames: []string{"a", "b\nc"}, wantErr: true},
		{name: "default interval", frames: []string{"a", "b"}, wantIvl: DefaultInterval},
		{name: "explicit interval", frames: []string{"a"}, interval: 30 * time.Millisecond, wantIvl: 30 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Custom(tt.frames, tt.interval)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.frames, set.Frames)
			assert.Equal(t, tt.wantIvl, set.Interval)
		})
	}
}

func TestMaxWidth(t *testing.T) {
	set, err := Lookup("bouncingBar")
	require.NoError(t, err)
	assert.Equal(t, 6, set.MaxWidth(textutil.Width))

	moon, _ := Lookup("moon")
	assert.Equal(t, 3, moon.MaxWidth(textutil.Width))
}

func TestStatusGlyphs(t *testing.T) {
	tests := []struct {
		status   Status
		unicode  string
		fallback string
		name     string
	}{
		{StatusSuccess, "✔", "√", "success"},
		{StatusFail, "✖", "×", "fail"},
		{StatusWarning, "⚠", "‼", "warning"},
		{StatusInfo, "ℹ", "i", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unicode, tt.status.Glyph(true))
			assert.Equal(t, tt.fallback, tt.status.Glyph(false))
			assert.Equal(t, tt.name, tt.status.String())
		})
	}

	assert.Equal(t, " ", Status(99).Glyph(true))
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("warn")
	assert.True(t, ok)
	assert.Equal(t, StatusWarning, s)

	s, ok = ParseStatus("error")
	assert.True(t, ok)
	assert.Equal(t, StatusFail, s)

	_, ok = ParseStatus("meh")
	assert.False(t, ok)
}

func TestTextFrames(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		assert.Equal(t, []string{"Loading"}, TextFrames("  Loading  ", 20, AnimationBounce))
	})

	t.Run("no animation keeps whole text", func(t *testing.T) {
		assert.Equal(t, []string{"Loading data"}, TextFrames("Loading data", 4, AnimationNone))
	})

	t.Run("bounce", func(t *testing.T) {
		got := TextFrames("abcdef", 4, AnimationBounce)
		assert.Equal(t, []string{"abcd", "bcde", "cdef", "cdef", "bcde", "abcd"}, got)
	})

	t.Run("marquee", func(t *testing.T) {
		got := TextFrames("abcdef", 4, AnimationMarquee)
		require.Len(t, got, 7)
		assert.Equal(t, "abcd", got[0])
		assert.Equal(t, "ef a", got[4])
		assert.Equal(t, " abc", got[6])
		for _, f := range got {
			assert.Equal(t, 4, textutil.Width(f))
		}
	})
}

func TestParseAnimation(t *testing.T) {
	for name, want := range map[string]Animation{"": AnimationNone, "none": AnimationNone, "Bounce": AnimationBounce, "marquee": AnimationMarquee} {
		got, err := ParseAnimation(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseAnimation("spin")
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Equal(t, "marquee", AnimationMarquee.String())
}

func TestParse(t *testing.T) {
	lib, err := Parse([]byte(`
spinners:
  blink:
    interval: 200
    frames: ["o", "-"]
  plain: ["a", "b", "c"]
`))
	require.NoError(t, err)
	require.Len(t, lib, 2)

	blink := lib["blink"]
	assert.Equal(t, "blink", blink.Name)
	assert.Equal(t, []string{"o", "-"}, blink.Frames)
	assert.Equal(t, 200*time.Millisecond, blink.Interval)
	assert.Equal(t, DefaultInterval, lib["plain"].Interval)

	set, err := lib.Get("arc")
	require.NoError(t, err)
	assert.Equal(t, "arc", set.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
		msg  string
	}{
		{name: "bad yaml", yaml: "spinners: [", code: errors.ErrConfig},
		{name: "no section", yaml: "other: 1", code: errors.ErrConfig, msg: "no 'spinners'"},
		{name: "empty frames", yaml: "spinners:\n  x:\n    frames: []", code: errors.ErrConfig},
		{name: "number frame", yaml: "spinners:\n  x:\n    frames: [a, 1]", code: errors.ErrValidation, msg: "line 3"},
		{name: "nested frame", yaml: "spinners:\n  x: [[a]]", code: errors.ErrValidation},
		{name: "bad interval", yaml: "spinners:\n  x:\n    interval: fast\n    frames: [a]", code: errors.ErrConfig, msg: "interval"},
		{name: "missing frames", yaml: "spinners:\n  x:\n    interval: 10", code: errors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	lib, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, lib)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spinners:\n  s: ['|', '-']\n"), 0o644))

	lib, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"|", "-"}, lib["s"].Frames)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestDecode(t *testing.T) {
	set, err := Decode("line", nil)
	require.NoError(t, err)
	assert.Equal(t, "line", set.Name)

	set, err = Decode([]any{"a", []byte("b")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, set.Frames)

	set, err = Decode(map[string]any{"frames": []any{"x", "y"}, "interval": 40}, nil)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Millisecond, set.Interval)

	set, err = Decode(map[string]any{"frames": []string{"x"}, "interval": float64(25)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, set.Interval)

	lib := Library{"mine": {Name: "mine", Frames: []string{"m"}, Interval: time.Second}}
	set, err = Decode("mine", lib)
	require.NoError(t, err)
	assert.Equal(t, []string{"m"}, set.Frames)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		v    any
		code string
	}{
		{"nil", nil, errors.ErrConfig},
		{"unknown preset", "nope", errors.ErrConfig},
		{"number", 42, errors.ErrValidation},
		{"non-text frame", []any{"a", 3}, errors.ErrValidation},
		{"empty list", []any{}, errors.ErrConfig},
		{"map without frames", map[string]any{"interval": 10}, errors.ErrConfig},
		{"frames not a list", map[string]any{"frames": "abc"}, errors.ErrValidation},
		{"fractional interval", map[string]any{"frames": []any{"a"}, "interval": 1.5}, errors.ErrConfig},
		{"negative interval", map[string]any{"frames": []any{"a"}, "interval": -5}, errors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.v, nil)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}
