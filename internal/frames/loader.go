package frames

import (
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/textutil"
	"gopkg.in/yaml.v3"
)

// Library is a set of named custom spinners loaded from a file.
type Library map[string]Set

// Get returns the named spinner from the library, or a built-in preset.
func (l Library) Get(name string) (Set, error) {
	if set, ok := l[name]; ok {
		return set, nil
	}
	return Lookup(name)
}

// LoadFile reads a YAML frames file:
//
//	spinners:
//	  blink:
//	    interval: 200
//	    frames: ["o", "-"]
func LoadFile(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read frames file: "+path,
			"Check the path is correct and the file is readable.")
	}
	return Parse(data)
}

// Parse decodes frames file contents. Frames are checked node by node so a
// non-string frame is reported with its line number.
func Parse(data []byte) (Library, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Frames file isn't valid YAML",
			"Check indentation and quoting.")
	}

	lib := Library{}
	if len(doc.Content) == 0 {
		return lib, nil
	}

	spinners := mappingValue(doc.Content[0], "spinners")
	if spinners == nil {
		return nil, errors.New(errors.ErrConfig,
			"Frames file has no 'spinners' section",
			"Put your spinners under a top-level 'spinners:' key.")
	}
	if spinners.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("'spinners' should be a map of names to spinners (line %d)", spinners.Line),
			"")
	}

	for i := 0; i+1 < len(spinners.Content); i += 2 {
		name := spinners.Content[i].Value
		set, err := decodeSetNode(name, spinners.Content[i+1])
		if err != nil {
			return nil, err
		}
		lib[name] = set
	}
	return lib, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func decodeSetNode(name string, n *yaml.Node) (Set, error) {
	var framesNode *yaml.Node
	var interval time.Duration

	switch n.Kind {
	case yaml.SequenceNode:
		framesNode = n
	case yaml.MappingNode:
		framesNode = mappingValue(n, "frames")
		if iv := mappingValue(n, "interval"); iv != nil {
			var ms int
			if err := iv.Decode(&ms); err != nil || ms < 0 {
				return Set{}, errors.New(errors.ErrConfig,
					fmt.Sprintf("Spinner '%s' has a bad interval on line %d", name, iv.Line),
					"The interval is a whole number of milliseconds, like 80.")
			}
			interval = time.Duration(ms) * time.Millisecond
		}
	default:
		return Set{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Spinner '%s' on line %d should be a list of frames or a map", name, n.Line),
			"")
	}

	if framesNode == nil || framesNode.Kind != yaml.SequenceNode {
		return Set{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Spinner '%s' needs a 'frames' list", name),
			"Add frames: [\"a\", \"b\"] to the spinner.")
	}

	list := make([]string, 0, len(framesNode.Content))
	for i, f := range framesNode.Content {
		if f.Kind != yaml.ScalarNode || f.ShortTag() != "!!str" {
			return Set{}, errors.New(errors.ErrValidation,
				fmt.Sprintf("Frame %d of spinner '%s' (line %d) isn't text", i, name, f.Line),
				"Quote the frame so YAML reads it as a string.")
		}
		list = append(list, f.Value)
	}

	set, err := Custom(list, interval)
	if err != nil {
		return Set{}, err
	}
	set.Name = name
	return set, nil
}

// Decode builds a Set from a dynamic value, as produced by a config decoder:
// a preset name, a list of frames, or a map with "frames" and "interval".
func Decode(v any, lib Library) (Set, error) {
	switch t := v.(type) {
	case nil:
		return Set{}, errors.New(errors.ErrConfig, "No spinner given", "")
	case Set:
		set, err := Custom(t.Frames, t.Interval)
		if err == nil && t.Name != "" {
			set.Name = t.Name
		}
		return set, err
	case string:
		if lib != nil {
			return lib.Get(t)
		}
		return Lookup(t)
	case []string:
		return Custom(t, 0)
	case []any:
		list, err := decodeFrames(t)
		if err != nil {
			return Set{}, err
		}
		return Custom(list, 0)
	case map[string]any:
		return decodeMap(t)
	}
	return Set{}, errors.New(errors.ErrValidation,
		fmt.Sprintf("A spinner can't be built from %T", v),
		"Use a preset name, a list of frames, or {frames: [...], interval: ms}.")
}

func decodeMap(m map[string]any) (Set, error) {
	raw, ok := m["frames"]
	if !ok {
		return Set{}, errors.New(errors.ErrConfig,
			"Custom spinner has no 'frames'",
			"Add frames: [\"a\", \"b\"] to the spinner.")
	}

	var list []string
	switch f := raw.(type) {
	case []string:
		list = f
	case []any:
		var err error
		if list, err = decodeFrames(f); err != nil {
			return Set{}, err
		}
	default:
		return Set{}, errors.New(errors.ErrValidation,
			fmt.Sprintf("'frames' should be a list, not %T", raw), "")
	}

	var interval time.Duration
	if iv, ok := m["interval"]; ok {
		ms, ok := toMillis(iv)
		if !ok {
			return Set{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Interval %v isn't a whole number of milliseconds", iv), "")
		}
		interval = ms
	}
	return Custom(list, interval)
}

func decodeFrames(items []any) ([]string, error) {
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := textutil.AsText(item)
		if !ok {
			return nil, errors.New(errors.ErrValidation,
				fmt.Sprintf("Frame %d isn't text (got %T)", i, item),
				"Frames have to be strings; quote numbers and symbols.")
		}
		out = append(out, s)
	}
	return out, nil
}

func toMillis(v any) (time.Duration, bool) {
	var ms int64
	switch n := v.(type) {
	case int:
		ms = int64(n)
	case int32:
		ms = int64(n)
	case int64:
		ms = n
	case uint:
		ms = int64(n)
	case uint64:
		ms = int64(n)
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		ms = int64(n)
	default:
		return 0, false
	}
	if ms < 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
