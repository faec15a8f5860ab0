package args

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldKind distinguishes toggles from enumerated selectors.
type FieldKind int

const (
	FieldBool FieldKind = iota
	FieldEnum
)

// FieldSpec describes one editable Configuration field. The form and the
// "set" command share this table so they agree on names, labels and domains.
type FieldSpec struct {
	// Name is the stable identifier accepted by "pyflags set".
	Name  string
	Label string
	Kind  FieldKind
	// Options is the enum domain without the absent sentinel. Nil for the
	// worker-count field, whose options come from ProcessCountOptions.
	Options []string

	get      func(*Configuration) string
	assign   func(*Configuration, string)
	validate func(string) error
}

// Value returns the field's current value in c: "true"/"false" for toggles,
// the enum text or "" for selectors.
func (f FieldSpec) Value(c Configuration) string {
	return f.get(&c)
}

// Fields returns the field table in form display order.
func Fields() []FieldSpec {
	return fieldTable()
}

// SetField updates the named field from its textual representation. Toggles
// accept true/false, on/off, yes/no, 1/0; selectors accept a domain value or
// "" / "default" to clear. Unknown fields and out-of-domain values error.
func (c *Configuration) SetField(name, value string) error {
	for _, f := range fieldTable() {
		if f.Name != name {
			continue
		}
		switch f.Kind {
		case FieldBool:
			b, err := parseToggle(value)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			f.assign(c, strconv.FormatBool(b))
		case FieldEnum:
			v := value
			if v == "default" {
				v = ""
			}
			if err := f.validate(v); err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			f.assign(c, v)
		}
		return nil
	}
	return fmt.Errorf("unknown field %q", name)
}

func parseToggle(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a toggle value: %q", value)
}

func memberOf(options []string) func(string) error {
	return func(v string) error {
		if v == "" {
			return nil
		}
		for _, o := range options {
			if v == o {
				return nil
			}
		}
		return fmt.Errorf("value %q not in domain %v", v, options)
	}
}

func validWorkerCount(v string) error {
	if v == "" || v == "auto" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("worker count must be %q or a non-negative integer, got %q", "auto", v)
	}
	return nil
}

func enumStrings[T ~string](domain []T) []string {
	out := make([]string, len(domain))
	for i, d := range domain {
		out[i] = string(d)
	}
	return out
}

func fieldTable() []FieldSpec {
	tracebacks := enumStrings(TracebackStyles)
	verbosities := enumStrings(Verbosities)
	browsers := enumStrings(Browsers)
	traceModes := enumStrings(TraceModes)

	return []FieldSpec{
		{
			Name: "traceback", Label: "Traceback style", Kind: FieldEnum, Options: tracebacks,
			get:      func(c *Configuration) string { return string(c.TracebackStyle) },
			assign:   func(c *Configuration, v string) { c.TracebackStyle = TracebackStyle(v) },
			validate: memberOf(tracebacks),
		},
		{
			Name: "numprocesses", Label: "Parallel workers", Kind: FieldEnum,
			get:      func(c *Configuration) string { return c.NumProcesses },
			assign:   func(c *Configuration, v string) { c.NumProcesses = v },
			validate: validWorkerCount,
		},
		{
			Name: "verbosity", Label: "Verbosity", Kind: FieldEnum, Options: verbosities,
			get:      func(c *Configuration) string { return string(c.Verbosity) },
			assign:   func(c *Configuration, v string) { c.Verbosity = Verbosity(v) },
			validate: memberOf(verbosities),
		},
		{
			Name: "capture-output", Label: "Capture output (-s)", Kind: FieldBool,
			get:    func(c *Configuration) string { return strconv.FormatBool(c.CaptureOutput) },
			assign: func(c *Configuration, v string) { c.CaptureOutput = v == "true" },
		},
		{
			Name: "show-locals", Label: "Show locals in tracebacks", Kind: FieldBool,
			get:    func(c *Configuration) string { return strconv.FormatBool(c.ShowLocals) },
			assign: func(c *Configuration, v string) { c.ShowLocals = v == "true" },
		},
		{
			Name: "browser", Label: "Browser", Kind: FieldEnum, Options: browsers,
			get:      func(c *Configuration) string { return string(c.Browser) },
			assign:   func(c *Configuration, v string) { c.Browser = Browser(v) },
			validate: memberOf(browsers),
		},
		{
			Name: "headed", Label: "Show browser window", Kind: FieldBool,
			get:    func(c *Configuration) string { return strconv.FormatBool(c.ShowBrowser) },
			assign: func(c *Configuration, v string) { c.ShowBrowser = v == "true" },
		},
		{
			Name: "slowmo", Label: "Slow motion", Kind: FieldBool,
			get:    func(c *Configuration) string { return strconv.FormatBool(c.SlowMotion) },
			assign: func(c *Configuration, v string) { c.SlowMotion = v == "true" },
		},
		{
			Name: "tracing", Label: "Tracing", Kind: FieldEnum, Options: traceModes,
			get:      func(c *Configuration) string { return string(c.Tracing) },
			assign:   func(c *Configuration, v string) { c.Tracing = TraceMode(v) },
			validate: memberOf(traceModes),
		},
		{
			Name: "video", Label: "Video", Kind: FieldEnum, Options: traceModes,
			get:      func(c *Configuration) string { return string(c.Video) },
			assign:   func(c *Configuration, v string) { c.Video = TraceMode(v) },
			validate: memberOf(traceModes),
		},
		{
			Name: "delve", Label: "Wait for debugger attach", Kind: FieldBool,
			get:    func(c *Configuration) string { return strconv.FormatBool(c.WaitForDebugger) },
			assign: func(c *Configuration, v string) { c.WaitForDebugger = v == "true" },
		},
	}
}
