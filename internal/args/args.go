// Package args models a pytest invocation as a structured Configuration and
// converts it to and from the flat argument list persisted in workspace
// settings. Both directions are pure and total: Decode tolerates any input,
// Encode emits a canonical ordering.
package args

// TracebackStyle selects pytest's traceback rendering (--tb).
type TracebackStyle string

const (
	TracebackDefault TracebackStyle = ""
	TracebackAuto    TracebackStyle = "auto"
	TracebackLong    TracebackStyle = "long"
	TracebackShort   TracebackStyle = "short"
	TracebackNative  TracebackStyle = "native"
	TracebackNone    TracebackStyle = "no"
)

// Verbosity maps to pytest's -q/-v flag family.
type Verbosity string

const (
	VerbosityDefault     Verbosity = ""
	VerbosityQuiet       Verbosity = "quiet"
	VerbosityVerbose     Verbosity = "verbose"
	VerbosityMoreVerbose Verbosity = "more-verbose"
	VerbosityVeryVerbose Verbosity = "very-verbose"
)

// Browser selects the playwright browser (--browser).
type Browser string

const (
	BrowserDefault  Browser = ""
	BrowserChromium Browser = "chromium"
	BrowserFirefox  Browser = "firefox"
	BrowserWebkit   Browser = "webkit"
)

// TraceMode is the shared domain of --tracing and --video.
type TraceMode string

const (
	TraceDefault         TraceMode = ""
	TraceOn              TraceMode = "on"
	TraceOff             TraceMode = "off"
	TraceRetainOnFailure TraceMode = "retain-on-failure"
)

// Enumeration domains offered by the form and accepted by SetField. The
// absent sentinel is not listed; callers render it as "default".
var (
	TracebackStyles = []TracebackStyle{TracebackAuto, TracebackLong, TracebackShort, TracebackNative, TracebackNone}
	Verbosities     = []Verbosity{VerbosityQuiet, VerbosityVerbose, VerbosityMoreVerbose, VerbosityVeryVerbose}
	Browsers        = []Browser{BrowserChromium, BrowserFirefox, BrowserWebkit}
	TraceModes      = []TraceMode{TraceOn, TraceOff, TraceRetainOnFailure}
)

// Configuration is the decoded form of a pytest argument list. The zero value
// means "run with tool defaults": empty enums and false booleans emit no
// tokens, so the zero Configuration encodes to an empty list.
type Configuration struct {
	TracebackStyle TracebackStyle
	// NumProcesses is "auto" or a non-negative integer as text; "" means the
	// runner picks.
	NumProcesses    string
	Verbosity       Verbosity
	CaptureOutput   bool // -s
	ShowLocals      bool // --showlocals
	Browser         Browser
	ShowBrowser     bool // --headed
	SlowMotion      bool // --slowmo
	Tracing         TraceMode
	Video           TraceMode
	WaitForDebugger bool // --delve=1
}

// IsZero reports whether every field is at its absent/false default.
func (c Configuration) IsZero() bool {
	return c == Configuration{}
}
