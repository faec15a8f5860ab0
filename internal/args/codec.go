package args

import "strings"

// Token literals understood by the codec. Decode matches exactly or by
// prefix; Encode emits them in the fixed per-field order below.
const (
	tokTraceback    = "--tb="
	tokNumProcesses = "--numprocesses="
	tokQuiet        = "-q"
	tokVerbose      = "-v"
	tokMoreVerbose  = "-vv"
	tokVeryVerbose  = "-vvv"
	tokNoCapture    = "-s"
	tokShowLocals   = "--showlocals"
	tokHeaded       = "--headed"
	tokDelve        = "--delve=1"
	tokBrowser      = "--browser="
	tokSlowMo       = "--slowmo"
	tokTracing      = "--tracing="
	tokVideo        = "--video="
)

// Decode scans tokens left to right and builds a fresh Configuration.
// Unrecognized tokens are dropped without error. When mutually exclusive
// verbosity flags co-occur the last occurrence wins.
func Decode(tokens []string) Configuration {
	var c Configuration
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, tokTraceback):
			c.TracebackStyle = TracebackStyle(strings.TrimPrefix(tok, tokTraceback))
		case strings.HasPrefix(tok, tokNumProcesses):
			c.NumProcesses = strings.TrimPrefix(tok, tokNumProcesses)
		case tok == tokQuiet:
			c.Verbosity = VerbosityQuiet
		case tok == tokVerbose:
			c.Verbosity = VerbosityVerbose
		case tok == tokMoreVerbose:
			c.Verbosity = VerbosityMoreVerbose
		case tok == tokVeryVerbose:
			c.Verbosity = VerbosityVeryVerbose
		case tok == tokNoCapture:
			c.CaptureOutput = true
		case tok == tokShowLocals:
			c.ShowLocals = true
		case tok == tokHeaded:
			c.ShowBrowser = true
		case tok == tokDelve:
			c.WaitForDebugger = true
		case strings.HasPrefix(tok, tokBrowser):
			c.Browser = Browser(strings.TrimPrefix(tok, tokBrowser))
		case tok == tokSlowMo:
			c.SlowMotion = true
		case strings.HasPrefix(tok, tokTracing):
			c.Tracing = TraceMode(strings.TrimPrefix(tok, tokTracing))
		case strings.HasPrefix(tok, tokVideo):
			c.Video = TraceMode(strings.TrimPrefix(tok, tokVideo))
		}
	}
	return c
}

// Encode renders c as an argument list. Emission order is a function of field
// identity, never of how the Configuration was built, so equal configurations
// always encode to the identical sequence. Absent/false fields emit nothing.
// Enum values are emitted as-is; domain membership is the form's concern.
func Encode(c Configuration) []string {
	var tokens []string
	if c.TracebackStyle != TracebackDefault {
		tokens = append(tokens, tokTraceback+string(c.TracebackStyle))
	}
	if c.NumProcesses != "" {
		tokens = append(tokens, tokNumProcesses+c.NumProcesses)
	}
	switch c.Verbosity {
	case VerbosityQuiet:
		tokens = append(tokens, tokQuiet)
	case VerbosityVerbose:
		tokens = append(tokens, tokVerbose)
	case VerbosityMoreVerbose:
		tokens = append(tokens, tokMoreVerbose)
	case VerbosityVeryVerbose:
		tokens = append(tokens, tokVeryVerbose)
	}
	if c.CaptureOutput {
		tokens = append(tokens, tokNoCapture)
	}
	if c.ShowLocals {
		tokens = append(tokens, tokShowLocals)
	}
	if c.ShowBrowser {
		tokens = append(tokens, tokHeaded)
	}
	if c.WaitForDebugger {
		tokens = append(tokens, tokDelve)
	}
	if c.Browser != BrowserDefault {
		tokens = append(tokens, tokBrowser+string(c.Browser))
	}
	if c.SlowMotion {
		tokens = append(tokens, tokSlowMo)
	}
	if c.Tracing != TraceDefault {
		tokens = append(tokens, tokTracing+string(c.Tracing))
	}
	if c.Video != TraceDefault {
		tokens = append(tokens, tokVideo+string(c.Video))
	}
	return tokens
}
