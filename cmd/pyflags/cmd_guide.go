package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideText = `# pytest argument reference

What each form field emits on the pytest command line.

## General

| Field | Flag | Values |
|---|---|---|
| Traceback style | ` + "`--tb=<style>`" + ` | auto, long, short, native, no |
| Parallel workers | ` + "`--numprocesses=<n>`" + ` | auto, or a worker count |
| Verbosity | ` + "`-q` / `-v` / `-vv` / `-vvv`" + ` | quiet through very verbose |
| Capture output | ` + "`-s`" + ` | pass test stdout/stderr through |
| Show locals | ` + "`--showlocals`" + ` | local variables in tracebacks |

## Browser tests (playwright)

| Field | Flag | Values |
|---|---|---|
| Browser | ` + "`--browser=<name>`" + ` | chromium, firefox, webkit |
| Show browser window | ` + "`--headed`" + ` | run headed instead of headless |
| Slow motion | ` + "`--slowmo`" + ` | slow the browser down for watching |
| Tracing | ` + "`--tracing=<mode>`" + ` | on, off, retain-on-failure |
| Video | ` + "`--video=<mode>`" + ` | on, off, retain-on-failure |

## Debugging

| Field | Flag | Values |
|---|---|---|
| Wait for debugger attach | ` + "`--delve=1`" + ` | pause until a debugger attaches |

A field left at *default* emits nothing: pytest falls back to its own
defaults, pytest.ini, or pyproject.toml.

Unrecognized arguments in the settings file are dropped the next time
pyflags saves; it only manages the flags above.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Explain what each field does",
	RunE: func(cmd *cobra.Command, argv []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		out, err := renderer.Render(guideText)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
