package args

import "strconv"

// ProcessCountOptions returns the selectable values for the parallel-worker
// field given a machine's core count: "auto" followed by "1" through the core
// count. Counts below one are clamped so the list always offers at least one
// worker. The caller supplies the core count; this package never probes the
// environment.
func ProcessCountOptions(coreCount int) []string {
	if coreCount < 1 {
		coreCount = 1
	}
	opts := make([]string, 0, coreCount+1)
	opts = append(opts, "auto")
	for i := 1; i <= coreCount; i++ {
		opts = append(opts, strconv.Itoa(i))
	}
	return opts
}
