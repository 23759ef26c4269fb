package sysinfo

// Fact patterns. Each one is applied to the raw text of a single source.
var (
	distroPattern = MustCompile(`
		DISTRIB_DESCRIPTION=
		"?                          # quoted when the description has spaces
		(?<distro_name>[^\n"]+)
		"?
		(?:\n|$)
	`)

	// uname -mrs prints "sysname release machine"; only the release is shown.
	kernelPattern = MustCompile(`
		(?<kernel_name>\S+)
		\s+
		(?<kernel_version>\S+)
	`)

	shellPattern = MustCompile(`
		(?<shell_name>[^/]+)$       # last path segment
	`)

	// Stops at the decimal point of /proc/uptime's first field.
	uptimePattern = MustCompile(`
		^(?<uptime_seconds>[0-9]+)\.
	`)

	memoryPattern = MustCompile(`
		Mem:
		\s+
		(?<total>[0-9]+)
		\s+
		(?<used>[0-9]+)
	`)
)
