package version

import "os"

// commit is set at build time with
//
//	-ldflags "-X github.com/replicate/uuidtool/version.commit=$(git rev-parse HEAD)"
var commit string

// Version returns the short commit the binary was built from, falling back to
// COMMIT_SHA and then "unknown".
func Version() string {
	version := commit
	if version == "" {
		var ok bool
		version, ok = os.LookupEnv("COMMIT_SHA")
		if !ok || version == "" {
			version = "unknown"
		}
	}
	if len(version) > 7 {
		version = version[:7]
	}
	return version
}
