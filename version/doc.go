// Package version reports the apiruntime build version and the User-Agent
// the default transport sends.
//
// When apiruntime is built as a dependency, the version comes from the
// module's build info. Binaries may override it at compile time:
//
//	go build -ldflags "-X github.com/kbukum/apiruntime/version.Version=1.0.0"
package version
