// Package version exposes build-time version information for svcresp.
//
// The variables are set with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/svcresp/version.Version=1.2.3 \
//	  -X github.com/ncobase/svcresp/version.Revision=abc123 \
//	  -X github.com/ncobase/svcresp/version.BuiltAt=2026-10-19T00:00:00Z" \
//	  ./cmd/svcresp
//
// When they are left unset, GetVersionInfo falls back to the module and VCS
// data the Go toolchain embeds in the binary.
package version
