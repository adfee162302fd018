// Package version reports build information for seqkit binaries.
//
// Values are injected at link time and fall back to the VCS stamps Go
// embeds in the binary:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=0.3.0" ./cmd/seqdemo
package version
