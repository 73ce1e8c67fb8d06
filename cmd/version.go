package cmd

// Version is the versync build version. It is intended to be overridden at
// release time via ldflags:
//
//	go build -ldflags "-X github.com/versync-dev/versync/cmd.Version=1.2.3"
var Version = "0.0.0-dev"
