// Package types defines the core types and interfaces used throughout
// bannerkit: the installer test and install results exchanged with the host,
// the copy instructions that make up a deployment plan, and the filesystem
// abstraction used wherever archive content must be read.
package types
