// Package filesystem provides the read-only views bannerkit reads staging
// directories and game installs through. Both the host filesystem and
// in-memory staging areas are served by afero.
package filesystem
