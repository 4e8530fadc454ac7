// Package registry holds named, ranked items and hands them back in rank
// order. Hosts use it to keep the installers an archive can be dispatched
// to; lower ranks are consulted first.
package registry
