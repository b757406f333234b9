// ABOUTME: Root package providing version information and package documentation
// ABOUTME: The collector lives in gc; graph analysis in graph; dumps in heapdump

// Package arenagc is an arena-based garbage collector for graph-shaped data
// with cycles. Package gc holds the collector itself, package graph the
// analysis of arena snapshots (paths to roots, dominators, retained sizes),
// and package heapdump the JSON dump format read by cmd/gcinspect.
package arenagc

// Version is the semantic version of arenagc
const Version = "0.2.0-dev"
