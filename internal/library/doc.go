// Package library computes date-partitioned destination paths and performs
// verified moves into them.
//
// The path builder is a pure function from a resolved date to
// <root>/<YYYY>/<MM>_<MON>. The mover relocates one file at a time with
// pre/post verification: the source must still exist before the move, and
// afterwards the destination must exist while the source must not. Dry-run
// simulates without touching the filesystem, and a failed move always leaves
// the source file in place.
package library
