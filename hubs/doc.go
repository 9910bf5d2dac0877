// Package hubs picks well-separated high-density locations ("hubs") from a
// cloud of trajectory samples.
//
// Points are binned on a regular grid of BinWidth×BinHeight cells anchored
// at the floored minimum of the cloud. Each bin's density is the number of
// points in it and its 8 neighbours (Conn8 neighbourhood). Bins are ranked
// by density, densest first, ties broken by (column, row) ascending, and
// their centres are accepted greedily while they lie at least Radius away
// from every hub accepted so far, until K hubs are found or bins run out.
//
// Accepted hubs are indexed in an R-tree so the separation test stays
// sublinear in the number of hubs.
package hubs
