// Package production contains the ProductionOrder aggregate, the ordered
// manufacturing Stage enumeration with its derived completion percentages,
// and the independent order Status enumeration.
//
// The stage machine is the richest of the lifecycle engines: advancing to a
// stage recomputes the completion percentage from a fixed table and forces
// the status, and the terminal stage additionally stamps the actual
// completion date. Stage targets are not checked against the documented
// ordering; regressions and jumps are accepted.
package production
