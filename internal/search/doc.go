// Package search implements an incremental A* search over a grid.Grid.
//
// An Engine advances one expansion per Step so a driver can render the
// frontier and visited sets between ticks. Run loops Step until the search
// reaches a terminal status.
//
// Movement is 4-connected with unit edge cost and the default heuristic is
// Manhattan distance. The frontier is kept in discovery order and the
// minimum-f scan keeps the first minimum it sees, so ties always resolve to
// the earliest discovered cell.
package search
