// Package routing orchestrates the pathfinding, tspmatrix, and
// tspsolve packages behind two facades — PathfindingFacade and
// TspFacade — each exposing a synchronous call and an asynchronous
// dispatch that runs on a background goroutine and delivers its
// outcome via a one-shot event channel.
//
// Every structured failure surfaces as a *RoutingError rather than a
// bare sentinel, since callers need to recover offending node ids,
// missing or unreachable waypoint lists, and suggested recoveries —
// payloads a sentinel error cannot carry.
package routing
