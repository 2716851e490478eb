// Package rest exposes the planar algorithms over HTTP.
//
// Routes (all JSON unless noted):
//
//	GET  /api/v1/ping     liveness
//	POST /api/v1/closest  closest pair of {"points": [...]}
//	POST /api/v1/hull     convex hull of {"points": [...]}
//	POST /api/v1/render   PNG scatter chart (image/png)
//	GET  /metrics         Prometheus exposition
package rest
