// Package controller contains the HTTP middlewares and debug handlers mounted
// by the API server: CORS, request ids with access logging, OpenTelemetry
// request metrics and pprof.
package controller
