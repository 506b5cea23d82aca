package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where RegisterPprof mounts the profiling endpoints.
// pprof.Index resolves named profiles relative to this exact path.
const PprofPrefix = "/debug/pprof/"

// RegisterPprof mounts the net/http/pprof handlers on mux under PprofPrefix.
func RegisterPprof(mux *http.ServeMux) {
	mux.HandleFunc("GET "+PprofPrefix, pprof.Index)
	mux.HandleFunc("GET "+PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc("GET "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("POST "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPrefix+"trace", pprof.Trace)
}
