package rest

import "github.com/katalvlaran/planar/closest"

// ClosestOptions exposes the options the server solves with.
func (s *Server) ClosestOptions() closest.Options { return s.closest }
