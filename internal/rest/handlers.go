package rest

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/hull"
	"github.com/katalvlaran/planar/render"
)

var (
	// errTooManyPoints rejects bodies above Config.MaxPoints.
	errTooManyPoints = errors.New("rest: too many points")

	// errUnrepresentable rejects results JSON cannot carry, such as a
	// distance that overflowed to +Inf for finite but extreme coordinates.
	errUnrepresentable = errors.New("rest: result is not representable in JSON")
)

// maxCanvas bounds the requested image edge in pixels.
const maxCanvas = 4096

type pointsRequest struct {
	Points []geom.Point `json:"points"`
}

type closestRequest struct {
	Points      []geom.Point `json:"points"`
	Strategy    string       `json:"strategy"`
	StripWindow *int         `json:"stripWindow"`
	Parallel    *bool        `json:"parallel"`
}

type renderRequest struct {
	Points []geom.Point `json:"points"`
	Title  string       `json:"title"`
	Hull   bool         `json:"hull"`
	Pair   bool         `json:"pair"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
}

// abort answers with {"error": ...} and records err on the context.
func abort(c *gin.Context, code int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errTooManyPoints):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errUnrepresentable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, closest.ErrInvalidInput),
		errors.Is(err, closest.ErrBadOptions),
		errors.Is(err, hull.ErrNoPoints),
		errors.Is(err, hull.ErrInvalidInput),
		errors.Is(err, render.ErrEmptyScene),
		errors.Is(err, render.ErrBadOptions),
		errors.Is(err, render.ErrNonFinite):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) checkSize(points []geom.Point) error {
	if len(points) > s.cfg.MaxPoints {
		return fmt.Errorf("%w: %d > %d", errTooManyPoints, len(points), s.cfg.MaxPoints)
	}

	return nil
}

// answered records the size of a request that produced a result.
func (s *Server) answered(points []geom.Point) {
	s.metrics.points.Observe(float64(len(points)))
}

// timed runs fn and records its duration under operation.
func (s *Server) timed(operation string, fn func()) {
	start := time.Now()
	fn()
	s.metrics.solve.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (s *Server) postClosest(c *gin.Context) {
	var req closestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(req.Points); err != nil {
		abort(c, statusFor(err), err)
		return
	}

	opts := s.closest
	strategy, err := closest.ParseStrategy(req.Strategy)
	if err != nil {
		abort(c, statusFor(err), err)
		return
	}
	opts.Strategy = strategy
	if req.StripWindow != nil {
		opts.StripWindow = *req.StripWindow
	}
	if req.Parallel != nil {
		opts.Parallel = *req.Parallel
	}

	var pair geom.Pair
	s.timed("closest", func() { pair, err = closest.Find(req.Points, opts) })
	if err == nil && math.IsInf(pair.Distance, 0) {
		err = fmt.Errorf("%w: distance between %v and %v overflows", errUnrepresentable, pair.A, pair.B)
	}
	if err != nil {
		abort(c, statusFor(err), err)
		return
	}
	s.answered(req.Points)
	c.JSON(http.StatusOK, pair)
}

func (s *Server) postHull(c *gin.Context) {
	var req pointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(req.Points); err != nil {
		abort(c, statusFor(err), err)
		return
	}

	var (
		h   []geom.Point
		err error
	)
	s.timed("hull", func() { h, err = hull.GrahamScan(req.Points) })
	if err != nil {
		abort(c, statusFor(err), err)
		return
	}
	s.answered(req.Points)
	c.JSON(http.StatusOK, gin.H{"hull": h})
}

func (s *Server) postRender(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(req.Points); err != nil {
		abort(c, statusFor(err), err)
		return
	}

	scene := render.Scene{Points: req.Points, Title: req.Title}
	if req.Hull && len(req.Points) > 0 {
		h, err := hull.GrahamScan(req.Points)
		if err != nil {
			abort(c, statusFor(err), err)
			return
		}
		scene.Hull = h
	}
	if req.Pair && len(req.Points) > 1 {
		pair, err := closest.Find(req.Points, s.closest)
		if err != nil {
			abort(c, statusFor(err), err)
			return
		}
		scene.Pair = &pair
	}

	opts := s.cfg.Render
	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Height > 0 {
		opts.Height = req.Height
	}
	if opts.Width > maxCanvas || opts.Height > maxCanvas {
		err := fmt.Errorf("%w: canvas %dx%d exceeds %d", render.ErrBadOptions, opts.Width, opts.Height, maxCanvas)
		abort(c, statusFor(err), err)
		return
	}

	var (
		buf bytes.Buffer
		err error
	)
	s.timed("render", func() { err = render.EncodePNG(&buf, scene, opts) })
	if err != nil {
		abort(c, statusFor(err), err)
		return
	}
	s.answered(req.Points)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
