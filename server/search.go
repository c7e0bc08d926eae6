package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridnav/cache"
	"github.com/katalvlaran/gridnav/gridfile"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/pathfind"
)

// DefaultMaxCells bounds rows·cols per request.
const DefaultMaxCells = 250_000

// errTooLarge rejects oversized grids before any allocation.
var errTooLarge = errors.New("server: grid too large")

// SearchController serves the search endpoints.
type SearchController struct {
	cache    cache.Cache
	maxCells int
}

// NewSearchController returns a controller backed by c. A nil c disables
// caching; maxCells <= 0 selects DefaultMaxCells.
func NewSearchController(c cache.Cache, maxCells int) *SearchController {
	if c == nil {
		c = cache.Nop{}
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}

	return &SearchController{cache: c, maxCells: maxCells}
}

// Register registers the search routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	route.POST("/search", sc.search)
	route.POST("/compare", sc.compare)
	route.POST("/inspect", sc.inspect)
}

func (sc *SearchController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, AlgorithmsResponse{Algorithms: pathfind.Algorithms()})
}

func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := pathfind.ParseAlgorithm(request.Algorithm)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	g, err := sc.grid(request.GridRequest)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	res, cached, err := cache.Lookup(ctx.Request.Context(), sc.cache, g, a)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SearchResponse{
		Algorithm: a,
		Visited:   res.Visited,
		Path:      res.Path,
		Found:     res.Found(),
		Length:    res.Length(),
		Cached:    cached,
	})
}

func (sc *SearchController) compare(ctx *gin.Context) {
	var request GridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := sc.grid(request)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	out := make([]pathfind.Summary, 0, len(pathfind.Algorithms()))
	for _, a := range pathfind.Algorithms() {
		res, _, err := cache.Lookup(ctx.Request.Context(), sc.cache, g, a)
		if err != nil {
			sc.fail(ctx, err)
			return
		}
		out = append(out, pathfind.Summarize(a, res))
	}

	ctx.JSON(http.StatusOK, CompareResponse{Results: out})
}

func (sc *SearchController) inspect(ctx *gin.Context) {
	var request GridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := sc.grid(request)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InspectResponse{
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		Walls:     len(g.Walls()),
		Regions:   len(g.Regions()),
		Reachable: len(g.Region(g.Start())),
		Connected: g.Connected(),
	})
}

// grid builds the Grid Model described by request.
func (sc *SearchController) grid(request GridRequest) (*gridgraph.Grid, error) {
	if request.Map != "" {
		if len(request.Map) > sc.maxCells*2 {
			return nil, errTooLarge
		}
		return gridfile.ParseMap(request.Map)
	}
	if request.Rows > 0 && request.Cols > 0 && request.Rows > sc.maxCells/request.Cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", errTooLarge, request.Rows, request.Cols, sc.maxCells)
	}
	if request.Start == nil || request.End == nil {
		return nil, fmt.Errorf("%w: start and end are required", gridgraph.ErrInvalidGrid)
	}

	return gridgraph.New(request.Rows, request.Cols, *request.Start, *request.End, request.Walls)
}

// fail maps domain errors to 400 and everything else to 500.
func (sc *SearchController) fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	switch {
	case errors.Is(err, gridgraph.ErrInvalidGrid),
		errors.Is(err, pathfind.ErrUnknownAlgorithm),
		errors.Is(err, errTooLarge):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithField("request_id", ctx.GetString(ContextRequestID)).Errorf("search failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
