// Package level exposes maze levels over HTTP.
package level

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-labyrinth/api/identity"
	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultTopLimit = 10

// Controller serves level creation and lookup.
type Controller struct {
	levelService i.LevelService
	logger       i.Logger
}

// NewController initializes a level Controller.
func NewController(ls i.LevelService, logger i.Logger) (*Controller, error) {
	if ls == nil || logger == nil {
		return nil, errors.New("level controller needs a level service and a logger")
	}
	return &Controller{
		levelService: ls,
		logger:       logger,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	levels := route.Group("/levels")
	{
		levels.GET("/top", c.top)
		levels.GET("/:ID", c.byID)
		levels.GET("/:ID/ascii", c.ascii)
	}
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	levels := route.Group("/levels")
	{
		levels.POST("", c.create)
		levels.GET("/mine", c.mine)
	}
}

// create generates a level for the calling designer.
func (c *Controller) create(ctx *gin.Context) {
	designerID, err := identity.DesignerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var request CreateLevelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := c.levelService.Create(ctx.Request.Context(), designerID, request.toDomain())
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newLevelResponse(level))
}

// byID returns a level with its descriptor.
func (c *Controller) byID(ctx *gin.Context) {
	level, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newLevelResponse(level))
}

// ascii returns the text rendering of a level's grid.
func (c *Controller) ascii(ctx *gin.Context) {
	level, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, level.ASCII())
}

// mine lists the calling designer's levels.
func (c *Controller) mine(ctx *gin.Context) {
	designerID, err := identity.DesignerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	levels, err := c.levelService.ByDesigner(ctx.Request.Context(), designerID)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	response := make([]LevelResponse, 0, len(levels))
	for _, l := range levels {
		response = append(response, newLevelResponse(l))
	}
	ctx.JSON(http.StatusOK, response)
}

// top returns the ranking, longest exit path first.
func (c *Controller) top(ctx *gin.Context) {
	limit := defaultTopLimit
	if raw, ok := ctx.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ranked, err := c.levelService.Top(ctx.Request.Context(), limit)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	response := make([]RankedLevelResponse, 0, len(ranked))
	for _, r := range ranked {
		response = append(response, RankedLevelResponse{LevelID: r.LevelID.String(), PathLength: r.PathLength})
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *Controller) lookup(ctx *gin.Context) (*dmn.Level, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level id"})
		return nil, false
	}

	level, err := c.levelService.ByID(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err)
		return nil, false
	}
	return level, true
}

// fail maps service errors to status codes.
func (c *Controller) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrStartOutOfBounds),
		errors.Is(err, maze.ErrUnknownAlgorithm),
		errors.Is(err, maze.ErrDisconnectedRegion),
		errors.Is(err, dmn.ErrInvalidSeed):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrLevelNotFound), errors.Is(err, dmn.ErrDesignerNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
