// Package httpapi exposes a small gin-based debug surface over the
// decomposer: not a supported wire protocol for any client, just a way
// to poke the library from curl or a browser while developing against
// it.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomahjong/decomposer"
	"gomahjong/internal/histogram"
	"gomahjong/internal/tile"
)

// NewRouter builds a gin engine serving the decompose debug endpoint
// (and, if node is non-nil, a status endpoint reporting the number of
// active rounds).
func NewRouter(dec *decomposer.Decomposer, node *NodeStatus) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.POST("/decompose", decomposeHandler(dec))
	if node != nil {
		r.GET("/status", statusHandler(*node))
	}
	return r
}

// NodeStatus is the subset of engine.Node this package needs, kept as a
// narrow interface so httpapi does not import engine for its full
// surface.
type NodeStatus interface {
	ActiveRounds() int
}

type decomposeRequest struct {
	Hand string `json:"hand" binding:"required"`
}

type decomposeResponse struct {
	Regular      []regularWaitDTO `json:"regular"`
	Irregular    *irregularDTO    `json:"irregular,omitempty"`
	WaitingTiles []string         `json:"waiting_tiles"`
}

type regularWaitDTO struct {
	WaitingTile string   `json:"waiting_tile"`
	WaitKind    string   `json:"wait_kind"`
	PairTile    string   `json:"pair_tile"`
	Groups      []string `json:"groups"`
}

type irregularDTO struct {
	Kind         string   `json:"kind"`
	WaitingTiles []string `json:"waiting_tiles"`
}

func decomposeHandler(dec *decomposer.Decomposer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req decomposeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tiles, err := tile.ParseTiles(req.Hand)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h, err := histogram.FromTiles(tiles)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ws, err := dec.Decompose(h)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toResponse(ws))
	}
}

func statusHandler(node NodeStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"active_rounds": node.ActiveRounds()})
	}
}

func toResponse(ws decomposer.WaitSet) decomposeResponse {
	resp := decomposeResponse{}
	for _, w := range ws.Regular {
		groups := make([]string, len(w.Groups))
		for i, g := range w.Groups {
			groups[i] = g.String()
		}
		resp.Regular = append(resp.Regular, regularWaitDTO{
			WaitingTile: w.WaitingTile.String(),
			WaitKind:    w.WaitKind.String(),
			PairTile:    w.PairTile.String(),
			Groups:      groups,
		})
	}
	if ws.Irregular != nil {
		kinds := make([]string, len(ws.Irregular.WaitingTiles))
		for i, k := range ws.Irregular.WaitingTiles {
			kinds[i] = k.String()
		}
		resp.Irregular = &irregularDTO{Kind: ws.Irregular.Kind.String(), WaitingTiles: kinds}
	}
	for _, k := range ws.WaitingTiles.Kinds() {
		resp.WaitingTiles = append(resp.WaitingTiles, k.String())
	}
	return resp
}
