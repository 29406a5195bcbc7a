package router

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/crud/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
	prefix    string
}

func NewMounter(container *deps.Container, prefix string) *Mounter {
	return &Mounter{container: container, prefix: prefix}
}

// Public routes, guarded only by the filters modules attach themselves
func (m *Mounter) Public(engine *gin.Engine, middleware ...gin.HandlerFunc) *RouteGroup {
	group := engine.Group(m.prefix, middleware...)
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFunc MountFunc) *RouteGroup {
	mountFunc(rg.group, rg.container)
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string, middleware ...gin.HandlerFunc) *RouteGroup {
	return &RouteGroup{group: rg.group.Group(path, middleware...), container: rg.container}
}
