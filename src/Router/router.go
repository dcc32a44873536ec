package Router

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type RouteDefinition struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Definition string `json:"definition"`
}

// CustomRouter wraps a gin router group and records a human-readable
// description for every route it registers. The descriptions feed the
// /routes listing and the access-denied messages.
type CustomRouter struct {
	router      *gin.RouterGroup
	definitions []RouteDefinition
}

var AllRoutes []RouteDefinition

func NewCustomRouter(router *gin.RouterGroup) *CustomRouter {
	return &CustomRouter{
		router:      router,
		definitions: []RouteDefinition{},
	}
}

func (cr *CustomRouter) record(method, relativePath, definition string) {
	route := RouteDefinition{
		Method:     method,
		Path:       relativePath,
		Definition: definition,
	}
	cr.definitions = append(cr.definitions, route)
	AllRoutes = append(AllRoutes, route)
}

func (cr *CustomRouter) GET(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	cr.record("GET", relativePath, definition)
	return cr.router.GET(relativePath, handlers...)
}

func (cr *CustomRouter) POST(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	cr.record("POST", relativePath, definition)
	return cr.router.POST(relativePath, handlers...)
}

func (cr *CustomRouter) PATCH(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	cr.record("PATCH", relativePath, definition)
	return cr.router.PATCH(relativePath, handlers...)
}

func (cr *CustomRouter) PUT(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	cr.record("PUT", relativePath, definition)
	return cr.router.PUT(relativePath, handlers...)
}

func (cr *CustomRouter) DELETE(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	cr.record("DELETE", relativePath, definition)
	return cr.router.DELETE(relativePath, handlers...)
}

func (cr *CustomRouter) PrintRoutes() {
	for _, def := range cr.definitions {
		fmt.Printf("%s - %s - %s\n", def.Path, def.Method, def.Definition)
	}
}

func (cr *CustomRouter) GetRoutes() []RouteDefinition {
	return cr.definitions
}

// DescriptionFor returns the recorded description for a route pattern,
// falling back to the pattern itself.
func DescriptionFor(path string) string {
	for _, route := range AllRoutes {
		if route.Path == path {
			return route.Definition
		}
	}
	return path
}
