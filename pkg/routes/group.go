package routes

import "net/http"

// Group organizes routes under a common prefix. Middleware wraps every route
// in the group and its children, outermost first.
type Group struct {
	Prefix     string
	Middleware []func(http.Handler) http.Handler
	Routes     []Route
	Children   []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", nil, group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, inherited []func(http.Handler) http.Handler, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	chain := append(append([]func(http.Handler) http.Handler{}, inherited...), group.Middleware...)

	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.Handle(pattern, wrap(route.Handler, chain))
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, chain, child)
	}
}

func wrap(handler http.Handler, chain []func(http.Handler) http.Handler) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}
	return handler
}
