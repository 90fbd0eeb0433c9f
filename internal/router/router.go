package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigfive/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for Screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests the screen registered for Path to replace the top
// screen. Unknown paths are ignored.
type NavigateMsg struct {
	Path string
}

// RouteFunc builds the screen for the path segment following a route prefix.
type RouteFunc func(param string) screen.Screen

type route struct {
	prefix string
	build  RouteFunc
}

// Router manages a stack of screens.
type Router struct {
	stack  []screen.Screen
	routes []route
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Handle registers build for paths starting with prefix. Later
// registrations win over earlier ones for the same prefix.
func (r *Router) Handle(prefix string, build RouteFunc) {
	r.routes = append([]route{{prefix: prefix, build: build}}, r.routes...)
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Navigate replaces the top screen with the one routed for path.
func (r *Router) Navigate(path string) tea.Cmd {
	for _, rt := range r.routes {
		if !strings.HasPrefix(path, rt.prefix) {
			continue
		}
		s := rt.build(strings.TrimPrefix(path, rt.prefix))
		if s == nil {
			return nil
		}
		return r.Replace(s)
	}
	return nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		return r.Navigate(msg.Path)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
