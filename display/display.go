// Package display presents the engine's raster on a terminal. It implements
// the auto-refresh contract the scroll engine drives: refresh is suspended
// around each intermediate draw and resumed afterward, so partially shifted
// frames are never shown.
package display

// Surface is the display collaborator the scroll engine signals. Setting
// auto-refresh to false suspends presentation; setting it back to true
// resumes it and presents the current raster state.
type Surface interface {
	SetAutoRefresh(enabled bool)
}

// Pause suspends the surface's automatic refresh and returns the function
// that resumes it. Callers defer the resume so it runs on every exit path.
func Pause(s Surface) (resume func()) {
	s.SetAutoRefresh(false)
	return func() { s.SetAutoRefresh(true) }
}
