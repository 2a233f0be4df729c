package tui

// Screen identifies one of the app's top-level views.
type Screen string

const (
	ScreenLogin       Screen = "login"
	ScreenDashboard   Screen = "dashboard"
	ScreenTournaments Screen = "tournaments"
)

// routes is the static navigation table. Matching is exact.
var routes = map[string]Screen{
	"/":            ScreenDashboard,
	"/login":       ScreenLogin,
	"/dashboard":   ScreenDashboard,
	"/tournaments": ScreenTournaments,
}

// Resolve maps a path to a screen. Paths outside the table land on the
// dashboard.
func Resolve(path string) Screen {
	if s, ok := routes[path]; ok {
		return s
	}
	return ScreenDashboard
}
