package router

import "net/url"

// TitleSetter receives the title of the route being entered.
type TitleSetter interface {
	SetTitle(title string)
}

// TitleSetterFunc adapts a function to [TitleSetter].
type TitleSetterFunc func(title string)

func (f TitleSetterFunc) SetTitle(title string) { f(title) }

// TitleGuard sets the window title to the target route's title before every
// transition. Routes without a title leave it unchanged.
func TitleGuard(setter TitleSetter) Guard {
	return func(to Match, _ *Match) (string, error) {
		if to.Route.Meta.Title != "" {
			setter.SetTitle(to.Route.Meta.Title)
		}
		return "", nil
	}
}

// RedirectParam carries the originally requested path when AuthGuard sends
// an anonymous user to the login route.
const RedirectParam = "redirect"

// AuthGuard redirects anonymous users away from auth-only routes to the
// login route and signed-in users away from guest-only routes to home.
func AuthGuard(isLoggedIn func() bool) Guard {
	return func(to Match, _ *Match) (string, error) {
		loggedIn := isLoggedIn()
		switch {
		case to.Route.Meta.RequiresAuth && !loggedIn:
			return PathLogin + "?" + url.Values{RedirectParam: {to.FullPath()}}.Encode(), nil
		case to.Route.Meta.RequiresGuest && loggedIn:
			return PathHome, nil
		}
		return "", nil
	}
}
