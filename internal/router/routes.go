// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router maps client paths to named views.
//
// The route table is static. Paths are matched with chi's routing tree, so
// static segments win over parameters ("/post/create" before "/post/{id}")
// and parameters are available by name on the resulting [Match]. Unknown
// paths resolve to the NotFound route.
//
// Navigation runs every registered [Guard] before the transition is
// committed. [TitleGuard] sets the window title; [AuthGuard] keeps anonymous
// users away from auth-only routes and signed-in users away from
// guest-only ones.
package router

// RouteName identifies a route and the view rendered for it.
type RouteName string

const (
	RouteHome          RouteName = "Home"
	RouteLogin         RouteName = "Login"
	RouteRegister      RouteName = "Register"
	RouteTiebaList     RouteName = "TiebaList"
	RouteTiebaDetail   RouteName = "TiebaDetail"
	RoutePostDetail    RouteName = "PostDetail"
	RouteCreatePost    RouteName = "CreatePost"
	RouteUserProfile   RouteName = "UserProfile"
	RouteNotifications RouteName = "Notifications"
	RouteSettings      RouteName = "Settings"
	RouteSearch        RouteName = "Search"
	RouteNotFound      RouteName = "NotFound"
)

// Well-known paths.
const (
	PathHome  = "/"
	PathLogin = "/login"
)

// Meta is per-route metadata consulted by guards and the host.
type Meta struct {
	Title         string
	RequiresAuth  bool
	RequiresGuest bool
	// KeepAlive keeps the view instance cached between visits.
	KeepAlive bool
}

// Route is one entry of the route table. Path uses chi pattern syntax.
type Route struct {
	Name RouteName
	Path string
	Meta Meta
}

// DefaultRoutes returns the client route table. The catch-all NotFound
// route is not part of it; see [NotFoundRoute].
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Path: "/", Meta: Meta{Title: "首页 - 贴吧百科", KeepAlive: true}},
		{Name: RouteLogin, Path: "/login", Meta: Meta{Title: "登录", RequiresGuest: true}},
		{Name: RouteRegister, Path: "/register", Meta: Meta{Title: "注册", RequiresGuest: true}},
		{Name: RouteTiebaList, Path: "/tieba", Meta: Meta{Title: "贴吧列表", KeepAlive: true}},
		{Name: RouteTiebaDetail, Path: "/tieba/{id}", Meta: Meta{Title: "贴吧详情", RequiresAuth: true}},
		{Name: RoutePostDetail, Path: "/post/{id}", Meta: Meta{Title: "帖子详情", KeepAlive: true}},
		{Name: RouteCreatePost, Path: "/post/create", Meta: Meta{Title: "创建帖子", RequiresAuth: true}},
		{Name: RouteUserProfile, Path: "/user/{id}", Meta: Meta{Title: "用户主页", RequiresAuth: true}},
		{Name: RouteNotifications, Path: "/notifications", Meta: Meta{Title: "消息通知", RequiresAuth: true}},
		{Name: RouteSettings, Path: "/settings", Meta: Meta{Title: "设置", RequiresAuth: true}},
		{Name: RouteSearch, Path: "/search", Meta: Meta{Title: "搜索", KeepAlive: true}},
	}
}

// NotFoundRoute is resolved for every path the table does not match.
func NotFoundRoute() Route {
	return Route{Name: RouteNotFound, Path: "/*", Meta: Meta{Title: "页面不存在"}}
}
