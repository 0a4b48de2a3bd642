package router

import (
	"net/http"

	"github.com/20225587/Tasker/app/controllers"
	"github.com/20225587/Tasker/app/middleware"
)

// NewRouter wires every route behind its guard. API routes answer
// envelope denials; page routes redirect. Guards wrap the handlers, so
// nothing past a rejection ever runs.
func NewRouter(pageCtrl *controllers.PageController, authCtrl *controllers.AuthController, userCtrl *controllers.UserController, taskCtrl *controllers.TaskController, guard *middleware.Guard) http.Handler {
	mux := http.NewServeMux()

	// pages
	mux.HandleFunc("/", pageCtrl.Index)
	mux.Handle("/admin", guard.RequireAdminPage(http.HandlerFunc(pageCtrl.Admin)))
	mux.Handle("/user", guard.RequireAuthPage(http.HandlerFunc(pageCtrl.User)))

	// Longer registered paths win, so this only catches API paths no
	// handler claims; those still get a JSON envelope, not the HTML 404.
	mux.HandleFunc("/api/", controllers.NotFound)

	// auth
	mux.HandleFunc("/api/auth/login", authCtrl.Login)
	mux.HandleFunc("/api/auth/signup", authCtrl.Signup)
	mux.Handle("/api/auth/logout", guard.RequireAuth(http.HandlerFunc(authCtrl.Logout)))

	// users (admin only)
	mux.Handle("/api/users/list", guard.RequireAdmin(http.HandlerFunc(userCtrl.List)))
	mux.Handle("/api/users/add", guard.RequireAdmin(http.HandlerFunc(userCtrl.Add)))
	mux.Handle("/api/users/edit", guard.RequireAdmin(http.HandlerFunc(userCtrl.Edit)))
	mux.Handle("/api/users/delete", guard.RequireAdmin(http.HandlerFunc(userCtrl.Delete)))

	// tasks
	mux.Handle("/api/tasks/list", guard.RequireAuth(http.HandlerFunc(taskCtrl.List)))
	mux.Handle("/api/tasks/assign", guard.RequireAdmin(http.HandlerFunc(taskCtrl.Assign)))
	mux.Handle("/api/tasks/edit", guard.RequireAdmin(http.HandlerFunc(taskCtrl.Edit)))
	mux.Handle("/api/tasks/delete", guard.RequireAdmin(http.HandlerFunc(taskCtrl.Delete)))
	mux.Handle("/api/tasks/status", guard.RequireAuth(http.HandlerFunc(taskCtrl.UpdateStatus)))

	return mux
}
