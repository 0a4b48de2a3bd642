package controllers

import (
	"html/template"
	"net/http"

	"github.com/20225587/Tasker/app/middleware"
	"github.com/20225587/Tasker/app/session"
	"github.com/20225587/Tasker/global"
)

// PageController serves the HTML shells the dashboards hang off.
// Styling and the AJAX glue live client-side and are not part of this
// layer; the shells only carry the identity the templates need.
type PageController struct{ Sessions *session.Manager }

func NewPageController(sessions *session.Manager) *PageController {
	return &PageController{Sessions: sessions}
}

var loginTpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head><title>Task Manager - Login</title></head>
<body>
<div id="login-form" data-endpoint="/api/auth/login"></div>
<div id="signup-form" data-endpoint="/api/auth/signup"></div>
<script src="/static/login.js"></script>
</body>
</html>`))

var adminTpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head><title>Task Manager - Admin</title></head>
<body>
<header>Signed in as {{.Username}}</header>
<div id="users-table" data-endpoint="/api/users/list"></div>
<div id="tasks-table" data-endpoint="/api/tasks/list"></div>
<script src="/static/admin.js"></script>
</body>
</html>`))

var userTpl = template.Must(template.New("user").Parse(`<!DOCTYPE html>
<html>
<head><title>Task Manager - My Tasks</title></head>
<body>
<header>Signed in as {{.Username}}</header>
<div id="tasks-table" data-endpoint="/api/tasks/list"></div>
<script src="/static/user.js"></script>
</body>
</html>`))

// Index is the login page. Visitors with a live session bounce straight
// to their landing page.
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if ident, err := c.Sessions.Identity(r); err == nil {
		http.Redirect(w, r, landingPath(ident.Role), http.StatusSeeOther)
		return
	}
	render(w, loginTpl, nil)
}

func (c *PageController) Admin(w http.ResponseWriter, r *http.Request) {
	render(w, adminTpl, middleware.GetIdentity(r.Context()))
}

func (c *PageController) User(w http.ResponseWriter, r *http.Request) {
	render(w, userTpl, middleware.GetIdentity(r.Context()))
}

func render(w http.ResponseWriter, tpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		global.Logger.Error().Err(err).Str("template", tpl.Name()).Msg("render failed")
	}
}
