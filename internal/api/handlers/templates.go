package handlers

import "html/template"

// Server-rendered operator console pages. Kept inline so the binary is
// self-contained.
var pageTmpl = template.Must(template.New("dashboard").Parse(`
{{define "style"}}
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 20px;
            max-width: 720px;
        }
        nav a {
            display: inline-block;
            padding: 8px 16px;
            margin-right: 4px;
            border: 1px solid #ccc;
            border-bottom: none;
            text-decoration: none;
            color: #333;
        }
        nav a.active {
            background: #eee;
            font-weight: bold;
        }
        table {
            border-collapse: collapse;
            width: 100%;
            margin-top: 12px;
        }
        th, td {
            border: 1px solid #ccc;
            padding: 6px 10px;
            text-align: left;
        }
        .row {
            margin: 8px 0;
        }
        .row label {
            display: inline-block;
            width: 180px;
        }
        .info {
            color: #555;
            font-style: italic;
        }
        .success {
            color: #2a7a2a;
        }
        .error {
            color: #a02a2a;
        }
    </style>
{{end}}

{{define "tabs"}}
    <nav>
        <a href="/logins"{{if eq . "logins"}} class="active"{{end}}>Weekly Login Status</a>
        <a href="/scores"{{if eq . "scores"}} class="active"{{end}}>Monthly Scores</a>
    </nav>
{{end}}

{{define "logins"}}
<!DOCTYPE html>
<html>
<head>
    <title>Fikar Mat Dashboard - Weekly Login Status</title>
    {{template "style"}}
</head>
<body>
    <h1>Institute Dashboard - Fikar Mat</h1>
    {{template "tabs" "logins"}}
    <h2>Weekly Login Status</h2>
    {{if .Rows}}
    <p>Week starting {{.WeekStart.Format "Mon 2 Jan 2006"}} (UTC)</p>
    <table>
        <tr>
            <th>User ID</th>
            <th>Username</th>
            <th>Last login (UTC)</th>
            <th>Logged this week?</th>
        </tr>
        {{range .Rows}}
        <tr>
            <td>{{.UserID}}</td>
            <td>{{.Username}}</td>
            <td>{{if .LastLoginAt}}{{.LastLoginAt.Format "2006-01-02 15:04"}}{{else}}never{{end}}</td>
            <td>{{if .LoggedThisWeek}}Yes{{else}}No{{end}}</td>
        </tr>
        {{end}}
    </table>
    {{else}}
    <p class="info">No users found in the database yet.</p>
    {{end}}
</body>
</html>
{{end}}

{{define "scores"}}
<!DOCTYPE html>
<html>
<head>
    <title>Fikar Mat Dashboard - Monthly Scores</title>
    {{template "style"}}
</head>
<body>
    <h1>Institute Dashboard - Fikar Mat</h1>
    {{template "tabs" "scores"}}
    <h2>Monthly Scores (last 6 months)</h2>
    {{if .Students}}
    <form method="get" action="/scores">
        <label for="user_id">Select student</label>
        <select id="user_id" name="user_id" onchange="this.form.submit()">
            {{$sel := .SelectedID}}
            {{range .Students}}
            <option value="{{.UserID}}"{{if eq .UserID $sel}} selected{{end}}>{{.DisplayLabel}}</option>
            {{end}}
        </select>
        <noscript><input type="submit" value="Load"></noscript>
    </form>
    {{if .Saved}}<p class="success">Scores saved/updated.</p>{{end}}
    {{with .Sheet}}
    <h3>Scores for {{.User.DisplayLabel}}</h3>
    <form method="post" action="/scores">
        <input type="hidden" name="user_id" value="{{.User.UserID}}">
        {{range .Months}}
        <div class="row">
            <label>{{.Label}} avg score</label>
            <input type="number" name="score[{{.Month.Format "2006-01-02"}}]"
                   min="0" max="100" step="1.0" value="{{.Value}}">
        </div>
        {{end}}
        <input type="submit" value="Save scores">
    </form>
    {{end}}
    {{else}}
    <p class="info">No users found.</p>
    {{end}}
</body>
</html>
{{end}}

{{define "error"}}
<!DOCTYPE html>
<html>
<head>
    <title>Fikar Mat Dashboard - Error</title>
    {{template "style"}}
</head>
<body>
    <h1>Institute Dashboard - Fikar Mat</h1>
    {{template "tabs" ""}}
    <h2 class="error">Error {{.Status}}</h2>
    <p>{{.Message}}</p>
    <p><a href="/logins">Back to dashboard</a></p>
</body>
</html>
{{end}}
`))

// Templates returns the page set for gin's HTML renderer.
func Templates() *template.Template { return pageTmpl }
