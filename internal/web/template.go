package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/safety-node/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		return fmt.Sprintf("%dm %ds", m, s)
	},
	"led": func(on bool) string {
		if on {
			return "ON"
		}
		return "off"
	},
	"hex": func(v uint8) string {
		return fmt.Sprintf("0x%02X", v)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="2">
<title>safety-node {{hex .Config.DeviceID}}</title>
<style>
body { font-family: monospace; margin: 2em; background: #111; color: #ddd; }
table { border-collapse: collapse; }
td, th { padding: 0.3em 1em; border: 1px solid #444; text-align: left; }
.err { color: #f55; font-weight: bold; }
.ok { color: #5f5; }
</style>
</head>
<body>
<h1>safety-node {{hex .Config.DeviceID}}</h1>
<table>
<tr><th>Zone</th><td>{{.Zone}}</td></tr>
<tr><th>Bus</th><td>{{if .ErrorMode}}<span class="err">ERROR ({{.Failures}} consecutive failures)</span>{{else}}<span class="ok">OK</span>{{end}}</td></tr>
<tr><th>Red LED</th><td>{{led .Red}}</td></tr>
<tr><th>Green LED</th><td>{{led .Green}}</td></tr>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
</table>
<h2>Frames sent</h2>
<table>
<tr><th>Min limit</th><td>{{.Counts.MinLimit}}</td></tr>
<tr><th>Approach min</th><td>{{.Counts.ApproachMin}}</td></tr>
<tr><th>Approach max</th><td>{{.Counts.ApproachMax}}</td></tr>
<tr><th>Max limit</th><td>{{.Counts.MaxLimit}}</td></tr>
<tr><th>Heartbeats</th><td>{{.Counts.Heartbeats}}</td></tr>
<tr><th>Tx failures</th><td>{{.Counts.TxFailures}}</td></tr>
</table>
<h2>Config</h2>
<table>
<tr><th>CAN interface</th><td>{{.Config.Interface}} @ {{.Config.Bitrate}} bit/s</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}} ms</td></tr>
<tr><th>Heartbeat</th><td>{{.Config.HeartbeatMs}} ms</td></tr>
<tr><th>Blink half-period</th><td>{{.Config.BlinkHalfMs}} ms</td></tr>
{{if .Config.Broker}}<tr><th>Telemetry broker</th><td>{{.Config.Broker}}</td></tr>{{end}}
</table>
<p><a href="/index.json">JSON</a></p>
</body>
</html>
`))

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Best effort: a render error just truncates the page.
	_ = indexTmpl.Execute(w, snap)
}
