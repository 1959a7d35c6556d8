package refnav

// sidebarTemplate renders a Sidebar. Closed groups keep their children in the
// markup with the hidden attribute so the page script can expand them.
const sidebarTemplate = `{{define "sidebar"}}<div class="{{.LevelClass}}" data-menu="{{.MenuID}}">
<div class="menu-inner">
<a class="menu-back" href="{{.BackHref}}"><span class="menu-back-icon">&lsaquo;</span><span>Back to Main Menu</span></a>
<div class="menu-heading">
<img class="menu-icon" alt="{{.MenuID}}" width="24" height="24" src="{{.IconSrc}}">
<span class="menu-heading-title">{{.Title}}</span>
{{- if .Versions}}
<ul class="version-switcher">{{range .Versions}}<li><a href="{{.Href}}"{{if .Current}} class="current"{{end}}>{{.Label}}</a></li>{{end}}</ul>
{{- end}}
</div>
<ul class="function-link-list">
{{- range .Blocks}}
{{- if .Header}}
<li class="menu-divider" role="separator"></li>
<li class="menu-title">{{.Header}}</li>
{{- end}}
{{- range .Groups}}
{{template "group" .}}
{{- end}}
{{- end}}
</ul>
</div>
</div>
{{end}}

{{define "group"}}<li class="function-link-item accordion-item" data-id="{{.ID}}" data-state="{{if .Open}}open{{else}}closed{{end}}">
{{template "link" .Link}}
{{- if .Children}}
<ul class="accordion-content"{{if not .Open}} hidden{{end}}>
{{- range .Children}}
<li class="function-link-item">{{template "link" .}}</li>
{{- end}}
</ul>
{{- end}}
</li>{{end}}

{{define "link"}}<a class="function-link {{if .Active}}active{{else}}inactive{{end}}" href="{{.Href}}">{{if .IconSrc}}<img width="16" height="16" alt="{{.IconAlt}}" src="{{.IconSrc}}">{{end}}{{.Title}}</a>{{end}}
`
