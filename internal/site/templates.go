package site

// StyleSheet and Script are the static assets every page references.
const (
	StyleSheet = cssContent
	Script     = jsContent
)

// pageTemplate is the Go html/template for each reference page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.Library}} reference</title>
  <link rel="stylesheet" href="{{.BasePath}}/style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    {{.Sidebar}}
  </nav>
  <main class="content">
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.BasePath}}/script.js"></script>
</body>
</html>`

// homeTemplate lists the available libraries.
const homeTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>API reference</title>
  <link rel="stylesheet" href="{{.BasePath}}/style.css">
</head>
<body>
  <main class="content">
    <article class="page-content">
      <h1>API reference</h1>
      <ul class="library-list">
        {{- range .Links}}
        <li><a href="{{.Href}}">{{.Title}}</a></li>
        {{- end}}
      </ul>
    </article>
  </main>
</body>
</html>`

// cssContent is the stylesheet for the reference site.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --brand: #3ecf8e;
  --sidebar-width: 280px;
}

[data-theme="dark"] {
  --bg: #1c1c1c;
  --bg-sidebar: #161616;
  --text: #ededed;
  --text-muted: #8f8f8f;
  --border: #2e2e2e;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
}

.sidebar {
  width: var(--sidebar-width);
  min-height: 100vh;
  padding: 2rem 1.5rem;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
}

.menu-level { transition: opacity 150ms ease-out; }
.menu-hidden { opacity: 0; visibility: hidden; position: absolute; height: 0; overflow: hidden; }
.menu-inner { position: sticky; top: 2rem; display: flex; flex-direction: column; }

.menu-back {
  display: flex;
  gap: 0.25rem;
  margin-bottom: 0.75rem;
  font-size: 0.75rem;
  color: var(--text-muted);
  text-decoration: none;
}
.menu-back:hover { color: var(--brand); }

.menu-heading { display: flex; align-items: center; gap: 0.75rem; margin: 0.75rem 0; }
.menu-icon { border-radius: 4px; }
.menu-heading-title { color: var(--brand); }

.version-switcher { display: flex; gap: 0.5rem; list-style: none; margin: 0; padding: 0; font-size: 0.75rem; }
.version-switcher a { color: var(--text-muted); text-decoration: none; }
.version-switcher a.current { color: var(--text); font-weight: 600; }

.function-link-list, .accordion-content { list-style: none; margin: 0; padding: 0; }
.accordion-content { margin-left: 0.5rem; }

.menu-divider { height: 1px; width: 100%; margin: 0.75rem 0; background: var(--border); }
.menu-title {
  margin-bottom: 0.75rem;
  font-family: monospace;
  font-size: 0.75rem;
  font-weight: 500;
  letter-spacing: 0.05em;
  text-transform: uppercase;
}

.function-link {
  display: flex;
  gap: 0.75rem;
  padding: 0.2rem 0;
  font-size: 0.875rem;
  text-decoration: none;
  cursor: pointer;
}
.function-link.inactive { color: var(--text-muted); }
.function-link.active, .function-link:hover { color: var(--brand); }

.content { flex: 1; padding: 2rem 3rem; max-width: 900px; }
.page-content pre { padding: 1rem; overflow-x: auto; border: 1px solid var(--border); border-radius: 6px; }
`

// jsContent toggles accordion groups client side.
const jsContent = `(function () {
  document.querySelectorAll('.accordion-item > .function-link').forEach(function (link) {
    var item = link.parentElement;
    var content = item.querySelector(':scope > .accordion-content');
    if (!content) return;
    link.addEventListener('click', function () {
      var open = item.getAttribute('data-state') === 'open';
      item.setAttribute('data-state', open ? 'closed' : 'open');
      content.hidden = open;
    });
  });
})();
`
