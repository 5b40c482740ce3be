package components

import (
	"context"

	"github.com/a-h/templ"
)

// iconPaths are 24x24 outline paths keyed by icon name
var iconPaths = map[string]string{
	"bot":     `<rect x="3" y="8" width="18" height="12" rx="2"/><path d="M12 8V4M8 4h8M8 14h.01M16 14h.01"/>`,
	"target":  `<circle cx="12" cy="12" r="9"/><circle cx="12" cy="12" r="5"/><circle cx="12" cy="12" r="1"/>`,
	"plug":    `<path d="M9 2v6M15 2v6M6 8h12v3a6 6 0 0 1-12 0V8zM12 17v5"/>`,
	"chart":   `<path d="M3 3v18h18M7 15l4-4 3 3 5-6"/>`,
	"rocket":  `<path d="M5 15c-1.5 1.5-2 5-2 5s3.5-.5 5-2M14 4c3-1 6-1 6-1s0 3-1 6l-7 7-5-5 7-7zM9 10l-3 1-2 3 4 1M14 15l-1 3-3 2-1-4"/>`,
	"check":   `<path d="M20 6 9 17l-5-5"/>`,
	"mail":    `<rect x="3" y="5" width="18" height="14" rx="2"/><path d="m3 7 9 6 9-6"/>`,
	"phone":   `<path d="M22 16.9v3a2 2 0 0 1-2.2 2 19.8 19.8 0 0 1-8.6-3.1 19.5 19.5 0 0 1-6-6A19.8 19.8 0 0 1 2.1 4.2 2 2 0 0 1 4.1 2h3a2 2 0 0 1 2 1.7c.1.9.4 1.8.7 2.7a2 2 0 0 1-.5 2.1L8 9.8a16 16 0 0 0 6 6l1.3-1.3a2 2 0 0 1 2.1-.4c.9.3 1.8.6 2.7.7a2 2 0 0 1 1.7 2z"/>`,
	"map-pin": `<path d="M12 22s7-6.5 7-12a7 7 0 0 0-14 0c0 5.5 7 12 7 12z"/><circle cx="12" cy="10" r="2.5"/>`,
	"clock":   `<circle cx="12" cy="12" r="9"/><path d="M12 7v5l3 2"/>`,
	"menu":    `<path d="M4 6h16M4 12h16M4 18h16"/>`,
	"arrow":   `<path d="M5 12h14M13 6l6 6-6 6"/>`,
	"send":    `<path d="M22 2 11 13M22 2l-7 20-4-9-9-4 20-7z"/>`,
	"alert":   `<circle cx="12" cy="12" r="9"/><path d="M12 8v4M12 16h.01"/>`,
}

// Icon renders an outline icon. Unknown names render nothing.
func Icon(name, class string) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		path, ok := iconPaths[name]
		if !ok {
			return
		}
		w.Raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`)
		w.Attr("class", class)
		w.Raw(">" + path + "</svg>")
	})
}
