package components

import (
	"context"

	"autobot_site_go/middleware"
	"autobot_site_go/models"

	"github.com/a-h/templ"
)

// htmxConfig lets htmx swap the contact form partial on 4xx and 5xx
// responses, which carry the error state.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"[45]..","swap":true,"error":true}]}`

// HeadOptions controls the optional scripts loaded in <head>
type HeadOptions struct {
	SEO       *models.SEO
	CSRFToken string
	Turnstile bool
}

// Head renders the document head: SEO and social meta, styles and scripts.
// Every inline or external script carries the request's CSP nonce.
func Head(opts HeadOptions) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		seo := opts.SEO
		if seo == nil {
			seo = models.NewSEO("AutoBot AI", "")
		}
		nonce := middleware.GetNonce(ctx)

		w.Raw(`<head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		w.Raw(`<title>`)
		w.Text(seo.Title)
		w.Raw(`</title>`)
		meta(w, "name", "description", seo.Description)
		meta(w, "name", "keywords", seo.Keywords)
		if seo.NoIndex {
			meta(w, "name", "robots", "noindex, nofollow")
		}
		meta(w, "name", "csrf-token", opts.CSRFToken)
		meta(w, "name", "htmx-config", htmxConfig)
		if seo.Canonical != "" {
			w.Raw(`<link rel="canonical"`)
			w.Attr("href", seo.Canonical)
			w.Raw(`/>`)
		}
		meta(w, "property", "og:type", "website")
		meta(w, "property", "og:site_name", seo.SiteName)
		meta(w, "property", "og:title", seo.Title)
		meta(w, "property", "og:description", seo.Description)
		meta(w, "property", "og:image", seo.Image)
		meta(w, "property", "og:url", seo.Canonical)
		meta(w, "name", "twitter:card", seo.TwitterCard())
		if doc := seo.StructuredData(); doc != nil {
			// JSON output escapes <, > and & so it cannot close the script early
			w.Raw(`<script type="application/ld+json"`)
			w.Attr("nonce", nonce)
			w.Raw(`>` + JSON(doc) + `</script>`)
		}

		w.Raw(`<link rel="icon" type="image/svg+xml"`)
		w.Attr("href", middleware.AssetURL(ctx, "images/favicon.svg"))
		w.Raw(`/><link rel="preconnect" href="https://fonts.googleapis.com"/>`)
		w.Raw(`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&amp;display=swap"/>`)
		w.Raw(`<link rel="stylesheet"`)
		w.Attr("href", middleware.AssetURL(ctx, "css/site.css"))
		w.Raw(`/>`)

		script(w, nonce, "https://cdn.tailwindcss.com", false)
		script(w, nonce, "https://unpkg.com/htmx.org@2.0.4", true)
		script(w, nonce, middleware.AssetURL(ctx, "js/reveal.js"), true)
		if opts.Turnstile {
			script(w, nonce, "https://challenges.cloudflare.com/turnstile/v0/api.js", true)
		}

		// Without scripting nothing can reveal, so hidden sections must not stay hidden.
		w.Raw(`<noscript><style>[data-reveal]{opacity:1 !important;transform:none !important}</style></noscript>`)
		w.Raw(`</head>`)
	})
}

func meta(w *Writer, key, name, content string) {
	if content == "" {
		return
	}
	w.Raw("<meta")
	w.Attr(key, name)
	w.Attr("content", content)
	w.Raw("/>")
}

func script(w *Writer, nonce, src string, deferred bool) {
	w.Raw("<script")
	w.Attr("src", src)
	w.Attr("nonce", nonce)
	if deferred {
		w.Raw(" defer")
	}
	w.Raw("></script>")
}
