package components

import (
	"context"

	"autobot_site_go/templates/sections"

	"github.com/a-h/templ"
)

// Header renders the fixed site navigation. static/js/reveal.js toggles the
// data-scrolled attribute once the page scrolls.
func Header(theme Theme) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Raw(`<header id="site-header" class="fixed inset-x-0 top-0 z-50 transition-all duration-300 data-[scrolled]:bg-slate-950/90 data-[scrolled]:shadow-lg data-[scrolled]:backdrop-blur">`)
		w.Raw(`<div class="mx-auto flex max-w-7xl items-center justify-between px-6 py-4">`)
		w.Raw(`<a href="#` + sections.HeroID + `" class="flex items-center gap-2 text-xl font-bold">`)
		w.Render(ctx, Icon("bot", "h-7 w-7 "+theme.Accent))
		w.Raw(`<span`)
		w.Attr("class", theme.GradientText)
		w.Raw(`>AutoBot AI</span></a>`)

		w.Raw(`<nav class="hidden items-center gap-8 md:flex" aria-label="Main">`)
		for _, item := range sections.NavItems {
			w.Raw(`<a class="text-sm font-medium text-slate-300 transition hover:text-cyan-300"`)
			w.Attr("href", item.Href)
			w.Raw(">")
			w.Text(item.Label)
			w.Raw("</a>")
		}
		w.Raw(`</nav>`)

		w.Raw(`<a href="#` + sections.ContactID + `"`)
		w.Attr("class", "hidden md:inline-flex "+theme.PrimaryButton)
		w.Raw(`>Book a Strategy Call</a>`)

		w.Raw(`<details class="md:hidden"><summary class="list-none cursor-pointer" aria-label="Open menu">`)
		w.Render(ctx, Icon("menu", "h-6 w-6"))
		w.Raw(`</summary><nav class="absolute inset-x-0 top-full flex flex-col gap-4 bg-slate-950 px-6 py-6" aria-label="Mobile">`)
		for _, item := range sections.NavItems {
			w.Raw(`<a class="text-slate-200"`)
			w.Attr("href", item.Href)
			w.Raw(">")
			w.Text(item.Label)
			w.Raw("</a>")
		}
		w.Raw(`</nav></details>`)
		w.Raw(`</div></header>`)
	})
}
