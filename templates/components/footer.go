package components

import (
	"context"
	"strconv"
	"time"

	"autobot_site_go/templates/sections"

	"github.com/a-h/templ"
)

// SubscribeResultID is the element the newsletter form swaps its result into
const SubscribeResultID = "subscribe-result"

// Footer renders company info, quick links, contact details and the
// newsletter form.
func Footer(theme Theme, csrfToken string) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Raw(`<footer class="border-t border-slate-800 bg-slate-950 pt-16 pb-8"><div class="mx-auto max-w-7xl px-6">`)
		w.Raw(`<div class="mb-16 grid grid-cols-1 gap-10 md:grid-cols-2 lg:grid-cols-4">`)

		// Company
		w.Raw(`<div><div class="mb-6 flex items-center gap-2">`)
		w.Render(ctx, Icon("bot", "h-7 w-7 "+theme.Accent))
		w.Raw(`<span`)
		w.Attr("class", "text-xl font-bold "+theme.GradientText)
		w.Raw(`>AutoBot AI</span></div><p`)
		w.Attr("class", theme.Muted)
		w.Raw(">")
		w.Text(sections.Tagline)
		w.Raw(`</p></div>`)

		// Quick links
		w.Raw(`<div><h3 class="mb-6 text-lg font-bold text-white">Quick Links</h3><ul class="space-y-3">`)
		for _, link := range sections.FooterLinks {
			w.Raw(`<li><a class="text-slate-400 transition hover:text-white"`)
			w.Attr("href", link.Href)
			w.Raw(">")
			w.Text(link.Label)
			w.Raw(`</a></li>`)
		}
		w.Raw(`</ul></div>`)

		// Contact
		info := sections.ContactInfo
		w.Raw(`<div><h3 class="mb-6 text-lg font-bold text-white">Contact</h3><ul class="space-y-4 text-slate-400">`)
		w.Raw(`<li class="flex items-start gap-3">`)
		w.Render(ctx, Icon("map-pin", "mt-0.5 h-5 w-5"))
		w.Raw(`<span>`)
		for i, line := range info.Address {
			if i > 0 {
				w.Raw("<br/>")
			}
			w.Text(line)
		}
		w.Raw(`</span></li><li class="flex items-center gap-3">`)
		w.Render(ctx, Icon("phone", "h-5 w-5"))
		w.Raw(`<a class="hover:text-white"`)
		w.Attr("href", info.PhoneURI)
		w.Raw(">")
		w.Text(info.Phone)
		w.Raw(`</a></li><li class="flex items-center gap-3">`)
		w.Render(ctx, Icon("mail", "h-5 w-5"))
		w.Raw(`<a class="hover:text-white"`)
		w.Attr("href", "mailto:"+info.Email)
		w.Raw(">")
		w.Text(info.Email)
		w.Raw(`</a></li></ul></div>`)

		// Newsletter
		w.Raw(`<div><h3 class="mb-6 text-lg font-bold text-white">Subscribe</h3>`)
		w.Raw(`<p class="mb-4 text-slate-400">Get the latest AI automation insights straight to your inbox.</p>`)
		w.Raw(`<form action="/subscribe" method="post" hx-post="/subscribe" hx-target="#` + SubscribeResultID + `" hx-swap="innerHTML" class="flex">`)
		w.Raw(`<input type="hidden" name="_csrf"`)
		w.Attr("value", csrfToken)
		w.Raw(`/><label for="subscribe-email" class="sr-only">Email</label>`)
		w.Raw(`<input id="subscribe-email" type="email" name="email" required placeholder="Your email" class="flex-1 rounded-l-xl border border-slate-700 bg-slate-900 px-4 py-2 text-slate-100 focus:border-cyan-400 focus:outline-none"/>`)
		w.Raw(`<button type="submit" class="rounded-r-xl bg-gradient-to-r from-cyan-500 to-violet-600 px-4 text-white"><span class="sr-only">Subscribe</span>`)
		w.Render(ctx, Icon("arrow", "h-5 w-5"))
		w.Raw(`</button></form><div id="` + SubscribeResultID + `" class="mt-3 text-sm" aria-live="polite"></div></div>`)

		w.Raw(`</div>`)

		// Legal
		w.Raw(`<div class="flex flex-col items-center justify-between gap-4 border-t border-slate-800 pt-8 text-sm text-slate-500 md:flex-row"><p>© `)
		w.Text(strconv.Itoa(time.Now().Year()))
		w.Raw(` AutoBot AI. All rights reserved.</p><div class="flex gap-6">`)
		for _, link := range sections.LegalLinks {
			w.Raw(`<a class="hover:text-white"`)
			w.Attr("href", link.Href)
			w.Raw(">")
			w.Text(link.Label)
			w.Raw(`</a>`)
		}
		w.Raw(`</div></div></div></footer>`)
	})
}

// SubscribeResult is the inline newsletter confirmation or error
func SubscribeResult(ok bool, message string) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		class := "text-emerald-400"
		if !ok {
			class = "text-red-400"
		}
		w.Raw(`<p role="status"`)
		w.Attr("class", class)
		w.Raw(">")
		w.Text(message)
		w.Raw(`</p>`)
	})
}
