package pages

import (
	"context"
	"strconv"

	"autobot_site_go/models"
	"autobot_site_go/services"
	"autobot_site_go/templates/components"
	"autobot_site_go/templates/partials"
	"autobot_site_go/templates/sections"

	"github.com/a-h/templ"
)

// LandingData is the view model of the landing page
type LandingData struct {
	SEO              *models.SEO
	Page             *sections.Page
	Form             *services.LeadForm
	CSRFToken        string
	TurnstileSiteKey string
	Theme            components.Theme
}

// revealOptions is the browser-side copy of a section's observer options
type revealOptions struct {
	Threshold  float64 `json:"threshold"`
	RootMargin string  `json:"rootMargin,omitempty"`
	Once       bool    `json:"once,omitempty"`
	Hidden     string  `json:"hidden"`
	Revealed   string  `json:"revealed"`
}

// Landing renders the full landing document
func Landing(data LandingData) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Raw(`<!DOCTYPE html><html lang="en" class="scroll-smooth">`)
		w.Render(ctx, components.Head(components.HeadOptions{
			SEO:       data.SEO,
			CSRFToken: data.CSRFToken,
			Turnstile: data.TurnstileSiteKey != "",
		}))
		w.Raw(`<body`)
		w.Attr("class", "min-h-screen font-[Inter] antialiased "+data.Theme.Background)
		w.Attr("hx-headers", components.JSON(map[string]string{"X-CSRF-Token": data.CSRFToken}))
		w.Raw(`>`)
		w.Render(ctx, components.Header(data.Theme))
		w.Raw(`<main>`)
		for _, s := range data.Page.Sections {
			w.Render(ctx, Section(s, sectionBody(s, data)))
		}
		w.Raw(`</main>`)
		w.Render(ctx, components.Footer(data.Theme, data.CSRFToken))
		w.Raw(`</body></html>`)
	})
}

// Section renders a section root carrying its current reveal classes and the
// options the browser needs to keep observing it.
func Section(s *sections.Section, body templ.Component) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		opts := revealOptions{
			Threshold:  s.Options.Threshold,
			RootMargin: s.Options.RootMargin,
			Once:       s.Options.Once,
			Hidden:     s.Transition.Hidden,
			Revealed:   s.Transition.Revealed,
		}
		w.Raw(`<section`)
		w.Attr("id", s.ID)
		w.Attr("class", s.Transition.With("relative py-24 transition-all duration-700 ease-out", s.Visible()))
		w.Raw(` data-reveal`)
		w.Attr("data-reveal-options", components.JSON(opts))
		w.Raw(`><div class="relative z-10 mx-auto max-w-7xl px-6">`)
		w.Render(ctx, body)
		w.Raw(`</div></section>`)
	})
}

func sectionBody(s *sections.Section, data LandingData) templ.Component {
	switch s.ID {
	case sections.HeroID:
		return heroBody(s, data.Theme)
	case sections.ServicesID:
		return servicesBody(s, data.Theme)
	case sections.AboutID:
		return aboutBody(s, data.Theme)
	case sections.CaseStudiesID:
		return caseStudiesBody(s, data.Theme)
	case sections.FAQID:
		return faqBody(s, data.Theme)
	case sections.ContactID:
		return contactBody(s, data)
	}
	return sectionHeading(s, data.Theme)
}

func sectionHeading(s *sections.Section, theme components.Theme) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Raw(`<div class="mx-auto mb-16 max-w-3xl text-center"><h2`)
		w.Attr("class", "mb-6 text-3xl font-bold md:text-4xl "+theme.GradientText)
		w.Raw(">")
		w.Text(s.Title)
		w.Raw(`</h2>`)
		if s.Subtitle != "" {
			w.Raw(`<p`)
			w.Attr("class", "text-lg "+theme.Muted)
			w.Raw(">")
			w.Text(s.Subtitle)
			w.Raw(`</p>`)
		}
		w.Raw(`</div>`)
	})
}

func heroBody(s *sections.Section, theme components.Theme) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Raw(`<div class="mx-auto max-w-4xl pt-20 text-center"><h1`)
		w.Attr("class", "mb-6 text-4xl font-bold leading-tight md:text-5xl lg:text-6xl "+theme.GradientText)
		w.Raw(">")
		w.Text(s.Title)
		w.Raw(`</h1><p`)
		w.Attr("class", "mx-auto mb-10 max-w-2xl text-lg md:text-xl "+theme.Muted)
		w.Raw(">")
		w.Text(s.Subtitle)
		w.Raw(`</p><div class="mb-16 flex flex-col justify-center gap-4 sm:flex-row">`)
		w.Raw(`<a href="#` + sections.ContactID + `"`)
		w.Attr("class", theme.PrimaryButton)
		w.Raw(`>Book a Free Strategy Call`)
		w.Render(ctx, components.Icon("arrow", "h-5 w-5"))
		w.Raw(`</a><a href="#` + sections.ServicesID + `"`)
		w.Attr("class", theme.SecondaryButton)
		w.Raw(`>Explore Solutions</a></div>`)

		w.Raw(`<dl class="grid grid-cols-1 gap-6 sm:grid-cols-3">`)
		for _, stat := range sections.HeroStats {
			w.Raw(`<div`)
			w.Attr("class", theme.Card)
			w.Raw(`><dt`)
			w.Attr("class", "text-sm "+theme.Muted)
			w.Raw(">")
			w.Text(stat.Label)
			w.Raw(`</dt><dd`)
			w.Attr("class", "order-first text-3xl font-bold "+theme.Accent)
			w.Raw(">")
			w.Text(stat.Value)
			w.Raw(`</dd></div>`)
		}
		w.Raw(`</dl></div>`)
	})
}

func servicesBody(s *sections.Section, theme components.Theme) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Render(ctx, sectionHeading(s, theme))
		w.Raw(`<div class="grid grid-cols-1 gap-8 md:grid-cols-2 lg:grid-cols-3">`)
		for i, svc := range sections.Services {
			w.Raw(`<article`)
			w.Attr("class", theme.Card+" transition hover:border-cyan-500/40")
			w.Attr("style", "transition-delay: "+strconv.Itoa(i*100)+"ms")
			w.Raw(`><div class="mb-5 inline-flex rounded-xl bg-cyan-500/10 p-3">`)
			w.Render(ctx, components.Icon(svc.Icon, "h-7 w-7 "+theme.Accent))
			w.Raw(`</div><h3 class="mb-3 text-xl font-semibold">`)
			w.Text(svc.Title)
			w.Raw(`</h3><p`)
			w.Attr("class", theme.Muted)
			w.Raw(">")
			w.Text(svc.Description)
			w.Raw(`</p></article>`)
		}
		w.Raw(`</div>`)
	})
}

func aboutBody(s *sections.Section, theme components.Theme) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Render(ctx, sectionHeading(s, theme))
		w.Raw(`<ul class="mx-auto max-w-3xl space-y-4">`)
		for _, point := range sections.AboutPoints {
			w.Raw(`<li class="flex items-start gap-3">`)
			w.Render(ctx, components.Icon("check", "mt-1 h-5 w-5 flex-shrink-0 "+theme.Accent))
			w.Raw(`<span class="text-slate-300">`)
			w.Text(point)
			w.Raw(`</span></li>`)
		}
		w.Raw(`</ul>`)
	})
}

func caseStudiesBody(s *sections.Section, theme components.Theme) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Render(ctx, sectionHeading(s, theme))
		w.Raw(`<div class="grid grid-cols-1 gap-8 md:grid-cols-3">`)
		for _, cs := range sections.CaseStudies {
			w.Raw(`<article`)
			w.Attr("class", theme.Card)
			w.Raw(`><p class="mb-2 text-xs font-semibold uppercase tracking-wider text-slate-500">`)
			w.Text(cs.Industry)
			w.Raw(`</p><h3 class="mb-3 text-xl font-semibold">`)
			w.Text(cs.Client)
			w.Raw(`</h3><p`)
			w.Attr("class", "mb-4 text-2xl font-bold "+theme.Accent)
			w.Raw(">")
			w.Text(cs.Metric)
			w.Raw(`</p><p`)
			w.Attr("class", theme.Muted)
			w.Raw(">")
			w.Text(cs.Summary)
			w.Raw(`</p></article>`)
		}
		w.Raw(`</div>`)
	})
}

func faqBody(s *sections.Section, theme components.Theme) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Render(ctx, sectionHeading(s, theme))
		w.Raw(`<div class="mx-auto max-w-3xl space-y-4">`)
		for _, q := range sections.FAQs {
			w.Raw(`<details`)
			w.Attr("class", theme.Card+" group")
			w.Raw(`><summary class="cursor-pointer list-none text-lg font-semibold">`)
			w.Text(q.Question)
			w.Raw(`</summary><p`)
			w.Attr("class", "mt-4 "+theme.Muted)
			w.Raw(">")
			w.Text(q.Answer)
			w.Raw(`</p></details>`)
		}
		w.Raw(`</div>`)
	})
}

func contactBody(s *sections.Section, data LandingData) templ.Component {
	theme := data.Theme
	return components.Func(func(ctx context.Context, w *components.Writer) {
		w.Raw(`<div class="grid grid-cols-1 items-start gap-12 lg:grid-cols-2"><div><h2`)
		w.Attr("class", "mb-6 text-3xl font-bold md:text-4xl "+theme.GradientText)
		w.Raw(">")
		w.Text(s.Title)
		w.Raw(`</h2><p`)
		w.Attr("class", "mb-8 text-lg "+theme.Muted)
		w.Raw(">")
		w.Text(s.Subtitle)
		w.Raw(`</p><h3 class="mb-4 text-xl font-semibold">What You'll Get:</h3><ul class="mb-10 space-y-3">`)
		for _, item := range sections.ContactHighlights {
			w.Raw(`<li class="flex items-center gap-3">`)
			w.Render(ctx, components.Icon("check", "h-5 w-5 "+theme.Accent))
			w.Raw(`<span class="text-slate-300">`)
			w.Text(item)
			w.Raw(`</span></li>`)
		}
		w.Raw(`</ul><div`)
		w.Attr("class", theme.Card+" flex items-center gap-4")
		w.Raw(`>`)
		w.Render(ctx, components.Icon("clock", "h-8 w-8 "+theme.Accent))
		w.Raw(`<div><p class="font-semibold">Available for consultation</p><p`)
		w.Attr("class", "text-sm "+theme.Muted)
		w.Raw(">")
		w.Text(sections.ContactInfo.Hours)
		w.Raw(`</p></div></div></div>`)

		w.Render(ctx, partials.ContactForm(partials.ContactFormData{
			Form:             data.Form,
			CSRFToken:        data.CSRFToken,
			TurnstileSiteKey: data.TurnstileSiteKey,
			Theme:            theme,
		}))
		w.Raw(`</div>`)
	})
}
