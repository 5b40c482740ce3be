package partials

import (
	"context"

	"autobot_site_go/services"
	"autobot_site_go/templates/components"

	"github.com/a-h/templ"
)

// ContactFormID is the swap target of the contact form
const ContactFormID = "contact-form"

// ContactFormData is everything the contact form needs to render
type ContactFormData struct {
	Form             *services.LeadForm
	CSRFToken        string
	TurnstileSiteKey string
	Theme            components.Theme
}

type formField struct {
	name        string
	label       string
	kind        string
	placeholder string
	required    bool
	value       func(services.LeadInput) string
}

var contactFields = []formField{
	{name: "name", label: "Your Name", kind: "text", placeholder: "John Smith", required: true, value: func(in services.LeadInput) string { return in.Name }},
	{name: "email", label: "Email Address", kind: "email", placeholder: "john@example.com", required: true, value: func(in services.LeadInput) string { return in.Email }},
	{name: "company", label: "Company Name", kind: "text", placeholder: "Your Company", value: func(in services.LeadInput) string { return in.Company }},
	{name: "message", label: "How can we help?", kind: "textarea", placeholder: "Tell us a bit about your automation needs...", value: func(in services.LeadInput) string { return in.Message }},
}

// ContactForm renders the lead form in its current state. A submitted form
// shows the thank-you card instead of the fields.
func ContactForm(data ContactFormData) templ.Component {
	return components.Func(func(ctx context.Context, w *components.Writer) {
		form := data.Form
		if form == nil {
			form = services.NewLeadForm(services.LeadInput{})
		}

		w.Raw(`<div id="` + ContactFormID + `" data-form-state="` + string(form.State) + `">`)
		if form.IsSubmitted() {
			renderThankYou(ctx, w, data)
		} else {
			renderForm(ctx, w, data, form)
		}
		w.Raw(`</div>`)
	})
}

func renderThankYou(ctx context.Context, w *components.Writer, data ContactFormData) {
	w.Raw(`<div class="flex h-full flex-col items-center justify-center rounded-2xl border border-slate-800 bg-slate-900/50 p-8 text-center backdrop-blur-sm">`)
	w.Raw(`<div class="mb-6 flex h-20 w-20 items-center justify-center rounded-full bg-gradient-to-r from-cyan-500 to-violet-600">`)
	w.Render(ctx, components.Icon("check", "h-10 w-10 text-white"))
	w.Raw(`</div><h3 class="mb-4 text-2xl font-bold">Thank You!</h3>`)
	w.Raw(`<p class="mb-8 text-slate-400">We've received your message. Our team will reach out to you shortly to schedule your strategy call.</p>`)
	w.Raw(`<form action="/contact/reset" method="post" hx-post="/contact/reset" hx-target="#` + ContactFormID + `" hx-swap="outerHTML">`)
	csrfInput(w, data.CSRFToken)
	w.Raw(`<button type="submit"`)
	w.Attr("class", data.Theme.PrimaryButton)
	w.Raw(`>Send Another Message</button></form></div>`)
}

func renderForm(ctx context.Context, w *components.Writer, data ContactFormData, form *services.LeadForm) {
	w.Raw(`<form action="/contact" method="post" hx-post="/contact" hx-target="#` + ContactFormID + `" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]" class="rounded-2xl border border-slate-800 bg-slate-900/50 p-8 backdrop-blur-sm" novalidate>`)
	csrfInput(w, data.CSRFToken)
	w.Raw(`<h3 class="mb-6 text-2xl font-bold">Book Your Strategy Call</h3>`)

	if form.State == services.LeadFormError && form.Error != "" {
		w.Raw(`<div class="mb-6 flex items-center gap-3 rounded-xl border border-red-500/20 bg-red-500/10 px-4 py-3 text-red-400" role="alert">`)
		w.Render(ctx, components.Icon("alert", "h-5 w-5 flex-shrink-0"))
		w.Raw(`<span class="text-sm font-medium">`)
		w.Text(form.Error)
		w.Raw(`</span></div>`)
	}

	w.Raw(`<div class="space-y-6">`)
	for _, field := range contactFields {
		renderField(w, data.Theme, field, field.value(form.Values), form.FieldErrors[field.name])
	}

	if data.TurnstileSiteKey != "" {
		w.Raw(`<div class="cf-turnstile" data-theme="dark"`)
		w.Attr("data-sitekey", data.TurnstileSiteKey)
		w.Raw(`></div>`)
	}

	w.Raw(`<button type="submit"`)
	w.Attr("class", data.Theme.PrimaryButton+" w-full")
	w.Raw(`><span class="htmx-indicator hidden h-5 w-5 animate-spin rounded-full border-2 border-white border-t-transparent"></span><span>Book Your Call</span>`)
	w.Render(ctx, components.Icon("send", "h-5 w-5"))
	w.Raw(`</button>`)
	w.Raw(`<p class="mt-4 text-center text-sm text-slate-500">By submitting this form, you agree to our Privacy Policy and Terms of Service.</p>`)
	w.Raw(`</div></form>`)
}

func renderField(w *components.Writer, theme components.Theme, field formField, value, fieldErr string) {
	id := "lead-" + field.name
	w.Raw(`<div><label class="mb-2 block text-slate-400"`)
	w.Attr("for", id)
	w.Raw(">")
	w.Text(field.label)
	w.Raw(`</label>`)

	class := theme.Input
	if fieldErr != "" {
		class += " border-red-500"
	}

	if field.kind == "textarea" {
		w.Raw(`<textarea rows="4"`)
	} else {
		w.Raw(`<input`)
		w.Attr("type", field.kind)
		w.Attr("value", value)
	}
	w.Attr("id", id)
	w.Attr("name", field.name)
	w.Attr("placeholder", field.placeholder)
	w.Attr("class", class)
	if field.required {
		w.Raw(` required`)
	}
	if fieldErr != "" {
		w.Raw(` aria-invalid="true"`)
		w.Attr("aria-describedby", id+"-error")
	}
	if field.kind == "textarea" {
		w.Raw(">")
		w.Text(value)
		w.Raw(`</textarea>`)
	} else {
		w.Raw(`/>`)
	}

	if fieldErr != "" {
		w.Raw(`<p class="mt-2 text-sm text-red-400"`)
		w.Attr("id", id+"-error")
		w.Raw(">")
		w.Text(fieldErr)
		w.Raw(`</p>`)
	}
	w.Raw(`</div>`)
}

func csrfInput(w *components.Writer, token string) {
	w.Raw(`<input type="hidden" name="_csrf"`)
	w.Attr("value", token)
	w.Raw(`/>`)
}
