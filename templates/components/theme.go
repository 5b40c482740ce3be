package components

// Theme holds the shared visual tokens of the site
type Theme struct {
	Background      string
	Surface         string
	Card            string
	Border          string
	Muted           string
	Accent          string
	GradientText    string
	PrimaryButton   string
	SecondaryButton string
	Input           string
}

// DefaultTheme is the dark AutoBot AI palette
var DefaultTheme = Theme{
	Background:      "bg-slate-950 text-slate-100",
	Surface:         "bg-slate-900",
	Card:            "bg-slate-900/60 border border-slate-800 rounded-2xl p-6 backdrop-blur",
	Border:          "border-slate-800",
	Muted:           "text-slate-400",
	Accent:          "text-cyan-400",
	GradientText:    "bg-gradient-to-r from-cyan-400 via-sky-400 to-violet-500 bg-clip-text text-transparent",
	PrimaryButton:   "inline-flex items-center justify-center gap-2 rounded-xl bg-gradient-to-r from-cyan-500 to-violet-600 px-6 py-3 font-semibold text-white shadow-lg shadow-cyan-500/20 transition hover:opacity-90 disabled:opacity-60",
	SecondaryButton: "inline-flex items-center justify-center gap-2 rounded-xl border border-slate-700 px-6 py-3 font-semibold text-slate-200 transition hover:border-cyan-400 hover:text-cyan-300",
	Input:           "w-full rounded-xl border border-slate-700 bg-slate-950 px-4 py-3 text-slate-100 placeholder-slate-500 focus:border-cyan-400 focus:outline-none focus:ring-1 focus:ring-cyan-400",
}
