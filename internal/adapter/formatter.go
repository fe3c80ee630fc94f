package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

type profileLabels struct {
	Rhythm      string
	Structure   string
	Environment string
	Sociability string
	Nights      string
	Confidence  string
	Evidence    string
	Guardrails  string
}

var labelSets = map[domain.Language]profileLabels{
	domain.LanguageES: {
		Rhythm:      "Ritmo",
		Structure:   "Estructura",
		Environment: "Entorno",
		Sociability: "Sociabilidad",
		Nights:      "Noches sugeridas",
		Confidence:  "Confianza",
		Evidence:    "Señales",
		Guardrails:  "Cuidados",
	},
	domain.LanguageEN: {
		Rhythm:      "Rhythm",
		Structure:   "Structure",
		Environment: "Environment",
		Sociability: "Sociability",
		Nights:      "Suggested nights",
		Confidence:  "Confidence",
		Evidence:    "Signals",
		Guardrails:  "Guardrails",
	},
}

type profileView struct {
	ID          domain.ProfileID
	Name        string
	Tagline     string
	Description string
	Rhythm      domain.Rhythm
	Structure   domain.Structure
	Environment domain.Environment
	Sociability domain.Level
	NightsMin   int
	NightsMax   int
	Confidence  domain.Confidence
	Evidence    []string
	Guardrails  []string
	Labels      profileLabels
}

type tieBreakerView struct {
	Heading string
	Text    string
	Options []tieBreakerOptionView
}

type tieBreakerOptionView struct {
	Label     string
	ProfileID domain.ProfileID
}

type forecastView struct {
	Heading string
	Days    []domain.WeatherDay
	Best    string
	Worst   string
	Advice  []string
	Labels  struct{ Best, Worst string }
}

// ScoreLine is one row of the score table, highest first.
type ScoreLine struct {
	ProfileID domain.ProfileID
	Score     float64
	Winner    bool
}

// ResponseFormatter renders diagnosis and weather results as plain text.
type ResponseFormatter struct {
	lang domain.Language
}

func NewResponseFormatter(lang domain.Language) *ResponseFormatter {
	if lang != domain.LanguageEN {
		lang = domain.LanguageES
	}
	return &ResponseFormatter{lang: lang}
}

// FormatResult renders either the profile card or the pending tie-breaker.
func (f *ResponseFormatter) FormatResult(result *domain.ScoringResult) string {
	if result == nil {
		return f.FormatError(f.pick("sin resultado", "no result"))
	}
	if result.NeedsTieBreaker() {
		return f.FormatTieBreaker(result.Question)
	}
	return f.FormatProfile(result.Profile, result.Diagnosis)
}

func (f *ResponseFormatter) FormatProfile(profile *domain.EmotionalProfile, diag *domain.DiagnosisResult) string {
	if profile == nil {
		return f.FormatError(f.pick("perfil no disponible", "profile unavailable"))
	}

	view := profileView{
		ID:          profile.ID,
		Name:        profile.Name.Resolve(f.lang),
		Tagline:     profile.Tagline.Resolve(f.lang),
		Description: profile.Description.Resolve(f.lang),
		Rhythm:      profile.Architecture.Rhythm,
		Structure:   profile.Architecture.Structure,
		Environment: profile.Architecture.Environment,
		Sociability: profile.Architecture.Sociability,
		NightsMin:   profile.DurationNights.Min,
		NightsMax:   profile.DurationNights.Max,
		Labels:      labelSets[f.lang],
	}
	for _, chip := range profile.EvidenceChips {
		view.Evidence = append(view.Evidence, chip.Resolve(f.lang))
	}
	if diag != nil {
		view.Confidence = diag.Confidence
		view.Guardrails = diag.Guardrails
	}

	out, err := executeFormatterTemplate("profile.tmpl", view)
	if err != nil {
		return f.FormatError(err.Error())
	}
	return out
}

func (f *ResponseFormatter) FormatTieBreaker(q *domain.TieBreakerQuestion) string {
	if q == nil {
		return f.FormatError(f.pick("desempate sin pregunta", "tie-breaker without question"))
	}
	view := tieBreakerView{
		Heading: f.pick("Empate: se necesita una respuesta más", "Tie: one more answer is needed"),
		Text:    q.Text.Resolve(f.lang),
	}
	for _, opt := range q.Options {
		view.Options = append(view.Options, tieBreakerOptionView{Label: opt.Label.Resolve(f.lang), ProfileID: opt.ProfileID})
	}
	out, err := executeFormatterTemplate("tiebreaker.tmpl", view)
	if err != nil {
		return f.FormatError(err.Error())
	}
	return out
}

// ScoreLines orders scores descending with ties broken by profile id.
func ScoreLines(diag *domain.DiagnosisResult) []ScoreLine {
	if diag == nil {
		return nil
	}
	lines := make([]ScoreLine, 0, len(diag.Scores))
	for id, score := range diag.Scores {
		lines = append(lines, ScoreLine{ProfileID: id, Score: score, Winner: id == diag.ProfileID})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Score != lines[j].Score {
			return lines[i].Score > lines[j].Score
		}
		return lines[i].ProfileID < lines[j].ProfileID
	})
	return lines
}

func (f *ResponseFormatter) FormatScores(diag *domain.DiagnosisResult) string {
	lines := ScoreLines(diag)
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(f.pick("Puntajes", "Scores"))
	for _, l := range lines {
		marker := " "
		if l.Winner {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("\n %s %-7s %6.2f", marker, l.ProfileID, l.Score))
	}
	return sb.String()
}

func (f *ResponseFormatter) FormatForecast(report *domain.ForecastReport) string {
	if report == nil || len(report.Days) == 0 {
		return f.pick("Sin datos de clima para ese rango.", "No weather data for that range.")
	}

	heading := f.pick("Pronóstico", "Forecast")
	if report.Estimated {
		heading = f.pick("Estimación histórica", "Historical estimate")
	}
	if report.Location.Name != "" {
		heading += " · " + report.Location.Name
	}

	view := forecastView{
		Heading: heading,
		Days:    report.Days,
		Advice:  report.Analysis.Advice,
	}
	view.Labels.Best = f.pick("Mejor día", "Best day")
	view.Labels.Worst = f.pick("Peor día", "Worst day")
	if report.BestDay != nil && report.WorstDay != nil {
		view.Best = report.BestDay.Date
		view.Worst = report.WorstDay.Date
	}

	out, err := executeFormatterTemplate("forecast.tmpl", view)
	if err != nil {
		return f.FormatError(err.Error())
	}
	return out
}

func (f *ResponseFormatter) FormatError(message string) string {
	return "❌ " + message
}

func (f *ResponseFormatter) pick(es, en string) string {
	if f.lang == domain.LanguageEN {
		return en
	}
	return es
}
