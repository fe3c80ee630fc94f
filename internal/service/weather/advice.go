package weather

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

const (
	hotTipTemp  = 28
	coldTipTemp = 15
)

// DayTip picks the packing advice for a single day.
func DayTip(day domain.WeatherDay) domain.TravelTip {
	switch day.Condition {
	case domain.ConditionThunder, domain.ConditionRain, domain.ConditionDrizzle:
		return domain.TipRain
	case domain.ConditionSnow:
		return domain.TipSnow
	}
	switch {
	case day.MaxTemp > hotTipTemp:
		return domain.TipHot
	case day.MaxTemp < coldTipTemp:
		return domain.TipCold
	case day.WindSpeed > windTolerance:
		return domain.TipWind
	}
	return domain.TipNice
}

var tipTexts = map[domain.TravelTip]domain.LocalizedText{
	domain.TipRain: domain.L(
		"Sugerimos incluir un impermeable ligero o paraguas compacto en tu equipaje.",
		"We suggest including a light raincoat or compact umbrella in your luggage."),
	domain.TipHot: domain.L(
		"Días ideales para el sol. Recomendamos protector solar y prendas frescas de lino o algodón.",
		"Ideal days for the sun. We recommend sunscreen and fresh linen or cotton clothing."),
	domain.TipCold: domain.L(
		"Clima fresco. Te recomendamos empacar capas ligeras y un abrigo de calidad para las noches.",
		"Chilly weather. We recommend packing light layers and a quality coat for the evenings."),
	domain.TipWind: domain.L(
		"Brisa constante. Un cortavientos ligero será tu mejor aliado durante los traslados.",
		"Constant breeze. A light windbreaker will be your best ally during transfers."),
	domain.TipNice: domain.L(
		"Condiciones inmejorables. Ropa cómoda y calzado versátil para explorar sin límites.",
		"Exceptional conditions. Comfortable clothes and versatile footwear to explore without limits."),
	domain.TipSnow: domain.L(
		"Paisaje nevado. No olvides prendas térmicas y calzado con buen agarre.",
		"Snowy landscape. Don't forget thermal clothing and footwear with good grip."),
}

func TipText(tip domain.TravelTip, lang domain.Language) string {
	return tipTexts[tip].Resolve(lang)
}

var (
	statusTexts = map[domain.WeatherStatus]domain.LocalizedText{
		domain.WeatherFavorable: domain.L(
			"Condiciones muy propicias para tu travesía.",
			"Highly promising conditions for your journey."),
		domain.WeatherVariable: domain.L(
			"Clima cambiante: sugerimos considerar flexibilidad en el itinerario.",
			"Variable weather: we suggest considering flexibility in your plan."),
		domain.WeatherUnfavorable: domain.L(
			"Condiciones que podrían motivar ajustes en tus actividades.",
			"Conditions that may suggest adjustments to your activities."),
	}
	summaryTexts = map[domain.WeatherSummary]domain.LocalizedText{
		domain.SummarySunny: domain.L(
			"Predominio de días despejados y sol radiante.",
			"Predominance of clear skies and radiant sun."),
		domain.SummaryRainy: domain.L(
			"Se prevén precipitaciones frecuentes durante la estancia.",
			"Frequent precipitation expected during your stay."),
		domain.SummaryMixed: domain.L(
			"Alternancia de nubes y claros a lo largo de la semana.",
			"Alternating clouds and sunshine throughout the week."),
	}
	heatWarningText = domain.L(
		"Nota: Se esperan picos de calor intenso. Manténgase hidratado.",
		"Note: Intense heat peaks expected. Stay hydrated.")
	windWarningText = domain.L(
		"Nota: Brisa fuerte detectada. Considere este dato para tours marítimos.",
		"Note: Strong breeze detected. Consider this for sea tours.")
)

// Advise renders the advisor recommendation lines for an analysis.
func Advise(a domain.ForecastAnalysis, lang domain.Language) []string {
	lines := []string{
		statusTexts[a.Status].Resolve(lang),
		summaryTexts[a.Summary].Resolve(lang),
	}
	if a.ExtremeHeat {
		lines = append(lines, heatWarningText.Resolve(lang))
	}
	if a.WindWarning {
		lines = append(lines, windWarningText.Resolve(lang))
	}
	return lines
}
