package scoring

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

// questionBanks holds the eight questions per modality shown by the wizard.
// Each option's Value is the Spanish text, which is what the classifier
// matches; the English label is display-only.
var questionBanks = map[domain.Modality][]domain.Question{
	domain.ModalitySolo: {
		question("IND_Q1", domain.L("En un día raro donde nadie te pide nada, tú naturalmente…", "On a rare day where no one asks for anything, you naturally..."),
			option("Bajas estímulo y te escondes un poco", "Lower stimulus and hide away"),
			option("Ordenas 2–3 cosas y te alineas", "Sort 2-3 things and align yourself"),
			option("Sales a moverte: acción primero", "Get moving: action first"),
		),
		question("IND_Q2", domain.L("Si tu mente fuera un cuarto hoy, lo que más agradecería es…", "If your mind were a room today, what it would appreciate most is..."),
			option("Que apaguen el ruido y quede vacío", "Noise off, empty space"),
			option("Que todo esté en su lugar y se entienda fácil", "Everything in place, easy to understand"),
			option("Que se abra: aire, calle, vida", "Opened up: air, street, life"),
		),
		question("IND_Q3", domain.L("Cuando alguien te propone plan, tú prefieres…", "When someone suggests a plan, you prefer..."),
			option("Que ya venga armado (tú solo ejecutas)", "Ready-made (you just execute)"),
			option("Elegir entre 2–3 rutas claras", "Choose between 2-3 clear routes"),
			option("Decidir sobre la marcha", "Decide on the go"),
		),
		question("IND_Q4", domain.L("En ambientes nuevos, tú te sientes mejor cuando…", "In new environments, you feel best when..."),
			option("Puedes observar sin interactuar mucho", "Observe without much interaction"),
			option("Interactúas poco, pero elegido", "Interact little, but by choice"),
			option("Hay energía social disponible (sin obligación)", "Social energy available (no obligation)"),
		),
		question("IND_Q5", domain.L("El tipo de incomodidad que más te rompe el día es…", "The type of discomfort that most breaks your day is..."),
			option("Ruido / saturación / demasiada gente", "Noise / saturation / too many people"),
			option("Micro-decisiones + logística que drena", "Micro-decisions + draining logistics"),
			option("Estancarte: sentir que no pasa nada", "Stagnation: feeling nothing happens"),
		),
		question("IND_Q6", domain.L("Al final del día, sientes que valió la pena si…", "At the end of the day, you feel it was worth it if..."),
			option("Descansaste y te bajó el sistema", "Rested and system powered down"),
			option("Te quedó una idea clara", "Left with a clear idea"),
			option("Hiciste algo retador y te sentiste capaz", "Did something challenging and felt capable"),
		),
		question("IND_Q7", domain.L("Cuando pagas por calidad, lo que más valoras sin pensarlo es…", "When paying for quality, what you value most without thinking is..."),
			option("Privacidad + discreción", "Privacy + discretion"),
			option("Orden + diseño bien resuelto", "Order + well-resolved design"),
			option("Acceso + puertas abiertas", "Access + open doors"),
		),
		question("IND_Q8", domain.L("Una semana bien cerrada se siente como…", "A week well-concluded feels like..."),
			option("Ligereza", "Lightness"),
			option("Claridad", "Clarity"),
			option("Expansión", "Expansion"),
		),
	},
	domain.ModalityCouple: {
		question("COU_Q1", domain.L("Elijan la escena que más se parece a ustedes hoy:", "Choose the scene that looks most like you today:"),
			option("Silencio cómodo, sin prisa", "Comfortable silence, no rush"),
			option("Risa y descubrimiento", "Laughter and discovery"),
			option("Algo “especial” bien cuidado (detalle/estética)", "Something 'special' well-cared for (detail/aesthetics)"),
		),
		question("COU_Q2", domain.L("Cuando se desacomodan como equipo, casi siempre es porque…", "When you get out of sync as a team, it's almost always because..."),
			option("Hay demasiadas decisiones pequeñas", "Too many small decisions"),
			option("Van a ritmos distintos", "At different rhythms"),
			option("El entorno/social los desgasta", "Environment/social wears you down"),
		),
		question("COU_Q3", domain.L("La forma más limpia de tomar decisiones entre ustedes es…", "The cleanest way to make decisions between you is..."),
			option("Uno propone y el otro valida", "One proposes, other validates"),
			option("Se reparten por turnos (bloques)", "Taking turns (blocks)"),
			option("Acuerdan lo mínimo y sueltan el resto", "Agree on minimum, let go of rest"),
		),
		question("COU_Q4", domain.L("La “distancia correcta” con el mundo sería…", "The 'correct distance' from the world would be..."),
			option("Burbuja total", "Total bubble"),
			option("Privado con ventanas sociales", "Private with social windows"),
			option("Social con retiros puntuales", "Social with punctual retreats"),
		),
		question("COU_Q5", domain.L("El “pulso” ideal para que ustedes funcionen estos días es…", "The ideal 'pulse' for you to function these days is..."),
			option("Pausado", "Paused"),
			option("Balanceado", "Balanced"),
			option("Dinámico", "Dynamic"),
		),
		question("COU_Q6", domain.L("El momento que más los une suele ser…", "The moment that most unites you is usually..."),
			option("Intimidad impecable (cuidada)", "Intimidad impecable (cuidada)"),
			option("Meta/actividad ganada juntos", "Meta/actividad ganada juntos"),
			option("Estética/cultura que los eleva", "Estética/cultura que los eleva"),
		),
		question("COU_Q7", domain.L("Esto se arruina si…", "This is ruined if..."),
			option("La logística se vuelve carga mental", "Logistics becomes mental load"),
			option("Hay que planear demasiado para que funcione", "Must plan too much to work"),
			option("Se siente “lo mismo” con otro fondo", "Feels like 'the same' with different background"),
		),
		question("COU_Q8", domain.L("Al final, lo que más quieren llevarse es…", "In the end, what you most want to take away is..."),
			option("Reconexión calmada", "Reconexión calmada"),
			option("Complicidad renovada", "Complicidad renovada"),
			option("Celebración lograda", "Celebración lograda"),
		),
	},
	domain.ModalityFamily: {
		question("FAM_Q1", domain.L("En planes con niños, el día se “tuerce” casi siempre cuando…", "In plans with kids, the day 'twists' almost always when..."),
			option("Se rompe el sueño/horario base", "Sleep/schedule broken"),
			option("Se rompe la comida (hambre/antojos)", "Food (hunger/cravings) broken"),
			option("Se rompe los tiempos (traslados/esperas)", "Timing (transfers/waits) broken"),
		),
		question("FAM_Q2", domain.L("Cuando aparece la típica crisis, el “botón de reset” que mejor les funciona es…", "When a typical crisis appears, the 'reset button' that works best is..."),
			option("Volver a base / parar todo y recomponer", "Back to base / stop and recompose"),
			option("Resolver comida rápido y seguir", "Resolve food fast and continue"),
			option("Bajar estímulo (espacio/quietud) y simplificar", "Lower stimulus (space/stillness) and simplify"),
		),
		question("FAM_Q3", domain.L("La regla invisible que más protege la armonía es…", "The invisible rule that most protects harmony is..."),
			option("Saber qué sigue (estructura clara)", "Know what's next (clear structure)"),
			option("Bloques con aire (marco flexible)", "Blocks with air (flexible frame)"),
			option("1–2 anclas y lo demás libre", "1-2 anchors, rest is free"),
		),
		question("FAM_Q4", domain.L("La dosis de novedad que hoy sí suma (sin factura) es…", "The dose of novelty that adds value today (without cost) is..."),
			option("Familiaridad bien hecha", "Familiarity well-done"),
			option("Una cosa nueva al día", "One new thing a day"),
			option("Inmersión fuerte, pero con soporte", "Strong immersion, but with support"),
		),
		question("FAM_Q5", domain.L("Cuando hay energías distintas (unos arriba/otros abajo), ustedes naturalmente…", "When there are different energies, you naturally..."),
			option("Ajustan a un ritmo medio para todos", "Adjust to a middle rhythm for all"),
			option("Se dividen en subgrupos por momentos", "Divide into subgroups by moments"),
			option("Se turnan: “bloque kids” / “bloque adultos”", "Take turns: 'kids block' / 'adult block'"),
		),
		question("FAM_Q6", domain.L("Para que los adultos descansen de verdad, lo que más cambia el juego es…", "For adults to truly rest, what changes the game most is..."),
			option("Que alguien externo cargue decisiones/logística", "External help with decisions/logistics"),
			option("Entorno predecible y seguro (cero sobresaltos)", "Predictable/safe environment"),
			option("Entretenimiento confiable para niños, sin fricción", "Reliable entertainment for kids, no friction"),
		),
		question("FAM_Q7", domain.L("Para niños 0–7, lo que mejor sostiene el ánimo es…", "For kids 0-7, what sustains mood best is..."),
			option("Juego integrado al plan", "Play integrated into the plan"),
			option("Espacios dedicados (kids club/actividades)", "Dedicated spaces (kids club)"),
			option("Rutina simple repetible", "Simple repeatable routine"),
		),
		question("FAM_Q8", domain.L("La señal de “valió la pena” para ustedes sería…", "The sign of 'it was worth it' for you would be..."),
			option("Paz real (todo fluyó)", "Paz real (todo fluyó)"),
			option("Vínculo (nos vimos / nos reímos)", "Vínculo (nos vimos / nos reímos)"),
			option("Historia (recuerdo fuerte compartido)", "Historia (recuerdo fuerte compartido)"),
		),
	},
	domain.ModalityGroup: {
		question("GRP_Q1", domain.L("Si este grupo fuera una “tripulación”, se parece más a…", "If this group were a 'crew', it looks most like..."),
			option("Exploradores (moverse/descubrir)", "Exploradores (moverse/descubrir)"),
			option("Embajada cultural (capas/estética)", "Embajada cultural (capas/estética)"),
			option("Club privado (calma/nivel)", "Club privado (calma/nivel)"),
		),
		question("GRP_Q2", domain.L("En la mesa, el clima que más les queda es…", "At the table, the vibe that fits you best is..."),
			option("Risa desinhibida", "Risa desinhibida"),
			option("Conversación larga y buena", "Conversación larga y buena"),
			option("Ritual corto y luego libertad", "Ritual corto y luego libertad"),
		),
		question("GRP_Q3", domain.L("Cuando este grupo disfruta más, normalmente es porque…", "When this group enjoys most, it's usually because..."),
			option("Está claro “qué sigue” y nadie se desgasta", "Está claro “qué sigue” y nadie se desgasta"),
			option("Hay marco y aire (sin rigidez)", "Hay marco y aire (sin rigidez)"),
			option("Se decide en el momento y sale bien", "Se decide en el momento y sale bien"),
		),
		question("GRP_Q4", domain.L("El rasgo no negociable del grupo es…", "The non-negotiable trait of the group is..."),
			option("Respeto a acuerdos/tiempos", "Respeto a acuerdos/tiempos"),
			option("Flexibilidad sin juicio (nadie se culpa)", "Flexibilidad sin juicio (nadie se culpa)"),
			option("Energía compartida (sube a todos)", "Energía compartida (sube a todos)"),
		),
		question("GRP_Q5", domain.L("El “trabajo real” de este plan para el grupo es…", "The 'real work' of this plan for the group is..."),
			option("Cuidar el vínculo y la confianza", "Cuidar el vínculo y la confianza"),
			option("Crear una historia compartida", "Crear una historia compartida"),
			option("Recuperar energía sin fricción", "Recuperar energía sin fricción"),
		),
		question("GRP_Q6", domain.L("El éxito sonaría más como…", "Success would sound like..."),
			option("Brindis y mesa perfecta", "Brindis y mesa perfecta"),
			option("Silencio frente a algo sublime", "Silencio frente a algo sublime"),
			option("Aplauso/golpe de energía tras un logro", "Aplauso/golpe de energía tras un logro"),
		),
		question("GRP_Q7", domain.L("La tensión que más aparece “por debajo” suele ser…", "The tension that most appears 'underneath' is..."),
			option("Sentirme arrastrado por un plan ajeno", "Sentirme arrastrado por un plan ajeno"),
			option("Injusticia de valor (pago/no lo disfruto)", "Injusticia de valor (pago/no lo disfruto)"),
			option("Fricción social (roles/egos/exclusión)", "Fricción social (roles/egos/exclusión)"),
		),
		question("GRP_Q8", domain.L("Si pudieran firmar una sola regla para evitar desgaste, sería…", "If you could sign one single rule to avoid burnout, it would be..."),
			option("“Expectativas cerradas antes de salir”", "“Expectativas cerradas antes de salir”"),
			option("“Meetpoints fijos + libertad dentro”", "“Meetpoints fijos + libertad dentro”"),
			option("“Una persona decide reservas para no discutir todo”", "“Una persona decide reservas para no discutir todo”"),
		),
	},
}

func question(id string, text domain.LocalizedText, options ...domain.QuestionOption) domain.Question {
	return domain.Question{ID: id, Text: text, Options: options}
}

func option(es, en string) domain.QuestionOption {
	return domain.QuestionOption{Value: es, Label: domain.L(es, en)}
}

// Questions returns the question bank of a modality, or nil when unknown.
func Questions(m domain.Modality) []domain.Question {
	return questionBanks[m]
}

// IsKnownQuestion reports whether id belongs to the modality's bank or is
// the modality's tie-breaker key.
func IsKnownQuestion(m domain.Modality, id string) bool {
	if id == m.TieBreakerKey() {
		return true
	}
	for _, q := range questionBanks[m] {
		if q.ID == id {
			return true
		}
	}
	return false
}
