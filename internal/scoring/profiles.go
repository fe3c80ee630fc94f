package scoring

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

var profiles = map[domain.ProfileID]*domain.EmotionalProfile{
	"IND_01": {
		ID:            "IND_01",
		Modality:      domain.ModalitySolo,
		Name:          domain.L("Retiro Curado", "Curated Retreat"),
		Tagline:       domain.L("Silencio como nuevo lujo", "Silence as new luxury"),
		Description:   domain.L("Buscas un espacio de introspección profunda.", "You seek a space for deep introspection."),
		EvidenceChips: []domain.LocalizedText{domain.L("Privacidad", "Privacy"), domain.L("Silencio", "Silence")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBreathable,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentRefuge,
			Sociability: domain.LevelLow,
		},
		Peak:           domain.L("Amanecer en soledad", "Sunrise in solitude"),
		End:            domain.L("Ligereza mental", "Mental lightness"),
		Avoid:          domain.L("Sobreestímulo", "Overstimulation"),
		DurationNights: domain.NightsRange{Min: 4, Max: 8},
		Guardrails:     []domain.LocalizedText{domain.L("Discreción absoluta", "Absolute discretion")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"naturaleza"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideMinimal,
			ActivityDensity: domain.LevelLow,
		},
	},
	"IND_02": {
		ID:            "IND_02",
		Modality:      domain.ModalitySolo,
		Name:          domain.L("Exploración con Foco", "Focused Exploration"),
		Tagline:       domain.L("Orden y diseño", "Order and design"),
		Description:   domain.L("Viajas para aprender con un marco claro.", "You travel to learn within a clear framework."),
		EvidenceChips: []domain.LocalizedText{domain.L("Estructura", "Structure"), domain.L("Curiosidad", "Curiosity")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBalanced,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentHub,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Descubrimiento cultural", "Cultural discovery"),
		End:            domain.L("Claridad", "Clarity"),
		Avoid:          domain.L("Fricción logística", "Logistical friction"),
		DurationNights: domain.NightsRange{Min: 6, Max: 10},
		Guardrails:     []domain.LocalizedText{domain.L("Expertos locales", "Local experts")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"urbano"},
			ItineraryStyle:  []string{"modular"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelMedium,
		},
	},
	"IND_03": {
		ID:            "IND_03",
		Modality:      domain.ModalitySolo,
		Name:          domain.L("Ruptura Energética", "Energetic Break"),
		Tagline:       domain.L("Adrenalina y expansión", "Adrenaline and expansion"),
		Description:   domain.L("Buscas el movimiento para crecer.", "You seek movement to grow."),
		EvidenceChips: []domain.LocalizedText{domain.L("Impacto", "Impact"), domain.L("Intensidad", "Intensity")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmIntense,
			Structure:   domain.StructureCuratedFree,
			Environment: domain.EnvironmentFrontier,
			Sociability: domain.LevelHigh,
		},
		Peak:           domain.L("Reto superado", "Challenge overcome"),
		End:            domain.L("Empoderamiento", "Empowerment"),
		Avoid:          domain.L("Encierro", "Confinement"),
		DurationNights: domain.NightsRange{Min: 5, Max: 9},
		Guardrails:     []domain.LocalizedText{domain.L("Seguridad premium", "Premium safety")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"naturaleza"},
			ItineraryStyle:  []string{"multi_sede"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelHigh,
		},
	},
	"IND_04": {
		ID:            "IND_04",
		Modality:      domain.ModalitySolo,
		Name:          domain.L("Reinicio con Contención", "Contained Restart"),
		Tagline:       domain.L("Cuidado experto", "Expert care"),
		Description:   domain.L("Necesitas un reset sin esfuerzo.", "You need a reset without effort."),
		EvidenceChips: []domain.LocalizedText{domain.L("Cuidado", "Care"), domain.L("Seguridad", "Safety")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBreathable,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentRefuge,
			Sociability: domain.LevelLow,
		},
		Peak:           domain.L("Sorpresa elegante", "Elegant surprise"),
		End:            domain.L("Renovación", "Renewal"),
		Avoid:          domain.L("Decisiones", "Decisions"),
		DurationNights: domain.NightsRange{Min: 3, Max: 6},
		Guardrails:     []domain.LocalizedText{domain.L("Concierge 24/7", "24/7 Concierge")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"resort"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideFullConcierge,
			ActivityDensity: domain.LevelLow,
		},
	},
	"COU_01": {
		ID:            "COU_01",
		Modality:      domain.ModalityCouple,
		Name:          domain.L("Santuario en Pareja", "Couple Sanctuary"),
		Tagline:       domain.L("Reconexión íntima", "Intimate reconnection"),
		Description:   domain.L("Buscas una burbuja de paz compartida.", "You seek a shared peace bubble."),
		EvidenceChips: []domain.LocalizedText{domain.L("Intimidad", "Intimacy"), domain.L("Calma", "Calm")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBreathable,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentRefuge,
			Sociability: domain.LevelLow,
		},
		Peak:           domain.L("Cena bajo las estrellas", "Dinner under the stars"),
		End:            domain.L("Sintonía total", "Total sync"),
		Avoid:          domain.L("Exposición social", "Social exposure"),
		DurationNights: domain.NightsRange{Min: 4, Max: 9},
		Guardrails:     []domain.LocalizedText{domain.L("Privacidad total", "Total privacy")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"resort", "naturaleza"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideFullConcierge,
			ActivityDensity: domain.LevelLow,
		},
	},
	"COU_02": {
		ID:            "COU_02",
		Modality:      domain.ModalityCouple,
		Name:          domain.L("Aventura Cómplice", "Complicit Adventure"),
		Tagline:       domain.L("Dinamismo y reto", "Dynamism and challenge"),
		Description:   domain.L("Vivir experiencias potentes juntos.", "Living powerful experiences together."),
		EvidenceChips: []domain.LocalizedText{domain.L("Complicidad", "Complicity"), domain.L("Energía", "Energy")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmIntense,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentFrontier,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Cumbre alcanzada", "Summit reached"),
		End:            domain.L("Inspiración", "Inspiration"),
		Avoid:          domain.L("Rutina", "Routine"),
		DurationNights: domain.NightsRange{Min: 7, Max: 12},
		Guardrails:     []domain.LocalizedText{domain.L("Guía privado", "Private guide")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"naturaleza"},
			ItineraryStyle:  []string{"multi_sede"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelHigh,
		},
	},
	"COU_03": {
		ID:            "COU_03",
		Modality:      domain.ModalityCouple,
		Name:          domain.L("Celebración Estética", "Aesthetic Celebration"),
		Tagline:       domain.L("Brindis al diseño", "Toast to design"),
		Description:   domain.L("Celebrar en entornos de alta belleza.", "Celebrating in environments of high beauty."),
		EvidenceChips: []domain.LocalizedText{domain.L("Estética", "Aesthetics"), domain.L("Social", "Social")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBalanced,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentHub,
			Sociability: domain.LevelHigh,
		},
		Peak:           domain.L("Evento orquestado", "Orchestrated event"),
		End:            domain.L("Alegría", "Joy"),
		Avoid:          domain.L("Cosas genéricas", "Generic things"),
		DurationNights: domain.NightsRange{Min: 5, Max: 10},
		Guardrails:     []domain.LocalizedText{domain.L("Acceso VIP", "VIP access")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"urbano", "mixto"},
			ItineraryStyle:  []string{"modular"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelMedium,
		},
	},
	"COU_04": {
		ID:            "COU_04",
		Modality:      domain.ModalityCouple,
		Name:          domain.L("Reajuste Suave", "Soft Readjustment"),
		Tagline:       domain.L("Cero fricción", "Zero friction"),
		Description:   domain.L("Reencuadrar la pareja sin esfuerzo.", "Reframing the couple effortlessly."),
		EvidenceChips: []domain.LocalizedText{domain.L("Cuidado", "Care"), domain.L("Facilidad", "Ease")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBalanced,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentRefuge,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Decisión delegada", "Delegated decision"),
		End:            domain.L("Bienestar", "Well-being"),
		Avoid:          domain.L("Fricción", "Friction"),
		DurationNights: domain.NightsRange{Min: 6, Max: 11},
		Guardrails:     []domain.LocalizedText{domain.L("Logística premium", "Premium logistics")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"resort"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideFullConcierge,
			ActivityDensity: domain.LevelMedium,
		},
	},
	"FAM_01": {
		ID:            "FAM_01",
		Modality:      domain.ModalityFamily,
		Name:          domain.L("Base Segura", "Secure Base"),
		Tagline:       domain.L("Contención y orden", "Containment and order"),
		Description:   domain.L("Protegiendo el ritmo de todos.", "Protecting everyone's pace."),
		EvidenceChips: []domain.LocalizedText{domain.L("Logística", "Logistics"), domain.L("Seguridad", "Safety")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBreathable,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentRefuge,
			Sociability: domain.LevelLow,
		},
		Peak:           domain.L("Unión sin caos", "Unity without chaos"),
		End:            domain.L("Paz familiar", "Family peace"),
		Avoid:          domain.L("Esperas", "Waiting"),
		DurationNights: domain.NightsRange{Min: 7, Max: 14},
		Guardrails:     []domain.LocalizedText{domain.L("Servicios VIP", "VIP services")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"resort"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideFullConcierge,
			ActivityDensity: domain.LevelLow,
		},
	},
	"FAM_02": {
		ID:            "FAM_02",
		Modality:      domain.ModalityFamily,
		Name:          domain.L("Tribu Relax & Play", "Relax & Play Tribe"),
		Tagline:       domain.L("Juego y aire libre", "Play and outdoors"),
		Description:   domain.L("Diversión compartida sin presiones.", "Shared fun without pressure."),
		EvidenceChips: []domain.LocalizedText{domain.L("Juego", "Play"), domain.L("Libertad", "Freedom")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBalanced,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentFrontier,
			Sociability: domain.LevelHigh,
		},
		Peak:           domain.L("Aventura ligera", "Light adventure"),
		End:            domain.L("Risas", "Laughter"),
		Avoid:          domain.L("Reglas rígidas", "Rigid rules"),
		DurationNights: domain.NightsRange{Min: 7, Max: 12},
		Guardrails:     []domain.LocalizedText{domain.L("Kids club premium", "Premium kids club")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"resort", "naturaleza"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelMedium,
		},
	},
	"FAM_03": {
		ID:            "FAM_03",
		Modality:      domain.ModalityFamily,
		Name:          domain.L("Exploradores por Capas", "Layered Explorers"),
		Tagline:       domain.L("Novedad controlada", "Controlled novelty"),
		Description:   domain.L("Descubriendo el mundo por etapas.", "Discovering the world in stages."),
		EvidenceChips: []domain.LocalizedText{domain.L("Curiosidad", "Curiosity"), domain.L("Estructura", "Structure")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBalanced,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentHub,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Hito cultural", "Cultural milestone"),
		End:            domain.L("Aprendizaje", "Learning"),
		Avoid:          domain.L("Desorden", "Disorder"),
		DurationNights: domain.NightsRange{Min: 8, Max: 15},
		Guardrails:     []domain.LocalizedText{domain.L("Guías adaptados", "Adapted guides")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"mixto"},
			ItineraryStyle:  []string{"modular"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelMedium,
		},
	},
	"FAM_04": {
		ID:            "FAM_04",
		Modality:      domain.ModalityFamily,
		Name:          domain.L("Ruta Cultural Protegida", "Protected Cultural Route"),
		Tagline:       domain.L("Inmersión segura", "Safe immersion"),
		Description:   domain.L("Acceso cultural con soporte total.", "Cultural access with total support."),
		EvidenceChips: []domain.LocalizedText{domain.L("Cultura", "Culture"), domain.L("Soporte", "Support")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmIntense,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentHub,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Momento 'wow'", "Wow moment"),
		End:            domain.L("Asombro", "Amaze"),
		Avoid:          domain.L("Improvisación", "Improvisation"),
		DurationNights: domain.NightsRange{Min: 10, Max: 18},
		Guardrails:     []domain.LocalizedText{domain.L("Logística elite", "Elite logistics")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"urbano", "mixto"},
			ItineraryStyle:  []string{"multi_sede"},
			GuideLevel:      domain.GuideFullConcierge,
			ActivityDensity: domain.LevelHigh,
		},
	},
	"GRP_01": {
		ID:            "GRP_01",
		Modality:      domain.ModalityGroup,
		Name:          domain.L("Curaduría Dirigida", "Directed Curation"),
		Tagline:       domain.L("Liderazgo y claridad", "Leadership and clarity"),
		Description:   domain.L("Alguien orquesta, todos disfrutan.", "Someone orchestrates, all enjoy."),
		EvidenceChips: []domain.LocalizedText{domain.L("Orden", "Order"), domain.L("Puntualidad", "Punctuality")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBalanced,
			Structure:   domain.StructureFullConcierge,
			Environment: domain.EnvironmentHub,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Ruta impecable", "Impeccable route"),
		End:            domain.L("Satisfacción", "Satisfaction"),
		Avoid:          domain.L("Caos", "Chaos"),
		DurationNights: domain.NightsRange{Min: 6, Max: 12},
		Guardrails:     []domain.LocalizedText{domain.L("Plan cerrado", "Fixed plan")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"urbano"},
			ItineraryStyle:  []string{"modular"},
			GuideLevel:      domain.GuideFullConcierge,
			ActivityDensity: domain.LevelMedium,
		},
	},
	"GRP_02": {
		ID:            "GRP_02",
		Modality:      domain.ModalityGroup,
		Name:          domain.L("Democracia Modular", "Modular Democracy"),
		Tagline:       domain.L("Libertad compartida", "Shared freedom"),
		Description:   domain.L("Encuentros y espacios libres.", "Meetings and free spaces."),
		EvidenceChips: []domain.LocalizedText{domain.L("Flexibilidad", "Flexibility"), domain.L("Respeto", "Respect")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmBreathable,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentRefuge,
			Sociability: domain.LevelLow,
		},
		Peak:           domain.L("Villa compartida", "Shared villa"),
		End:            domain.L("Autonomía", "Autonomy"),
		Avoid:          domain.L("Decidir todo", "Deciding everything"),
		DurationNights: domain.NightsRange{Min: 7, Max: 14},
		Guardrails:     []domain.LocalizedText{domain.L("Espacios amplios", "Wide spaces")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"naturaleza"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideMinimal,
			ActivityDensity: domain.LevelLow,
		},
	},
	"GRP_03": {
		ID:            "GRP_03",
		Modality:      domain.ModalityGroup,
		Name:          domain.L("Celebración Orquestada", "Orchestrated Celebration"),
		Tagline:       domain.L("Brillo social", "Social shine"),
		Description:   domain.L("Energía alta en grupo.", "High group energy."),
		EvidenceChips: []domain.LocalizedText{domain.L("Brillo", "Shine"), domain.L("Evento", "Event")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmIntense,
			Structure:   domain.StructureFramedBlocks,
			Environment: domain.EnvironmentHub,
			Sociability: domain.LevelHigh,
		},
		Peak:           domain.L("Mesa épica", "Epic table"),
		End:            domain.L("Celebración", "Celebration"),
		Avoid:          domain.L("Aburrimiento", "Boredom"),
		DurationNights: domain.NightsRange{Min: 4, Max: 8},
		Guardrails:     []domain.LocalizedText{domain.L("Acceso VIP", "VIP access")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"urbano"},
			ItineraryStyle:  []string{"base_unica"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelHigh,
		},
	},
	"GRP_04": {
		ID:            "GRP_04",
		Modality:      domain.ModalityGroup,
		Name:          domain.L("Expedición de Impacto", "Impact Expedition"),
		Tagline:       domain.L("Reto compartido", "Shared challenge"),
		Description:   domain.L("Frontera y descubrimiento.", "Frontier and discovery."),
		EvidenceChips: []domain.LocalizedText{domain.L("Impacto", "Impact"), domain.L("Reto", "Challenge")},
		Architecture: domain.Architecture{
			Rhythm:      domain.RhythmIntense,
			Structure:   domain.StructureCuratedFree,
			Environment: domain.EnvironmentFrontier,
			Sociability: domain.LevelMedium,
		},
		Peak:           domain.L("Hito geográfico", "Geographic milestone"),
		End:            domain.L("Logro", "Achievement"),
		Avoid:          domain.L("Planteamiento plano", "Flat plan"),
		DurationNights: domain.NightsRange{Min: 10, Max: 18},
		Guardrails:     []domain.LocalizedText{domain.L("Logística elite", "Elite logistics")},
		Recommendation: domain.Recommendation{
			DestinationType: []string{"naturaleza", "base_camp"},
			ItineraryStyle:  []string{"multi_sede"},
			GuideLevel:      domain.GuideMixed,
			ActivityDensity: domain.LevelHigh,
		},
	},
}

// Profile looks up one of the sixteen emotional profiles by id.
func Profile(id domain.ProfileID) (*domain.EmotionalProfile, bool) {
	p, ok := profiles[id]
	return p, ok
}

// IsKnownProfile is true for any of the sixteen ids, regardless of modality.
func IsKnownProfile(id domain.ProfileID) bool {
	_, ok := profiles[id]
	return ok
}

// ProfilesFor lists the profiles of one modality in id order.
func ProfilesFor(m domain.Modality) []*domain.EmotionalProfile {
	result := make([]*domain.EmotionalProfile, 0, 4)
	for _, id := range profileOrder {
		if p := profiles[id]; p.Modality == m {
			result = append(result, p)
		}
	}
	return result
}

var profileOrder = []domain.ProfileID{
	"IND_01", "IND_02", "IND_03", "IND_04",
	"COU_01", "COU_02", "COU_03", "COU_04",
	"FAM_01", "FAM_02", "FAM_03", "FAM_04",
	"GRP_01", "GRP_02", "GRP_03", "GRP_04",
}
