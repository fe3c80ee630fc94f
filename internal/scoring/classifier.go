package scoring

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

// answerTable maps the literal option text of every questionnaire answer to
// the profile it votes for. Lookup is exact and case-sensitive; identical
// text under two questions of the same modality necessarily shares one id.
var answerTable = map[domain.Modality]map[string]domain.ProfileID{
	domain.ModalitySolo: {
		"Bajas estímulo y te escondes un poco":           "IND_01",
		"Ordenas 2–3 cosas y te alineas":                 "IND_02",
		"Sales a moverte: acción primero":                "IND_03",
		"Que apaguen el ruido y quede vacío":             "IND_01",
		"Que todo esté en su lugar y se entienda fácil":  "IND_02",
		"Que se abra: aire, calle, vida":                 "IND_03",
		"Que ya venga armado (tú solo ejecutas)":         "IND_01",
		"Elegir entre 2–3 rutas claras":                  "IND_02",
		"Decidir sobre la marcha":                        "IND_03",
		"Puedes observar sin interactuar mucho":          "IND_01",
		"Interactúas poco, pero elegido":                 "IND_02",
		"Hay energía social disponible (sin obligación)": "IND_03",
		"Ruido / saturación / demasiada gente":           "IND_01",
		"Micro-decisiones + logística que drena":         "IND_04",
		"Estancarte: sentir que no pasa nada":            "IND_03",
		"Descansaste y te bajó el sistema":               "IND_01",
		"Te quedó una idea clara":                        "IND_02",
		"Hiciste algo retador y te sentiste capaz":       "IND_03",
		"Privacidad + discreción":                        "IND_01",
		"Orden + diseño bien resuelto":                   "IND_02",
		"Acceso + puertas abiertas":                      "IND_03",
		"Ligereza":                                       "IND_01",
		"Claridad":                                       "IND_02",
		"Expansión":                                      "IND_03",
	},
	domain.ModalityCouple: {
		"Silencio cómodo, sin prisa":                      "COU_01",
		"Risa y descubrimiento":                           "COU_02",
		"Algo “especial” bien cuidado (detalle/estética)": "COU_03",
		"Hay demasiadas decisiones pequeñas":              "COU_04",
		"Van a ritmos distintos":                          "COU_01",
		"El entorno/social los desgasta":                  "COU_03",
		"Uno propone y el otro valida":                    "COU_04",
		"Se reparten por turnos (bloques)":                "COU_02",
		"Acuerdan lo mínimo y sueltan el resto":           "COU_04",
		"Burbuja total":                                   "COU_01",
		"Privado con ventanas sociales":                   "COU_04",
		"Social con retiros puntuales":                    "COU_03",
		"Pausado":                                         "COU_01",
		"Balanceado":                                      "COU_04",
		"Dinámico":                                        "COU_02",
		"Intimidad impecable (cuidada)":                   "COU_01",
		"Meta/actividad ganada juntos":                    "COU_02",
		"Estética/cultura que los eleva":                  "COU_03",
		"La logística se vuelve carga mental":             "COU_04",
		"Hay que planear demasiado para que funcione":     "COU_04",
		"Se siente “lo mismo” con otro fondo":             "COU_02",
		"Reconexión calmada":                              "COU_01",
		"Complicidad renovada":                            "COU_02",
		"Celebración lograda":                             "COU_03",
	},
	domain.ModalityFamily: {
		"Se rompe el sueño/horario base":                     "FAM_01",
		"Se rompe la comida (hambre/antojos)":                "FAM_02",
		"Se rompe los tiempos (traslados/esperas)":           "FAM_01",
		"Volver a base / parar todo y recomponer":            "FAM_01",
		"Resolver comida rápido y seguir":                    "FAM_02",
		"Bajar estímulo (espacio/quietud) y simplificar":     "FAM_03",
		"Saber qué sigue (estructura clara)":                 "FAM_01",
		"Bloques con aire (marco flexible)":                  "FAM_03",
		"1–2 anclas y lo demás libre":                        "FAM_04",
		"Familiaridad bien hecha":                            "FAM_01",
		"Una cosa nueva al día":                              "FAM_03",
		"Inmersión fuerte, pero con soporte":                 "FAM_04",
		"Ajustan a un ritmo medio para todos":                "FAM_02",
		"Se dividen en subgrupos por momentos":               "FAM_03",
		"Se turnan: “bloque kids” / “bloque adultos”":        "FAM_04",
		"Que alguien externo cargue decisiones/logística":    "FAM_01",
		"Entorno predecible y seguro (cero sobresaltos)":     "FAM_01",
		"Entretenimiento confiable para niños, sin fricción": "FAM_02",
		"Juego integrado al plan":                            "FAM_03",
		"Espacios dedicados (kids club/actividades)":         "FAM_02",
		"Rutina simple repetible":                            "FAM_01",
		"Paz real (todo fluyó)":                              "FAM_01",
		"Vínculo (nos vimos / nos reímos)":                   "FAM_03",
		"Historia (recuerdo fuerte compartido)":              "FAM_04",
		"Moverte y jugar":                                    "FAM_02",
		"Ver cosas nuevas":                                   "FAM_04",
		"Descansar y estar tranquilo":                        "FAM_01",
		"Hay muchas reglas":                                  "FAM_04",
		"Nos tardamos muchísimo":                             "FAM_01",
		"No sé qué sigue":                                    "FAM_03",
	},
	domain.ModalityGroup: {
		"Exploradores (moverse/descubrir)":                    "GRP_04",
		"Embajada cultural (capas/estética)":                  "GRP_01",
		"Club privado (calma/nivel)":                          "GRP_02",
		"Risa desinhibida":                                    "GRP_03",
		"Conversación larga y buena":                          "GRP_01",
		"Ritual corto y luego libertad":                       "GRP_02",
		"Está claro “qué sigue” y nadie se desgasta":          "GRP_01",
		"Hay marco y aire (sin rigidez)":                      "GRP_02",
		"Se decide en el momento y sale bien":                 "GRP_03",
		"Respeto a acuerdos/tiempos":                          "GRP_01",
		"Flexibilidad sin juicio (nadie se culpa)":            "GRP_02",
		"Energía compartida (sube a todos)":                   "GRP_03",
		"Cuidar el vínculo y la confianza":                    "GRP_02",
		"Crear una historia compartida":                       "GRP_04",
		"Recuperar energía sin fricción":                      "GRP_01",
		"Brindis y mesa perfecta":                             "GRP_03",
		"Silencio frente a algo sublime":                      "GRP_01",
		"Aplauso/golpe de energía tras un logro":              "GRP_04",
		"Sentirme arrastrado por un plan ajeno":               "GRP_01",
		"Injusticia de valor (pago/no lo disfruto)":           "GRP_02",
		"Fricción social (roles/egos/exclusión)":              "GRP_02",
		"“Expectativas cerradas antes de salir”":              "GRP_01",
		"“Meetpoints fijos + libertad dentro”":                "GRP_02",
		"“Una persona decide reservas para no discutir todo”": "GRP_03",
	},
}

// Classify returns the candidate profile an answer votes for. Unknown
// modalities and unlisted answers report ok == false.
func Classify(m domain.Modality, answer string) (domain.ProfileID, bool) {
	table, ok := answerTable[m]
	if !ok {
		return "", false
	}
	id, ok := table[answer]
	return id, ok
}

// HasTable reports whether the modality has a classification table.
func HasTable(m domain.Modality) bool {
	_, ok := answerTable[m]
	return ok
}
