package scoring

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

var tieBreakers = map[domain.Modality]*domain.TieBreakerQuestion{
	domain.ModalitySolo: {
		ID:   "TB_IND",
		Text: domain.L("Cuando todo sale ‘bien’, lo que más valoras es:", "When everything goes 'right', what you value most is:"),
		Options: []domain.TieBreakerOption{
			{Label: domain.L("No decidir nada", "Not making any decisions"), ProfileID: "IND_04"},
			{Label: domain.L("Tener espacio mental", "Having mental space"), ProfileID: "IND_01"},
		},
	},
	domain.ModalityCouple: {
		ID:   "TB_COU",
		Text: domain.L("El viaje gana puntos si:", "The trip earns points if:"),
		Options: []domain.TieBreakerOption{
			{Label: domain.L("Alguien externo lo orquesta", "Someone external orchestrates it"), ProfileID: "COU_04"},
			{Label: domain.L("Se siente íntimo y simple", "It feels intimate and simple"), ProfileID: "COU_01"},
		},
	},
	domain.ModalityFamily: {
		ID:   "TB_FAM",
		Text: domain.L("La victoria del viaje es:", "The trip's victory is:"),
		Options: []domain.TieBreakerOption{
			{Label: domain.L("Niños regulados + adultos tranquilos", "Regulated kids + calm adults"), ProfileID: "FAM_01"},
			{Label: domain.L("Todos con recuerdos distintos pero compatibles", "Everyone with different but compatible memories"), ProfileID: "FAM_03"},
		},
	},
	domain.ModalityGroup: {
		ID:   "TB_GRP",
		Text: domain.L("Para que el grupo fluya:", "For the group to flow:"),
		Options: []domain.TieBreakerOption{
			{Label: domain.L("Una ruta y horarios claros", "A clear route and schedules"), ProfileID: "GRP_01"},
			{Label: domain.L("Puntos de encuentro y libertad", "Meeting points and freedom"), ProfileID: "GRP_02"},
		},
	},
}

// TieBreaker returns the static tie-breaker question of a modality.
func TieBreaker(m domain.Modality) (*domain.TieBreakerQuestion, bool) {
	q, ok := tieBreakers[m]
	return q, ok
}
