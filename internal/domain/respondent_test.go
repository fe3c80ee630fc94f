package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModality(t *testing.T) {
	for _, m := range Modalities {
		assert.True(t, m.IsValid())
	}
	assert.False(t, Modality("cruise").IsValid())
	assert.Equal(t, "family_TB", ModalityFamily.TieBreakerKey())
}

func TestDefaultRoles(t *testing.T) {
	assert.Equal(t, []RespondentRole{RoleLeader}, DefaultRoles(ModalitySolo, 1))
	assert.Equal(t, []RespondentRole{RoleLeader, RoleFlex}, DefaultRoles(ModalityCouple, 2))
	assert.Equal(t, []RespondentRole{RoleLeader, RoleCaregiver, RoleFlex}, DefaultRoles(ModalityFamily, 3))
	assert.Equal(t, []RespondentRole{RoleLeader, RoleEnergy, RoleFlex, RoleFlex}, DefaultRoles(ModalityGroup, 4))
	assert.Empty(t, DefaultRoles(ModalityGroup, 0))
}

func TestDefaultWeight(t *testing.T) {
	assert.Equal(t, 1.2, RoleLeader.DefaultWeight())
	assert.Equal(t, 1.0, RoleCaregiver.DefaultWeight())
	assert.Equal(t, 1.0, RoleFlex.DefaultWeight())
}

func TestHasSmallKids(t *testing.T) {
	assert.True(t, HasSmallKids([]AgeBand{AgeBandAdult, AgeBand4To7}))
	assert.True(t, HasSmallKids([]AgeBand{AgeBand0To3}))
	assert.False(t, HasSmallKids([]AgeBand{AgeBand8To12, AgeBand13To17, AgeBandAdult}))
	assert.False(t, HasSmallKids(nil))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, LanguageEN, ParseLanguage("en-US"))
	assert.Equal(t, LanguageEN, ParseLanguage(" EN "))
	assert.Equal(t, LanguageES, ParseLanguage("es"))
	assert.Equal(t, LanguageES, ParseLanguage("fr"))
	assert.Equal(t, LanguageES, ParseLanguage(""))

	text := L("Hola", "Hello")
	assert.Equal(t, "Hello", text.Resolve(LanguageEN))
	assert.Equal(t, "Hola", text.Resolve(LanguageES))
	assert.Equal(t, "Solo", L("Solo", "").Resolve(LanguageEN))
}
