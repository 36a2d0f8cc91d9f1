package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmptyInput(t *testing.T) {
	got := Parse(nil)
	assert.Equal(t, ParsedFields{}, got)

	got = Parse([]string{})
	assert.Equal(t, ParsedFields{}, got)
}

func TestParseDNILastRunWins(t *testing.T) {
	got := Parse([]string{"12345 algo", "DNI 87654321"})
	assert.Equal(t, "87654321", got.DNI)
}

func TestParseDNIRunLength(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"too short", "123 45", ""},
		{"minimum six digits", "123456", "123456"},
		{"twelve digits", "123456789012", "123456789012"},
		{"thirteen digits rejected", "1234567890123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]string{tt.line})
			assert.Equal(t, tt.want, got.DNI)
		})
	}
}

func TestParseDOBNormalization(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"labeled slash date", "Nacimiento: 05/03/1990", "1990-03-05"},
		{"iso passthrough", "1990-03-05", "1990-03-05"},
		{"two digit year promoted", "05/03/90", "1990-03-05"},
		{"dashed day first", "12-08-1985", "1985-08-12"},
		{"single digit parts padded", "5/3/1990", "1990-03-05"},
		{"no date", "sin fecha aqui", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]string{tt.line})
			assert.Equal(t, tt.want, got.DOB)
		})
	}
}

func TestParseDOBFirstMatchWins(t *testing.T) {
	got := Parse([]string{"01/01/1980 y despues 31/12/1999"})
	assert.Equal(t, "1980-01-01", got.DOB)
}

func TestParseSexKeywords(t *testing.T) {
	assert.Equal(t, SexFemale, Parse([]string{"Sexo: Mujer"}).Sex)
	assert.Equal(t, SexFemale, Parse([]string{"FEMENINO"}).Sex)
	assert.Equal(t, SexMale, Parse([]string{"Sexo: Hombre"}).Sex)
	assert.Equal(t, SexMale, Parse([]string{"MASCULINO"}).Sex)
}

func TestParseSexSingleLetterTokens(t *testing.T) {
	assert.Equal(t, SexFemale, Parse([]string{"Sexo: F"}).Sex)
	assert.Equal(t, SexMale, Parse([]string{"Sexo: M"}).Sex)
	// Letters inside words do not count.
	assert.Equal(t, SexUnknown, Parse([]string{"MARIA LOPEZ"}).Sex)
	assert.Equal(t, SexUnknown, Parse([]string{"CALLE FALSA 123"}).Sex)
}

// A lone F or M anywhere classifies the whole text; an initial is enough.
// This characterizes the rule rather than endorsing it.
func TestParseSexStandaloneLetterFalsePositive(t *testing.T) {
	assert.Equal(t, SexFemale, Parse([]string{"TORRE F PISO 3"}).Sex)
	// Female is checked first when both letters appear.
	assert.Equal(t, SexFemale, Parse([]string{"M F"}).Sex)
}

func TestParseFullNameHeuristic(t *testing.T) {
	got := Parse([]string{"ab12", "JUAN PEREZ GARCIA", "99999999"})
	assert.Equal(t, "JUAN PEREZ GARCIA", got.FullName)
}

func TestParseFullNameFallsBackToFirstLine(t *testing.T) {
	got := Parse([]string{"x1", "2b"})
	assert.Equal(t, "x1", got.FullName)
}

func TestParseFullNameRequiresUppercase(t *testing.T) {
	got := Parse([]string{"nombre en minusculas", "MARIA LOPEZ"})
	assert.Equal(t, "MARIA LOPEZ", got.FullName)
}

func TestParseFullNameStripsPipes(t *testing.T) {
	got := Parse([]string{"MARIA | LOPEZ"})
	assert.Equal(t, "MARIA   LOPEZ", got.FullName)
}

func TestParseFullNameSpanishLetters(t *testing.T) {
	got := Parse([]string{"12 34", "JOSÉ ÑANDÚ PEÑA"})
	assert.Equal(t, "JOSÉ ÑANDÚ PEÑA", got.FullName)
}

func TestParseCompleteCard(t *testing.T) {
	got := Parse([]string{
		"REPUBLICA DE ESPAÑA",
		"MARIA LOPEZ GARCIA",
		"Sexo: Mujer",
		"Nacimiento: 05/03/1990",
		"DNI 87654321",
	})
	assert.Equal(t, "REPUBLICA DE ESPAÑA", got.FullName)
	assert.Equal(t, "87654321", got.DNI)
	assert.Equal(t, SexFemale, got.Sex)
	assert.Equal(t, "1990-03-05", got.DOB)
}

func TestSexString(t *testing.T) {
	assert.Equal(t, "Hombre", SexMale.String())
	assert.Equal(t, "Mujer", SexFemale.String())
	assert.Equal(t, "", SexUnknown.String())
}
