package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivian-lang/vivian/internal/symbols"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		from, to symbols.Type
		want     Classification
	}{
		{"identity", symbols.TypeInt, symbols.TypeInt, Classification{IsIdentity: true, Exists: true}},
		{"bool to int widens", symbols.TypeBool, symbols.TypeInt, Classification{IsImplicit: true, Exists: true}},
		{"int to bool narrows", symbols.TypeInt, symbols.TypeBool, Classification{IsExplicit: true, Exists: true}},
		{"any to object", symbols.TypeString, symbols.TypeObject, Classification{IsImplicit: true, Exists: true}},
		{"int to string", symbols.TypeInt, symbols.TypeString, Classification{IsExplicit: true, Exists: true}},
		{"string to int", symbols.TypeString, symbols.TypeInt, Classification{IsExplicit: true, Exists: true}},
		{"object to int", symbols.TypeObject, symbols.TypeInt, Classification{IsExplicit: true, Exists: true}},
		{"nonexistent", symbols.TypeError, symbols.TypeInt, Classification{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.from, c.to)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestConvertStringToArithmeticNarrowRule(t *testing.T) {
	v, err := Convert(symbols.TypeString, symbols.TypeInt, "true")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = Convert(symbols.TypeString, symbols.TypeInt, "false")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v)

	_, err = Convert(symbols.TypeString, symbols.TypeInt, "maybe")
	assert.Error(t, err)

	_, err = Convert(symbols.TypeString, symbols.TypeInt, "42")
	assert.Error(t, err, "numeric-looking strings must not parse (spec.md §9)")
}

func TestConvertBoolToString(t *testing.T) {
	v, err := Convert(symbols.TypeBool, symbols.TypeString, true)
	assert.NoError(t, err)
	assert.Equal(t, "true", v)

	v, err = Convert(symbols.TypeBool, symbols.TypeString, false)
	assert.NoError(t, err)
	assert.Equal(t, "false", v)
}

func TestConvertIdempotence(t *testing.T) {
	once, err := Convert(symbols.TypeBool, symbols.TypeString, true)
	assert.NoError(t, err)

	twice, err := Convert(symbols.TypeString, symbols.TypeString, once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestConvertRoundTripStringTrueFalse(t *testing.T) {
	v, err := Convert(symbols.TypeString, symbols.TypeBool, "true")
	assert.NoError(t, err)
	assert.Equal(t, true, v)

	back, err := Convert(symbols.TypeBool, symbols.TypeString, v)
	assert.NoError(t, err)
	assert.Equal(t, "true", back)
}

func TestConvertAnyToObjectIsIdentity(t *testing.T) {
	v, err := Convert(symbols.TypeInt, symbols.TypeObject, int64(7))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v)
}
