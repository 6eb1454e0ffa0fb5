package matrices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorvis/cvdsim"
)

func TestEveryAdvertisedPairResolves(t *testing.T) {
	ds := New()
	for _, d := range ds.Deficiencies() {
		algos := ds.AlgorithmsFor(d)
		require.NotEmpty(t, algos, "%s has no algorithms", d)
		for _, a := range algos {
			m, err := ds.Lookup(d, a)
			require.NoError(t, err, "%s/%s", d, a)
			require.NotEqual(t, cvdsim.Matrix{}, m, "%s/%s is the zero matrix", d, a)
		}
	}
}

func TestUnknownCombinations(t *testing.T) {
	ds := New()
	for _, k := range []struct {
		d Deficiency
		a Algorithm
	}{
		{Normal, Vienot1999},
		{Achromatopsia, Machado2009},
		{Protanopia, None},
		{Protanopia, Brettel1997},
		{Tritanopia, Vienot1999},
	} {
		_, err := ds.Lookup(k.d, k.a)
		require.ErrorIs(t, err, ErrUnknownSimulation, "%s/%s", k.d, k.a)
	}
}

func TestSingleMatrixDeficiencies(t *testing.T) {
	ds := New()
	// normal vision and achromatopsia expose exactly one matrix with no
	// algorithm choice
	for _, d := range []Deficiency{Normal, Achromatopsia} {
		require.Equal(t, []Algorithm{None}, ds.AlgorithmsFor(d))
	}
	for _, d := range []Deficiency{Protanopia, Deuteranopia, Tritanopia} {
		require.Greater(t, len(ds.AlgorithmsFor(d)), 1, "%s should offer a choice", d)
	}
}

func TestNormalIsIdentity(t *testing.T) {
	ds := New()
	m, err := ds.Lookup(Normal, None)
	require.NoError(t, err)
	require.Equal(t, cvdsim.Identity(), m)
}

func TestMatricesPreserveWhite(t *testing.T) {
	// every published matrix maps equal-energy white to (approximately)
	// itself, so its rows each sum to 1
	ds := New()
	for _, d := range ds.Deficiencies() {
		for _, a := range ds.AlgorithmsFor(d) {
			m, err := ds.Lookup(d, a)
			require.NoError(t, err)
			for i := range 3 {
				sum := m[i][0] + m[i][1] + m[i][2]
				assert.InDeltaf(t, 1.0, sum, 1e-4, "%s/%s row %d", d, a, i)
			}
		}
	}
}

func TestDefaultAlgorithm(t *testing.T) {
	ds := New()
	a, err := ds.DefaultAlgorithm(Protanopia)
	require.NoError(t, err)
	require.Equal(t, Vienot1999, a)
	a, err = ds.DefaultAlgorithm(Normal)
	require.NoError(t, err)
	require.Equal(t, None, a)
	_, err = ds.DefaultAlgorithm(Deficiency(42))
	require.ErrorIs(t, err, ErrUnknownSimulation)
}

func TestParse(t *testing.T) {
	for d, name := range map[Deficiency]string{
		Normal: "normal", Protanopia: "Protanopia", Deuteranopia: "DEUTERANOPIA",
		Tritanopia: "tritanopia", Achromatopsia: "achromatopsia",
	} {
		got, err := ParseDeficiency(name)
		require.NoError(t, err, name)
		require.Equal(t, d, got, name)
	}
	_, err := ParseDeficiency("protan")
	require.Error(t, err)

	a, err := ParseAlgorithm("machado2009")
	require.NoError(t, err)
	require.Equal(t, Machado2009, a)
	_, err = ParseAlgorithm("machado")
	require.Error(t, err)
}

func TestLookupReturnsCopies(t *testing.T) {
	ds := New()
	m1, err := ds.Lookup(Protanopia, Vienot1999)
	require.NoError(t, err)
	m1[0][0] = 42 // matrices are values, mutating a lookup result is local
	m2, err := ds.Lookup(Protanopia, Vienot1999)
	require.NoError(t, err)
	require.NotEqual(t, m1, m2)
}
