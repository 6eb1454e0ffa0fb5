// Package matrices carries the published color vision deficiency
// simulation matrices, keyed by deficiency type and algorithm. The
// dataset is an explicitly constructed, immutable value passed to
// callers, never ambient global state, so the transform core stays pure
// and independently testable.
//
// All matrices operate on linear-light RGB. Normal vision and
// achromatopsia expose a single matrix with no algorithm choice, the
// dichromacies expose a choice among named published methods.
package matrices

import (
	"errors"
	"fmt"
	"strings"

	"github.com/colorvis/cvdsim"
)

// ErrUnknownSimulation means no matrix exists for the requested
// deficiency and algorithm combination.
var ErrUnknownSimulation = errors.New("matrices: no matrix for that deficiency/algorithm combination")

// Deficiency is a named category of color vision deficiency.
type Deficiency int

const (
	Normal Deficiency = iota
	Protanopia
	Deuteranopia
	Tritanopia
	Achromatopsia
)

// Algorithm is a named published method for deriving a simulation matrix.
type Algorithm int

const (
	// None selects the single matrix of a deficiency that offers no
	// algorithm choice.
	None Algorithm = iota
	Vienot1999
	Brettel1997
	Machado2009
)

var deficiencyNames = map[Deficiency]string{
	Normal:        "normal",
	Protanopia:    "protanopia",
	Deuteranopia:  "deuteranopia",
	Tritanopia:    "tritanopia",
	Achromatopsia: "achromatopsia",
}

var algorithmNames = map[Algorithm]string{
	None:        "none",
	Vienot1999:  "vienot1999",
	Brettel1997: "brettel1997",
	Machado2009: "machado2009",
}

func (d Deficiency) String() string { return deficiencyNames[d] }

func (a Algorithm) String() string { return algorithmNames[a] }

// ParseDeficiency resolves a deficiency by its lower-case name.
func ParseDeficiency(s string) (Deficiency, error) {
	for d, name := range deficiencyNames {
		if name == strings.ToLower(s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("matrices: unknown deficiency %q", s)
}

// ParseAlgorithm resolves an algorithm by its lower-case name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == strings.ToLower(s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("matrices: unknown algorithm %q", s)
}

type key struct {
	d Deficiency
	a Algorithm
}

// Dataset is an immutable lookup table of simulation matrices.
type Dataset struct {
	table map[key]cvdsim.Matrix
	algos map[Deficiency][]Algorithm
}

// New builds the default dataset.
//
// Viénot, Brettel & Mollon (1999) protanope and deuteranope reductions,
// the Brettel, Viénot & Mollon (1997) single-plane tritanope
// approximation, the Machado, Oliveira & Fernandes (2009) full-severity
// matrices, and the BT.601 luminance weights for achromatopsia.
func New() *Dataset {
	ds := &Dataset{
		table: make(map[key]cvdsim.Matrix),
		algos: make(map[Deficiency][]Algorithm),
	}
	add := func(d Deficiency, a Algorithm, m cvdsim.Matrix) {
		ds.table[key{d, a}] = m
		ds.algos[d] = append(ds.algos[d], a)
	}
	add(Normal, None, cvdsim.Identity())
	add(Achromatopsia, None, cvdsim.Matrix{
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	})
	add(Protanopia, Vienot1999, cvdsim.Matrix{
		{0.11238, 0.88762, 0.00000},
		{0.11238, 0.88762, 0.00000},
		{0.00401, -0.00401, 1.00000},
	})
	add(Protanopia, Machado2009, cvdsim.Matrix{
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	})
	add(Deuteranopia, Vienot1999, cvdsim.Matrix{
		{0.29275, 0.70725, 0.00000},
		{0.29275, 0.70725, 0.00000},
		{-0.02234, 0.02234, 1.00000},
	})
	add(Deuteranopia, Machado2009, cvdsim.Matrix{
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	})
	add(Tritanopia, Brettel1997, cvdsim.Matrix{
		{1.01354, 0.14268, -0.15622},
		{-0.01181, 0.87561, 0.13619},
		{0.07707, 0.81208, 0.11085},
	})
	add(Tritanopia, Machado2009, cvdsim.Matrix{
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	})
	return ds
}

// Lookup returns the matrix for the given combination. Deficiencies
// without an algorithm choice are looked up with None.
func (ds *Dataset) Lookup(d Deficiency, a Algorithm) (cvdsim.Matrix, error) {
	m, ok := ds.table[key{d, a}]
	if !ok {
		return cvdsim.Matrix{}, fmt.Errorf("%w: %s/%s", ErrUnknownSimulation, d, a)
	}
	return m, nil
}

// Deficiencies lists every deficiency in the dataset in a fixed order.
func (ds *Dataset) Deficiencies() []Deficiency {
	ans := make([]Deficiency, 0, len(ds.algos))
	for d := Normal; d <= Achromatopsia; d++ {
		if _, ok := ds.algos[d]; ok {
			ans = append(ans, d)
		}
	}
	return ans
}

// AlgorithmsFor lists the algorithms available for a deficiency, in
// registration order. The first entry is the default.
func (ds *Dataset) AlgorithmsFor(d Deficiency) []Algorithm {
	ans := make([]Algorithm, len(ds.algos[d]))
	copy(ans, ds.algos[d])
	return ans
}

// DefaultAlgorithm returns the algorithm used when the caller expresses
// no preference.
func (ds *Dataset) DefaultAlgorithm(d Deficiency) (Algorithm, error) {
	algos := ds.algos[d]
	if len(algos) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSimulation, d)
	}
	return algos[0], nil
}
