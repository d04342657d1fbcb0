package kerr

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/quantaflow/qsde/operator"
	"github.com/quantaflow/qsde/qmat"
	"github.com/quantaflow/qsde/scalar"
	"github.com/quantaflow/qsde/slh"
)

// ModelMatrixSet is the symbolic matrix parameterization of a
// semiclassical model. Matrix shapes are fixed by ncav = len(Modes),
// cdim = model port count and ninputs = len(Inputs):
//
//	A       ncav×ncav   coupling of modes to each other
//	B       ncav×cdim   coupling of external noise into modes
//	C       cdim×ncav   coupling of modes into outputs
//	D       cdim×cdim   the model's scattering matrix, taken directly
//	AKerr   ncav×ncav   Kerr-type mode coupling (χ on the diagonal,
//	                    χ/2 for cross-Kerr pairs)
//	BInput  ncav×ninputs  coupling of dynamic inputs into modes
//	DInput  cdim×ninputs  coupling of dynamic inputs into outputs
//	UConst  ncav×1      constant coherent drive into modes
//	UOut    cdim×1      constant coherent offset on outputs
//
// Every entry is a scalar (numeric or in the model's free parameters),
// never an operator term; absent couplings are explicit zeros.
// Treat all fields as read-only.
type ModelMatrixSet struct {
	A, B, C, D     *qmat.Dense
	AKerr          *qmat.Dense
	BInput, DInput *qmat.Dense
	UConst, UOut   *qmat.Dense

	// Modes is the canonical (sorted) mode registry defining row/column
	// order; Inputs lists the dynamic-input symbol names in port order.
	Modes  []string
	Inputs []string

	// KerrDiagonalCorrection records the assembly convention: when true,
	// callers are expected to fold an effective 2χ detuning per Kerr
	// cavity into A's diagonal when constructing the simulation. The
	// assembler never applies it.
	KerrDiagonalCorrection bool

	// EOMs and OutputFields carry the symbolic per-mode equations of
	// motion and the output-field expressions when assembly was asked to
	// return them; nil otherwise.
	EOMs         []operator.Operator
	OutputFields []operator.Operator
}

// ModelMatrices assembles the symbolic matrix set for model, with the
// dynamic inputs named by dynamicInputPorts (port index → input name)
// injected as coherent drives.
//
// Algorithm outline:
//  1. Enumerate the sorted mode registry from the model's space and
//     validate the dynamic-input port indices against cdim.
//  2. Create one placeholder symbol per named input (u_{name}) and one
//     noise-increment placeholder per port (dA/dt_{k}).
//  3. Feed the input symbols into the model via CoherentInput; expand
//     and scalar-simplify so coefficient matching sees canonical terms.
//  4. Derive each mode's Heisenberg equation of motion and pull
//     coefficients of the known term shapes into A, AKerr, B, BInput
//     and UConst row by row.
//  5. Decompose each coupling-vector row into C, DInput and UOut; D is
//     the model's scattering matrix taken directly.
//
// Errors:
//   - ErrNilModel, ErrNoModes, ErrPortIndex on malformed arguments;
//     upstream slh errors propagate wrapped.
func ModelMatrices(model *slh.SLH, dynamicInputPorts map[int]string, opts Options) (*ModelMatrixSet, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	modes := model.Space().LocalFactors()
	ncav, cdim := len(modes), model.Cdim()
	if ncav == 0 {
		return nil, ErrNoModes
	}

	// Dynamic input registry: one symbol per named input, port order.
	ports := make([]int, 0, len(dynamicInputPorts))
	for p := range dynamicInputPorts {
		if p < 0 || p >= cdim {
			return nil, fmt.Errorf("ModelMatrices: port %d with cdim %d: %w", p, cdim, ErrPortIndex)
		}
		ports = append(ports, p)
	}
	sort.Ints(ports)

	inputs := make([]operator.Operator, 0, len(ports))
	inputNames := make([]string, 0, len(ports))
	drives := make([]operator.Operator, cdim)
	for _, p := range ports {
		sym := operator.Symbol("u_{" + dynamicInputPorts[p] + "}")
		inputs = append(inputs, sym)
		inputNames = append(inputNames, dynamicInputPorts[p])
		drives[p] = sym
	}
	ninputs := len(inputs)

	driven, err := model.CoherentInput(drives)
	if err != nil {
		return nil, fmt.Errorf("ModelMatrices: inject drives: %w", err)
	}
	driven = driven.ExpandSimplify()

	noises := make([]operator.Operator, cdim)
	for k := range noises {
		noises[k] = operator.Symbol(fmt.Sprintf("dA/dt_{%d}", k))
	}

	log.Info("computing equations of motion",
		zap.Int("modes", ncav), zap.Int("ports", cdim), zap.Int("inputs", ninputs))

	eoms := make([]operator.Operator, ncav)
	for j, mode := range modes {
		eom, eomErr := driven.HeisenbergEOM(operator.Destroy(mode), noises)
		if eomErr != nil {
			return nil, fmt.Errorf("ModelMatrices: eom of mode %q: %w", mode, eomErr)
		}
		eoms[j] = eom.Expand().SimplifyScalar()
	}

	log.Info("extracting model matrices")

	set := &ModelMatrixSet{
		Modes:                  modes,
		Inputs:                 inputNames,
		KerrDiagonalCorrection: opts.KerrDiagonalCorrection,
		D:                      model.S(),
	}
	if set.A, err = qmat.New(ncav, ncav); err != nil {
		return nil, err
	}
	if set.B, err = qmat.New(ncav, cdim); err != nil {
		return nil, err
	}
	if set.C, err = qmat.New(cdim, ncav); err != nil {
		return nil, err
	}
	if set.AKerr, err = qmat.New(ncav, ncav); err != nil {
		return nil, err
	}
	if set.BInput, err = qmat.New(ncav, ninputs); err != nil {
		return nil, err
	}
	if set.DInput, err = qmat.New(cdim, ninputs); err != nil {
		return nil, err
	}
	if set.UConst, err = qmat.New(ncav, 1); err != nil {
		return nil, err
	}
	if set.UOut, err = qmat.New(cdim, 1); err != nil {
		return nil, err
	}

	// Mode equations → A, AKerr, B, BInput, UConst (row per mode).
	for j, mode := range modes {
		cm := Coeffs(eoms[j], CoeffOptions{Epsilon: opts.Epsilon})
		for k, other := range modes {
			_ = set.A.Set(j, k, cm.Get(operator.Destroy(other)))
			kerrTerm := operator.Mul(
				operator.Create(other), operator.Destroy(other), operator.Destroy(mode),
			)
			// The Kerr strength is the a†(k)a(k)a(j) coefficient over −2i.
			_ = set.AKerr.Set(j, k, scalar.Div(cm.Get(kerrTerm), complex(0, -2)))
		}
		for k := range noises {
			_ = set.B.Set(j, k, cm.Get(noises[k]))
		}
		for k := range inputs {
			_ = set.BInput.Set(j, k, cm.Get(inputs[k]))
		}
		_ = set.UConst.Set(j, 0, cm.Get(operator.Identity))
	}

	// Coupling vector rows → C, DInput, UOut (row per port).
	for j, row := range driven.L() {
		cm := Coeffs(row, CoeffOptions{Epsilon: opts.Epsilon})
		for k, other := range modes {
			_ = set.C.Set(j, k, cm.Get(operator.Destroy(other)))
		}
		for k := range inputs {
			_ = set.DInput.Set(j, k, cm.Get(inputs[k]))
		}
		_ = set.UOut.Set(j, 0, cm.Get(operator.Identity))
	}

	if opts.ReturnEOMs {
		set.EOMs = eoms
		outs, outErr := driven.OutputFields(noises)
		if outErr != nil {
			return nil, fmt.Errorf("ModelMatrices: output fields: %w", outErr)
		}
		for i, out := range outs {
			outs[i] = out.Expand().SimplifyScalar()
		}
		set.OutputFields = outs
	}

	return set, nil
}
