package kerr_test

import (
	"fmt"

	"github.com/quantaflow/qsde/kerr"
	"github.com/quantaflow/qsde/operator"
	"github.com/quantaflow/qsde/qmat"
	"github.com/quantaflow/qsde/scalar"
	"github.com/quantaflow/qsde/slh"
)

// Example assembles a driven Kerr cavity end to end: symbolic model,
// numeric matrix set, and the drift/diffusion pair a stochastic stepper
// would integrate.
func Example() {
	// One-port cavity: S=[[1]], L=[√κ·a], H = Δ·a†a + χ·a†a†aa.
	s, _ := qmat.New(1, 1)
	_ = s.Set(0, 0, scalar.One())

	kappa, delta, chi := scalar.Sym("kappa"), scalar.Sym("Delta"), scalar.Sym("chi")
	a, aDag := operator.Destroy("cavity"), operator.Create("cavity")
	model, _ := slh.New(s,
		[]operator.Operator{operator.ScalarMul(scalar.Sqrt(kappa), a)},
		operator.Add(
			operator.ScalarMul(delta, operator.Mul(aDag, a)),
			operator.ScalarMul(chi, operator.Mul(aDag, aDag, a, a)),
		),
	)

	num, err := kerr.ModelMatricesComplex(model,
		map[int]string{0: "drive"},
		map[string]complex128{"kappa": 1, "Delta": 0, "chi": 0.5},
		kerr.DefaultOptions(),
	)
	if err != nil {
		fmt.Println("assemble:", err)

		return
	}

	drift, diff, err := kerr.PrepareSDE(num, func(float64) []complex128 {
		return []complex128{0.25}
	})
	if err != nil {
		fmt.Println("prepare:", err)

		return
	}

	out, _ := drift([]complex128{1}, 0)
	noise, _ := diff(nil, 0).At(0, 0)

	fmt.Println("modes:", num.Modes)
	fmt.Println("drift:", out[0])
	fmt.Println("noise:", noise)
	// Output:
	// modes: [cavity]
	// drift: (-0.75-1i)
	// noise: (-0.5+0i)
}
