package main

// escapeRadiusSq is the squared escape radius (|z| > 2).
const escapeRadiusSq = 4.0

// Evaluate iterates z = z*z + c starting at z0 and returns the number of
// completed iterations before |z| exceeds 2. A result equal to budget means
// the orbit did not escape.
func Evaluate(budget int, z0, c ComplexPoint) int {
	re, im := z0.Re, z0.Im
	n := 0
	for n < budget {
		re, im = re*re-im*im+c.Re, 2*re*im+c.Im
		if re*re+im*im > escapeRadiusSq {
			break
		}
		n++
	}
	return n
}

// evaluatePixel applies the fractal kind's choice of start point and constant.
func evaluatePixel(params FractalParams, budget int, p ComplexPoint) int {
	if params.Kind == Mandelbrot {
		return Evaluate(budget, ComplexPoint{}, p)
	}
	return Evaluate(budget, p, params.C)
}
