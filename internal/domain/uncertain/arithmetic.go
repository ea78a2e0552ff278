package uncertain

// Add returns q + other. Uncertainties are summed.
func (q Quantity) Add(other Quantity) Quantity {
	v1, u1 := q.centered()
	v2, u2 := other.centered()
	return Quantity{kind: KindCentered, a: v1 + v2, b: u1 + u2}
}

// Sub returns q - other. Uncertainties are summed, not subtracted.
func (q Quantity) Sub(other Quantity) Quantity {
	v1, u1 := q.centered()
	v2, u2 := other.centered()
	return Quantity{kind: KindCentered, a: v1 - v2, b: u1 + u2}
}

// Mul returns q × other. The uncertainty is the plain sum of both operands'
// uncertainties; no relative-error combination is applied.
func (q Quantity) Mul(other Quantity) Quantity {
	v1, u1 := q.centered()
	v2, u2 := other.centered()
	return Quantity{kind: KindCentered, a: v1 * v2, b: u1 + u2}
}

// Div returns q ÷ other. The uncertainty is the plain sum of both operands'
// uncertainties. Division by a zero value follows IEEE 754.
func (q Quantity) Div(other Quantity) Quantity {
	v1, u1 := q.centered()
	v2, u2 := other.centered()
	return Quantity{kind: KindCentered, a: v1 / v2, b: u1 + u2}
}

// AddScalar shifts the value by x. The uncertainty is unchanged.
func (q Quantity) AddScalar(x float64) Quantity {
	v, u := q.centered()
	return Quantity{kind: KindCentered, a: v + x, b: u}
}

// SubScalar shifts the value by -x. The uncertainty is unchanged.
func (q Quantity) SubScalar(x float64) Quantity {
	v, u := q.centered()
	return Quantity{kind: KindCentered, a: v - x, b: u}
}

// MulScalar scales the value by x. The uncertainty is not scaled.
func (q Quantity) MulScalar(x float64) Quantity {
	v, u := q.centered()
	return Quantity{kind: KindCentered, a: v * x, b: u}
}

// DivScalar divides the value by x. The uncertainty is not scaled.
func (q Quantity) DivScalar(x float64) Quantity {
	v, u := q.centered()
	return Quantity{kind: KindCentered, a: v / x, b: u}
}
