// Package blend provides color blending operations.
package blend

// RGBA represents a color (internal copy to avoid import cycle).
// Components are unpremultiplied, in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// SourceOver blends source over destination using alpha compositing.
func SourceOver(src, dst RGBA) RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return RGBA{}
	}

	return RGBA{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// Multiply multiplies the source color channels into the destination,
// weighted by the source alpha. Destination alpha is preserved.
func Multiply(src, dst RGBA) RGBA {
	if src.A <= 0 {
		return dst
	}
	mr := dst.R * src.R
	mg := dst.G * src.G
	mb := dst.B * src.B
	return RGBA{
		R: dst.R + (mr-dst.R)*src.A,
		G: dst.G + (mg-dst.G)*src.A,
		B: dst.B + (mb-dst.B)*src.A,
		A: dst.A,
	}
}
