// Package lanes holds fixed-width vectors that are evaluated element-wise,
// one value per lane. Width float32 lanes fill a 256-bit register.
package lanes

// Width is the number of lanes in every vector type.
const Width = 8

type F32 = [Width]float32
type I32 = [Width]int32
type U32 = [Width]uint32
type Mask = [Width]bool

var (
	Zero = F32{}
	One  = Splat(1)
)

func Splat(v float32) F32 {
	var out F32
	for i := range out {
		out[i] = v
	}
	return out
}

func SplatI(v int32) I32 {
	var out I32
	for i := range out {
		out[i] = v
	}
	return out
}

func SplatU(v uint32) U32 {
	var out U32
	for i := range out {
		out[i] = v
	}
	return out
}

// Load copies up to Width values from src, leaving missing lanes zero.
func Load(src []float32) F32 {
	var out F32
	copy(out[:], src)
	return out
}

// Store writes the first n lanes of v into dst and returns how many were written.
func Store(v F32, dst []float32, n int) int {
	if n > Width {
		n = Width
	}
	if n > len(dst) {
		n = len(dst)
	}
	return copy(dst[:n], v[:n])
}

// Iota returns base, base+1, ... base+Width-1.
func Iota(base float32) F32 {
	var out F32
	for i := range out {
		out[i] = base + float32(i)
	}
	return out
}

func Add(a, b F32) F32 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func Sub(a, b F32) F32 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func Mul(a, b F32) F32 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func Div(a, b F32) F32 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

func Scale(a F32, s float32) F32 {
	for i := range a {
		a[i] *= s
	}
	return a
}

func Neg(a F32) F32 {
	for i := range a {
		a[i] = -a[i]
	}
	return a
}

func Abs(a F32) F32 {
	for i := range a {
		if a[i] < 0 {
			a[i] = -a[i]
		}
	}
	return a
}

func Min(a, b F32) F32 {
	for i := range a {
		if b[i] < a[i] {
			a[i] = b[i]
		}
	}
	return a
}

func Max(a, b F32) F32 {
	for i := range a {
		if b[i] > a[i] {
			a[i] = b[i]
		}
	}
	return a
}

// Floor rounds every lane toward negative infinity.
func Floor(a F32) I32 {
	var out I32
	for i, v := range a {
		xi := int32(v)
		if v < float32(xi) {
			xi--
		}
		out[i] = xi
	}
	return out
}

func ToFloat(a I32) F32 {
	var out F32
	for i, v := range a {
		out[i] = float32(v)
	}
	return out
}

func AddI(a, b I32) I32 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// MulIU multiplies every lane by k with int32 wrap-around and reinterprets
// the product as uint32.
func MulIU(a I32, k int32) U32 {
	var out U32
	for i, v := range a {
		out[i] = uint32(k * v)
	}
	return out
}

func XorU(a, b U32) U32 {
	for i := range a {
		a[i] ^= b[i]
	}
	return a
}

func MulU(a, b U32) U32 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func DivU(a U32, d uint32) U32 {
	for i := range a {
		a[i] /= d
	}
	return a
}

// TestBits reports, per lane, whether any bit of mask is set.
func TestBits(a U32, mask uint32) Mask {
	var out Mask
	for i, v := range a {
		out[i] = v&mask != 0
	}
	return out
}

func Greater(a, b F32) Mask {
	var out Mask
	for i := range a {
		out[i] = a[i] > b[i]
	}
	return out
}

func GreaterEqual(a, b F32) Mask {
	var out Mask
	for i := range a {
		out[i] = a[i] >= b[i]
	}
	return out
}

func Less(a, b F32) Mask {
	var out Mask
	for i := range a {
		out[i] = a[i] < b[i]
	}
	return out
}

func GreaterEqualI(a, b I32) Mask {
	var out Mask
	for i := range a {
		out[i] = a[i] >= b[i]
	}
	return out
}

func Not(m Mask) Mask {
	for i := range m {
		m[i] = !m[i]
	}
	return m
}

// Ones is 1 in every lane where m is set and 0 elsewhere.
func Ones(m Mask) I32 {
	var out I32
	for i, set := range m {
		if set {
			out[i] = 1
		}
	}
	return out
}

// Select picks a where m is set and b elsewhere.
func Select(m Mask, a, b F32) F32 {
	for i, set := range m {
		if !set {
			a[i] = b[i]
		}
	}
	return a
}
