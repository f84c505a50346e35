package utils

type Fl = float32

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}

func AbsF(x Fl) Fl {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts [x] to the range [min, max].
func Clamp(x, min, max Fl) Fl {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
