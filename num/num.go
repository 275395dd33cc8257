package num

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

var rnd = struct {
	sync.Mutex
	*rand.Rand
}{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}

// Random returns an integer uniformly distributed in [min, max], both inclusive.
func Random(min, max int) int {
	rnd.Lock()
	defer rnd.Unlock()
	return RandomWith(rnd.Rand, min, max)
}

// RandomWith is like Random, but draws from r.
func RandomWith(r *rand.Rand, min, max int) int {
	return min + int(r.Float64()*float64(max-min+1))
}

// Average returns the arithmetic mean of numbers.
// For an empty argument list the result is NaN.
func Average(numbers ...float64) float64 {
	var sum, n float64
	for _, x := range numbers {
		sum += x
	}
	n = float64(len(numbers))
	return sum / n
}

// Clamp caps value to the range [min, max].
//
//	Clamp(-1, 0, 10) // 0
//	Clamp(5, 0, 10)  // 5
//	Clamp(11, 0, 10) // 10
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Lerp interpolates linearly between from and to, given progress t.
// t is not restricted to [0,1], which allows for overshooting curves.
//
//	Lerp(0.5, 20, 70) // 45
func Lerp(t, from, to float64) float64 {
	return from + (to-from)*t
}

// HexByte formats n in lowercase hex, padded with a leading zero to
// at least two characters.
func HexByte(n int) string {
	h := strconv.FormatInt(int64(n), 16)
	if len(h) < 2 {
		return "0" + h
	}
	return h
}
