package linalg

import "qsym/internal/qsymerr"

// ModMul multiplies a*b mod p, widening through a 128-bit intermediate
// so operands near a 62-bit prime don't overflow a plain int64 product.
func ModMul(a, b, p int64) int64 {
	hi, lo := mul64(uint64(a), uint64(b))
	return int64(mod128(hi, lo, uint64(p)))
}

// mul64 returns the 128-bit product of x*y as (hi, lo).
func mul64(x, y uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32
	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return
}

// mod128 computes (hi<<64 + lo) mod p via repeated halving, avoiding a
// full bignum dependency for this single reduction.
func mod128(hi, lo, p uint64) uint64 {
	rem := hi % p
	for i := 0; i < 64; i++ {
		rem = (rem << 1) % p
		if lo&(1<<63) != 0 {
			rem = (rem + 1) % p
		}
		lo <<= 1
	}
	return rem
}

// ModPow computes base^exp mod p via repeated squaring.
func ModPow(base, exp, p int64) int64 {
	base = ((base % p) + p) % p
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = ModMul(result, base, p)
		}
		base = ModMul(base, base, p)
		exp >>= 1
	}
	return result
}

// ModInv computes the inverse of a mod p via Fermat's little theorem
// (a^(p-2) mod p); p must be prime.
func ModInv(a, p int64) (int64, error) {
	a = ((a % p) + p) % p
	if a == 0 {
		return 0, qsymerr.New(qsymerr.DivisionByZero, "linalg.ModInv", "inverse of zero mod p")
	}
	return ModPow(a, p-2, p), nil
}

// ModularNullSpace computes the null space of M over Z/pZ using the
// same row-reduction algorithm as RationalNullSpace, with all
// arithmetic performed modulo the prime p.
func ModularNullSpace(m [][]int64, rows, cols int, p int64) ([][]int64, error) {
	grid := make([][]int64, rows)
	for i := range grid {
		grid[i] = append([]int64(nil), m[i]...)
		for j := range grid[i] {
			grid[i][j] = ((grid[i][j] % p) + p) % p
		}
	}

	pivotRowOf := make(map[int]int)
	isPivot := make([]bool, cols)
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if grid[r][col] != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		grid[pivotRow], grid[sel] = grid[sel], grid[pivotRow]

		inv, err := ModInv(grid[pivotRow][col], p)
		if err != nil {
			return nil, err
		}
		for c := 0; c < cols; c++ {
			grid[pivotRow][c] = ModMul(grid[pivotRow][c], inv, p)
		}

		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := grid[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < cols; c++ {
				grid[r][c] = ((grid[r][c] - ModMul(factor, grid[pivotRow][c], p)) % p + p) % p
			}
		}

		isPivot[col] = true
		pivotRowOf[col] = pivotRow
		pivotRow++
	}

	var basis [][]int64
	for fc := 0; fc < cols; fc++ {
		if isPivot[fc] {
			continue
		}
		v := make([]int64, cols)
		v[fc] = 1
		for col, row := range pivotRowOf {
			if !isPivot[col] {
				continue
			}
			v[col] = ((-grid[row][fc]) % p + p) % p
		}
		basis = append(basis, v)
	}
	return basis, nil
}
