// Package dsp содержит цифровую обработку сигналов: полосовой фильтр
// Баттерворта без фазового сдвига и поиск пиков для отрисовки.
package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// BandpassFilter применяет полосовой фильтр Баттерворта в прямом и обратном
// направлении (нулевой фазовый сдвиг), чтобы положения пиков не смещались
// относительно исходного сигнала. Длина выхода равна длине входа.
func BandpassFilter(signal []float64, fs, lowCut, highCut float64, order int) ([]float64, error) {
	b, a, err := butterBandpass(order, lowCut, highCut, fs)
	if err != nil {
		return nil, err
	}
	return filtFilt(b, a, signal)
}

// butterBandpass проектирует коэффициенты полосового фильтра Баттерворта
// через билинейное преобразование аналогового прототипа
func butterBandpass(order int, lowCut, highCut, fs float64) (b, a []float64, err error) {
	if fs <= 0 {
		return nil, nil, fmt.Errorf("некорректная частота дискретизации: %v", fs)
	}
	if order < 1 {
		return nil, nil, fmt.Errorf("некорректный порядок фильтра: %d", order)
	}
	nyq := 0.5 * fs
	if lowCut <= 0 || highCut <= lowCut || highCut >= nyq {
		return nil, nil, fmt.Errorf("некорректная полоса пропускания %v-%v Гц при Найквисте %v Гц", lowCut, highCut, nyq)
	}

	// предварительная деформация частот среза
	w1 := 2 * fs * math.Tan(math.Pi*lowCut/fs)
	w2 := 2 * fs * math.Tan(math.Pi*highCut/fs)
	bw := w2 - w1
	w0 := math.Sqrt(w1 * w2)

	// полюса аналогового НЧ прототипа Баттерворта (левая полуплоскость)
	n := order
	prototype := make([]complex128, n)
	for k := 0; k < n; k++ {
		theta := math.Pi * float64(2*k+n+1) / float64(2*n)
		prototype[k] = cmplx.Exp(complex(0, theta))
	}

	// НЧ -> полосовой: каждый полюс прототипа дает пару полюсов
	poles := make([]complex128, 0, 2*n)
	for _, p := range prototype {
		pb := p * complex(bw/2, 0)
		d := cmplx.Sqrt(pb*pb - complex(w0*w0, 0))
		poles = append(poles, pb+d, pb-d)
	}

	// билинейное преобразование полюсов; нули: n штук в s=0 (z=1)
	// и n штук в s=inf (z=-1)
	fs2 := complex(2*fs, 0)
	zPoles := make([]complex128, len(poles))
	for i, p := range poles {
		zPoles[i] = (fs2 + p) / (fs2 - p)
	}
	zZeros := make([]complex128, 0, 2*n)
	for i := 0; i < n; i++ {
		zZeros = append(zZeros, complex(1, 0))
	}
	for i := 0; i < n; i++ {
		zZeros = append(zZeros, complex(-1, 0))
	}

	b = realCoeffs(polyFromRoots(zZeros))
	a = realCoeffs(polyFromRoots(zPoles))

	// нормировка усиления: |H| = 1 в центре полосы
	omega0 := 2 * math.Atan(w0/(2*fs))
	gain := cmplx.Abs(evalTransfer(b, a, omega0))
	if gain == 0 || math.IsNaN(gain) {
		return nil, nil, fmt.Errorf("вырожденный фильтр для полосы %v-%v Гц", lowCut, highCut)
	}
	for i := range b {
		b[i] /= gain
	}

	return b, a, nil
}

// polyFromRoots разворачивает множество корней в коэффициенты полинома
// (старшая степень первой, старший коэффициент 1)
func polyFromRoots(roots []complex128) []complex128 {
	coeffs := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}
	return coeffs
}

func realCoeffs(coeffs []complex128) []float64 {
	result := make([]float64, len(coeffs))
	for i, c := range coeffs {
		result[i] = real(c)
	}
	return result
}

// evalTransfer вычисляет H(e^{j*omega}) = B(z)/A(z)
func evalTransfer(b, a []float64, omega float64) complex128 {
	z := cmplx.Exp(complex(0, omega))
	return evalPoly(b, z) / evalPoly(a, z)
}

func evalPoly(coeffs []float64, z complex128) complex128 {
	result := complex(0, 0)
	for _, c := range coeffs {
		result = result*z + complex(c, 0)
	}
	return result
}

// filtFilt фильтрует сигнал вперед и назад с нечетным расширением краев
// и установившимися начальными условиями, как принято для устранения
// переходных процессов на границах
func filtFilt(b, a, x []float64) ([]float64, error) {
	ntaps := len(a)
	if len(b) > ntaps {
		ntaps = len(b)
	}
	padLen := 3 * ntaps
	if len(x) <= padLen {
		return nil, fmt.Errorf("сигнал слишком короткий для фильтрации: %d семплов при padlen %d", len(x), padLen)
	}

	// нечетное расширение краев
	ext := make([]float64, 0, len(x)+2*padLen)
	for i := padLen; i >= 1; i-- {
		ext = append(ext, 2*x[0]-x[i])
	}
	ext = append(ext, x...)
	last := len(x) - 1
	for i := last - 1; i >= last-padLen; i-- {
		ext = append(ext, 2*x[last]-x[i])
	}

	zi, err := steadyStateInit(b, a)
	if err != nil {
		return nil, err
	}

	// прямой проход
	y := applyFilter(b, a, ext, scaleState(zi, ext[0]))
	// обратный проход
	reverseInPlace(y)
	y = applyFilter(b, a, y, scaleState(zi, y[0]))
	reverseInPlace(y)

	result := make([]float64, len(x))
	copy(result, y[padLen:padLen+len(x)])
	return result, nil
}

// applyFilter реализует БИХ-фильтр в транспонированной прямой форме II
func applyFilter(b, a, x, state []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	bp := padded(b, n)
	ap := padded(a, n)

	z := make([]float64, n-1)
	copy(z, state)

	y := make([]float64, len(x))
	for i, xn := range x {
		yn := bp[0]*xn + z[0]
		for j := 0; j < n-2; j++ {
			z[j] = bp[j+1]*xn + z[j+1] - ap[j+1]*yn
		}
		z[n-2] = bp[n-1]*xn - ap[n-1]*yn
		y[i] = yn
	}
	return y
}

// steadyStateInit вычисляет начальное состояние фильтра, при котором
// отклик на ступеньку единичной амплитуды не имеет переходного процесса:
// решается система (I - A^T) zi = B
func steadyStateInit(b, a []float64) ([]float64, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	bp := padded(b, n)
	ap := padded(a, n)
	m := n - 1

	matrix := make([][]float64, m)
	rhs := make([]float64, m)
	for i := 0; i < m; i++ {
		matrix[i] = make([]float64, m)
		if i > 0 {
			matrix[i][i] = 1
		}
		matrix[i][0] += ap[i+1]
		if i+1 < m {
			matrix[i][i+1] -= 1
		}
		rhs[i] = bp[i+1] - ap[i+1]*bp[0]
	}
	matrix[0][0] += 1

	return solveLinear(matrix, rhs)
}

// solveLinear решает систему методом Гаусса с частичным выбором ведущего элемента
func solveLinear(matrix [][]float64, rhs []float64) ([]float64, error) {
	m := len(rhs)
	for col := 0; col < m; col++ {
		pivot := col
		for row := col + 1; row < m; row++ {
			if math.Abs(matrix[row][col]) > math.Abs(matrix[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(matrix[pivot][col]) < 1e-14 {
			return nil, fmt.Errorf("вырожденная матрица начальных условий фильтра")
		}
		matrix[col], matrix[pivot] = matrix[pivot], matrix[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		for row := col + 1; row < m; row++ {
			factor := matrix[row][col] / matrix[col][col]
			for k := col; k < m; k++ {
				matrix[row][k] -= factor * matrix[col][k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	solution := make([]float64, m)
	for row := m - 1; row >= 0; row-- {
		sum := rhs[row]
		for k := row + 1; k < m; k++ {
			sum -= matrix[row][k] * solution[k]
		}
		solution[row] = sum / matrix[row][row]
	}
	return solution, nil
}

func scaleState(zi []float64, x0 float64) []float64 {
	scaled := make([]float64, len(zi))
	for i, v := range zi {
		scaled[i] = v * x0
	}
	return scaled
}

func padded(coeffs []float64, n int) []float64 {
	if len(coeffs) == n {
		return coeffs
	}
	result := make([]float64, n)
	copy(result, coeffs)
	return result
}

func reverseInPlace(data []float64) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
