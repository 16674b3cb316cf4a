package delivery

// RequiredUnits returns how many units the given delivery (1-based) asks for.
// Batch size escalates as rounds progress.
func RequiredUnits(delivery int) int {
	switch {
	case delivery < 1:
		return 0
	case delivery == 1:
		return 1
	case delivery == 2:
		return 2
	case delivery <= 10:
		return 3
	case delivery <= 20:
		return 5
	default:
		return 10
	}
}

// CumulativeUnits returns the units needed for deliveries 1 through n
func CumulativeUnits(n int) int {
	total := 0
	for i := 1; i <= n; i++ {
		total += RequiredUnits(i)
	}
	return total
}
