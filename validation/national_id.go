// Package validation holds the registration-time input guards.
// File: validation/national_id.go
package validation

const (
	nationalIDLength = 10
	minRegionCode    = 1
	maxRegionCode    = 24
)

// ValidateNationalID checks a 10-digit identity number: a region code in
// [1, 24] followed by eight payload digits and a Modulo-10 check digit.
// It never panics and treats every structural problem as invalid.
func ValidateNationalID(id string) bool {
	if len(id) != nationalIDLength {
		return false
	}
	digits := make([]int, nationalIDLength)
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}

	region := digits[0]*10 + digits[1]
	if region < minRegionCode || region > maxRegionCode {
		return false
	}

	total := 0
	for i, d := range digits[:nationalIDLength-1] {
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
	}

	check := (total+9)/10*10 - total
	if check == 10 {
		check = 0
	}
	return check == digits[nationalIDLength-1]
}
