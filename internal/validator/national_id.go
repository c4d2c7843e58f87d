package validator

const (
	_nationalIDLength   = 10
	_maxProvinceCode    = 24
	_maxThirdDigit      = 5
	_checkDigitPosition = 9
)

// NationalID validates a 10-digit Ecuadorian cédula.
//
// Digits 0-1 are the province code (1..24) and digit 2 must be at most 5.
// The first nine digits are weighted 2,1,2,1,... with 9 subtracted from
// any product of 10 or more; the check digit is (10 - sum%10) % 10.
func NationalID(value string) bool {
	if !IsNationalIDFormat(value) {
		return false
	}

	digits := make([]int, _nationalIDLength)
	for i, c := range value {
		digits[i] = int(c - '0')
	}

	province := digits[0]*10 + digits[1]
	if province < 1 || province > _maxProvinceCode {
		return false
	}

	if digits[2] > _maxThirdDigit {
		return false
	}

	sum := 0
	for i := 0; i < _checkDigitPosition; i++ {
		weight := 2
		if i%2 == 1 {
			weight = 1
		}

		product := digits[i] * weight
		if product >= 10 {
			product -= 9
		}

		sum += product
	}

	check := (10 - sum%10) % 10

	return check == digits[_checkDigitPosition]
}
