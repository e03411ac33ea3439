package verstr

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func compare(left, right string) int {
	for len(left) > 0 && len(right) > 0 {
		if isDigit(left[0]) && isDigit(right[0]) {
			var leftNum, rightNum string
			leftNum, left = splitNumber(left)
			rightNum, right = splitNumber(right)
			if result := compareNumbers(leftNum, rightNum); result != 0 {
				return result
			}
			continue
		}
		if left[0] != right[0] {
			if left[0] < right[0] {
				return -1
			}
			return 1
		}
		left = left[1:]
		right = right[1:]
	}
	if len(left) < len(right) {
		return -1
	}
	if len(left) > len(right) {
		return 1
	}
	return 0
}

// compareNumbers compares two digit strings of arbitrary length.
func compareNumbers(left, right string) int {
	left = trimLeadingZeroes(left)
	right = trimLeadingZeroes(right)
	if len(left) != len(right) {
		if len(left) < len(right) {
			return -1
		}
		return 1
	}
	if left < right {
		return -1
	}
	if left > right {
		return 1
	}
	return 0
}

func splitNumber(input string) (string, string) {
	index := 0
	for index < len(input) && isDigit(input[index]) {
		index++
	}
	return input[:index], input[index:]
}

func trimLeadingZeroes(number string) string {
	for len(number) > 1 && number[0] == '0' {
		number = number[1:]
	}
	return number
}
