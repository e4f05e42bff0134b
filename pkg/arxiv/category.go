package arxiv

// IsValidCategory reports whether the string is a valid arXiv category,
// either an ACM-style code like "cs.AI" or an MSC 2020 code like "68Q25"
func IsValidCategory(category string) bool {
	return isACM(category) || isMSC(category)
}

// isACM matches ACM-style codes: 2-5 characters containing a dot
func isACM(category string) bool {
	if len(category) < 2 || len(category) > 5 {
		return false
	}
	for _, r := range category {
		if r == '.' {
			return true
		}
	}
	return false
}

// isMSC matches MSC-style codes: exactly 5 characters shaped ##x##
func isMSC(category string) bool {
	if len(category) != 5 {
		return false
	}
	return isDigit(category[0]) && isDigit(category[1]) && isDigit(category[3]) && isDigit(category[4])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
