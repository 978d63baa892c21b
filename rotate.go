package getopt

import "slices"

// rotate moves s[middle:last] in front of s[first:middle], keeping the relative order inside
// both ranges. It is a no-op when either range is empty.
func rotate(s []string, first, middle, last int) {
	if first >= middle || middle >= last {
		return
	}
	slices.Reverse(s[first:middle])
	slices.Reverse(s[middle:last])
	slices.Reverse(s[first:last])
}
