package gct

import "github.com/jsphweid/gct/util"

// Indexed by interval mod 12. Unison, thirds, fourth, fifth and sixths are
// consonant. The values are fixed data, not derived from a rule.
var consonanceVector = [12]bool{
	true,  // 0
	false, // 1
	false, // 2
	true,  // 3
	true,  // 4
	true,  // 5
	false, // 6
	true,  // 7
	true,  // 8
	true,  // 9
	false, // 10
	false, // 11
}

func IsConsonant(interval int) bool {
	return consonanceVector[util.Mod(interval, 12)]
}

// ConsonanceVector returns a copy of the table.
func ConsonanceVector() [12]bool {
	return consonanceVector
}
