package registry

import "strings"

func isValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isValidSenderID(id int64) bool {
	return id > 0
}

func isValidWeight(weight float64) bool {
	return weight >= 0
}
