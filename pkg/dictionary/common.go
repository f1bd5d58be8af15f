package dictionary

import (
	"regexp"
	"strings"
)

var specialChars = regexp.MustCompile(`^[\p{P}\p{S}\p{Z}\s]+$`)

// IsSpecialChar 判断字符串是否全部由标点, 符号或空白组成
func IsSpecialChar(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return specialChars.MatchString(s)
}
