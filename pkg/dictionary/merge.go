package dictionary

import (
	"maps"
	"slices"
	"strings"
)

// SplitTranslations 按逗号切分翻译并去掉首尾空白, 空项被丢弃
func SplitTranslations(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// MergeTranslations 合并已有翻译与新翻译, 结果按字节序排序并以逗号连接.
// 仅大小写不同的项视为重复: 已有的写法优先; 同一组内的多个写法取字节序最大者,
// 因此结果与组内元素的顺序无关.
func MergeTranslations(existing, incoming string) string {
	merged := foldTranslations(existing)
	for fold, tok := range foldTranslations(incoming) {
		if _, ok := merged[fold]; !ok {
			merged[fold] = tok
		}
	}
	words := slices.Collect(maps.Values(merged))
	slices.Sort(words)
	return strings.Join(words, ",")
}

// foldTranslations 按小写形式归并一组翻译
func foldTranslations(s string) map[string]string {
	out := make(map[string]string)
	for _, tok := range SplitTranslations(s) {
		fold := strings.ToLower(tok)
		if cur, ok := out[fold]; !ok || tok > cur {
			out[fold] = tok
		}
	}
	return out
}
