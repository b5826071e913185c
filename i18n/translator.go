// Package i18n renders error messages for parse failure codes.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error codes. data carries the
// structured fields of the error (for example "name" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates refer
// to data fields as {field}.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"missing_property":   "missing property '{name}'",
		"unexpected_type":    "expected {expected}, got {actual}",
		"unexpected_length":  "expected array of length {arity}, got length {length}",
		"value_out_of_range": "value {raw} is out of range for {target}",
		"duplicate_key":      "key '{key}' duplicated",
		"max_depth":          "nesting exceeds {max} levels",
		"truncated":          "input exceeds {max} bytes",
		"parse_error":        "parse error",
	},
	"ja": {
		"missing_property":   "プロパティ '{name}' がありません",
		"unexpected_type":    "{expected} を期待しましたが {actual} でした",
		"unexpected_length":  "長さ {arity} の配列を期待しましたが長さ {length} でした",
		"value_out_of_range": "値 {raw} は {target} の範囲外です",
		"duplicate_key":      "キー '{key}' が重複しています",
		"max_depth":          "ネストが {max} 段を超えています",
		"truncated":          "入力が {max} バイトを超えています",
		"parse_error":        "解析エラー",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
