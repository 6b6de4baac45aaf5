// Package i18n provides the site's message catalog and translation helpers.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported 支持的语言，首个为默认
var Supported = []language.Tag{language.Polish, language.English}

var matcher = language.NewMatcher(Supported)

var builder = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	for key, msg := range messagesEN {
		builder.SetString(language.English, key, msg)
	}
	for key, msg := range messagesPL {
		builder.SetString(language.Polish, key, msg)
	}
}

// Match 根据 Accept-Language 选择语言，无法匹配时使用 fallback
func Match(acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return Normalize(fallback)
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Normalize(fallback)
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Normalize(fallback)
	}
	return Supported[idx].String()
}

// Normalize 将任意语言代码规范为支持的语言
func Normalize(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return Supported[0].String()
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx].String()
}

// T 翻译 key；未登记的 key 原样返回
func T(lang, key string, args ...interface{}) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = Supported[0]
	}
	p := message.NewPrinter(tag, message.Catalog(builder))
	return p.Sprintf(key, args...)
}

// Has 判断 key 是否已登记
func Has(key string) bool {
	_, ok := messagesEN[key]
	return ok
}
