package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/kdam/portfolio/internal/i18n"
	"github.com/kdam/portfolio/internal/logger"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var setupOnce sync.Once

// Setup 向 gin 的校验器注册自定义规则，并以 form 标签作为字段名
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logger.Warn("[Forms] 校验器类型未知，跳过注册")
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		}); err != nil {
			logger.Errorf("[Forms] 注册 slug 规则失败: %v", err)
		}
	})
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Key  string
	Args []interface{}
}

// Message 翻译后的错误信息
func (e *FieldError) Message(lang string) string {
	return i18n.T(lang, e.Key, e.Args...)
}

// Errors 按字段名索引的校验错误
type Errors map[string]*FieldError

// FormField 非字段级错误的键
const FormField = "_form"

// Add 记录字段错误，已有错误时保留第一条
func (e Errors) Add(field, key string, args ...interface{}) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = &FieldError{Key: key, Args: args}
}

// Has 字段是否有错误
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// paramTags 错误信息需要带参数的规则
var paramTags = map[string]bool{"min": true, "max": true, "gte": true}

// FieldErrors 将绑定错误转换为按字段索引的错误
func FieldErrors(err error) Errors {
	out := Errors{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add(FormField, "validation.invalid")
		return out
	}
	for _, fe := range verrs {
		key := "validation." + fe.Tag()
		if !i18n.Has(key) {
			key = "validation.invalid"
		}
		if paramTags[fe.Tag()] {
			out.Add(fe.Field(), key, fe.Param())
		} else {
			out.Add(fe.Field(), key)
		}
	}
	return out
}
