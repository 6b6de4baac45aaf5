package forms

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func validate(obj interface{}) Errors {
	Setup()
	return FieldErrors(binding.Validator.ValidateStruct(obj))
}

func TestPageEditForm_Boundaries(t *testing.T) {
	ok := PageEditForm{Title: "ab", Content: "cd"}
	assert.Empty(t, validate(&ok))

	short := PageEditForm{Title: "a", Content: "c"}
	errs := validate(&short)
	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("content"))
	assert.Equal(t, "validation.min", errs["title"].Key)
	assert.Equal(t, []interface{}{"2"}, errs["title"].Args)

	long := PageEditForm{Title: strings.Repeat("t", 100), Content: strings.Repeat("c", 5000)}
	assert.Empty(t, validate(&long))

	tooLong := PageEditForm{Title: strings.Repeat("t", 101), Content: strings.Repeat("c", 5001)}
	errs = validate(&tooLong)
	assert.Equal(t, "validation.max", errs["title"].Key)
	assert.Equal(t, "validation.max", errs["content"].Key)
}

func TestPageAddForm_Slug(t *testing.T) {
	valid := PageAddForm{Slug: "about-me-2", Title: "About", Content: "Hello"}
	assert.Empty(t, validate(&valid))

	for _, slug := range []string{"About", "with space", "trailing-", "-leading", "double--dash"} {
		form := PageAddForm{Slug: slug, Title: "About", Content: "Hello"}
		errs := validate(&form)
		if assert.True(t, errs.Has("slug"), slug) {
			assert.Equal(t, "validation.slug", errs["slug"].Key)
		}
	}
}

func TestCommentForm_Length(t *testing.T) {
	assert.Empty(t, validate(&CommentForm{Content: strings.Repeat("x", 400)}))
	assert.Empty(t, validate(&CommentForm{Content: strings.Repeat("ż", 400)}), "length counts characters")

	errs := validate(&CommentForm{Content: strings.Repeat("x", 401)})
	assert.Equal(t, "validation.max", errs["content"].Key)

	errs = validate(&CommentForm{})
	assert.Equal(t, "validation.required", errs["content"].Key)
}

func TestUserAddForm(t *testing.T) {
	valid := UserAddForm{
		Login:          "katarzyna",
		Password:       "secret-pass",
		SecondPassword: "secret-pass",
		Name:           "Kasia",
		Mail:           "kasia@example.com",
	}
	assert.Empty(t, validate(&valid))

	invalid := UserAddForm{
		Login:          "kasia",
		Password:       "short",
		SecondPassword: "different",
		Name:           "K",
		Mail:           "not-a-mail",
	}
	errs := validate(&invalid)
	assert.Equal(t, "validation.min", errs["login"].Key)
	assert.Equal(t, "validation.min", errs["password"].Key)
	assert.Equal(t, "validation.eqfield", errs["second_password"].Key)
	assert.Equal(t, "validation.min", errs["name"].Key)
	assert.Equal(t, "validation.email", errs["mail"].Key)
}

func TestUserEditForm_OptionalPassword(t *testing.T) {
	form := UserEditForm{Login: "katarzyna", Name: "Kasia", Mail: "kasia@example.com", RoleID: 2}
	assert.Empty(t, validate(&form))

	form.Password = "1234567"
	form.SecondPassword = "1234567"
	assert.True(t, validate(&form).Has("password"))

	form.Password, form.SecondPassword = "", ""
	form.RoleID = 3
	assert.Equal(t, "validation.oneof", validate(&form)["role_id"].Key)
}

func TestFieldErrors_Message(t *testing.T) {
	errs := validate(&PageEditForm{Title: "a", Content: "ok"})
	assert.Equal(t, "This value is too short. It should have 2 characters or more.", errs["title"].Message("en"))

	assert.Empty(t, FieldErrors(nil))
	other := FieldErrors(assert.AnError)
	assert.Equal(t, "validation.invalid", other[FormField].Key)
}
