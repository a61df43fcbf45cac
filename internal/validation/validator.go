// internal/validation/validator.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳

	"go_student_management/internal/model"
)

// 独自に登録するタグ
const (
	tagNotBlank      = "notblank"        // 前後の空白を除いて空でない
	tagMinTrim       = "mintrim"         // 前後の空白を除いた文字数の下限
	tagAgeRange      = "age_range"       // model.MinStudentAge 〜 model.MaxStudentAge
	tagEndAfterStart = "end_after_start" // 終了日が開始日より後 (構造体レベル)
)

// Validator は学生フォームの入力チェックを行います。
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
	labels   model.FieldLabels
}

// New はバリデータを作り、日本語メッセージを登録します。labels が nil なら model.DefaultFieldLabels()。
func New(labels model.FieldLabels) (*Validator, error) {
	if labels == nil {
		labels = model.DefaultFieldLabels()
	}

	v := validator.New()

	// JSONタグからフィールド名を取得するように設定
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日付は文字列として扱う (未入力 = 空文字 なので required が効く)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(model.CalendarDate); ok {
			return d.String()
		}
		return nil
	}, model.CalendarDate{})

	// strings.TrimSpace は全角スペースも空白として扱う
	for tag, fn := range map[string]validator.Func{
		tagNotBlank: validators.NotBlank,
		tagMinTrim:  minTrimmed,
		tagAgeRange: ageInRange,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("validation: register %s: %w", tag, err)
		}
	}
	v.RegisterStructValidation(studentFormStructLevel, model.StudentForm{})

	// --- ここからが日本語化の処理 ---
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	trans, found := uni.GetTranslator("ja")
	if !found {
		return nil, errors.New("validation: translator ja not found")
	}
	if err := ja_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("validation: register default translations: %w", err)
	}

	val := &Validator{validate: v, trans: trans, labels: labels}
	if err := val.registerMessages(); err != nil {
		return nil, err
	}
	return val, nil
}

// registerMessages は画面で使っている文言に合わせてメッセージを上書きします。
func (val *Validator) registerMessages() error {
	ageParams := func(validator.FieldError) []string {
		return []string{strconv.Itoa(model.MinStudentAge), strconv.Itoa(model.MaxStudentAge)}
	}
	messages := []struct {
		tag    string
		msg    string
		params func(fe validator.FieldError) []string
	}{
		{tag: "required", msg: "{0}は必須です"},
		{tag: tagNotBlank, msg: "{0}は必須です"},
		{tag: "email", msg: "正しいメールアドレスの形式で入力してください"},
		{tag: tagMinTrim, msg: "{0}は{1}文字以上で入力してください", params: func(fe validator.FieldError) []string {
			return []string{fe.Param()}
		}},
		{tag: tagAgeRange, msg: "{0}は{1}歳以上{2}歳以下で入力してください", params: ageParams},
		{tag: tagEndAfterStart, msg: "{0}は開始日より後の日付を入力してください"},
	}
	for _, m := range messages {
		m := m
		err := val.validate.RegisterTranslation(m.tag, val.trans, func(ut ut.Translator) error {
			return ut.Add(m.tag, m.msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			args := []string{val.labels.Label(fe.Field())}
			if m.params != nil {
				args = append(args, m.params(fe)...)
			}
			t, _ := ut.T(m.tag, args...)
			return t
		})
		if err != nil {
			return fmt.Errorf("validation: register %s: %w", m.tag, err)
		}
	}
	return nil
}

// minTrimmed は前後の空白を除いた文字数 (rune 数) が param 以上かを調べます。
func minTrimmed(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validation: bad %s param %q", tagMinTrim, fl.Param()))
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func ageInRange(fl validator.FieldLevel) bool {
	age := fl.Field().Int()
	return age >= model.MinStudentAge && age <= model.MaxStudentAge
}

func studentFormStructLevel(sl validator.StructLevel) {
	form := sl.Current().Interface().(model.StudentForm)
	if form.CourseStartAt.IsZero() || form.CourseEndAt.IsZero() {
		// 未入力は required で報告される
		return
	}
	if !form.CourseEndAt.After(form.CourseStartAt) {
		sl.ReportError(form.CourseEndAt, model.FieldCourseEndAt, "CourseEndAt", tagEndAfterStart, "")
	}
}

// ValidateStudentForm はフォームを検証します。
// 入力エラーは *model.AppError (model.ErrInvalidInput をラップ) で返し、Detail.Message に全件を改行区切りで入れます。
func (val *Validator) ValidateStudentForm(form *model.StudentForm) error {
	if form == nil {
		return model.NewAppError("VALIDATION_ERROR", "入力がありません", "", model.ErrInvalidInput)
	}
	err := val.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate student form: %w", err)
	}
	return val.newValidationError(verrs)
}

// Messages はエラーから日本語メッセージを取り出します (画面の通知用)。
func (val *Validator) Messages(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fe.Translate(val.trans))
		}
		return out
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) && appErr.Detail.Message != "" {
		return strings.Split(appErr.Detail.Message, "\n")
	}
	return nil
}

func (val *Validator) newValidationError(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(val.trans))
	}
	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "\n"),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
