// internal/service/text_normalizer.go
package service

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"go_student_management/internal/model"
)

// NormalizeMode は入力欄ごとの変換の種類
type NormalizeMode string

const (
	// ModePlain は半角スペース → 全角スペースのみ (名前欄)
	ModePlain NormalizeMode = "plain"
	// ModeKana はひらがな → カタカナのあとにスペース変換 (カナ名欄)
	ModeKana NormalizeMode = "kana"
)

// ひらがな「あ」(U+3042) 〜「ん」(U+3093) は +0x60 でカタカナになる
const (
	hiraganaFirst  = 'あ'
	hiraganaLast   = 'ん'
	katakanaOffset = 0x60

	halfWidthSpace = ' '
	fullWidthSpace = '　'
)

// ParseNormalizeMode は文字列からモードを得ます。不明な値は ModePlain。
func ParseNormalizeMode(s string) NormalizeMode {
	if NormalizeMode(s) == ModeKana {
		return ModeKana
	}
	return ModePlain
}

func toKatakana(r rune) rune {
	// 「ぁ」や濁点などの記号は対象外
	if r >= hiraganaFirst && r <= hiraganaLast {
		return r + katakanaOffset
	}
	return r
}

func toFullWidthSpace(r rune) rune {
	if r == halfWidthSpace {
		return fullWidthSpace
	}
	return r
}

func apply(t transform.Transformer, s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(t, s)
	if err != nil {
		// runes.Map はエラーを返さない
		return s
	}
	return out
}

// ToKatakana は「あ」〜「ん」の範囲のひらがなをカタカナに変換します。
func ToKatakana(s string) string {
	return apply(runes.Map(toKatakana), s)
}

// NormalizeSpaces は半角スペースを全角スペースに変換します。
func NormalizeSpaces(s string) string {
	return apply(runes.Map(toFullWidthSpace), s)
}

// Normalize は入力値を表示用の形に揃えます。
// kana はカタカナ化してからスペース変換、それ以外はスペース変換のみ。
// 何度かけても結果は変わりません。
// UTF-8 として不正なバイトは U+FFFD (�) に置き換わります (ToKatakana / NormalizeSpaces も同じ)。
func Normalize(raw string, mode NormalizeMode) string {
	if mode != ModeKana {
		return NormalizeSpaces(raw)
	}
	// Chain はバッファを持つので呼び出しごとに作る
	return apply(transform.Chain(runes.Map(toKatakana), runes.Map(toFullWidthSpace)), raw)
}

// NormalizeForField はフィールド名に応じて変換します。
// 名前は plain、カナ名は kana、その他の欄はそのまま返します。
func NormalizeForField(fieldName, raw string) string {
	switch fieldName {
	case model.FieldName:
		return Normalize(raw, ModePlain)
	case model.FieldKanaName:
		return Normalize(raw, ModeKana)
	default:
		return raw
	}
}
