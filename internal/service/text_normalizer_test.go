// internal/service/text_normalizer_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		mode NormalizeMode
		want string
	}{
		{name: "plain: 半角スペースをすべて全角に", raw: " 山田 太郎 ", mode: ModePlain, want: "　山田　太郎　"},
		{name: "plain: ひらがなはそのまま", raw: "やまだ たろう", mode: ModePlain, want: "やまだ　たろう"},
		{name: "kana: カタカナ化してから全角スペース", raw: "やまだ たろう", mode: ModeKana, want: "ヤマダ　タロウ"},
		{name: "kana: 濁音・小書きも変換", raw: "がっこう", mode: ModeKana, want: "ガッコウ"},
		{name: "kana: 範囲外の「ぁ」と長音はそのまま", raw: "ぁー", mode: ModeKana, want: "ぁー"},
		{name: "kana: カタカナ・漢字・英数字はそのまま", raw: "ヤマダ山田abc123", mode: ModeKana, want: "ヤマダ山田abc123"},
		{name: "kana: 全角スペースはそのまま", raw: "やまだ　たろう", mode: ModeKana, want: "ヤマダ　タロウ"},
		{name: "空文字", raw: "", mode: ModeKana, want: ""},
		{name: "不明なモードは plain 扱い", raw: "あ い", mode: NormalizeMode("other"), want: "あ　い"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, tt.mode))
		})
	}
}

func TestNormalize_HiraganaRange(t *testing.T) {
	for r := 'あ'; r <= 'ん'; r++ {
		got := []rune(Normalize(string(r), ModeKana))
		if assert.Len(t, got, 1) {
			assert.Equal(t, r+96, got[0], "U+%04X", r)
		}
	}
	assert.Equal(t, "ア", Normalize("あ", ModeKana))
	assert.Equal(t, "ン", Normalize("ん", ModeKana))
}

func TestNormalize_NoChangeWithoutTargets(t *testing.T) {
	inputs := []string{"", "山田　太郎", "ABC-123", "ヤマダ", "ゔゕ゛", "絵文字😀"}
	for _, s := range inputs {
		assert.Equal(t, s, Normalize(s, ModePlain))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", " ", "やまだ たろう", "ヤマダ タロウ ", "mixed あア 漢字  ", "\tタブ\n改行"}
	for _, s := range inputs {
		for _, mode := range []NormalizeMode{ModePlain, ModeKana} {
			once := Normalize(s, mode)
			assert.Equal(t, once, Normalize(once, mode), "mode=%s input=%q", mode, s)
		}
	}
}

func TestNormalizeForField(t *testing.T) {
	assert.Equal(t, "山田　太郎", NormalizeForField("name", "山田 太郎"))
	assert.Equal(t, "やまだ", NormalizeForField("name", "やまだ"), "名前欄はカタカナ化しない")
	assert.Equal(t, "ヤマダ　タロウ", NormalizeForField("kanaName", "やまだ たろう"))
	assert.Equal(t, "備考 です", NormalizeForField("remark", "備考 です"), "対象外の欄はそのまま")
}

func TestParseNormalizeMode(t *testing.T) {
	assert.Equal(t, ModeKana, ParseNormalizeMode("kana"))
	assert.Equal(t, ModePlain, ParseNormalizeMode("plain"))
	assert.Equal(t, ModePlain, ParseNormalizeMode(""))
}

func TestToKatakanaAndNormalizeSpaces(t *testing.T) {
	assert.Equal(t, "カタカナ ト", ToKatakana("かたかな と"))
	assert.Equal(t, "a　b", NormalizeSpaces("a b"))
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	assert.Equal(t, "a�b", Normalize("a\xffb", ModePlain))
	assert.Equal(t, "ア�　", Normalize("あ\xff ", ModeKana))
}
