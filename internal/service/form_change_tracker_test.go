// internal/service/form_change_tracker_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_student_management/internal/logging"
	"go_student_management/internal/model"
	"go_student_management/internal/service/mocks"
)

func fields(kv ...string) []model.Field {
	out := make([]model.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, model.Field{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestFormChangeTracker_Diff(t *testing.T) {
	tests := []struct {
		name     string
		baseline []model.Field
		current  []model.Field
		want     []model.ChangeRecord
	}{
		{
			name:     "変更なし",
			baseline: fields("name", "A", "age", "20"),
			current:  fields("name", "A", "age", "20"),
			want:     []model.ChangeRecord{},
		},
		{
			name:     "1項目だけ変更",
			baseline: fields("name", "A", "age", "20"),
			current:  fields("name", "B", "age", "20"),
			want: []model.ChangeRecord{
				{Name: "name", Field: "名前", Original: "A", Current: "B"},
			},
		},
		{
			name:     "空の値は（空）と表示",
			baseline: fields("nickname", "", "remark", "メモ"),
			current:  fields("nickname", "タロー", "remark", ""),
			want: []model.ChangeRecord{
				{Name: "nickname", Field: "ニックネーム", Original: "（空）", Current: "タロー"},
				{Name: "remark", Field: "備考", Original: "メモ", Current: "（空）"},
			},
		},
		{
			name:     "並び順は current の順 (名前順ではない)",
			baseline: fields("name", "A", "age", "20", "area", "東京"),
			current:  fields("area", "大阪", "name", "B", "age", "21"),
			want: []model.ChangeRecord{
				{Name: "area", Field: "地域", Original: "東京", Current: "大阪"},
				{Name: "name", Field: "名前", Original: "A", Current: "B"},
				{Name: "age", Field: "年齢", Original: "20", Current: "21"},
			},
		},
		{
			name:     "ラベル表にない名前はそのまま",
			baseline: fields("hobby", "釣り"),
			current:  fields("hobby", "読書"),
			want: []model.ChangeRecord{
				{Name: "hobby", Field: "hobby", Original: "釣り", Current: "読書"},
			},
		},
		{
			name:     "基準値にないフィールドは比べない",
			baseline: fields("name", "A"),
			current:  fields("name", "A", "email", "a@example.com"),
			want:     []model.ChangeRecord{},
		},
		{
			name: "hidden は対象外",
			baseline: []model.Field{
				{Name: "id", Value: "1", Type: model.FieldTypeHidden},
				{Name: "name", Value: "A"},
			},
			current: []model.Field{
				{Name: "id", Value: "2", Type: model.FieldTypeHidden},
				{Name: "name", Value: "A"},
			},
			want: []model.ChangeRecord{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewFormChangeTracker(model.DefaultFieldLabels(), logging.Discard())
			require.NoError(t, tracker.CaptureBaseline(tt.baseline))

			got, err := tracker.Diff(tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormChangeTracker_States(t *testing.T) {
	tracker := NewFormChangeTracker(nil, nil)
	assert.NotEqual(t, uuid.Nil, tracker.ID())
	assert.False(t, tracker.Armed())

	t.Run("異常系: 基準値の保存前に Diff", func(t *testing.T) {
		got, err := tracker.Diff(fields("name", "A"))
		assert.ErrorIs(t, err, model.ErrNotArmed)
		assert.Nil(t, got)
	})

	require.NoError(t, tracker.CaptureBaseline(fields("name", "A")))
	assert.True(t, tracker.Armed())

	t.Run("異常系: 基準値の二重保存", func(t *testing.T) {
		err := tracker.CaptureBaseline(fields("name", "B"))
		assert.ErrorIs(t, err, model.ErrAlreadyArmed)
		assert.Equal(t, model.FieldSnapshot{"name": "A"}, tracker.Baseline(), "基準値は変わらない")
	})

	t.Run("Diff を何度呼んでも基準値は変わらない", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			got, err := tracker.Diff(fields("name", "B"))
			require.NoError(t, err)
			assert.Len(t, got, 1)
		}
		got, err := tracker.Diff(fields("name", "A"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Baseline はコピーを返す", func(t *testing.T) {
		b := tracker.Baseline()
		b["name"] = "Z"
		assert.Equal(t, "A", tracker.Baseline()["name"])
	})
}

func TestFormChangeTracker_SessionsAreIndependent(t *testing.T) {
	a := NewFormChangeTracker(nil, logging.Discard())
	b := NewFormChangeTracker(nil, logging.Discard())
	assert.NotEqual(t, a.ID(), b.ID())

	require.NoError(t, a.CaptureBaseline(fields("name", "A")))
	_, err := b.Diff(fields("name", "A"))
	assert.ErrorIs(t, err, model.ErrNotArmed)
}

func TestFormChangeTracker_UsesLabeler(t *testing.T) {
	labeler := new(mocks.FieldLabeler)
	labeler.On("Label", "email").Return("連絡先").Once()

	tracker := NewFormChangeTracker(labeler, logging.Discard())
	require.NoError(t, tracker.CaptureBaseline(fields("name", "A", "email", "a@example.com")))

	got, err := tracker.Diff(fields("name", "A", "email", "b@example.com"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "連絡先", got[0].Field)
	labeler.AssertExpectations(t)
	labeler.AssertNotCalled(t, "Label", "name")
}

func TestChanged(t *testing.T) {
	records := []model.ChangeRecord{
		{Name: "name", Field: "名前"},
		{Name: "age", Field: "年齢"},
	}
	assert.Equal(t, map[string]bool{"name": true, "age": true}, Changed(records))
	assert.Empty(t, Changed(nil))
}
