// internal/service/form_change_tracker.go
package service

import (
	"log/slog"

	"github.com/google/uuid"

	"go_student_management/internal/model"
)

// FieldLabeler はフィールド名から表示用ラベルを引きます。
// 知らない名前はそのまま返すこと。
type FieldLabeler interface {
	Label(name string) string
}

// FormChangeTracker は編集フォーム1回分 (1セッション) の変更検知です。
// 基準値を保存するまでは Unarmed、保存後は Armed になり、元には戻りません。
type FormChangeTracker struct {
	id       uuid.UUID
	labeler  FieldLabeler
	logger   *slog.Logger
	baseline model.FieldSnapshot
	armed    bool
}

// NewFormChangeTracker は新しいセッションを作ります。
// labeler が nil なら model.DefaultFieldLabels()、logger が nil なら slog.Default()。
func NewFormChangeTracker(labeler FieldLabeler, logger *slog.Logger) *FormChangeTracker {
	if labeler == nil {
		labeler = model.DefaultFieldLabels()
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &FormChangeTracker{
		id:      id,
		labeler: labeler,
		logger:  logger.With(slog.String("session_id", id.String())),
	}
}

// ID はセッションID
func (t *FormChangeTracker) ID() uuid.UUID {
	return t.id
}

// Armed は基準値が保存済みかどうか
func (t *FormChangeTracker) Armed() bool {
	return t.armed
}

// CaptureBaseline は hidden 以外のフィールドの値を基準値として保存します。
// 1セッションにつき1回だけ呼べます。
func (t *FormChangeTracker) CaptureBaseline(fields []model.Field) error {
	if t.armed {
		t.logger.Warn("Baseline capture requested twice")
		return model.ErrAlreadyArmed
	}

	baseline := make(model.FieldSnapshot, len(fields))
	for _, f := range fields {
		if !f.Trackable() {
			continue
		}
		baseline[f.Name] = f.Value
	}
	t.baseline = baseline
	t.armed = true

	t.logger.Debug("Baseline captured", slog.Int("fields", len(baseline)))
	return nil
}

// Baseline は保存した基準値のコピー
func (t *FormChangeTracker) Baseline() model.FieldSnapshot {
	out := make(model.FieldSnapshot, len(t.baseline))
	for k, v := range t.baseline {
		out[k] = v
	}
	return out
}

// Diff は現在の値と基準値を比べ、違うフィールドを current の並び順で返します。
// 基準値にないフィールドと hidden は比べません。
func (t *FormChangeTracker) Diff(current []model.Field) ([]model.ChangeRecord, error) {
	if !t.armed {
		return nil, model.ErrNotArmed
	}

	changes := make([]model.ChangeRecord, 0)
	for _, f := range current {
		if !f.Trackable() {
			continue
		}
		original, ok := t.baseline[f.Name]
		if !ok || original == f.Value {
			continue
		}
		changes = append(changes, model.ChangeRecord{
			Name:     f.Name,
			Field:    t.labeler.Label(f.Name),
			Original: displayValue(original),
			Current:  displayValue(f.Value),
		})
	}

	t.logger.Debug("Changes checked", slog.Int("changed", len(changes)))
	return changes, nil
}

// Changed は変更があったフィールド名の集合 (changed マーカーの付け外し用)
func Changed(records []model.ChangeRecord) map[string]bool {
	out := make(map[string]bool, len(records))
	for _, r := range records {
		out[r.Name] = true
	}
	return out
}

func displayValue(v string) string {
	if v == "" {
		return model.EmptyValuePlaceholder
	}
	return v
}
