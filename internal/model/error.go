// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrSkip はコース名か開始日が未入力のため終了日を計算しないことを示します。
	// 失敗ではなく「何もしない」合図です。
	ErrSkip = errors.New("end date calculation skipped")
	// ErrNotArmed は基準値を保存する前に差分を取ろうとした呼び出し側のバグです。
	ErrNotArmed = errors.New("change tracker has no baseline")
	// ErrAlreadyArmed は同じセッションで基準値を二度保存しようとした場合のエラーです。
	ErrAlreadyArmed = errors.New("change tracker baseline already captured")
)

// ErrorDetail はユーザーに見せるエラーの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// AppError は表示用の詳細と元のエラーを持つカスタムエラー型
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
