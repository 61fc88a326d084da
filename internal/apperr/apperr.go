package apperr

import (
	"errors"
	"net/http"
)

// Kind 错误类别，网关据此统一映射 HTTP 状态码
type Kind int

const (
	KindBackend    Kind = iota // 存储/传输失败
	KindValidation             // 请求参数缺失或非法
	KindNotFound               // 目标存储中无匹配实体
)

// Error 带类别的业务错误
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind 返回错误类别
func (e *Error) Kind() Kind {
	return e.kind
}

// Validation 构造参数校验错误
func Validation(msg string) error {
	return &Error{kind: KindValidation, msg: msg}
}

// NotFound 构造未找到错误
func NotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

// Backend 包装底层存储错误，错误信息原样透传
func Backend(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindBackend, err: err}
}

// KindOf 提取错误类别，未分类的一律按后端错误处理
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindBackend
}

// StatusOf 错误类别到 HTTP 状态码的唯一映射
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
