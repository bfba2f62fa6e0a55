package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	RequestErrCode          = 10003
	AuthorizationFailedCode = 10004
	TokenInvalidCode        = 10005
	RecordNotFoundCode      = 10006
	UserAlreadyExistCode    = 10007
	MediaErrCode            = 10008
)

// ErrNo 统一的业务错误类型 通过错误码区分错误种类
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage 替换错误信息 错误码保持不变
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr             = NewErrNo(RequestErrCode, "Bad Request")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	TokenInvalidErr        = NewErrNo(TokenInvalidCode, "Token is invalid or expired")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundCode, "Record not found")
	UserAlreadyExistErr    = NewErrNo(UserAlreadyExistCode, "User already exists")
	MediaErr               = NewErrNo(MediaErrCode, "Unsupported or broken media")
)

// ConvertErr 将任意error转换为ErrNo 未识别的错误归入ServiceErr
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
