package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/caronvincent/todo-burbanie/pkg/translator"
)

// JsonErr is the body of every error response.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// Problem is a failure decided by the API but not yet rendered: the status to
// answer with and the translation key of its message.
type Problem struct {
	Status int
	MsgKey string
}

func New(status int, msgKey string) Problem {
	return Problem{Status: status, MsgKey: msgKey}
}

func (p Problem) Error() string {
	return fmt.Sprintf("%d %s", p.Status, p.MsgKey)
}

// Localize renders the problem in lang. requestID is echoed when not empty so
// a client report can be matched with the access log.
func (p Problem) Localize(lang, requestID string) JsonErr {
	return JsonErr{ErrDetails: Err{
		Code:      p.Status,
		Message:   GetTransErrorMsg(p.MsgKey, lang),
		RequestID: requestID,
	}}
}

// GetTransErrorMsg falls back to English, then to the key itself.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}

	msg, err := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn).
		Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
